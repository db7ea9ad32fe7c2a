package handler

import (
	"net/http"

	"dealersurvey/internal/service"
)

// CatalogHandler handles question catalog endpoints
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// List handles GET /v1/questions
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalogSvc.Questions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}
