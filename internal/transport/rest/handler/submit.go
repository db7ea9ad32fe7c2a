package handler

import (
	"net/http"
	"strconv"

	"dealersurvey/internal/service"
	"dealersurvey/internal/transport/rest/middleware"
)

// SubmitHandler handles submission and stats endpoints
type SubmitHandler struct {
	submitSvc *service.SubmitService
	statsSvc  *service.StatsService
}

// NewSubmitHandler creates a new submit handler
func NewSubmitHandler(submitSvc *service.SubmitService, statsSvc *service.StatsService) *SubmitHandler {
	return &SubmitHandler{
		submitSvc: submitSvc,
		statsSvc:  statsSvc,
	}
}

// Submit handles POST /v1/sessions/submit
//
// The response is always 200 with an Outcome body; failed submissions are
// data, not HTTP errors, so the client always has something to render.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	outcome, err := h.submitSvc.Submit(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// Stats handles GET /v1/stats
func (h *SubmitHandler) Stats(w http.ResponseWriter, r *http.Request) {
	dealerID := r.URL.Query().Get("dealer_id")

	stats, err := h.statsSvc.DealerStats(r.Context(), dealerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Attempts handles GET /v1/attempts
func (h *SubmitHandler) Attempts(w http.ResponseWriter, r *http.Request) {
	dealerID, err := strconv.Atoi(r.URL.Query().Get("dealer_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dealer_id")
		return
	}

	attempts, err := h.statsSvc.RecentAttempts(r.Context(), dealerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}
