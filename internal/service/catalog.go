package service

import (
	"context"

	"dealersurvey/internal/model"
	"dealersurvey/internal/repository"
)

// CatalogService serves the respondent-facing question catalog
type CatalogService struct {
	catalog repository.CatalogRepo
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog repository.CatalogRepo) *CatalogService {
	return &CatalogService{
		catalog: catalog,
	}
}

// Questions returns the ordered catalog without score tables
func (s *CatalogService) Questions(ctx context.Context) ([]model.PublicQuestion, error) {
	questions, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicQuestion, len(questions))
	for i := range questions {
		public[i] = questions[i].Public()
	}
	return public, nil
}
