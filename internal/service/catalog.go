package service

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
)

// CatalogService exposes the reference data buyers and caterers pick from.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListOccasions(ctx context.Context) ([]model.Occasion, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	catalog repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog repository.CatalogRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{catalog: catalog}
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.catalog.ListCategories(ctx)
}

func (s *CatalogServiceImpl) ListOccasions(ctx context.Context) ([]model.Occasion, error) {
	return s.catalog.ListOccasions(ctx)
}
