package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/repository"
)

// CatererSettingsService reads and writes the defaults a caterer's packages are created with.
type CatererSettingsService interface {
	Get(ctx context.Context, actor model.Actor) (*model.CatererSettings, error)
	Upsert(ctx context.Context, actor model.Actor, minimumGuests int, currency string) (*model.CatererSettings, error)
}

// CatererSettingsServiceImpl implements CatererSettingsService.
type CatererSettingsServiceImpl struct {
	caterers repository.CatererRepositoryInterface
}

// NewCatererSettingsService creates a new caterer settings service.
func NewCatererSettingsService(caterers repository.CatererRepositoryInterface) CatererSettingsService {
	return &CatererSettingsServiceImpl{caterers: caterers}
}

// Get returns the caterer's settings, or empty settings when none were saved.
func (s *CatererSettingsServiceImpl) Get(ctx context.Context, actor model.Actor) (*model.CatererSettings, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	settings, err := s.caterers.GetSettings(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("load caterer settings: %w", err)
	}
	if settings == nil {
		return &model.CatererSettings{CatererID: actor.ID}, nil
	}
	return settings, nil
}

func (s *CatererSettingsServiceImpl) Upsert(ctx context.Context, actor model.Actor, minimumGuests int, currency string) (*model.CatererSettings, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	if minimumGuests < 1 {
		return nil, model.Validation(i18n.ErrKeyValidationFailed, "minimum_guests must be at least 1")
	}

	settings := &model.CatererSettings{
		CatererID:     actor.ID,
		MinimumGuests: &minimumGuests,
		Currency:      strings.ToUpper(strings.TrimSpace(currency)),
	}
	if err := s.caterers.UpsertSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("save caterer settings: %w", err)
	}
	return settings, nil
}
