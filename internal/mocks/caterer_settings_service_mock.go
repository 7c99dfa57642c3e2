// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCatererSettingsService struct {
	mock.Mock
}

func (m *MockCatererSettingsService) Get(ctx context.Context, actor model.Actor) (*model.CatererSettings, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatererSettings), args.Error(1)
}

func (m *MockCatererSettingsService) Upsert(ctx context.Context, actor model.Actor, minimumGuests int, currency string) (*model.CatererSettings, error) {
	args := m.Called(ctx, actor, minimumGuests, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatererSettings), args.Error(1)
}
