// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCatererRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatererRepositoryInterface) GetSettings(ctx context.Context, catererID primitive.ObjectID) (*model.CatererSettings, error) {
	args := m.Called(ctx, catererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatererSettings), args.Error(1)
}

func (m *MockCatererRepositoryInterface) UpsertSettings(ctx context.Context, settings *model.CatererSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
