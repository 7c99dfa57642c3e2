// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetSubCategory(ctx context.Context, id primitive.ObjectID) (*model.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubCategory), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListOccasions(ctx context.Context) ([]model.Occasion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Occasion), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetOccasionsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Occasion, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Occasion), args.Error(1)
}
