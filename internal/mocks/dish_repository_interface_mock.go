// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockDishRepositoryInterface struct {
	mock.Mock
}

func (m *MockDishRepositoryInterface) Create(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Dish, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) ListByCaterer(ctx context.Context, catererID primitive.ObjectID, filter repository.DishFilter) ([]model.Dish, error) {
	args := m.Called(ctx, catererID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) Update(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
