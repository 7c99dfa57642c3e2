// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) Create(ctx context.Context, actor model.Actor, in service.DishInput) (*model.Dish, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.Dish, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) List(ctx context.Context, actor model.Actor, categoryID *primitive.ObjectID, activeOnly bool) ([]model.Dish, error) {
	args := m.Called(ctx, actor, categoryID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishService) Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in service.DishInput) (*model.Dish, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
