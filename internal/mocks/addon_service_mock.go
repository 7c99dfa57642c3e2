// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAddOnService struct {
	mock.Mock
}

func (m *MockAddOnService) Create(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, in service.AddOnInput) (*model.AddOn, error) {
	args := m.Called(ctx, actor, packageID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddOn), args.Error(1)
}

func (m *MockAddOnService) Get(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, id primitive.ObjectID) (*model.AddOn, error) {
	args := m.Called(ctx, actor, packageID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddOn), args.Error(1)
}

func (m *MockAddOnService) List(ctx context.Context, actor model.Actor, packageID primitive.ObjectID) ([]model.AddOn, error) {
	args := m.Called(ctx, actor, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AddOn), args.Error(1)
}

func (m *MockAddOnService) Update(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, id primitive.ObjectID, in service.AddOnInput) (*model.AddOn, error) {
	args := m.Called(ctx, actor, packageID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddOn), args.Error(1)
}

func (m *MockAddOnService) Delete(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, packageID, id)
	return args.Error(0)
}
