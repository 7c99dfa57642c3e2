// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAddOnRepositoryInterface struct {
	mock.Mock
}

func (m *MockAddOnRepositoryInterface) Create(ctx context.Context, addOn *model.AddOn) error {
	args := m.Called(ctx, addOn)
	return args.Error(0)
}

func (m *MockAddOnRepositoryInterface) GetByID(ctx context.Context, packageID primitive.ObjectID, id primitive.ObjectID) (*model.AddOn, error) {
	args := m.Called(ctx, packageID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AddOn), args.Error(1)
}

func (m *MockAddOnRepositoryInterface) ListByPackage(ctx context.Context, packageID primitive.ObjectID) ([]model.AddOn, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AddOn), args.Error(1)
}

func (m *MockAddOnRepositoryInterface) Update(ctx context.Context, addOn *model.AddOn) error {
	args := m.Called(ctx, addOn)
	return args.Error(0)
}

func (m *MockAddOnRepositoryInterface) Delete(ctx context.Context, packageID primitive.ObjectID, id primitive.ObjectID) error {
	args := m.Called(ctx, packageID, id)
	return args.Error(0)
}

func (m *MockAddOnRepositoryInterface) DeleteByPackage(ctx context.Context, packageID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).(int64), args.Error(1)
}
