// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPackageItemService struct {
	mock.Mock
}

func (m *MockPackageItemService) Create(ctx context.Context, actor model.Actor, in service.CreatePackageItemInput) (*model.PackageItemDetails, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageItemDetails), args.Error(1)
}

func (m *MockPackageItemService) ListGrouped(ctx context.Context, actor model.Actor, draftOnly bool) ([]model.ItemGroup, error) {
	args := m.Called(ctx, actor, draftOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemGroup), args.Error(1)
}

func (m *MockPackageItemService) Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.PackageItemDetails, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageItemDetails), args.Error(1)
}

func (m *MockPackageItemService) Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in service.UpdatePackageItemInput) (*model.PackageItemDetails, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageItemDetails), args.Error(1)
}

func (m *MockPackageItemService) Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockPackageItemService) Link(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, itemIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, actor, packageID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}
