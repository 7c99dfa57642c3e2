// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPackageService struct {
	mock.Mock
}

func (m *MockPackageService) Create(ctx context.Context, actor model.Actor, in service.CreatePackageInput) (*model.PackageDetails, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageDetails), args.Error(1)
}

func (m *MockPackageService) Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in service.UpdatePackageInput) (*model.PackageDetails, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageDetails), args.Error(1)
}

func (m *MockPackageService) Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockPackageService) Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.PackageDetails, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageDetails), args.Error(1)
}

func (m *MockPackageService) List(ctx context.Context, actor model.Actor) ([]model.Package, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageService) GetPublic(ctx context.Context, id primitive.ObjectID) (*model.PackageDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageDetails), args.Error(1)
}

func (m *MockPackageService) LinkItems(ctx context.Context, actor model.Actor, id primitive.ObjectID, itemIDs []primitive.ObjectID) (*model.PackageDetails, error) {
	args := m.Called(ctx, actor, id, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageDetails), args.Error(1)
}

func (m *MockPackageService) CreateForBuyer(ctx context.Context, actor model.Actor, in service.BuyerPackageInput) (*model.PackageDetails, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageDetails), args.Error(1)
}
