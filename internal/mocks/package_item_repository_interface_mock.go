// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPackageItemRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackageItemRepositoryInterface) Create(ctx context.Context, item *model.PackageItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPackageItemRepositoryInterface) CreateMany(ctx context.Context, items []*model.PackageItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockPackageItemRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.PackageItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackageItem), args.Error(1)
}

func (m *MockPackageItemRepositoryInterface) GetByIDsForCaterer(ctx context.Context, catererID primitive.ObjectID, ids []primitive.ObjectID) ([]model.PackageItem, error) {
	args := m.Called(ctx, catererID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackageItem), args.Error(1)
}

func (m *MockPackageItemRepositoryInterface) ListByCaterer(ctx context.Context, catererID primitive.ObjectID, draftOnly bool) ([]model.PackageItem, error) {
	args := m.Called(ctx, catererID, draftOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackageItem), args.Error(1)
}

func (m *MockPackageItemRepositoryInterface) ListByPackage(ctx context.Context, packageID primitive.ObjectID) ([]model.PackageItem, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackageItem), args.Error(1)
}

func (m *MockPackageItemRepositoryInterface) Update(ctx context.Context, item *model.PackageItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPackageItemRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageItemRepositoryInterface) Link(ctx context.Context, catererID primitive.ObjectID, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, catererID, packageID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackageItemRepositoryInterface) Unlink(ctx context.Context, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, packageID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackageItemRepositoryInterface) CountByDish(ctx context.Context, dishID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, dishID)
	return args.Get(0).(int64), args.Error(1)
}
