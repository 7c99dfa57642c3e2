// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPackageRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackageRepositoryInterface) Create(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepositoryInterface) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Package, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageRepositoryInterface) ListByCaterer(ctx context.Context, catererID primitive.ObjectID) ([]model.Package, error) {
	args := m.Called(ctx, catererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageRepositoryInterface) Update(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
