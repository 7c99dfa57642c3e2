// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPackageNotifier struct {
	mock.Mock
}

func (m *MockPackageNotifier) PackageChanged(ctx context.Context, packageID primitive.ObjectID) {
	m.Called(ctx, packageID)
}

func (m *MockPackageNotifier) PackagePriced(ctx context.Context, pkg *model.Package, changed bool) {
	m.Called(ctx, pkg, changed)
}

func (m *MockPackageNotifier) PackageDeleted(ctx context.Context, pkg *model.Package) {
	m.Called(ctx, pkg)
}
