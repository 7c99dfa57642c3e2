//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/events"
	"github.com/guttosm/catering-service/internal/mocks"
	"github.com/guttosm/catering-service/internal/service/cache"
)

func mockDatabaseComponents() (*DatabaseComponents, *mocks.MockCatalogRepositoryInterface, *mocks.MockCatererRepositoryInterface) {
	catalog := &mocks.MockCatalogRepositoryInterface{}
	caterers := &mocks.MockCatererRepositoryInterface{}
	return &DatabaseComponents{
		Dishes:   &mocks.MockDishRepositoryInterface{},
		Items:    &mocks.MockPackageItemRepositoryInterface{},
		Packages: &mocks.MockPackageRepositoryInterface{},
		AddOns:   &mocks.MockAddOnRepositoryInterface{},
		Catalog:  catalog,
		Caterers: caterers,
		Tx:       &mocks.MockTransactor{},
	}, catalog, caterers
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{RateLimit: 100, RateWindow: time.Minute},
		Auth:   config.AuthConfig{Enabled: true, JWTSecretKey: "secret", JWTIssuer: "catering-service", TokenTTL: time.Hour},
		Pricing: config.PricingConfig{
			DefaultCurrency: "EUR",
		},
	}
}

func TestInitializeServices(t *testing.T) {
	db, _, _ := mockDatabaseComponents()

	components := InitializeServices(testConfig(), db, cache.Noop{}, events.Noop{})

	require.NotNil(t, components)
	assert.NotNil(t, components.Packages)
	assert.NotNil(t, components.Items)
	assert.NotNil(t, components.AddOns)
	assert.NotNil(t, components.Dishes)
	assert.NotNil(t, components.Settings)
	assert.NotNil(t, components.Catalog)
	assert.NotNil(t, components.Tokens)
}

func TestInitializeServices_UsesRepositories(t *testing.T) {
	db, catalog, _ := mockDatabaseComponents()
	categories := []model.Category{{ID: primitive.NewObjectID(), Name: "Mains"}}
	catalog.On("ListCategories", mock.Anything).Return(categories, nil).Once()

	components := InitializeServices(testConfig(), db, cache.Noop{}, events.Noop{})
	got, err := components.Catalog.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, categories, got)
	catalog.AssertExpectations(t)
}

func TestInitializeServices_TokensUseAuthConfig(t *testing.T) {
	db, _, _ := mockDatabaseComponents()
	components := InitializeServices(testConfig(), db, cache.Noop{}, events.Noop{})
	actor := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}

	token, err := components.Tokens.Mint(actor)
	require.NoError(t, err)

	got, err := components.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}
