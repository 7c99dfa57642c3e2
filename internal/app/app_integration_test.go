//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/config"
)

func TestInitializeApp_Integration(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
		},
		Cache:    config.CacheConfig{Size: 100, TTL: time.Minute},
		Auth:     config.AuthConfig{Enabled: false},
		Database: integrationDatabaseConfig(t),
		Events:   config.EventsConfig{Enabled: false},
		Pricing:  config.PricingConfig{DefaultCurrency: "EUR"},
	}

	application, err := InitializeApp(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, application.Router)
	t.Cleanup(func() { assert.NoError(t, application.Close(ctx)) })

	t.Run("readiness reports mongodb", func(t *testing.T) {
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mongodb")
	})

	t.Run("seeded catalog is served", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/catalog/categories", nil)
		req.Header.Set("X-Actor-ID", primitive.NewObjectID().Hex())
		req.Header.Set("X-Actor-Type", "user")
		application.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Starters")
	})

	t.Run("package creation needs caterer settings", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/packages", strings.NewReader(`{"name":"Wedding buffet"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", primitive.NewObjectID().Hex())
		req.Header.Set("X-Actor-Type", "CATERER")
		application.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestInitializeApp_UnreachableDatabase(t *testing.T) {
	cfg := config.Config{
		Database: config.DatabaseConfig{
			URI:          "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500",
			DatabaseName: "unreachable",
		},
	}

	application, err := InitializeApp(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, application)
}
