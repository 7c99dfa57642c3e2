package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/mocks"
)

func TestNewRouter(t *testing.T) {
	handler := newTestServices(t).handler()
	healthHandler := NewHealthHandler()

	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{name: "creates router with default config", cfg: DefaultRouterConfig()},
		{
			name: "creates router with auth enabled",
			cfg: RouterConfig{
				RateLimit:    100,
				RateWindow:   time.Minute,
				EnableAuth:   true,
				TokenService: &mocks.MockTokenService{},
			},
		},
		{
			name: "creates router with idempotency enabled",
			cfg: RouterConfig{
				RateLimit:         100,
				RateWindow:        time.Minute,
				EnableIdempotency: true,
			},
		},
		{
			name: "creates router with request timeout",
			cfg: RouterConfig{
				RateLimit:      5,
				RateWindow:     time.Second,
				RequestTimeout: time.Second,
			},
		},
		{
			name: "creates router with swagger basic auth",
			cfg: RouterConfig{
				SwaggerUser: "docs",
				SwaggerPass: "secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(handler, healthHandler, tt.cfg)
			assert.NotNil(t, router)
		})
	}
}

func TestNewRouter_WithoutHandler(t *testing.T) {
	router := NewRouter(nil, NewHealthHandler(), DefaultRouterConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/packages", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Endpoints(t *testing.T) {
	router, _ := setupRouterWithMocks(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "healthz endpoint", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readyz endpoint", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics endpoint", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "swagger endpoint", method: http.MethodGet, path: "/swagger/index.html", expectedStatus: http.StatusOK},
		{name: "packages require an actor", method: http.MethodGet, path: "/api/packages", expectedStatus: http.StatusUnauthorized},
		{name: "buyer route requires an actor", method: http.MethodPost, path: "/api/user/packages", expectedStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(nil, nil, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_BearerAuth(t *testing.T) {
	s := newTestServices(t)
	tokens := &mocks.MockTokenService{}
	t.Cleanup(func() { tokens.AssertExpectations(t) })

	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.TokenService = tokens
	router := NewRouter(s.handler(), NewHealthHandler(), cfg)

	tokens.On("Validate", "good").Return(testCaterer, nil)
	tokens.On("Validate", "bad").Return(model.Actor{}, assert.AnError)
	s.packages.On("List", mock.Anything, testCaterer).Return([]model.Package{}, nil)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "valid token", header: "Bearer good", expectedStatus: http.StatusOK},
		{name: "invalid token", header: "Bearer bad", expectedStatus: http.StatusUnauthorized},
		{name: "missing token", header: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_HeaderAuthIgnoredWhenTokensRequired(t *testing.T) {
	s := newTestServices(t)
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.TokenService = &mocks.MockTokenService{}
	router := NewRouter(s.handler(), nil, cfg)

	w := doRequest(router, http.MethodGet, "/api/packages", &testCaterer, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	router := NewRouter(nil, nil, RouterConfig{CORSOrigins: []string{"https://app.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/packages", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
