// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/http"
	"github.com/guttosm/catering-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	caches *CacheComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(http.Services{
		Packages: services.Packages,
		Items:    services.Items,
		AddOns:   services.AddOns,
		Dishes:   services.Dishes,
		Settings: services.Settings,
		Catalog:  services.Catalog,
	})

	healthHandler := http.NewHealthHandler()
	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		TokenService:      services.Tokens,
	}

	if db != nil {
		routerCfg.LoggingService = db.LoggingService
		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		}
		if db.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_audit_logs", db.LogsCircuitBreaker)
		}
	}

	if caches != nil && caches.Redis != nil {
		redis := caches.Redis
		healthHandler.RegisterChecker("redis", http.HealthCheckFunc(func(ctx context.Context) error {
			return redis.Ping(ctx)
		}))
		healthHandler.RegisterCircuitBreaker("redis_cache", caches.CircuitBreaker)
		routerCfg.IdempotencyStore = middleware.NewCacheReplayStore(redis, middleware.IdempotencyKeyTTL)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
