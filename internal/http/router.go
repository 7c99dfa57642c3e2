package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/middleware"
	"github.com/guttosm/catering-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	// EnableAuth requires bearer tokens. When false the actor is taken from the X-Actor-* headers.
	EnableAuth        bool
	EnableIdempotency bool
	// IdempotencyStore shares replays between instances. Nil keeps them in process memory.
	IdempotencyStore middleware.ReplayStore
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	TokenService      service.TokenService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the catering service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}
	if handler == nil {
		return router
	}

	NewCatalogRoutes(handler).RegisterPublicRoutes(api)

	protected := api.Group("")
	configureProtectedMiddleware(protected, &cfg)
	NewCatererRoutes(handler).RegisterProtectedRoutes(protected, &cfg)
	NewBuyerRoutes(handler).RegisterProtectedRoutes(protected, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	// Context setup middleware
	router.Use(func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureProtectedMiddleware resolves the actor, then applies per-actor limits and idempotency.
func configureProtectedMiddleware(rg *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableAuth && cfg.TokenService != nil {
		rg.Use(middleware.ActorAuth(cfg.TokenService))
	} else {
		rg.Use(middleware.HeaderActorAuth())
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		rg.Use(limiter.ActorRateLimit())
	}

	if cfg.EnableIdempotency {
		idempotency := middleware.DefaultIdempotencyConfig()
		if cfg.IdempotencyStore != nil {
			idempotency.Store = cfg.IdempotencyStore
		}
		rg.Use(middleware.Idempotency(idempotency))
	}
}
