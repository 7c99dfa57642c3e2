// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/events"
	"github.com/guttosm/catering-service/internal/http"
	"github.com/guttosm/catering-service/internal/middleware"
)

// App is the wired application: the router plus the resources to release on shutdown.
type App struct {
	Router    *gin.Engine
	db        *DatabaseComponents
	caches    *CacheComponents
	publisher events.Publisher
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	db, err := InitializeDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	middleware.InitAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())

	caches := InitializeCache(ctx, cfg.Cache, cfg.Database)
	publisher := InitializePublisher(cfg.Events)

	services := InitializeServices(cfg, db, caches.Cache, publisher)
	routerComponents := InitializeRouter(services, db, caches, cfg)

	return &App{
		Router:    http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		db:        db,
		caches:    caches,
		publisher: publisher,
	}, nil
}

// Close flushes pending audit entries and releases every connection.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()

	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	errs = append(errs, a.caches.Close(ctx), a.db.Close(ctx))
	return errors.Join(errs...)
}
