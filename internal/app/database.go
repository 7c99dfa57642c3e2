// Package app provides database initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/circuitbreaker"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/guttosm/catering-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	Dishes             repository.DishRepositoryInterface
	Items              repository.PackageItemRepositoryInterface
	Packages           repository.PackageRepositoryInterface
	AddOns             repository.AddOnRepositoryInterface
	Catalog            repository.CatalogRepositoryInterface
	Caterers           repository.CatererRepositoryInterface
	Tx                 repository.Transactor
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// The catering service cannot run without its store, so a failed connection is returned.
func InitializeDatabase(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	log.Info().Str("database", cfg.DatabaseName).Bool("transactions", cfg.Transactions).Msg("Connected to MongoDB")

	ttlDays := int(cfg.AuditTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set audit log TTL index (may already exist)")
		}
	}

	logsCB := newCircuitBreaker(cfg, "mongodb-audit-logs")
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	catalog := repository.NewCatalogRepository(db)

	components := &DatabaseComponents{
		DB:                 db,
		Dishes:             repository.NewDishRepository(db),
		Items:              repository.NewPackageItemRepository(db),
		Packages:           repository.NewPackageRepository(db),
		AddOns:             repository.NewAddOnRepository(db),
		Catalog:            catalog,
		Caterers:           repository.NewCatererRepository(db),
		Tx:                 repository.NewMongoTransactor(db, cfg.Transactions),
		LoggingService:     service.NewLoggingService(logsRepo),
		LogsCircuitBreaker: logsCB,
	}

	if cfg.SeedCatalog {
		if err := initializeDefaultCatalog(ctx, catalog); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default catalog")
		}
	}

	return components, nil
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		Ignore:           circuitbreaker.IgnoreCanceled,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}
