package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/circuitbreaker"
	"github.com/guttosm/catering-service/internal/service/cache"
)

const (
	cacheShards    = 16
	redisKeyPrefix = "catering:"
)

// CacheComponents holds the package view cache.
type CacheComponents struct {
	Cache          cache.Cache
	Redis          *cache.Resilient
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeCache builds the view cache: Redis behind a circuit breaker when enabled,
// otherwise an in-memory TTL cache. A Redis that cannot be reached at startup falls back to memory.
func InitializeCache(ctx context.Context, cfg config.CacheConfig, dbCfg config.DatabaseConfig) *CacheComponents {
	if cfg.RedisEnabled {
		store, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   redisKeyPrefix,
		})
		if err == nil {
			cb := newCircuitBreaker(dbCfg, "redis-cache")
			resilient := cache.NewResilient(store, cb, cfg.TTL)
			log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis package view cache")
			return &CacheComponents{Cache: resilient, Redis: resilient, CircuitBreaker: cb}
		}
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable - falling back to in-memory cache")
	}

	if cfg.Size <= 0 {
		log.Info().Msg("Package view cache disabled")
		return &CacheComponents{Cache: cache.Noop{}}
	}
	return &CacheComponents{Cache: cache.NewMemory(cfg.Size, cfg.TTL, cacheShards)}
}

// Close stops the cache and releases its connections.
func (c *CacheComponents) Close(context.Context) error {
	if c != nil && c.Cache != nil {
		c.Cache.Stop()
	}
	return nil
}
