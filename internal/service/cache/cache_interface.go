// Package cache provides the view cache used for public package reads.
// Values are opaque bytes keyed by string; backends are in-memory or Redis.
package cache

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Backend failures are reported as misses so callers can always fall back to the source.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stop()
}

// Store is a remote cache backend that reports its failures.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
