package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/circuitbreaker"
	"github.com/guttosm/catering-service/internal/metrics"
)

// Resilient adapts a Store to Cache behind a circuit breaker.
// Failures and an open circuit degrade to misses and dropped writes.
type Resilient struct {
	store Store
	cb    *circuitbreaker.CircuitBreaker
	ttl   time.Duration
}

// NewResilient creates a Cache over store with the given TTL.
func NewResilient(store Store, cb *circuitbreaker.CircuitBreaker, ttl time.Duration) *Resilient {
	return &Resilient{store: store, cb: cb, ttl: ttl}
}

// Get returns the cached value, or a miss when the store is unavailable.
func (r *Resilient) Get(ctx context.Context, key string) ([]byte, bool) {
	var (
		value []byte
		found bool
	)
	err := r.cb.Execute(ctx, func() error {
		var err error
		value, found, err = r.store.Get(ctx, key)
		return err
	})
	switch {
	case err != nil:
		r.degraded("get", key, err)
		return nil, false
	case !found:
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	default:
		metrics.RecordCacheOperation("get", "hit")
		return value, true
	}
}

// Set stores a value; errors are logged and dropped.
func (r *Resilient) Set(ctx context.Context, key string, value []byte) {
	err := r.cb.Execute(ctx, func() error {
		return r.store.Set(ctx, key, value, r.ttl)
	})
	if err != nil {
		r.degraded("set", key, err)
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate deletes a key; errors are logged and dropped.
func (r *Resilient) Invalidate(ctx context.Context, key string) {
	err := r.cb.Execute(ctx, func() error {
		return r.store.Delete(ctx, key)
	})
	if err != nil {
		r.degraded("invalidate", key, err)
		return
	}
	metrics.RecordCacheOperation("invalidate", "success")
}

// Clear removes every key of this service from the store.
func (r *Resilient) Clear(ctx context.Context) {
	err := r.cb.Execute(ctx, func() error {
		return r.store.Flush(ctx)
	})
	if err != nil {
		r.degraded("clear", "*", err)
		return
	}
	metrics.RecordCacheOperation("clear", "success")
}

// Stop closes the store.
func (r *Resilient) Stop() {
	if err := r.store.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close cache store")
	}
}

// Ping checks the store through the breaker. Used by readiness checks.
func (r *Resilient) Ping(ctx context.Context) error {
	return r.cb.Execute(ctx, func() error {
		return r.store.Ping(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *Resilient) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

func (r *Resilient) degraded(op, key string, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		metrics.RecordCacheOperation(op, "circuit_open")
		return
	}
	metrics.RecordCacheOperation(op, "error")
	log.Warn().Err(err).Str("operation", op).Str("key", key).Msg("Cache store unavailable, continuing without cache")
}
