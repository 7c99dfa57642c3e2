package middleware

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const replayKeyPrefix = "idempotency:"

// Replay is a stored response for a caterer or buyer write that may be retried.
type Replay struct {
	StatusCode int               `json:"status"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
	StoredAt   time.Time         `json:"stored_at"`
}

func (r *Replay) expired(ttl time.Duration) bool {
	return time.Since(r.StoredAt) > ttl
}

// ReplayStore keeps replays by scoped idempotency key.
type ReplayStore interface {
	Get(ctx context.Context, key string) (*Replay, bool)
	Set(ctx context.Context, key string, replay *Replay)
}

// memoryReplayStore is the single-instance store. Expired entries are swept on write.
type memoryReplayStore struct {
	mu        sync.RWMutex
	items     map[string]*Replay
	ttl       time.Duration
	lastSweep time.Time
}

// NewMemoryReplayStore creates an in-process ReplayStore.
func NewMemoryReplayStore(ttl time.Duration) ReplayStore {
	return newMemoryReplayStore(ttl)
}

func newMemoryReplayStore(ttl time.Duration) *memoryReplayStore {
	return &memoryReplayStore{
		items:     make(map[string]*Replay),
		ttl:       ttl,
		lastSweep: time.Now(),
	}
}

func (s *memoryReplayStore) Get(_ context.Context, key string) (*Replay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replay, ok := s.items[key]
	if !ok || replay.expired(s.ttl) {
		return nil, false
	}
	return replay, true
}

func (s *memoryReplayStore) Set(_ context.Context, key string, replay *Replay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replay.StoredAt = time.Now()
	s.items[key] = replay
	if time.Since(s.lastSweep) > s.ttl {
		s.sweep()
	}
}

// sweep must be called with mu held.
func (s *memoryReplayStore) sweep() {
	s.lastSweep = time.Now()
	for key, replay := range s.items {
		if replay.expired(s.ttl) {
			delete(s.items, key)
		}
	}
}

// ByteCache is the subset of the package view cache used to share replays between instances.
type ByteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type cacheReplayStore struct {
	cache ByteCache
	ttl   time.Duration
}

// NewCacheReplayStore stores replays as JSON in cache. Cache failures degrade to misses.
func NewCacheReplayStore(cache ByteCache, ttl time.Duration) ReplayStore {
	return &cacheReplayStore{cache: cache, ttl: ttl}
}

func (s *cacheReplayStore) Get(ctx context.Context, key string) (*Replay, bool) {
	raw, ok := s.cache.Get(ctx, replayKeyPrefix+key)
	if !ok {
		return nil, false
	}
	var replay Replay
	if err := json.Unmarshal(raw, &replay); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable idempotency replay")
		return nil, false
	}
	if replay.expired(s.ttl) {
		return nil, false
	}
	return &replay, true
}

func (s *cacheReplayStore) Set(ctx context.Context, key string, replay *Replay) {
	replay.StoredAt = time.Now()
	raw, err := json.Marshal(replay)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to encode idempotency replay")
		return
	}
	s.cache.Set(ctx, replayKeyPrefix+key, raw)
}
