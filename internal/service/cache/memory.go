package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/catering-service/internal/metrics"
)

// cachedTime provides a cached time value updated periodically.
// This reduces the overhead of frequent time.Now() calls.
var (
	cachedTime     atomic.Value
	cachedTimeOnce sync.Once
)

func initCachedTime() {
	cachedTimeOnce.Do(func() {
		cachedTime.Store(time.Now())
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for t := range ticker.C {
				cachedTime.Store(t)
			}
		}()
	})
}

// now returns the cached current time (updated every 100ms).
// Use this for non-critical time checks like cache expiration.
func now() time.Time {
	if t := cachedTime.Load(); t != nil {
		if cachedT, ok := t.(time.Time); ok {
			return cachedT
		}
	}
	return time.Now()
}

// Memory is a sharded in-process cache. Keys are spread across shards by FNV hash
// to reduce lock contention.
type Memory struct {
	shards    []*ttlCache
	shardMask uint32
}

// NewMemory creates a sharded cache with the given total capacity, TTL and shard count.
// numShards is rounded up to a power of two.
func NewMemory(capacity int, ttl time.Duration, numShards int) *Memory {
	initCachedTime()

	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &Memory{
		shards:    shards,
		shardMask: uint32(n - 1),
	}
}

func (m *Memory) shard(key string) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return m.shards[h.Sum32()&m.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	return m.shard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.shard(key).Set(key, value)
}

// Invalidate removes a key from the appropriate shard.
func (m *Memory) Invalidate(_ context.Context, key string) {
	m.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (m *Memory) Clear(_ context.Context) {
	for _, s := range m.shards {
		s.Clear()
	}
}

// Stop shuts down the cleanup goroutines of all shards.
func (m *Memory) Stop() {
	for _, s := range m.shards {
		s.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (m *Memory) Metrics() Metrics {
	var total Metrics
	for _, s := range m.shards {
		sm := s.Metrics()
		total.Hits += sm.Hits
		total.Misses += sm.Misses
		total.Evictions += sm.Evictions
		total.Size += sm.Size
		total.Capacity += sm.Capacity
	}
	metrics.UpdateCacheMetrics(total.Size, total.Capacity)
	return total
}

// ttlCache provides thread-safe LRU caching with TTL expiration.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a TTL-based LRU cache. A background goroutine periodically
// removes expired entries.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get retrieves a value if it exists and hasn't expired.
func (c *ttlCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	// time.Now here: the cached clock can be up to 100ms stale
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if current, stillExists := c.items[key]; stillExists && current == entry {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	c.mu.Lock()
	if current, stillExists := c.items[key]; stillExists && current == entry {
		c.moveToFront(entry)
	}
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or updates a value with the configured TTL, evicting the least
// recently used entry when over capacity.
func (c *ttlCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *ttlCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentTime := time.Now()
	for _, entry := range c.items {
		if currentTime.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *ttlCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// remove unlinks an entry from the list without touching the map.
func (c *ttlCache) remove(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

func (c *ttlCache) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.remove(c.tail)
}

// Invalidate removes a specific key.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}
