package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 10 * time.Minute

type entry[T any] struct {
	data     T
	storedAt time.Time
}

// Cache is a concurrency-safe in-memory TTL cache keyed by normalized strings.
// Keys differing only in case or surrounding whitespace resolve to the same
// entry. Expired entries are evicted lazily on access; there is no background
// sweep.
type Cache[T any] struct {
	mu   sync.Mutex
	data map[string]entry[T]
	ttl  time.Duration

	// now is swapped out in tests for deterministic expiry.
	now func() time.Time
}

// New creates a Cache with the given TTL. A TTL <= 0 falls back to DefaultTTL.
func New[T any](ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{
		data: make(map[string]entry[T]),
		ttl:  ttl,
		now:  time.Now,
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Set stores value under the normalized key, overwriting any existing entry.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[normalizeKey(key)] = entry[T]{data: value, storedAt: c.now()}
}

// Get returns the stored value if the entry is still within its TTL.
// An expired entry is deleted and reported as absent.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := normalizeKey(key)
	e, ok := c.data[k]
	if !ok {
		var zero T
		return zero, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.data, k)
		var zero T
		return zero, false
	}
	return e.data, true
}

// Has reports whether a live entry exists for key, evicting it if expired.
func (c *Cache[T]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes the entry for key and reports whether one was present.
func (c *Cache[T]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := normalizeKey(key)
	if _, ok := c.data[k]; !ok {
		return false
	}
	delete(c.data, k)
	return true
}

// Clear removes all entries unconditionally.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]entry[T])
}

// Size sweeps expired entries and returns the number of live ones.
func (c *Cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.data {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.data, k)
		}
	}
	return len(c.data)
}
