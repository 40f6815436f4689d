// Package cache provides a small in-memory TTL cache used to avoid
// refetching a URL that already appeared earlier in a crawl batch.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// entry holds a cached value with its creation timestamp.
type entry[V any] struct {
	value     V
	createdAt time.Time
}

// Cache is an in-memory cache with a fixed TTL and a capacity bound.
// It is safe for concurrent use. A zero or negative TTL disables the
// cache entirely: Get always misses and Set is a no-op.
type Cache[V any] struct {
	mu         sync.RWMutex
	store      map[string]entry[V]
	maxEntries int
	ttl        time.Duration
}

// New creates a Cache with the given capacity and TTL. A background
// goroutine periodically evicts expired entries.
func New[V any](maxEntries int, ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		store:      make(map[string]entry[V]),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
	if ttl > 0 {
		go c.cleanupLoop()
	}
	return c
}

// Key builds a cache key from the given parts.
func Key(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte("|"))
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached value if it exists and has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	if c.ttl <= 0 {
		return zero, false
	}

	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()

	if !ok || time.Since(e.createdAt) > c.ttl {
		return zero, false
	}
	return e.value, true
}

// Set stores a value. If the cache is at capacity, a random entry is
// evicted to make room (map iteration is random in Go).
func (c *Cache[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.maxEntries {
		for k := range c.store {
			delete(c.store, k)
			break
		}
	}

	c.store[key] = entry[V]{value: value, createdAt: time.Now()}
}

// Len reports the number of entries currently stored.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *Cache[V]) cleanupLoop() {
	interval := c.ttl
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-c.ttl)
		c.mu.Lock()
		for k, e := range c.store {
			if e.createdAt.Before(cutoff) {
				delete(c.store, k)
			}
		}
		c.mu.Unlock()
	}
}
