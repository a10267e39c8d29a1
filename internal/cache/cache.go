// Package cache provides an in-memory cache with TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Entry holds a cached value with expiration.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// Cache provides in-memory caching with TTL. A zero TTL disables it: Set
// stores nothing and Get always misses.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given TTL. Expired entries are swept every
// minute until ctx is done.
func New[V any](ctx context.Context, ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
	if ttl > 0 {
		go c.cleanup(ctx, time.Minute)
	}
	return c
}

// Key returns the cache key of a request body.
func Key(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Get retrieves a value from the cache.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.ExpiresAt) {
		return zero, false
	}
	return entry.Value, true
}

// Set stores a value in the cache.
func (c *Cache[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{
		Value:     value,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
		}
	}
}
