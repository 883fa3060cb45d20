package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLCache is a small in-memory cache with per-entry expiry. It exists so
// that cached state is an explicit dependency rather than a package-level
// variable.
type TTLCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	clock   func() time.Time
}

// NewTTLCache creates a cache whose entries expire after ttl.
func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		clock:   time.Now,
	}
}

// NewTTLCacheWithClock is used by tests to control expiry.
func NewTTLCacheWithClock(ttl time.Duration, clock func() time.Time) *TTLCache {
	c := NewTTLCache(ttl)
	c.clock = clock
	return c
}

// Get returns the cached value for key, if present and not expired.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.clock().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the cache's TTL.
func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.clock().Add(c.ttl)}

	// Opportunistic sweep to keep the map from growing unbounded.
	if len(c.entries) > 256 {
		now := c.clock()
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
}

// Delete removes a key.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
