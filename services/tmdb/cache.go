package tmdb

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// memoryCache is a mutex-guarded key-value cache with a fixed TTL applied to
// every entry. It is shared across in-flight requests; concurrent misses for
// the same key may both run their producer, and the last write wins.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newMemoryCache(ttl time.Duration) *memoryCache {
	return &memoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *memoryCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *memoryCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// getOrPopulate returns the live entry for key, or runs producer and stores
// its result with expiry = now + TTL. A producer error is returned as-is and
// nothing is cached.
func (c *memoryCache) getOrPopulate(key string, producer func() (any, error)) (any, error) {
	if value, ok := c.get(key); ok {
		return value, nil
	}
	value, err := producer()
	if err != nil {
		return nil, err
	}
	c.set(key, value)
	return value, nil
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
