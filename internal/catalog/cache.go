package catalog

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the catalog cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache sizing used when none is configured
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedEntry wraps a backend body with version metadata for cache invalidation
type cachedEntry struct {
	Version  string
	Body     []byte
	CachedAt time.Time
}

// bodyCache is an in-memory LRU of raw catalog responses
// with time-based expiration and version-based invalidation.
type bodyCache struct {
	lru    *expirable.LRU[string, *cachedEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newBodyCache(cfg CacheConfig) *bodyCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &bodyCache{
		lru: expirable.NewLRU[string, *cachedEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a cached body when present and stamped with the current version.
// Entries with a mismatched version are dropped.
func (c *bodyCache) Get(key string) ([]byte, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.Body, true
}

// Set stores a body with the current schema version
func (c *bodyCache) Set(key string, body []byte) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Body:     body,
		CachedAt: time.Now(),
	})
}

// Invalidate removes every key for which match returns true
func (c *bodyCache) Invalidate(match func(key string) bool) int {
	removed := 0
	for _, key := range c.lru.Keys() {
		if match(key) {
			c.lru.Remove(key)
			removed++
		}
	}
	return removed
}

// Clear removes all entries from the cache.
func (c *bodyCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current size
func (c *bodyCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
