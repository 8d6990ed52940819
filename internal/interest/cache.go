package interest

import (
	"slices"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pkordes/trip-planner/internal/metrics"
)

// Cache memoizes extraction results by normalized input text. It lives for
// the process, is safe for concurrent use, and is never authoritative: a
// miss simply re-runs extraction.
type Cache struct {
	c   *gocache.Cache
	max int
}

// NewCache returns a cache whose entries expire after ttl and which holds at
// most maxEntries. maxEntries <= 0 means unbounded.
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	return &Cache{c: gocache.New(ttl, 2*ttl), max: maxEntries}
}

// CacheKey is the lookup key for raw input.
func CacheKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Get returns a copy of the cached tokens for key.
func (c *Cache) Get(key string) ([]string, bool) {
	v, ok := c.c.Get(key)
	metrics.RecordInterestCache(ok, c.c.ItemCount())
	if !ok {
		return nil, false
	}
	return slices.Clone(v.([]string)), true
}

// Set stores a copy of tokens. When the cache is full, expired entries are
// purged first; if it is still full the value is not stored.
//
// The cap is best-effort: the size check and the store are separate
// operations, so concurrent Sets can leave the cache a few entries over
// maxEntries. It never grows past maxEntries plus the number of concurrent
// writers.
func (c *Cache) Set(key string, tokens []string) {
	if c.max > 0 && c.c.ItemCount() >= c.max {
		c.c.DeleteExpired()
		if c.c.ItemCount() >= c.max {
			return
		}
	}
	c.c.SetDefault(key, slices.Clone(tokens))
}

// Len returns the number of entries, including expired ones not yet purged.
func (c *Cache) Len() int {
	return c.c.ItemCount()
}
