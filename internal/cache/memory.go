package cache

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/lithium/internal/model"
)

// MemoryCache implements in-memory, process-lifetime caching
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a cached result. Callers must treat the returned result
// as read-only: it may be shared across concurrent callers.
func (c *MemoryCache) Get(key string) (*model.ValidationResult, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.ValidationResult), true
	}
	return nil, false
}

// Set stores a result in the cache
func (c *MemoryCache) Set(key string, result *model.ValidationResult) {
	c.cache.Set(key, result, gocache.NoExpiration)
}

// Clear removes all cached results
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
