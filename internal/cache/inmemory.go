package cache

import (
	"context"
	"strings"
	"time"

	goCache "github.com/patrickmn/go-cache"
	"github.com/smsdesk/smsdesk/internal/config"
)

// DefaultExpiration is the default expiration time for cache entries
const DefaultExpiration = time.Minute

// DefaultCleanupInterval is how often expired items are removed from the cache
const DefaultCleanupInterval = 10 * time.Minute

// InMemoryCache is a process local TTL cache backed by github.com/patrickmn/go-cache
type InMemoryCache struct {
	cache      *goCache.Cache
	enabled    bool
	expiration time.Duration
}

// NewInMemoryCache creates a new InMemoryCache instance
func NewInMemoryCache(cfg *config.Configuration) *InMemoryCache {
	expiration := cfg.Cache.TTL
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &InMemoryCache{
		cache:      goCache.New(expiration, DefaultCleanupInterval),
		enabled:    cfg.Cache.Enabled,
		expiration: expiration,
	}
}

// Get retrieves a value from the cache
func (c *InMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}
	return c.cache.Get(key)
}

// Set adds a value to the cache with the default expiration
func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}) {
	if !c.enabled {
		return
	}
	c.cache.Set(key, value, c.expiration)
}

// Delete removes a key from the cache
func (c *InMemoryCache) Delete(_ context.Context, key string) {
	if !c.enabled {
		return
	}
	c.cache.Delete(key)
}

// DeleteByPrefix removes all keys with the given prefix
func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	if !c.enabled {
		return
	}
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

// Flush removes all items from the cache
func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}
