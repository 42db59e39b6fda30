package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ThreadCache is a small TTL layer over an LRU, used for anonymous thread
// responses. Mutations in a context delete its keys.
type ThreadCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var cacheInstance *ThreadCache

// GetCache returns the process-wide cache instance.
func GetCache() *ThreadCache {
	if cacheInstance == nil {
		l, err := lru.New[string, CacheItem](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &ThreadCache{lruCache: l}
	}
	return cacheInstance
}

// Set stores data under key for ttl.
func (c *ThreadCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached data, or nil when absent or expired.
func (c *ThreadCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.Data
}

// Delete drops a key.
func (c *ThreadCache) Delete(key string) {
	c.lruCache.Remove(key)
}
