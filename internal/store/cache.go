// Package store provides the result cache consulted by the API handlers
// before recomputing plan projections.
package store

import "sync"

// Cache is a string key/value cache for serialized calculation results.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// MemoryCache is the default in-process Cache. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get returns the cached value for key.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set stores value under key.
func (c *MemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}
