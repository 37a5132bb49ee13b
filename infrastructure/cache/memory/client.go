// ABOUTME: In-memory cache implementation using sync.Map for thread-safe operations
// ABOUTME: Provides a simple byte cache with TTL support and lazy cleanup

package memory

import (
	"context"
	"errors"
	"sync"
	"time"
)

// entry represents a cached value with expiration
type entry struct {
	value      []byte
	expiration time.Time
	noExpire   bool
}

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	entries sync.Map
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.entries.Load(key)
	if !ok {
		return nil, errors.New("key not found")
	}

	e := value.(*entry)

	if !e.noExpire && time.Now().After(e.expiration) {
		c.entries.Delete(key)
		// Piggyback a sweep of other expired entries on this read
		go c.cleanup()
		return nil, errors.New("key not found")
	}

	// Return a copy so callers can't mutate the cached bytes
	result := make([]byte, len(e.value))
	copy(result, e.value)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	newEntry := &entry{
		value:    valueCopy,
		noExpire: ttl == 0,
	}
	if ttl > 0 {
		newEntry.expiration = time.Now().Add(ttl)
	}

	c.entries.Store(key, newEntry)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.entries.Delete(key)
	return nil
}

// cleanup removes expired entries from the cache
func (c *MemoryCache) cleanup() {
	now := time.Now()
	c.entries.Range(func(key, value interface{}) bool {
		e := value.(*entry)
		if !e.noExpire && now.After(e.expiration) {
			c.entries.Delete(key)
		}
		return true
	})
}
