// ABOUTME: Cache interface for byte-payload caching with TTL support
// ABOUTME: Implemented by memory, redis, redis-JSON and sqlite backends

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for generic byte-payload cache operations.
// This is the cache used for cache-aside of external API responses and
// extracted metadata; the search-result cache has its own typed store.
//
// Example usage:
//
//	err := cache.Set(ctx, "books:external:dune", data, 1*time.Hour)
//
//	data, err := cache.Get(ctx, "books:external:dune")
//	if err != nil {
//		// handle error or cache miss
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
