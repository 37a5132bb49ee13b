// ABOUTME: Redis cache backend storing values as native JSON documents via RedisJSON
// ABOUTME: Useful when operators want to inspect cached payloads with JSON.GET from redis-cli

package redisjson

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"chapterone-api/pkg/config"
)

// RedisJSONCache implements the Cache interface against a Redis instance with
// the RedisJSON module loaded. Cached values are JSON payloads already, so they
// are stored as documents rather than opaque strings.
type RedisJSONCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisJSONCache creates a cache backed by RedisJSON
func NewRedisJSONCache(cfg config.RedisConfig) (*RedisJSONCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &RedisJSONCache{client: client, handler: handler}, nil
}

// Get retrieves a JSON document and returns its serialized bytes
func (c *RedisJSONCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	raw, ok := val.([]byte)
	if !ok {
		return nil, errors.New("unexpected value type from redis json")
	}

	return raw, nil
}

// Set stores a value as a JSON document with the given TTL. Values that are not
// valid JSON are stored as a JSON string so Get can round-trip them.
func (c *RedisJSONCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var doc json.RawMessage
	if json.Valid(value) {
		doc = json.RawMessage(value)
	} else {
		encoded, err := json.Marshal(string(value))
		if err != nil {
			return err
		}
		doc = json.RawMessage(encoded)
	}

	if _, err := c.handler.JSONSet(key, ".", doc); err != nil {
		return err
	}

	if ttl != 0 {
		if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a key
func (c *RedisJSONCache) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Count returns the number of keys in the current database
func (c *RedisJSONCache) Count(ctx context.Context) (int64, error) {
	return c.client.DBSize(ctx).Result()
}

// Close closes the underlying Redis connection
func (c *RedisJSONCache) Close() error {
	return c.client.Close()
}
