// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, search and storage settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Search contains search-cache tuning
	Search SearchConfig

	// Storage contains persistence configuration
	Storage StorageConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/redisjson/sqlite)
	Type string

	// Redis contains Redis-specific configuration, used by the redis and
	// redisjson backends
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// FilePath is the cache database file location
	FilePath string
}

// SearchConfig holds search and search-cache tuning
type SearchConfig struct {
	// CacheTTL is how long cached search results stay fresh
	CacheTTL time.Duration

	// ExternalEnabled toggles external provider lookups globally
	ExternalEnabled bool
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// Postgres contains catalog database configuration; an empty DSN
	// selects the in-memory stores
	Postgres PostgresConfig
}

// PostgresConfig holds Postgres connection configuration
type PostgresConfig struct {
	// DSN is the connection string; empty disables Postgres
	DSN string

	// MaxConns caps the connection pool size, 0 uses the driver default
	MaxConns int32
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				FilePath: getEnvOrDefault("SQLITE_CACHE_PATH", "chapterone_cache.db"),
			},
		},
		Search: SearchConfig{
			CacheTTL:        time.Duration(getEnvAsIntOrDefault("SEARCH_CACHE_TTL", 300)) * time.Second,
			ExternalEnabled: getEnvAsBoolOrDefault("EXTERNAL_SEARCH_ENABLED", true),
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{
				DSN:      getEnvOrDefault("POSTGRES_DSN", ""),
				MaxConns: int32(getEnvAsIntOrDefault("POSTGRES_MAX_CONNS", 0)),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "sqlite":
	case "redis", "redisjson":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using a redis cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis', 'redisjson' or 'sqlite'")
	}

	if c.Search.CacheTTL <= 0 {
		return errors.New("search cache TTL must be positive")
	}

	return nil
}
