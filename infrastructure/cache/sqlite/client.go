// ABOUTME: SQLite-backed cache implementation for persistent caching
// ABOUTME: Keeps cached search results and book metadata across restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cleanupInterval = 5 * time.Minute

// Client implements the Cache interface using a local SQLite file
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "chapterone_cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupLoop()

	return client, nil
}

func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cache_expires_at ON cache_entries(expires_at);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache. Entries with expires_at = 0 never expire.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte

	query := "SELECT value FROM cache_entries WHERE key = ? AND (expires_at = 0 OR expires_at > ?)"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, errors.New("key not found")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value with a TTL. A zero TTL stores the entry without expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}

	query := "INSERT OR REPLACE INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)"

	if _, err := c.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache
func (c *Client) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// cleanupLoop periodically removes expired entries so the file does not grow unbounded
func (c *Client) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		_, _ = c.db.Exec("DELETE FROM cache_entries WHERE expires_at > 0 AND expires_at <= ?", time.Now().Unix())
	}
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
