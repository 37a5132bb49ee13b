// ABOUTME: Postgres connection pool setup using pgxpool
// ABOUTME: Connects, verifies with a ping and creates the schema on startup

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"chapterone-api/pkg/config"
)

const schema = `
	CREATE TABLE IF NOT EXISTS books (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		isbn TEXT NOT NULL DEFAULT '',
		external_id TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		pace TEXT NOT NULL DEFAULT '',
		tone TEXT[] NOT NULL DEFAULT '{}',
		themes TEXT[] NOT NULL DEFAULT '{}',
		best_for TEXT[] NOT NULL DEFAULT '{}',
		categories TEXT[] NOT NULL DEFAULT '{}',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		cover_url TEXT NOT NULL DEFAULT '',
		page_count INTEGER NOT NULL DEFAULT 0,
		published_year INTEGER NOT NULL DEFAULT 0,
		added_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_books_rating ON books(rating DESC);
	CREATE INDEX IF NOT EXISTS idx_books_categories ON books USING GIN(categories);

	CREATE TABLE IF NOT EXISTS library_entries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		book_id TEXT NOT NULL,
		shelf TEXT NOT NULL DEFAULT '',
		saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, book_id)
	);
	CREATE INDEX IF NOT EXISTS idx_library_user ON library_entries(user_id, saved_at DESC);

	CREATE TABLE IF NOT EXISTS threads (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		book_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_threads_book ON threads(book_id, created_at DESC);

	CREATE TABLE IF NOT EXISTS thread_replies (
		id TEXT PRIMARY KEY,
		thread_id TEXT NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_replies_thread ON thread_replies(thread_id, created_at);
`

// Connect creates a pgx connection pool, verifies connectivity and ensures
// the schema exists.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres DSN cannot be empty")
	}

	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres DSN: %w", err)
	}

	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return pool, nil
}
