// ABOUTME: Postgres-backed repository for discussion threads and replies
// ABOUTME: Implements ThreadStorage with replies loaded alongside threads

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chapterone-api/core/domain"
	coreerrors "chapterone-api/core/errors"
)

// ThreadRepository implements ThreadStorage backed by Postgres
type ThreadRepository struct {
	pool *pgxpool.Pool
}

// NewThreadRepository creates a new thread repository
func NewThreadRepository(pool *pgxpool.Pool) *ThreadRepository {
	return &ThreadRepository{pool: pool}
}

// Save persists a thread
func (r *ThreadRepository) Save(ctx context.Context, thread *domain.Thread) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO threads (id, user_id, book_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		thread.ID, thread.UserID, thread.BookID, thread.Title, thread.Body,
		thread.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save thread: %w", err)
	}

	return nil
}

// Get retrieves a thread by ID, including replies
func (r *ThreadRepository) Get(ctx context.Context, id string) (*domain.Thread, error) {
	var thread domain.Thread
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, book_id, title, body, created_at
		FROM threads WHERE id = $1`, id).Scan(
		&thread.ID, &thread.UserID, &thread.BookID, &thread.Title,
		&thread.Body, &thread.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "thread", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	replies, err := r.loadReplies(ctx, id)
	if err != nil {
		return nil, err
	}
	thread.Replies = replies

	return &thread, nil
}

// List returns recent threads, newest first, optionally filtered by book
func (r *ThreadRepository) List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
	var rows pgx.Rows
	var err error

	if bookID != "" {
		rows, err = r.pool.Query(ctx, `
			SELECT id, user_id, book_id, title, body, created_at
			FROM threads WHERE book_id = $1
			ORDER BY created_at DESC LIMIT $2`, bookID, limit)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT id, user_id, book_id, title, body, created_at
			FROM threads ORDER BY created_at DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.ID, &thread.UserID, &thread.BookID,
			&thread.Title, &thread.Body, &thread.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range threads {
		replies, err := r.loadReplies(ctx, threads[i].ID)
		if err != nil {
			return nil, err
		}
		threads[i].Replies = replies
	}

	return threads, nil
}

// AddReply appends a reply to an existing thread
func (r *ThreadRepository) AddReply(ctx context.Context, threadID string, reply *domain.ThreadReply) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", threadID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return &coreerrors.NotFoundError{Resource: "thread", ID: threadID}
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO thread_replies (id, thread_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		reply.ID, threadID, reply.UserID, reply.Body, reply.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add reply: %w", err)
	}

	return nil
}

// Delete removes a thread; replies cascade
func (r *ThreadRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &coreerrors.NotFoundError{Resource: "thread", ID: id}
	}

	return nil
}

func (r *ThreadRepository) loadReplies(ctx context.Context, threadID string) ([]domain.ThreadReply, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, body, created_at
		FROM thread_replies WHERE thread_id = $1 ORDER BY created_at`,
		threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ThreadReply
	for rows.Next() {
		var reply domain.ThreadReply
		if err := rows.Scan(&reply.ID, &reply.UserID, &reply.Body,
			&reply.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, reply)
	}

	return replies, rows.Err()
}
