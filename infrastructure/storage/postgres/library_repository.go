// ABOUTME: Postgres-backed repository for user library entries
// ABOUTME: Implements LibraryStorage save, delete, list and existence checks

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"chapterone-api/core/domain"
	coreerrors "chapterone-api/core/errors"
)

// LibraryRepository implements LibraryStorage backed by Postgres
type LibraryRepository struct {
	pool *pgxpool.Pool
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(pool *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{pool: pool}
}

// Save persists a library entry
func (r *LibraryRepository) Save(ctx context.Context, entry *domain.LibraryEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO library_entries (id, user_id, book_id, shelf, saved_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.UserID, entry.BookID, entry.Shelf, entry.SavedAt)
	if err != nil {
		return fmt.Errorf("failed to save library entry: %w", err)
	}

	return nil
}

// Delete removes the entry for (userID, bookID)
func (r *LibraryRepository) Delete(ctx context.Context, userID, bookID string) error {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM library_entries WHERE user_id = $1 AND book_id = $2",
		userID, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete library entry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &coreerrors.NotFoundError{Resource: "library entry", ID: bookID}
	}

	return nil
}

// ListByUser returns all entries for a user, newest first
func (r *LibraryRepository) ListByUser(ctx context.Context, userID string) ([]domain.LibraryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, book_id, shelf, saved_at
		FROM library_entries WHERE user_id = $1 ORDER BY saved_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list library entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LibraryEntry
	for rows.Next() {
		var entry domain.LibraryEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.BookID,
			&entry.Shelf, &entry.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan library entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Exists reports whether the user already saved the book
func (r *LibraryRepository) Exists(ctx context.Context, userID, bookID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM library_entries WHERE user_id = $1 AND book_id = $2
		)`, userID, bookID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check library entry: %w", err)
	}

	return exists, nil
}
