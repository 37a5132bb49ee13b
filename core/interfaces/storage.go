// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for catalog, library and thread persistence

package interfaces

import (
	"context"

	"chapterone-api/core/domain"
)

// BookStorage defines the interface for catalog persistence
type BookStorage interface {
	// GetByID retrieves a book by its catalog id
	GetByID(ctx context.Context, id string) (*domain.Book, error)

	// Search finds catalog books matching the query for the given search
	// type, ordered by rating descending
	Search(ctx context.Context, query string, searchType domain.SearchType, limit int) ([]domain.Book, error)

	// SearchByCategories finds catalog books tagged with any of the given
	// categories, ordered by rating descending
	SearchByCategories(ctx context.Context, categories []string, limit int) ([]domain.Book, error)

	// Upsert inserts or updates a book keyed by its identifier
	Upsert(ctx context.Context, book *domain.Book) error
}

// LibraryStorage defines the interface for saved-library persistence
type LibraryStorage interface {
	// Save persists a library entry
	Save(ctx context.Context, entry *domain.LibraryEntry) error

	// Delete removes the entry for (userID, bookID); returns
	// errors.NotFoundError when no such entry exists
	Delete(ctx context.Context, userID, bookID string) error

	// ListByUser returns all entries for a user, newest first
	ListByUser(ctx context.Context, userID string) ([]domain.LibraryEntry, error)

	// Exists reports whether the user already saved the book
	Exists(ctx context.Context, userID, bookID string) (bool, error)
}

// ThreadStorage defines the interface for discussion thread persistence
type ThreadStorage interface {
	// Save persists a thread
	Save(ctx context.Context, thread *domain.Thread) error

	// Get retrieves a thread by ID, including replies
	Get(ctx context.Context, id string) (*domain.Thread, error)

	// List returns recent threads, newest first, optionally filtered by book
	List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error)

	// AddReply appends a reply to an existing thread
	AddReply(ctx context.Context, threadID string, reply *domain.ThreadReply) error

	// Delete removes a thread and its replies
	Delete(ctx context.Context, id string) error
}
