// ABOUTME: LibraryEntry domain model represents a book saved to a user's library
// ABOUTME: Provides validation for save operations

package domain

import (
	"errors"
	"time"
)

// LibraryEntry represents a single saved book in a user's library
type LibraryEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// UserID is the owner of the entry
	UserID string

	// BookID references the saved book
	BookID string

	// Shelf is an optional user-assigned shelf name ("want to read",
	// "reading", "finished")
	Shelf string

	// SavedAt is when the book was saved
	SavedAt time.Time
}

// Validate checks if the entry has valid required fields
func (e *LibraryEntry) Validate() error {
	if e.UserID == "" {
		return errors.New("library entry user ID cannot be empty")
	}

	if e.BookID == "" {
		return errors.New("library entry book ID cannot be empty")
	}

	return nil
}
