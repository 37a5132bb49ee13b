// ABOUTME: Library service manages each user's saved books
// ABOUTME: Invalidates the user's search cache after every mutation

package library

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
	"chapterone-api/core/interfaces"
	"chapterone-api/core/searchcache"
)

// SearchInvalidator is the slice of the search cache the library needs:
// saved-state changes what search results show for a user, so mutations
// drop that user's cached searches and any pending deduplicated fetches.
type SearchInvalidator interface {
	InvalidateUser(userID string)
}

// LibraryService handles saved-library operations
type LibraryService struct {
	deps        interfaces.Dependencies
	storage     interfaces.LibraryStorage
	invalidator SearchInvalidator
}

// NewLibraryService creates a new library service instance. The
// invalidator is typically the process-wide searchcache.Service.
func NewLibraryService(deps interfaces.Dependencies, storage interfaces.LibraryStorage, invalidator SearchInvalidator) *LibraryService {
	return &LibraryService{
		deps:        deps,
		storage:     storage,
		invalidator: invalidator,
	}
}

var _ SearchInvalidator = (*searchcache.Service)(nil)

// Save adds a book to the user's library
func (s *LibraryService) Save(ctx context.Context, userID, bookID, shelf string) (*domain.LibraryEntry, error) {
	entry := &domain.LibraryEntry{
		ID:      uuid.New().String(),
		UserID:  userID,
		BookID:  bookID,
		Shelf:   shelf,
		SavedAt: time.Now(),
	}
	if err := entry.Validate(); err != nil {
		return nil, &errors.ValidationError{Field: "entry", Message: err.Error()}
	}

	exists, err := s.storage.Exists(ctx, userID, bookID)
	if err != nil {
		return nil, errors.WrapError(err, "failed to check library")
	}
	if exists {
		return nil, &errors.ConflictError{Resource: "library entry", ID: bookID}
	}

	if err := s.storage.Save(ctx, entry); err != nil {
		return nil, errors.WrapError(err, "failed to save library entry")
	}

	s.invalidate(userID)
	return entry, nil
}

// Unsave removes a book from the user's library
func (s *LibraryService) Unsave(ctx context.Context, userID, bookID string) error {
	if userID == "" || bookID == "" {
		return &errors.ValidationError{Field: "id", Message: "user id and book id are required"}
	}

	if err := s.storage.Delete(ctx, userID, bookID); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

// List returns the user's saved books, newest first
func (s *LibraryService) List(ctx context.Context, userID string) ([]domain.LibraryEntry, error) {
	if userID == "" {
		return nil, &errors.ValidationError{Field: "userId", Message: "user id is required"}
	}
	return s.storage.ListByUser(ctx, userID)
}

func (s *LibraryService) invalidate(userID string) {
	if s.invalidator != nil {
		s.invalidator.InvalidateUser(userID)
	}
	if s.deps.Logger != nil {
		s.deps.Logger.Debug("invalidated search cache after library mutation", map[string]interface{}{
			"user_id": userID,
		})
	}
}
