// ABOUTME: In-memory library store for development and tests
// ABOUTME: Implements LibraryStorage with mutex-guarded per-user entry lists

package memory

import (
	"context"
	"sort"
	"sync"

	"chapterone-api/core/domain"
	coreerrors "chapterone-api/core/errors"
)

// LibraryStore implements LibraryStorage in memory
type LibraryStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.LibraryEntry // keyed by user ID
}

// NewLibraryStore creates an empty in-memory library store
func NewLibraryStore() *LibraryStore {
	return &LibraryStore{
		entries: make(map[string][]domain.LibraryEntry),
	}
}

// Save persists a library entry
func (s *LibraryStore) Save(ctx context.Context, entry *domain.LibraryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.UserID] = append(s.entries[entry.UserID], *entry)
	return nil
}

// Delete removes the entry for (userID, bookID)
func (s *LibraryStore) Delete(ctx context.Context, userID, bookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[userID]
	for i, entry := range entries {
		if entry.BookID == bookID {
			s.entries[userID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}

	return &coreerrors.NotFoundError{Resource: "library entry", ID: bookID}
}

// ListByUser returns all entries for a user, newest first
func (s *LibraryStore) ListByUser(ctx context.Context, userID string) ([]domain.LibraryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.LibraryEntry, len(s.entries[userID]))
	copy(entries, s.entries[userID])

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt.After(entries[j].SavedAt)
	})

	return entries, nil
}

// Exists reports whether the user already saved the book
func (s *LibraryStore) Exists(ctx context.Context, userID, bookID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries[userID] {
		if entry.BookID == bookID {
			return true, nil
		}
	}

	return false, nil
}
