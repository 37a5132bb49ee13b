package library

import (
	"context"
	"testing"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
	"chapterone-api/core/interfaces"
)

// mockLibraryStorage is a mock implementation of the LibraryStorage interface
type mockLibraryStorage struct {
	saveFunc       func(ctx context.Context, entry *domain.LibraryEntry) error
	deleteFunc     func(ctx context.Context, userID, bookID string) error
	listByUserFunc func(ctx context.Context, userID string) ([]domain.LibraryEntry, error)
	existsFunc     func(ctx context.Context, userID, bookID string) (bool, error)
}

func (m *mockLibraryStorage) Save(ctx context.Context, entry *domain.LibraryEntry) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, entry)
	}
	return nil
}

func (m *mockLibraryStorage) Delete(ctx context.Context, userID, bookID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, bookID)
	}
	return nil
}

func (m *mockLibraryStorage) ListByUser(ctx context.Context, userID string) ([]domain.LibraryEntry, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockLibraryStorage) Exists(ctx context.Context, userID, bookID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, userID, bookID)
	}
	return false, nil
}

// mockInvalidator records search-cache invalidations
type mockInvalidator struct {
	invalidated []string
}

func (m *mockInvalidator) InvalidateUser(userID string) {
	m.invalidated = append(m.invalidated, userID)
}

func TestSave_PersistsEntryAndInvalidatesUser(t *testing.T) {
	var saved *domain.LibraryEntry
	storage := &mockLibraryStorage{
		saveFunc: func(ctx context.Context, entry *domain.LibraryEntry) error {
			saved = entry
			return nil
		},
	}
	inv := &mockInvalidator{}

	service := NewLibraryService(interfaces.Dependencies{}, storage, inv)
	entry, err := service.Save(context.Background(), "42", "b1", "want to read")

	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved == nil || saved.UserID != "42" || saved.BookID != "b1" {
		t.Errorf("persisted entry = %+v", saved)
	}
	if entry.ID == "" {
		t.Error("Save should assign an entry id")
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != "42" {
		t.Errorf("invalidations = %v, want exactly user 42", inv.invalidated)
	}
}

func TestSave_DuplicateIsConflict(t *testing.T) {
	storage := &mockLibraryStorage{
		existsFunc: func(ctx context.Context, userID, bookID string) (bool, error) {
			return true, nil
		},
	}
	inv := &mockInvalidator{}

	service := NewLibraryService(interfaces.Dependencies{}, storage, inv)
	_, err := service.Save(context.Background(), "42", "b1", "")

	if !errors.IsConflict(err) {
		t.Errorf("Save error = %v, want ConflictError", err)
	}
	if len(inv.invalidated) != 0 {
		t.Error("a rejected save must not invalidate the cache")
	}
}

func TestSave_MissingUserID(t *testing.T) {
	service := NewLibraryService(interfaces.Dependencies{}, &mockLibraryStorage{}, nil)

	if _, err := service.Save(context.Background(), "", "b1", ""); !errors.IsValidation(err) {
		t.Error("Save should reject an empty user id")
	}
}

func TestUnsave_DeletesAndInvalidates(t *testing.T) {
	deleted := false
	storage := &mockLibraryStorage{
		deleteFunc: func(ctx context.Context, userID, bookID string) error {
			deleted = true
			return nil
		},
	}
	inv := &mockInvalidator{}

	service := NewLibraryService(interfaces.Dependencies{}, storage, inv)
	if err := service.Unsave(context.Background(), "42", "b1"); err != nil {
		t.Fatalf("Unsave returned error: %v", err)
	}

	if !deleted {
		t.Error("Unsave should delete the storage entry")
	}
	if len(inv.invalidated) != 1 {
		t.Error("Unsave should invalidate the user's search cache")
	}
}

func TestUnsave_NotFoundPropagates(t *testing.T) {
	storage := &mockLibraryStorage{
		deleteFunc: func(ctx context.Context, userID, bookID string) error {
			return &errors.NotFoundError{Resource: "library entry", ID: bookID}
		},
	}
	inv := &mockInvalidator{}

	service := NewLibraryService(interfaces.Dependencies{}, storage, inv)
	err := service.Unsave(context.Background(), "42", "missing")

	if !errors.IsNotFound(err) {
		t.Errorf("Unsave error = %v, want NotFoundError", err)
	}
	if len(inv.invalidated) != 0 {
		t.Error("a failed unsave must not invalidate the cache")
	}
}

func TestList_RequiresUserID(t *testing.T) {
	service := NewLibraryService(interfaces.Dependencies{}, &mockLibraryStorage{}, nil)

	if _, err := service.List(context.Background(), ""); !errors.IsValidation(err) {
		t.Error("List should reject an empty user id")
	}
}

func TestList_ReturnsEntries(t *testing.T) {
	storage := &mockLibraryStorage{
		listByUserFunc: func(ctx context.Context, userID string) ([]domain.LibraryEntry, error) {
			return []domain.LibraryEntry{{UserID: userID, BookID: "b1"}}, nil
		},
	}

	service := NewLibraryService(interfaces.Dependencies{}, storage, nil)
	entries, err := service.List(context.Background(), "42")

	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].BookID != "b1" {
		t.Errorf("List returned %v", entries)
	}
}
