// ABOUTME: Book search service handles catalog and external provider searches
// ABOUTME: Provides business logic for book discovery independent of the HTTP layer

package books

import (
	"context"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
	"chapterone-api/core/interfaces"
)

const (
	// defaultSearchLimit caps how many catalog rows one search returns
	defaultSearchLimit = 40

	minQueryLength = 2
	maxQueryLength = 100
)

// BookService handles book discovery operations
type BookService struct {
	deps    interfaces.Dependencies
	storage interfaces.BookStorage
}

// NewBookService creates a new book service instance
func NewBookService(deps interfaces.Dependencies, storage interfaces.BookStorage) *BookService {
	return &BookService{
		deps:    deps,
		storage: storage,
	}
}

// validateQuery validates search query parameters
func (s *BookService) validateQuery(query string) error {
	if query == "" {
		return &errors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}

	if len(query) < minQueryLength {
		return &errors.ValidationError{Field: "query", Message: "search query must be at least 2 characters"}
	}

	if len(query) > maxQueryLength {
		return &errors.ValidationError{Field: "query", Message: "search query cannot exceed 100 characters"}
	}

	return nil
}

// SearchBooks searches the local catalog and, when includeExternal is set,
// merges results from the external provider. Catalog results come first;
// external duplicates of catalog books are dropped by identifier.
func (s *BookService) SearchBooks(ctx context.Context, query string, searchType domain.SearchType, includeExternal bool) ([]domain.Book, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	if !searchType.IsValid() {
		return nil, &errors.ValidationError{Field: "searchType", Message: "unsupported search type"}
	}

	books, err := s.storage.Search(ctx, query, searchType, defaultSearchLimit)
	if err != nil {
		return nil, errors.WrapError(err, "catalog search failed")
	}

	if !includeExternal {
		return books, nil
	}

	external, err := s.searchExternal(ctx, query, searchType)
	if err != nil {
		return nil, err
	}

	return mergeResults(books, external), nil
}

// GetByID retrieves a single catalog book
func (s *BookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if id == "" {
		return nil, &errors.ValidationError{Field: "id", Message: "book id cannot be empty"}
	}
	return s.storage.GetByID(ctx, id)
}

// mergeResults appends external books that are not already present in the
// catalog results, de-duplicated by book identifier.
func mergeResults(catalog, external []domain.Book) []domain.Book {
	seen := make(map[string]struct{}, len(catalog))
	for _, b := range catalog {
		seen[b.Identifier()] = struct{}{}
	}

	merged := catalog
	for _, b := range external {
		if _, dup := seen[b.Identifier()]; dup {
			continue
		}
		seen[b.Identifier()] = struct{}{}
		merged = append(merged, b)
	}
	return merged
}
