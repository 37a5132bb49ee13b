// ABOUTME: In-memory catalog store for development and tests
// ABOUTME: Implements BookStorage with mutex-guarded maps and substring matching

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"chapterone-api/core/domain"
	coreerrors "chapterone-api/core/errors"
)

// BookStore implements BookStorage in memory
type BookStore struct {
	mu    sync.RWMutex
	books map[string]domain.Book
}

// NewBookStore creates an empty in-memory book store
func NewBookStore() *BookStore {
	return &BookStore{
		books: make(map[string]domain.Book),
	}
}

// GetByID retrieves a book by its catalog id
func (s *BookStore) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "book", ID: id}
	}

	copied := book
	return &copied, nil
}

// Search finds books matching the query for the given search type
func (s *BookStore) Search(ctx context.Context, query string, searchType domain.SearchType, limit int) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)

	var matches []domain.Book
	for _, book := range s.books {
		if matchesQuery(book, needle, searchType) {
			matches = append(matches, book)
		}
	}

	sortByRating(matches)

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// SearchByCategories finds books tagged with any of the given categories
func (s *BookStore) SearchByCategories(ctx context.Context, categories []string, limit int) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Book
	for _, book := range s.books {
		for _, category := range categories {
			if book.HasCategory(category) {
				matches = append(matches, book)
				break
			}
		}
	}

	sortByRating(matches)

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// Upsert inserts or updates a book keyed by its id
func (s *BookStore) Upsert(ctx context.Context, book *domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[book.ID] = *book
	return nil
}

func matchesQuery(book domain.Book, needle string, searchType domain.SearchType) bool {
	titleMatch := strings.Contains(strings.ToLower(book.Title), needle)
	authorMatch := strings.Contains(strings.ToLower(book.Author), needle)
	categoryMatch := false
	for _, c := range book.Categories {
		if strings.Contains(strings.ToLower(c), needle) {
			categoryMatch = true
			break
		}
	}

	switch searchType {
	case domain.SearchTypeTitle:
		return titleMatch
	case domain.SearchTypeAuthor:
		return authorMatch
	case domain.SearchTypeCategory:
		return categoryMatch
	default:
		return titleMatch || authorMatch || categoryMatch
	}
}

func sortByRating(books []domain.Book) {
	sort.Slice(books, func(i, j int) bool {
		if books[i].Rating != books[j].Rating {
			return books[i].Rating > books[j].Rating
		}
		return books[i].Title < books[j].Title
	})
}
