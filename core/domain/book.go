// ABOUTME: Book domain model represents a discoverable book with descriptive metadata
// ABOUTME: Provides validation logic to ensure book data integrity

package domain

import (
	"errors"
	"net/url"
	"time"
)

// Book represents a book in the ChapterOne catalog or fetched from an
// external provider. The search cache treats this as an opaque payload.
type Book struct {
	// ID is the unique identifier for the book
	ID string

	// Title is the book's title
	Title string

	// Author is the book's primary author
	Author string

	// ISBN is the ISBN-13 identifier where known
	ISBN string

	// ExternalID is the identifier assigned by an external provider
	// (Google Books volume id), empty for catalog-only books
	ExternalID string

	// Description provides a summary of the book's content
	Description string

	// Descriptive metadata used by mood search and recommendations
	Pace       string   // "slow", "medium", "fast"
	Tone       []string // e.g. "dark", "hopeful", "whimsical"
	Themes     []string // e.g. "found family", "revenge"
	BestFor    []string // reader situations, e.g. "rainy afternoons"
	Categories []string // genre categories

	// Rating is the average reader rating (0-5)
	Rating float64

	// CoverURL is the cover image URL
	CoverURL string

	// PageCount is the number of pages, 0 when unknown
	PageCount int

	// PublishedYear is the year of first publication, 0 when unknown
	PublishedYear int

	// AddedAt is when the book entered the catalog
	AddedAt time.Time
}

// NewBook creates a new Book instance with validation
func NewBook(id, title, author string) (*Book, error) {
	book := &Book{
		ID:      id,
		Title:   title,
		Author:  author,
		AddedAt: time.Now(),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the book has valid required fields
func (b *Book) Validate() error {
	if b.Title == "" {
		return errors.New("book title cannot be empty")
	}

	if b.Author == "" {
		return errors.New("book author cannot be empty")
	}

	if b.Rating < 0 || b.Rating > 5 {
		return errors.New("book rating must be between 0 and 5")
	}

	if b.CoverURL != "" {
		parsed, err := url.Parse(b.CoverURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("book cover URL must be a valid absolute URL")
		}
	}

	return nil
}

// Identifier returns the best identity for de-duplicating merged search
// results: ISBN when present, then external id, then catalog id.
func (b *Book) Identifier() string {
	if b.ISBN != "" {
		return "isbn:" + b.ISBN
	}
	if b.ExternalID != "" {
		return "ext:" + b.ExternalID
	}
	return "id:" + b.ID
}

// HasCategory reports whether the book is tagged with the given category,
// compared case-sensitively (categories are normalized at ingest).
func (b *Book) HasCategory(category string) bool {
	for _, c := range b.Categories {
		if c == category {
			return true
		}
	}
	return false
}
