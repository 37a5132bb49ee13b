// ABOUTME: Search domain models for book discovery queries
// ABOUTME: Defines search types and the parameter tuple that identifies a search

package domain

// SearchType identifies which fields a search query matches against
type SearchType string

const (
	// SearchTypeTitle matches against book titles
	SearchTypeTitle SearchType = "title"

	// SearchTypeAuthor matches against author names
	SearchTypeAuthor SearchType = "author"

	// SearchTypeCategory matches against genre categories
	SearchTypeCategory SearchType = "category"

	// SearchTypeAll matches against all searchable fields
	SearchTypeAll SearchType = "all"
)

// IsValid reports whether the search type is one of the supported values
func (t SearchType) IsValid() bool {
	switch t {
	case SearchTypeTitle, SearchTypeAuthor, SearchTypeCategory, SearchTypeAll:
		return true
	}
	return false
}

// SearchParams is the tuple that identifies a logical search. Two requests
// with field-wise equal params are the same search and share a cache slot.
type SearchParams struct {
	// Query is the free-text search query
	Query string

	// SearchType selects which fields to match
	SearchType SearchType

	// IncludeExternal enables searching external book providers in
	// addition to the local catalog
	IncludeExternal bool

	// UserID partitions results per user; empty means anonymous
	UserID string
}
