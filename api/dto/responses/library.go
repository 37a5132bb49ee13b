// ABOUTME: Response DTOs for library endpoints
// ABOUTME: Wire representations of saved library entries

package responses

import "time"

// LibraryEntryResponse is the wire representation of a saved book
type LibraryEntryResponse struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	BookID  string    `json:"book_id"`
	Shelf   string    `json:"shelf,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// LibraryListResponse is the wire representation of a user's library
type LibraryListResponse struct {
	Entries []LibraryEntryResponse `json:"entries"`
	Count   int                    `json:"count"`
}
