// ABOUTME: Request DTOs for library operations
// ABOUTME: Defines save payloads with validation and defaults

package requests

import "errors"

// SaveBookRequest is the payload for saving a book to a library
type SaveBookRequest struct {
	// UserID identifies the library owner
	UserID string `json:"user_id" required:"true" doc:"User whose library receives the book"`

	// BookID identifies the book to save
	BookID string `json:"book_id" required:"true" doc:"Book to save"`

	// Shelf is an optional shelf name
	Shelf string `json:"shelf,omitempty" doc:"Optional shelf (want to read, reading, finished)"`
}

// ApplyDefaults fills in default values
func (r *SaveBookRequest) ApplyDefaults() {
	if r.Shelf == "" {
		r.Shelf = "want to read"
	}
}

// Validate rejects values the JSON schema cannot rule out, such as
// fields that are present but empty.
func (r *SaveBookRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id must not be empty")
	}
	if r.BookID == "" {
		return errors.New("book_id must not be empty")
	}
	return nil
}
