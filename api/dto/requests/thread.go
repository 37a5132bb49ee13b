// ABOUTME: Request DTOs for discussion thread operations
// ABOUTME: Defines thread creation and reply payloads with validation

package requests

import "errors"

// CreateThreadRequest is the payload for starting a discussion thread
type CreateThreadRequest struct {
	// UserID identifies the thread author
	UserID string `json:"user_id" required:"true" doc:"Thread author"`

	// BookID optionally anchors the thread to a book
	BookID string `json:"book_id,omitempty" doc:"Optional book the thread discusses"`

	// Title is the thread headline
	Title string `json:"title" required:"true" doc:"Thread headline, at most 200 characters"`

	// Body is the opening post
	Body string `json:"body" required:"true" doc:"Opening post content"`
}

// maxTitleLength caps thread headlines so list views stay readable.
const maxTitleLength = 200

// Validate rejects values the JSON schema cannot rule out, such as
// fields that are present but empty.
func (r *CreateThreadRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id must not be empty")
	}
	if r.Title == "" {
		return errors.New("title must not be empty")
	}
	if len(r.Title) > maxTitleLength {
		return errors.New("title must be at most 200 characters")
	}
	if r.Body == "" {
		return errors.New("body must not be empty")
	}
	return nil
}

// AddReplyRequest is the payload for replying to a thread
type AddReplyRequest struct {
	// UserID identifies the reply author
	UserID string `json:"user_id" required:"true" doc:"Reply author"`

	// Body is the reply content
	Body string `json:"body" required:"true" doc:"Reply content"`
}

// Validate rejects values the JSON schema cannot rule out, such as
// fields that are present but empty.
func (r *AddReplyRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id must not be empty")
	}
	if r.Body == "" {
		return errors.New("body must not be empty")
	}
	return nil
}
