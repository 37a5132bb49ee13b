// ABOUTME: Thread domain models for social discussion threads about books
// ABOUTME: Provides validation for threads and replies

package domain

import (
	"errors"
	"time"
)

// Thread represents a discussion thread, optionally anchored to a book
type Thread struct {
	// ID is the unique identifier for the thread
	ID string

	// UserID is the thread author
	UserID string

	// BookID optionally links the thread to a book
	BookID string

	// Title is the thread headline
	Title string

	// Body is the opening post content
	Body string

	// Replies contains the thread's replies in creation order
	Replies []ThreadReply

	// CreatedAt is when the thread was created
	CreatedAt time.Time
}

// ThreadReply represents a single reply within a thread
type ThreadReply struct {
	ID        string
	UserID    string
	Body      string
	CreatedAt time.Time
}

const maxThreadTitleLength = 200

// Validate checks if the thread has valid required fields
func (t *Thread) Validate() error {
	if t.UserID == "" {
		return errors.New("thread user ID cannot be empty")
	}

	if t.Title == "" {
		return errors.New("thread title cannot be empty")
	}

	if len(t.Title) > maxThreadTitleLength {
		return errors.New("thread title cannot exceed 200 characters")
	}

	if t.Body == "" {
		return errors.New("thread body cannot be empty")
	}

	return nil
}

// Validate checks if the reply has valid required fields
func (r *ThreadReply) Validate() error {
	if r.UserID == "" {
		return errors.New("reply user ID cannot be empty")
	}

	if r.Body == "" {
		return errors.New("reply body cannot be empty")
	}

	return nil
}
