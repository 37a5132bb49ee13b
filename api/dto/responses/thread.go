// ABOUTME: Response DTOs for discussion thread endpoints
// ABOUTME: Wire representations of threads and replies

package responses

import "time"

// ThreadResponse is the wire representation of a discussion thread
type ThreadResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	BookID    string          `json:"book_id,omitempty"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Replies   []ReplyResponse `json:"replies"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReplyResponse is the wire representation of a thread reply
type ReplyResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadListResponse is the wire representation of a thread listing
type ThreadListResponse struct {
	Threads []ThreadResponse `json:"threads"`
	Count   int              `json:"count"`
}
