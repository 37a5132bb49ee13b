// ABOUTME: Thread service handles social discussion threads about books
// ABOUTME: Provides CRUD business logic over the thread storage interface

package threads

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
	"chapterone-api/core/interfaces"
)

// defaultListLimit caps how many threads one listing returns
const defaultListLimit = 25

// ThreadService handles discussion thread operations
type ThreadService struct {
	deps    interfaces.Dependencies
	storage interfaces.ThreadStorage
}

// NewThreadService creates a new thread service instance
func NewThreadService(deps interfaces.Dependencies, storage interfaces.ThreadStorage) *ThreadService {
	return &ThreadService{
		deps:    deps,
		storage: storage,
	}
}

// Create starts a new discussion thread
func (s *ThreadService) Create(ctx context.Context, userID, bookID, title, body string) (*domain.Thread, error) {
	thread := &domain.Thread{
		ID:        uuid.New().String(),
		UserID:    userID,
		BookID:    bookID,
		Title:     title,
		Body:      body,
		Replies:   []domain.ThreadReply{},
		CreatedAt: time.Now(),
	}
	if err := thread.Validate(); err != nil {
		return nil, &errors.ValidationError{Field: "thread", Message: err.Error()}
	}

	if err := s.storage.Save(ctx, thread); err != nil {
		return nil, errors.WrapError(err, "failed to save thread")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("thread created", map[string]interface{}{
			"thread_id": thread.ID,
			"book_id":   bookID,
		})
	}
	return thread, nil
}

// Get retrieves a thread with its replies
func (s *ThreadService) Get(ctx context.Context, id string) (*domain.Thread, error) {
	if id == "" {
		return nil, &errors.ValidationError{Field: "id", Message: "thread id cannot be empty"}
	}
	return s.storage.Get(ctx, id)
}

// List returns recent threads, optionally scoped to a book
func (s *ThreadService) List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.storage.List(ctx, bookID, limit)
}

// AddReply appends a reply to an existing thread
func (s *ThreadService) AddReply(ctx context.Context, threadID, userID, body string) (*domain.ThreadReply, error) {
	if threadID == "" {
		return nil, &errors.ValidationError{Field: "threadId", Message: "thread id cannot be empty"}
	}

	reply := &domain.ThreadReply{
		ID:        uuid.New().String(),
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := reply.Validate(); err != nil {
		return nil, &errors.ValidationError{Field: "reply", Message: err.Error()}
	}

	if err := s.storage.AddReply(ctx, threadID, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Delete removes a thread. Only the author may delete their thread.
func (s *ThreadService) Delete(ctx context.Context, id, userID string) error {
	thread, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	if thread.UserID != userID {
		return &errors.ValidationError{Field: "userId", Message: "only the thread author can delete it"}
	}

	return s.storage.Delete(ctx, id)
}
