// ABOUTME: In-memory thread store for development and tests
// ABOUTME: Implements ThreadStorage with mutex-guarded maps

package memory

import (
	"context"
	"sort"
	"sync"

	"chapterone-api/core/domain"
	coreerrors "chapterone-api/core/errors"
)

// ThreadStore implements ThreadStorage in memory
type ThreadStore struct {
	mu      sync.RWMutex
	threads map[string]domain.Thread
}

// NewThreadStore creates an empty in-memory thread store
func NewThreadStore() *ThreadStore {
	return &ThreadStore{
		threads: make(map[string]domain.Thread),
	}
}

// Save persists a thread
func (s *ThreadStore) Save(ctx context.Context, thread *domain.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threads[thread.ID] = *thread
	return nil
}

// Get retrieves a thread by ID, including replies
func (s *ThreadStore) Get(ctx context.Context, id string) (*domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, ok := s.threads[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "thread", ID: id}
	}

	copied := thread
	copied.Replies = make([]domain.ThreadReply, len(thread.Replies))
	copy(copied.Replies, thread.Replies)

	return &copied, nil
}

// List returns recent threads, newest first, optionally filtered by book
func (s *ThreadStore) List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var threads []domain.Thread
	for _, thread := range s.threads {
		if bookID != "" && thread.BookID != bookID {
			continue
		}
		threads = append(threads, thread)
	}

	sort.Slice(threads, func(i, j int) bool {
		return threads[i].CreatedAt.After(threads[j].CreatedAt)
	})

	if limit > 0 && len(threads) > limit {
		threads = threads[:limit]
	}

	return threads, nil
}

// AddReply appends a reply to an existing thread
func (s *ThreadStore) AddReply(ctx context.Context, threadID string, reply *domain.ThreadReply) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, ok := s.threads[threadID]
	if !ok {
		return &coreerrors.NotFoundError{Resource: "thread", ID: threadID}
	}

	thread.Replies = append(thread.Replies, *reply)
	s.threads[threadID] = thread

	return nil
}

// Delete removes a thread and its replies
func (s *ThreadStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[id]; !ok {
		return &coreerrors.NotFoundError{Resource: "thread", ID: id}
	}

	delete(s.threads, id)
	return nil
}
