// ABOUTME: In-flight request deduplication for concurrent identical searches
// ABOUTME: Wraps singleflight with key tracking so pending calls can be cleared

package searchcache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"chapterone-api/core/domain"
)

// Flight collapses concurrent identical fetches into one shared call.
// It is a short-lived in-flight guard, not a cache: a registration lives
// only until its call settles, so later callers re-trigger the fetch.
type Flight struct {
	group   singleflight.Group
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewFlight creates an empty in-flight guard.
func NewFlight() *Flight {
	return &Flight{pending: make(map[string]struct{})}
}

// Do invokes fn exactly once per key among concurrent callers. Callers
// arriving while a call for key is pending share its result, value or
// error alike. The shared return reports whether this caller piggybacked
// on another caller's fetch.
func (f *Flight) Do(key string, fn func() ([]domain.Book, error)) ([]domain.Book, bool, error) {
	f.mu.Lock()
	f.pending[key] = struct{}{}
	f.mu.Unlock()

	value, err, shared := f.group.Do(key, func() (interface{}, error) {
		return fn()
	})

	f.mu.Lock()
	delete(f.pending, key)
	f.mu.Unlock()

	if err != nil {
		return nil, shared, err
	}

	books, _ := value.([]domain.Book)
	return books, shared, nil
}

// Clear forgets all pending registrations. Calls already in progress still
// complete for their current waiters, but new callers start fresh fetches.
// Used defensively after mutating operations like save/unsave so a read
// computed before the mutation is not handed to later callers.
func (f *Flight) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key := range f.pending {
		f.group.Forget(key)
		delete(f.pending, key)
	}
}
