// ABOUTME: Cache-aware search service combining the store and in-flight guard
// ABOUTME: Implements check cache, dedupe-protected fetch on miss, store result

package searchcache

import (
	"context"
	"time"

	"chapterone-api/core/domain"
	"chapterone-api/core/interfaces"
)

// FetchFunc performs the actual search when the cache cannot serve it.
type FetchFunc func(ctx context.Context) ([]domain.Book, error)

// Result is what a cached search returns to its caller.
type Result struct {
	// Books is the search result payload
	Books []domain.Book

	// Cached reports whether the result came from the store
	Cached bool

	// ResponseTime is the measured wall-clock duration of the lookup
	ResponseTime time.Duration

	// HitRate is the store's cumulative hit rate after this lookup
	HitRate float64
}

// Service is the public surface callers use for cached book searches.
// Inject one instance per process; the store and in-flight guard it owns
// are shared by every caller.
type Service struct {
	store  *Store
	flight *Flight
	logger interfaces.Logger
}

// NewService creates a cache-aware search service with the given TTL.
func NewService(ttl time.Duration, logger interfaces.Logger) *Service {
	return &Service{
		store:  NewStore(ttl),
		flight: NewFlight(),
		logger: logger,
	}
}

// Search serves the result for params from the store when fresh, otherwise
// performs a dedupe-protected fetch and stores the result. A failed fetch
// is never cached; the error propagates to every caller sharing the fetch
// and the next identical call retries from scratch.
func (s *Service) Search(ctx context.Context, params domain.SearchParams, fetch FetchFunc) (*Result, error) {
	key := BuildKey(params)
	start := time.Now()

	if books, ok := s.store.Get(key); ok {
		s.logDebug("search cache hit", key)
		return &Result{
			Books:        books,
			Cached:       true,
			ResponseTime: time.Since(start),
			HitRate:      s.store.Stats().HitRate,
		}, nil
	}

	books, shared, err := s.flight.Do(key, func() ([]domain.Book, error) {
		fetched, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		s.store.Put(key, fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logDebug("search deduplicated onto in-flight fetch", key)
	}

	return &Result{
		Books:        books,
		Cached:       false,
		ResponseTime: time.Since(start),
		HitRate:      s.store.Stats().HitRate,
	}, nil
}

// InvalidateUser drops the user's cached entries and all pending fetch
// registrations. Called on logout and after library mutations.
func (s *Service) InvalidateUser(userID string) {
	s.store.ClearForUser(userID)
	s.flight.Clear()
}

// InvalidateAll drops every cached entry and pending registration.
func (s *Service) InvalidateAll() {
	s.store.ClearAll()
	s.flight.Clear()
}

// Stats exposes the store's cumulative counters.
func (s *Service) Stats() Stats {
	return s.store.Stats()
}

func (s *Service) logDebug(msg, key string) {
	if s.logger != nil {
		s.logger.Debug(msg, map[string]interface{}{"key": key})
	}
}
