// ABOUTME: In-memory search result store with lazy TTL expiration
// ABOUTME: Tracks process-lifetime hit/miss counters for cache stats

package searchcache

import (
	"strings"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"chapterone-api/core/domain"
)

// DefaultTTL is the freshness window applied when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// Stats holds cumulative cache counters. Counters cover the process
// lifetime and reset only on restart.
type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Entries int     `json:"entries"`
	HitRate float64 `json:"hit_rate"`
}

// Store holds recent search results keyed by serialized search parameters.
// Entries expire lazily: an entry older than the TTL reads as absent, no
// background sweeper runs. Capacity is unbounded; TTL is the only growth
// control.
type Store struct {
	cache  *gocache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewStore creates a search result store with the given TTL. A zero or
// negative TTL falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// Cleanup interval 0 disables the janitor; expiry is checked on read.
	return &Store{cache: gocache.New(ttl, 0)}
}

// Get returns the cached books for key, or ok=false when the entry is
// absent or past its TTL.
func (s *Store) Get(key string) ([]domain.Book, bool) {
	value, found := s.cache.Get(key)
	if !found {
		s.misses.Add(1)
		return nil, false
	}

	books, ok := value.([]domain.Book)
	if !ok {
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return books, true
}

// Put stores books under key with the store's TTL, unconditionally
// replacing any prior entry. A key collision is an intentional overwrite,
// not an error.
func (s *Store) Put(key string, books []domain.Book) {
	s.cache.Set(key, books, gocache.DefaultExpiration)
}

// ClearAll empties the entire store. Counters are not reset.
func (s *Store) ClearAll() {
	s.cache.Flush()
}

// ClearForUser removes only entries belonging to the given user's
// partition, leaving other users' and anonymous entries intact.
func (s *Store) ClearForUser(userID string) {
	suffix := userSuffix(userID)
	for key := range s.cache.Items() {
		if strings.HasSuffix(key, suffix) {
			s.cache.Delete(key)
		}
	}
}

// Stats returns cumulative hit/miss counters and the derived hit rate.
func (s *Store) Stats() Stats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	stats := Stats{
		Hits:    hits,
		Misses:  misses,
		Entries: s.cache.ItemCount(),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats
}
