// ABOUTME: Response DTOs for search endpoints
// ABOUTME: Carries results plus cache observability fields

package responses

// SearchResponse is returned by every search endpoint
type SearchResponse struct {
	// Results are the matching books
	Results []BookResponse `json:"results"`

	// Count is the number of results
	Count int `json:"count"`

	// Cached reports whether the response was served from the search cache
	Cached bool `json:"cached"`

	// CacheHitRate is the cumulative cache hit rate after this lookup
	CacheHitRate float64 `json:"cache_hit_rate"`

	// ResponseTimeMs is the measured lookup duration in milliseconds
	ResponseTimeMs int64 `json:"response_time_ms"`
}

// MoodListResponse lists the moods available for mood search
type MoodListResponse struct {
	Moods []string `json:"moods"`
}

// CacheStatsResponse exposes search cache counters
type CacheStatsResponse struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Entries int     `json:"entries"`
	HitRate float64 `json:"hit_rate"`
}
