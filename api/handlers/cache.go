// ABOUTME: Search cache handlers for the Huma API
// ABOUTME: Exposes hit/miss stats and manual invalidation endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"chapterone-api/api/dto/responses"
	"chapterone-api/core/searchcache"
)

// CacheHandler handles search cache observability and invalidation
type CacheHandler struct {
	cache *searchcache.Service
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cache *searchcache.Service) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// RegisterRoutes registers all cache-related routes
func (h *CacheHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCacheStats",
		Method:      http.MethodGet,
		Path:        "/api/cache/stats",
		Summary:     "Get search cache statistics",
		Tags:        []string{"Cache"},
	}, h.GetStats)

	huma.Register(api, huma.Operation{
		OperationID: "clearCache",
		Method:      http.MethodDelete,
		Path:        "/api/cache",
		Summary:     "Clear all cached search results",
		Tags:        []string{"Cache"},
	}, h.ClearAll)

	huma.Register(api, huma.Operation{
		OperationID: "clearUserCache",
		Method:      http.MethodDelete,
		Path:        "/api/cache/users/{userId}",
		Summary:     "Clear cached search results for one user",
		Description: "Used on logout so the next session starts with fresh results",
		Tags:        []string{"Cache"},
	}, h.ClearUser)
}

// GetStatsOutput defines the output for the GetStats operation
type GetStatsOutput struct {
	Body responses.CacheStatsResponse
}

// GetStats handles the GET /api/cache/stats endpoint
func (h *CacheHandler) GetStats(ctx context.Context, input *struct{}) (*GetStatsOutput, error) {
	stats := h.cache.Stats()

	output := &GetStatsOutput{}
	output.Body = responses.CacheStatsResponse{
		Hits:    stats.Hits,
		Misses:  stats.Misses,
		Entries: stats.Entries,
		HitRate: stats.HitRate,
	}
	return output, nil
}

// ClearAllOutput defines the output for the ClearAll operation
type ClearAllOutput struct {
	Body struct {
		Cleared bool `json:"cleared"`
	}
}

// ClearAll handles the DELETE /api/cache endpoint
func (h *CacheHandler) ClearAll(ctx context.Context, input *struct{}) (*ClearAllOutput, error) {
	h.cache.InvalidateAll()

	output := &ClearAllOutput{}
	output.Body.Cleared = true
	return output, nil
}

// ClearUserInput defines the input for the ClearUser operation
type ClearUserInput struct {
	UserID string `path:"userId" doc:"User whose cached searches are dropped"`
}

// ClearUserOutput defines the output for the ClearUser operation
type ClearUserOutput struct {
	Body struct {
		Cleared bool `json:"cleared"`
	}
}

// ClearUser handles the DELETE /api/cache/users/{userId} endpoint
func (h *CacheHandler) ClearUser(ctx context.Context, input *ClearUserInput) (*ClearUserOutput, error) {
	h.cache.InvalidateUser(input.UserID)

	output := &ClearUserOutput{}
	output.Body.Cleared = true
	return output, nil
}
