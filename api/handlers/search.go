// ABOUTME: Search handlers for the Huma API
// ABOUTME: Wires cached search, mood and color discovery to HTTP endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"chapterone-api/api/dto/mappers"
	"chapterone-api/api/dto/responses"
	"chapterone-api/core/books"
	"chapterone-api/core/domain"
	"chapterone-api/core/searchcache"
)

// SearchService defines the methods needed from the book search service
type SearchService interface {
	SearchBooksWithFlags(ctx context.Context, query string, searchType domain.SearchType, includeExternal bool) ([]domain.Book, error)
	SearchByMood(ctx context.Context, mood string, limit int) ([]domain.Book, error)
	SearchByColor(ctx context.Context, hexColor string, limit int) ([]domain.Book, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService SearchService
	cache         *searchcache.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService, cache *searchcache.Service) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		cache:         cache,
	}
}

// RegisterRoutes registers the core search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search for books",
		Description: "Searches the catalog (and optionally external providers) with result caching and request deduplication",
		Tags:        []string{"Search"},
	}, h.SearchBooks)
}

// RegisterDiscoveryRoutes registers the mood and color discovery routes,
// kept separate so deployments can leave them unregistered.
func (h *SearchHandler) RegisterDiscoveryRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listMoods",
		Method:      http.MethodGet,
		Path:        "/api/search/moods",
		Summary:     "List available moods",
		Tags:        []string{"Search"},
	}, h.ListMoods)

	huma.Register(api, huma.Operation{
		OperationID: "searchByMood",
		Method:      http.MethodGet,
		Path:        "/api/search/mood/{mood}",
		Summary:     "Search books by mood",
		Tags:        []string{"Search"},
	}, h.SearchByMood)

	huma.Register(api, huma.Operation{
		OperationID: "searchByColor",
		Method:      http.MethodGet,
		Path:        "/api/search/color",
		Summary:     "Search books by color",
		Description: "Maps a hex color to a mood and returns books matching that mood",
		Tags:        []string{"Search"},
	}, h.SearchByColor)
}

// SearchBooksInput defines the input for the SearchBooks operation
type SearchBooksInput struct {
	Query           string `query:"q" doc:"Free-text search query"`
	SearchType      string `query:"type" doc:"Search type: title, author, category or all"`
	IncludeExternal bool   `query:"include_external" doc:"Also search external providers"`
	UserID          string `query:"user_id" doc:"User the search belongs to; empty for anonymous"`
}

// SearchBooksOutput defines the output for the SearchBooks operation
type SearchBooksOutput struct {
	Body responses.SearchResponse
}

// SearchBooks handles the GET /api/search endpoint
func (h *SearchHandler) SearchBooks(ctx context.Context, input *SearchBooksInput) (*SearchBooksOutput, error) {
	searchType := domain.SearchType(input.SearchType)
	if input.SearchType == "" {
		searchType = domain.SearchTypeAll
	}

	params := domain.SearchParams{
		Query:           input.Query,
		SearchType:      searchType,
		IncludeExternal: input.IncludeExternal,
		UserID:          input.UserID,
	}

	result, err := h.cache.Search(ctx, params, func(ctx context.Context) ([]domain.Book, error) {
		return h.searchService.SearchBooksWithFlags(ctx, params.Query, params.SearchType, params.IncludeExternal)
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SearchBooksOutput{}
	output.Body = responses.SearchResponse{
		Results:        mappers.ToBookResponses(result.Books),
		Count:          len(result.Books),
		Cached:         result.Cached,
		CacheHitRate:   result.HitRate,
		ResponseTimeMs: result.ResponseTime.Milliseconds(),
	}
	return output, nil
}

// ListMoodsOutput defines the output for the ListMoods operation
type ListMoodsOutput struct {
	Body responses.MoodListResponse
}

// ListMoods handles the GET /api/search/moods endpoint
func (h *SearchHandler) ListMoods(ctx context.Context, input *struct{}) (*ListMoodsOutput, error) {
	output := &ListMoodsOutput{}
	output.Body.Moods = books.Moods()
	return output, nil
}

// SearchByMoodInput defines the input for the SearchByMood operation
type SearchByMoodInput struct {
	Mood  string `path:"mood" doc:"Mood to search for"`
	Limit int    `query:"limit" default:"20" minimum:"1" maximum:"50" doc:"Maximum results"`
}

// SearchByMoodOutput defines the output for the SearchByMood operation
type SearchByMoodOutput struct {
	Body responses.SearchResponse
}

// SearchByMood handles the GET /api/search/mood/{mood} endpoint
func (h *SearchHandler) SearchByMood(ctx context.Context, input *SearchByMoodInput) (*SearchByMoodOutput, error) {
	results, err := h.searchService.SearchByMood(ctx, input.Mood, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SearchByMoodOutput{}
	output.Body = responses.SearchResponse{
		Results: mappers.ToBookResponses(results),
		Count:   len(results),
	}
	return output, nil
}

// SearchByColorInput defines the input for the SearchByColor operation
type SearchByColorInput struct {
	Hex   string `query:"hex" doc:"Hex color such as #1a2b3c"`
	Limit int    `query:"limit" default:"20" minimum:"1" maximum:"50" doc:"Maximum results"`
}

// SearchByColorOutput defines the output for the SearchByColor operation
type SearchByColorOutput struct {
	Body responses.SearchResponse
}

// SearchByColor handles the GET /api/search/color endpoint
func (h *SearchHandler) SearchByColor(ctx context.Context, input *SearchByColorInput) (*SearchByColorOutput, error) {
	results, err := h.searchService.SearchByColor(ctx, input.Hex, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SearchByColorOutput{}
	output.Body = responses.SearchResponse{
		Results: mappers.ToBookResponses(results),
		Count:   len(results),
	}
	return output, nil
}
