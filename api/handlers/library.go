// ABOUTME: Library handlers for the Huma API
// ABOUTME: Save, unsave and list a user's books; mutations invalidate cached searches

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"chapterone-api/api/dto/mappers"
	"chapterone-api/api/dto/requests"
	"chapterone-api/api/dto/responses"
	"chapterone-api/core/domain"
)

// LibraryService defines the methods needed from the library service
type LibraryService interface {
	Save(ctx context.Context, userID, bookID, shelf string) (*domain.LibraryEntry, error)
	Unsave(ctx context.Context, userID, bookID string) error
	List(ctx context.Context, userID string) ([]domain.LibraryEntry, error)
}

// LibraryHandler handles library-related HTTP requests
type LibraryHandler struct {
	libraryService LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryService LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// RegisterRoutes registers all library-related routes
func (h *LibraryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "saveBook",
		Method:      http.MethodPost,
		Path:        "/api/library",
		Summary:     "Save a book to a user's library",
		Tags:        []string{"Library"},
	}, h.SaveBook)

	huma.Register(api, huma.Operation{
		OperationID: "unsaveBook",
		Method:      http.MethodDelete,
		Path:        "/api/library/{bookId}",
		Summary:     "Remove a book from a user's library",
		Tags:        []string{"Library"},
	}, h.UnsaveBook)

	huma.Register(api, huma.Operation{
		OperationID: "listLibrary",
		Method:      http.MethodGet,
		Path:        "/api/library",
		Summary:     "List a user's saved books",
		Tags:        []string{"Library"},
	}, h.ListLibrary)
}

// SaveBookInput defines the input for the SaveBook operation
type SaveBookInput struct {
	Body requests.SaveBookRequest
}

// SaveBookOutput defines the output for the SaveBook operation
type SaveBookOutput struct {
	Body responses.LibraryEntryResponse
}

// SaveBook handles the POST /api/library endpoint
func (h *LibraryHandler) SaveBook(ctx context.Context, input *SaveBookInput) (*SaveBookOutput, error) {
	input.Body.ApplyDefaults()

	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	entry, err := h.libraryService.Save(ctx, input.Body.UserID, input.Body.BookID, input.Body.Shelf)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SaveBookOutput{}
	output.Body = mappers.ToLibraryEntryResponse(entry)
	return output, nil
}

// UnsaveBookInput defines the input for the UnsaveBook operation
type UnsaveBookInput struct {
	BookID string `path:"bookId" doc:"Book to remove"`
	UserID string `query:"user_id" doc:"Library owner"`
}

// UnsaveBookOutput defines the output for the UnsaveBook operation
type UnsaveBookOutput struct {
	Body struct {
		Removed bool `json:"removed"`
	}
}

// UnsaveBook handles the DELETE /api/library/{bookId} endpoint
func (h *LibraryHandler) UnsaveBook(ctx context.Context, input *UnsaveBookInput) (*UnsaveBookOutput, error) {
	if input.UserID == "" {
		return nil, huma.Error400BadRequest("user_id is required")
	}

	if err := h.libraryService.Unsave(ctx, input.UserID, input.BookID); err != nil {
		return nil, toHumaError(err)
	}

	output := &UnsaveBookOutput{}
	output.Body.Removed = true
	return output, nil
}

// ListLibraryInput defines the input for the ListLibrary operation
type ListLibraryInput struct {
	UserID string `query:"user_id" doc:"Library owner"`
}

// ListLibraryOutput defines the output for the ListLibrary operation
type ListLibraryOutput struct {
	Body responses.LibraryListResponse
}

// ListLibrary handles the GET /api/library endpoint
func (h *LibraryHandler) ListLibrary(ctx context.Context, input *ListLibraryInput) (*ListLibraryOutput, error) {
	if input.UserID == "" {
		return nil, huma.Error400BadRequest("user_id is required")
	}

	entries, err := h.libraryService.List(ctx, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListLibraryOutput{}
	output.Body = mappers.ToLibraryListResponse(entries)
	return output, nil
}
