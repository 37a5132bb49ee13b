// ABOUTME: Book detail handlers for the Huma API
// ABOUTME: Provides book lookup, recommendations and cover color extraction

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"chapterone-api/api/dto/mappers"
	"chapterone-api/api/dto/responses"
	"chapterone-api/core/domain"
)

// BookService defines the methods needed from the book service
type BookService interface {
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	Recommend(ctx context.Context, bookID string, limit int) ([]domain.Book, error)
}

// CoverColorService defines cover color extraction
type CoverColorService interface {
	ExtractColor(ctx context.Context, coverURL string) (*domain.RGBColor, error)
}

// BookHandler handles book-related HTTP requests
type BookHandler struct {
	bookService  BookService
	colorService CoverColorService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService BookService, colorService CoverColorService) *BookHandler {
	return &BookHandler{
		bookService:  bookService,
		colorService: colorService,
	}
}

// RegisterRoutes registers all book-related routes
func (h *BookHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/books/{id}",
		Summary:     "Get a book by id",
		Tags:        []string{"Books"},
	}, h.GetBook)

	huma.Register(api, huma.Operation{
		OperationID: "getRecommendations",
		Method:      http.MethodGet,
		Path:        "/api/books/{id}/recommendations",
		Summary:     "Get books similar to this one",
		Description: "Ranks catalog books by shared categories, themes, tone and pace",
		Tags:        []string{"Books"},
	}, h.GetRecommendations)

	huma.Register(api, huma.Operation{
		OperationID: "getCoverColor",
		Method:      http.MethodGet,
		Path:        "/api/books/{id}/cover-color",
		Summary:     "Get the dominant color of the book's cover",
		Tags:        []string{"Books"},
	}, h.GetCoverColor)
}

// GetBookInput defines the input for the GetBook operation
type GetBookInput struct {
	ID string `path:"id" doc:"Catalog book id"`
}

// GetBookOutput defines the output for the GetBook operation
type GetBookOutput struct {
	Body responses.BookResponse
}

// GetBook handles the GET /api/books/{id} endpoint
func (h *BookHandler) GetBook(ctx context.Context, input *GetBookInput) (*GetBookOutput, error) {
	book, err := h.bookService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &GetBookOutput{}
	output.Body = mappers.ToBookResponse(book)
	return output, nil
}

// GetRecommendationsInput defines the input for the GetRecommendations operation
type GetRecommendationsInput struct {
	ID    string `path:"id" doc:"Seed book id"`
	Limit int    `query:"limit" default:"10" minimum:"1" maximum:"25" doc:"Maximum recommendations"`
}

// GetRecommendationsOutput defines the output for the GetRecommendations operation
type GetRecommendationsOutput struct {
	Body responses.SearchResponse
}

// GetRecommendations handles the GET /api/books/{id}/recommendations endpoint
func (h *BookHandler) GetRecommendations(ctx context.Context, input *GetRecommendationsInput) (*GetRecommendationsOutput, error) {
	recommendations, err := h.bookService.Recommend(ctx, input.ID, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &GetRecommendationsOutput{}
	output.Body = responses.SearchResponse{
		Results: mappers.ToBookResponses(recommendations),
		Count:   len(recommendations),
	}
	return output, nil
}

// GetCoverColorInput defines the input for the GetCoverColor operation
type GetCoverColorInput struct {
	ID string `path:"id" doc:"Catalog book id"`
}

// GetCoverColorOutput defines the output for the GetCoverColor operation
type GetCoverColorOutput struct {
	Body responses.RGBColorResponse
}

// GetCoverColor handles the GET /api/books/{id}/cover-color endpoint
func (h *BookHandler) GetCoverColor(ctx context.Context, input *GetCoverColorInput) (*GetCoverColorOutput, error) {
	book, err := h.bookService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	if book.CoverURL == "" {
		return nil, huma.Error404NotFound("book has no cover image")
	}

	color, err := h.colorService.ExtractColor(ctx, book.CoverURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &GetCoverColorOutput{}
	output.Body = mappers.ToRGBColorResponse(color)
	return output, nil
}
