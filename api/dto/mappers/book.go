// ABOUTME: Mappers from domain models to response DTOs
// ABOUTME: Keeps handler code free of conversion boilerplate

package mappers

import (
	"chapterone-api/api/dto/responses"
	"chapterone-api/core/domain"
)

// ToBookResponse converts a domain book to its wire representation
func ToBookResponse(book *domain.Book) responses.BookResponse {
	return responses.BookResponse{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		ISBN:          book.ISBN,
		ExternalID:    book.ExternalID,
		Description:   book.Description,
		Pace:          book.Pace,
		Tone:          book.Tone,
		Themes:        book.Themes,
		BestFor:       book.BestFor,
		Categories:    book.Categories,
		Rating:        book.Rating,
		CoverURL:      book.CoverURL,
		PageCount:     book.PageCount,
		PublishedYear: book.PublishedYear,
	}
}

// ToBookResponses converts a slice of domain books
func ToBookResponses(books []domain.Book) []responses.BookResponse {
	result := make([]responses.BookResponse, len(books))
	for i := range books {
		result[i] = ToBookResponse(&books[i])
	}
	return result
}

// ToRGBColorResponse converts an extracted cover color
func ToRGBColorResponse(color *domain.RGBColor) responses.RGBColorResponse {
	return responses.RGBColorResponse{
		R:   color.R,
		G:   color.G,
		B:   color.B,
		Hex: color.Hex(),
	}
}
