// ABOUTME: External book provider search against the Google Books volumes API
// ABOUTME: Cache-aside of provider responses on the injected byte cache

package books

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
)

const (
	googleBooksBaseURL = "https://www.googleapis.com/books/v1/volumes"
	externalMaxResults = 20
	externalCacheTTL   = 24 * time.Hour
)

// googleVolumesResponse mirrors the subset of the volumes API we consume
type googleVolumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title               string   `json:"title"`
			Authors             []string `json:"authors"`
			Description         string   `json:"description"`
			Categories          []string `json:"categories"`
			AverageRating       float64  `json:"averageRating"`
			PageCount           int      `json:"pageCount"`
			PublishedDate       string   `json:"publishedDate"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// searchExternal queries the external provider, serving repeated queries
// from the byte cache.
func (s *BookService) searchExternal(ctx context.Context, query string, searchType domain.SearchType) ([]domain.Book, error) {
	cacheKey := fmt.Sprintf("books:external:%s:%s", searchType, query)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached []domain.Book
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, &errors.ExternalAPIError{API: "googlebooks", Message: "HTTP client not configured"}
	}

	apiURL := fmt.Sprintf("%s?q=%s&maxResults=%d",
		googleBooksBaseURL, url.QueryEscape(providerQuery(query, searchType)), externalMaxResults)

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return nil, errors.WrapError(err, "external book search failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.ExternalAPIError{
			API:        "googlebooks",
			StatusCode: resp.StatusCode(),
			Message:    "volumes search returned non-200",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, errors.WrapError(err, "failed to read provider response")
	}

	var apiResponse googleVolumesResponse
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		return nil, errors.WrapError(err, "failed to parse provider response")
	}

	books := make([]domain.Book, 0, len(apiResponse.Items))
	for _, item := range apiResponse.Items {
		info := item.VolumeInfo
		if info.Title == "" {
			continue
		}

		book := domain.Book{
			ExternalID:  item.ID,
			Title:       info.Title,
			Description: info.Description,
			Categories:  info.Categories,
			Rating:      info.AverageRating,
			CoverURL:    info.ImageLinks.Thumbnail,
			PageCount:   info.PageCount,
		}
		if len(info.Authors) > 0 {
			book.Author = info.Authors[0]
		}
		for _, ident := range info.IndustryIdentifiers {
			if ident.Type == "ISBN_13" {
				book.ISBN = ident.Identifier
				break
			}
		}
		if len(info.PublishedDate) >= 4 {
			if year, err := strconv.Atoi(info.PublishedDate[:4]); err == nil {
				book.PublishedYear = year
			}
		}

		books = append(books, book)
	}

	if s.deps.Cache != nil && len(books) > 0 {
		if data, err := json.Marshal(books); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, externalCacheTTL)
		}
	}

	return books, nil
}

// providerQuery scopes the free-text query to the provider's field syntax
func providerQuery(query string, searchType domain.SearchType) string {
	switch searchType {
	case domain.SearchTypeTitle:
		return "intitle:" + query
	case domain.SearchTypeAuthor:
		return "inauthor:" + query
	case domain.SearchTypeCategory:
		return "subject:" + query
	default:
		return query
	}
}
