// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for enrichment services used throughout the application

package interfaces

import (
	"context"

	"chapterone-api/core/domain"
)

// CoverColorService extracts prominent colors from book cover images
type CoverColorService interface {
	ExtractColor(ctx context.Context, coverURL string) (*domain.RGBColor, error)
	ExtractColorBatch(ctx context.Context, coverURLs []string) map[string]*domain.RGBColor
	GetCachedColor(ctx context.Context, coverURL string) (*domain.RGBColor, error)
}

// MetadataResult contains extracted metadata from a webpage, used for
// link previews in discussion threads
type MetadataResult struct {
	Title       string
	Description string
	Thumbnail   string // Primary image URL
	Images      []string
	ThemeColor  string
	Domain      string
	Favicon     string
}

// MetadataService extracts metadata from web pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
	ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*MetadataResult
}
