// ABOUTME: Link metadata handler for the Huma API
// ABOUTME: Extracts Open Graph previews for links shared in discussion threads

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"chapterone-api/core/interfaces"
)

// MetadataHandler handles link preview extraction
type MetadataHandler struct {
	metadataService interfaces.MetadataService
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(metadataService interfaces.MetadataService) *MetadataHandler {
	return &MetadataHandler{metadataService: metadataService}
}

// RegisterRoutes registers metadata routes
func (h *MetadataHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractMetadata",
		Method:      http.MethodPost,
		Path:        "/api/metadata",
		Summary:     "Extract link previews",
		Description: "Extracts Open Graph tags and other metadata from provided URLs",
		Tags:        []string{"Metadata"},
	}, h.ExtractMetadata)
}

// MetadataInput defines the input for metadata extraction
type MetadataInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"List of URLs to extract metadata from"`
	}
}

// LinkPreview represents extracted metadata for a single URL
type LinkPreview struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Images      []string `json:"images,omitempty"`
	ThemeColor  string   `json:"theme_color,omitempty"`
	Domain      string   `json:"domain,omitempty"`
	Favicon     string   `json:"favicon,omitempty"`
}

// MetadataOutput defines the output for metadata extraction
type MetadataOutput struct {
	Body struct {
		Previews []LinkPreview `json:"previews" doc:"Extracted preview for each URL"`
	}
}

// ExtractMetadata handles the POST /api/metadata endpoint
func (h *MetadataHandler) ExtractMetadata(ctx context.Context, input *MetadataInput) (*MetadataOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := h.metadataService.ExtractMetadataBatch(ctx, input.Body.URLs)

	previews := make([]LinkPreview, 0, len(input.Body.URLs))
	for _, url := range input.Body.URLs {
		preview := LinkPreview{URL: url}
		if result := results[url]; result != nil {
			preview.Title = result.Title
			preview.Description = result.Description
			preview.Thumbnail = result.Thumbnail
			preview.Images = result.Images
			preview.ThemeColor = result.ThemeColor
			preview.Domain = result.Domain
			preview.Favicon = result.Favicon
		}
		previews = append(previews, preview)
	}

	output := &MetadataOutput{}
	output.Body.Previews = previews
	return output, nil
}
