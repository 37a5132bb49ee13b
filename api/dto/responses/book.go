// ABOUTME: Response DTOs for books returned by the API
// ABOUTME: Decouples the wire format from the internal domain model

package responses

// BookResponse is the wire representation of a book
type BookResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	ISBN          string   `json:"isbn,omitempty"`
	ExternalID    string   `json:"external_id,omitempty"`
	Description   string   `json:"description,omitempty"`
	Pace          string   `json:"pace,omitempty"`
	Tone          []string `json:"tone,omitempty"`
	Themes        []string `json:"themes,omitempty"`
	BestFor       []string `json:"best_for,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Rating        float64  `json:"rating"`
	CoverURL      string   `json:"cover_url,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	PublishedYear int      `json:"published_year,omitempty"`
}

// RGBColorResponse is the wire representation of an extracted cover color
type RGBColorResponse struct {
	R uint32 `json:"r"`
	G uint32 `json:"g"`
	B uint32 `json:"b"`
	// Hex is the #rrggbb form of the color
	Hex string `json:"hex"`
}
