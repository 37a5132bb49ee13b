// ABOUTME: Mood and color based discovery using hand-built lookup tables
// ABOUTME: Maps reader moods and cover colors to catalog categories

package books

import (
	"context"
	"fmt"
	"strings"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
)

// moodCategories maps a reader mood to the catalog categories that tend to
// match it. These are curated tables, not learned weights.
var moodCategories = map[string][]string{
	"cozy":         {"romance", "cooking", "slice of life", "comfort reads"},
	"adventurous":  {"adventure", "fantasy", "science fiction", "travel"},
	"melancholic":  {"literary fiction", "poetry", "memoir"},
	"romantic":     {"romance", "historical romance", "contemporary"},
	"curious":      {"popular science", "history", "nonfiction", "philosophy"},
	"tense":        {"thriller", "mystery", "horror", "crime"},
	"hopeful":      {"inspirational", "self help", "contemporary", "young adult"},
	"dark":         {"horror", "gothic", "true crime", "dystopian"},
	"whimsical":    {"fantasy", "magical realism", "humor", "fairy tales"},
	"reflective":   {"memoir", "essays", "philosophy", "biography"},
	"nostalgic":    {"classics", "historical fiction", "coming of age"},
	"epic":         {"fantasy", "historical fiction", "space opera"},
}

// Moods returns the supported mood names, for the API surface
func Moods() []string {
	names := make([]string, 0, len(moodCategories))
	for name := range moodCategories {
		names = append(names, name)
	}
	return names
}

// SearchByMood returns catalog books matching the mood's category table
func (s *BookService) SearchByMood(ctx context.Context, mood string, limit int) ([]domain.Book, error) {
	categories, ok := moodCategories[strings.ToLower(strings.TrimSpace(mood))]
	if !ok {
		return nil, &errors.ValidationError{Field: "mood", Message: "unknown mood: " + mood}
	}

	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}

	books, err := s.storage.SearchByCategories(ctx, categories, limit)
	if err != nil {
		return nil, errors.WrapError(err, "mood search failed")
	}
	return books, nil
}

// SearchByColor maps a hex color to a mood and searches by that mood.
// Color-based discovery lets readers pick books by cover palette.
func (s *BookService) SearchByColor(ctx context.Context, hexColor string, limit int) ([]domain.Book, error) {
	color, err := parseHexColor(hexColor)
	if err != nil {
		return nil, &errors.ValidationError{Field: "color", Message: err.Error()}
	}

	return s.SearchByMood(ctx, colorToMood(color), limit)
}

// parseHexColor parses "#rrggbb" (leading '#' optional) into an RGBColor
func parseHexColor(hex string) (domain.RGBColor, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return domain.RGBColor{}, fmt.Errorf("color must be a 6-digit hex value")
	}

	var c domain.RGBColor
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return domain.RGBColor{}, fmt.Errorf("invalid hex color %q", hex)
	}
	return c, nil
}

// colorToMood buckets a color into a mood. Dark and washed-out covers get
// their own buckets; otherwise the dominant channel decides.
func colorToMood(c domain.RGBColor) string {
	r, g, b := int(c.R), int(c.G), int(c.B)
	brightness := (r + g + b) / 3

	switch {
	case brightness < 60:
		return "dark"
	case brightness > 210:
		return "cozy"
	case r > g && r > b:
		if g > 120 {
			return "hopeful" // oranges and warm yellows
		}
		return "tense"
	case g > r && g > b:
		return "curious"
	case b > r && b > g:
		if r > 120 {
			return "whimsical" // purples
		}
		return "melancholic"
	default:
		return "reflective"
	}
}
