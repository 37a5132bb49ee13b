// ABOUTME: Color domain model for cover-color extraction and color-based search
// ABOUTME: Represents an RGB color with hex formatting helpers

package domain

import "fmt"

// RGBColor represents a color extracted from a book cover
type RGBColor struct {
	R uint32 `json:"r"`
	G uint32 `json:"g"`
	B uint32 `json:"b"`
}

// Hex returns the color as a lowercase hex string, e.g. "#1a2b3c"
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R&0xff, c.G&0xff, c.B&0xff)
}
