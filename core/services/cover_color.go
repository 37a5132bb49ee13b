// ABOUTME: Cover color extraction service for finding prominent colors in book covers
// ABOUTME: Uses K-means clustering; extracted colors feed color-based discovery

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP cover support

	"chapterone-api/core/domain"
	"chapterone-api/core/interfaces"
)

const (
	defaultColorValue = 128
	coverHTTPTimeout  = 10 * time.Second
	coverUserAgent    = "ChapterOne/1.0 (cover color extraction)"
	coverColorTTL     = 24 * time.Hour
)

// CoverColorService handles color extraction from book cover images
type CoverColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewCoverColorService creates a new cover color service
func NewCoverColorService(deps interfaces.Dependencies) *CoverColorService {
	return &CoverColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: coverHTTPTimeout,
		},
	}
}

// ExtractColor extracts the prominent color from a cover image URL
func (s *CoverColorService) ExtractColor(ctx context.Context, coverURL string) (*domain.RGBColor, error) {
	if coverURL == "" {
		return s.defaultColor(), nil
	}

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, colorCacheKey(coverURL)); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, coverURL)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Failed to extract color from cover", map[string]interface{}{
				"url":   coverURL,
				"error": err.Error(),
			})
		}
		color = s.defaultColor()
	}
	if color == nil {
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, colorCacheKey(coverURL), []byte(cacheData), coverColorTTL)
	}

	return color, nil
}

// GetCachedColor retrieves a color from cache without computing it
func (s *CoverColorService) GetCachedColor(ctx context.Context, coverURL string) (*domain.RGBColor, error) {
	if coverURL == "" {
		return nil, fmt.Errorf("empty cover URL")
	}

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, colorCacheKey(coverURL)); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	return nil, fmt.Errorf("color not found in cache")
}

// ExtractColorBatch extracts colors for multiple cover URLs concurrently
func (s *CoverColorService) ExtractColorBatch(ctx context.Context, coverURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, 5)

	for _, u := range coverURLs {
		wg.Add(1)
		go func(coverURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			color, err := s.ExtractColor(ctx, coverURL)
			if err != nil || color == nil {
				return
			}

			mu.Lock()
			results[coverURL] = color
			mu.Unlock()
		}(u)
	}

	wg.Wait()
	return results
}

// extractColorFromURL downloads and extracts color from a cover image
func (s *CoverColorService) extractColorFromURL(ctx context.Context, coverURL string) (color *domain.RGBColor, err error) {
	// prominentcolor can panic on degenerate images
	defer func() {
		if rec := recover(); rec != nil {
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(coverURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid cover URL: %s", coverURL)
	}

	// SVG covers can't be decoded as raster images
	if strings.HasSuffix(strings.ToLower(coverURL), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", coverUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("cover has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Masks can eliminate the whole image on flat covers; retry without
	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from cover")
		}
	}

	return &domain.RGBColor{
		R: colors[0].Color.R,
		G: colors[0].Color.G,
		B: colors[0].Color.B,
	}, nil
}

// defaultColor returns the default gray color
func (s *CoverColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}

func colorCacheKey(coverURL string) string {
	return "coverColor:" + coverURL
}
