// ABOUTME: Metadata extraction service for link previews in discussion threads
// ABOUTME: Uses colly to scrape Open Graph tags and other metadata from shared URLs

package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"chapterone-api/core/interfaces"
)

const (
	collyUserAgent   = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
	metadataCacheTTL = 24 * time.Hour
)

// MetadataService handles metadata extraction from URLs shared in threads
type MetadataService struct {
	deps interfaces.Dependencies
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	return &MetadataService{
		deps: deps,
	}
}

// ExtractMetadata extracts metadata from a single URL
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*interfaces.MetadataResult, error) {
	if s.deps.Cache != nil {
		cacheKey := "metadata:" + targetURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result interfaces.MetadataResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result := s.extractFromURL(targetURL)

	if s.deps.Cache != nil && result != nil {
		cacheKey := "metadata:" + targetURL
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, metadataCacheTTL)
		}
	}

	return result, nil
}

// ExtractMetadataBatch extracts metadata for multiple URLs concurrently
func (s *MetadataService) ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*interfaces.MetadataResult {
	results := make(map[string]*interfaces.MetadataResult)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, 10)

	for _, u := range urls {
		wg.Add(1)
		go func(targetURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if result, err := s.ExtractMetadata(ctx, targetURL); err == nil && result != nil {
				mu.Lock()
				results[targetURL] = result
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return results
}

// extractFromURL performs the actual metadata extraction
func (s *MetadataService) extractFromURL(targetURL string) *interfaces.MetadataResult {
	if targetURL == "" || targetURL == "http://" || targetURL == "://" || targetURL == "about:blank" {
		return nil
	}

	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(10 * time.Second)

	result := &interfaces.MetadataResult{
		Images: []string{},
	}

	// Open Graph and Twitter card tags
	c.OnHTML("meta", func(e *colly.HTMLElement) {
		property := e.Attr("property")
		content := e.Attr("content")
		name := e.Attr("name")

		if content == "" {
			return
		}

		if name == "theme-color" {
			result.ThemeColor = content
		}
		if name == "twitter:image" && result.Thumbnail == "" {
			result.Thumbnail = content
		}

		switch property {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:image":
			result.Images = append(result.Images, content)
			if result.Thumbnail == "" {
				result.Thumbnail = content
			}
		}
	})

	// Fallbacks from the document head
	c.OnHTML("head", func(e *colly.HTMLElement) {
		if result.Title == "" {
			if title := e.DOM.Find("title").First().Text(); title != "" {
				result.Title = strings.TrimSpace(title)
			}
		}

		if result.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && content != "" {
					result.Description = content
				}
			})
		}

		e.DOM.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
			rel := sel.AttrOr("rel", "")
			href := sel.AttrOr("href", "")
			for _, rv := range strings.Fields(rel) {
				if rv == "icon" || rv == "shortcut" || rv == "apple-touch-icon" {
					if href != "" && result.Favicon == "" {
						result.Favicon = e.Request.AbsoluteURL(href)
					}
				}
			}
		})
	})

	// Book pages often carry JSON-LD with a cover image
	c.OnHTML("script[type='application/ld+json']", func(e *colly.HTMLElement) {
		var ldData map[string]interface{}
		if err := json.Unmarshal([]byte(e.Text), &ldData); err == nil {
			if result.Thumbnail == "" {
				if img, ok := ldData["image"].(string); ok {
					result.Thumbnail = img
				} else if imgObj, ok := ldData["image"].(map[string]interface{}); ok {
					if u, ok := imgObj["url"].(string); ok {
						result.Thumbnail = u
					}
				}
			}
		}
	})

	c.OnRequest(func(r *colly.Request) {
		if parsedURL, err := url.Parse(r.URL.String()); err == nil {
			result.Domain = parsedURL.Host
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Error visiting URL for metadata", map[string]interface{}{
				"url":    targetURL,
				"error":  err.Error(),
				"status": r.StatusCode,
			})
		}
	})

	if err := c.Visit(targetURL); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Failed to visit URL for metadata extraction", map[string]interface{}{
				"url":   targetURL,
				"error": err.Error(),
			})
		}
		return result
	}

	return result
}
