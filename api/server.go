// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"chapterone-api/api/middleware"
	"chapterone-api/core/interfaces"
	"chapterone-api/pkg/featureflags"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	Flags      featureflags.Manager
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be the first middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagMiddleware(cfg.Flags))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("ChapterOne API", "1.0.0")
	config.Info.Description = "API for book discovery, cached search, libraries and discussion threads"

	api := humachi.New(router, config)

	// The OpenAPI spec is available at /openapi.json, Swagger UI at /docs

	return api, router
}
