// ABOUTME: Main entry point for the ChapterOne API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chapterone-api/api"
	"chapterone-api/api/handlers"
	"chapterone-api/core/books"
	"chapterone-api/core/interfaces"
	"chapterone-api/core/library"
	"chapterone-api/core/searchcache"
	"chapterone-api/core/services"
	"chapterone-api/core/threads"
	memcache "chapterone-api/infrastructure/cache/memory"
	"chapterone-api/infrastructure/cache/redis"
	"chapterone-api/infrastructure/cache/redisjson"
	"chapterone-api/infrastructure/cache/sqlite"
	stdhttp "chapterone-api/infrastructure/http/standard"
	logruslogger "chapterone-api/infrastructure/logger/logrus"
	memstorage "chapterone-api/infrastructure/storage/memory"
	"chapterone-api/infrastructure/storage/postgres"
	"chapterone-api/pkg/config"
	"chapterone-api/pkg/featureflags"
)

const apiVersion = "1.0.0"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(cfg.Server.LogLevel)
	logger.Info("Starting ChapterOne API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"cache_type":       cfg.Cache.Type,
		"search_cache_ttl": cfg.Search.CacheTTL.String(),
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Storage: Postgres when a DSN is configured, in-memory otherwise
	var bookStorage interfaces.BookStorage
	var libraryStorage interfaces.LibraryStorage
	var threadStorage interfaces.ThreadStorage

	if cfg.Storage.Postgres.DSN != "" {
		pool, err := postgres.Connect(context.Background(), cfg.Storage.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pool.Close()

		bookStorage = postgres.NewBookRepository(pool)
		libraryStorage = postgres.NewLibraryRepository(pool)
		threadStorage = postgres.NewThreadRepository(pool)
		logger.Info("Using Postgres storage", nil)
	} else {
		bookStorage = memstorage.NewBookStore()
		libraryStorage = memstorage.NewLibraryStore()
		threadStorage = memstorage.NewThreadStore()
		logger.Info("Using in-memory storage", nil)
	}

	// Core services
	searchCache := searchcache.NewService(cfg.Search.CacheTTL, logger)
	bookService := books.NewBookService(deps, bookStorage)
	libraryService := library.NewLibraryService(deps, libraryStorage, searchCache)
	threadService := threads.NewThreadService(deps, threadStorage)
	coverColorService := services.NewCoverColorService(deps)
	metadataService := services.NewMetadataService(deps)

	// Feature flags: everything ships enabled, FEATURE_* env vars override
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ExternalSearchEnabled: cfg.Search.ExternalEnabled,
		featureflags.MoodSearchEnabled:     true,
		featureflags.ThreadsEnabled:        true,
		featureflags.RateLimitEnabled:      true,
	})
	applyFlagOverrides(flags)

	apiConfig := api.APIConfig{
		Logger: logger,
		Flags:  flags,
	}
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = 100 // 100 requests per minute
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewHealthHandler(apiVersion).RegisterRoutes(humaAPI)
	searchHandler := handlers.NewSearchHandler(bookService, searchCache)
	searchHandler.RegisterRoutes(humaAPI)
	if flags.IsEnabled(context.Background(), featureflags.MoodSearchEnabled) {
		searchHandler.RegisterDiscoveryRoutes(humaAPI)
	}
	handlers.NewBookHandler(bookService, coverColorService).RegisterRoutes(humaAPI)
	handlers.NewLibraryHandler(libraryService).RegisterRoutes(humaAPI)
	handlers.NewCacheHandler(searchCache).RegisterRoutes(humaAPI)
	if flags.IsEnabled(context.Background(), featureflags.ThreadsEnabled) {
		handlers.NewThreadHandler(threadService).RegisterRoutes(humaAPI)
		handlers.NewMetadataHandler(metadataService).RegisterRoutes(humaAPI)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// applyFlagOverrides lets FEATURE_* env vars flip the static defaults
func applyFlagOverrides(flags *featureflags.StaticManager) {
	env := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()
	for _, flag := range []featureflags.FeatureFlag{
		featureflags.ExternalSearchEnabled,
		featureflags.MoodSearchEnabled,
		featureflags.ThreadsEnabled,
		featureflags.RateLimitEnabled,
	} {
		if _, ok := os.LookupEnv("FEATURE_" + strings.ToUpper(string(flag))); ok {
			flags.SetEnabled(flag, env.IsEnabled(ctx, flag))
		}
	}
}

// buildCache creates the configured cache backend, falling back to the
// in-memory cache when a remote backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memcache.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "redisjson":
		jsonCache, err := redisjson.NewRedisJSONCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create RedisJSON cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memcache.NewMemoryCache()
		}
		logger.Info("Using RedisJSON cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return jsonCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.FilePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memcache.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"file": cfg.Cache.SQLite.FilePath,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memcache.NewMemoryCache()
	}
}

func init() {
	// Print banner
	fmt.Println(`
   ________                __             ____
  / ____/ /_  ____ _____  / /____  _____ / __ \____  ___
 / /   / __ \/ __ '/ __ \/ __/ _ \/ ___// / / / __ \/ _ \
/ /___/ / / / /_/ / /_/ / /_/  __/ /   / /_/ / / / /  __/
\____/_/ /_/\__,_/ .___/\__/\___/_/    \____/_/ /_/\___/
                /_/
	`)
}
