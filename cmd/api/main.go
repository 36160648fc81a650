// ABOUTME: Main entry point for the Discussions API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"discussions-app-api/api"
	"discussions-app-api/api/handlers"
	"discussions-app-api/api/middleware"
	"discussions-app-api/core/discussions"
	"discussions-app-api/core/interfaces"
	"discussions-app-api/infrastructure/cache/memory"
	"discussions-app-api/infrastructure/cache/redis"
	"discussions-app-api/infrastructure/cache/sqlite"
	"discussions-app-api/infrastructure/http/breaker"
	stdhttp "discussions-app-api/infrastructure/http/standard"
	"discussions-app-api/infrastructure/logger/structured"
	"discussions-app-api/infrastructure/page"
	"discussions-app-api/infrastructure/tracing"
	"discussions-app-api/pkg/config"
	"discussions-app-api/pkg/featureflags"
	"discussions-app-api/pkg/utils/format"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	logger.Info("Starting Discussions API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}
	format.SetDateLocale(cfg.Display.DateLayout, loc)

	shutdownTracing, err := tracing.Setup(flags.IsEnabled(ctx, featureflags.TracingEnabled), os.Stdout)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	cache, closeCache := newCache(cfg, flags.IsEnabled(ctx, featureflags.CacheEnabled), logger)
	defer closeCache()

	httpClient := breaker.New(stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:       cfg.HTTPTimeout(),
		MaxAttempts:   cfg.Search.MaxRetries,
		RatePerSecond: cfg.Search.OutboundRatePerSecond,
		Transport:     &middleware.LoggingRoundTripper{Logger: logger},
	}), breaker.Config{}, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// request title first, then the page's own <title>
	titles := page.TitleChain{
		page.RequestTitle{},
		page.NewTitleFetcher(httpClient, logger),
	}

	service := discussions.NewService(deps, titles, discussions.Options{
		HackerNewsBaseURL: cfg.Search.HackerNewsBaseURL,
		RedditBaseURL:     cfg.Search.RedditBaseURL,
		CacheTTL:          cfg.CacheTTL(),
	})

	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router, stopLimiter := api.NewAPIWithMiddleware(apiConfig)
	defer stopLimiter()

	handlers.NewDiscussionsHandler(service, flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.HTTPTimeout() + 15*time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache. Redis and SQLite failures fall back to memory.
func newCache(cfg *config.Config, enabled bool, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	if !enabled {
		logger.Info("Caching disabled", nil)
		return nil, noop
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), noop
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, func() { redisCache.Close() }
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.Cache.SQLite.Path,
			})
			return memory.NewMemoryCache(), noop
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, func() { sqliteCache.Close() }
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), noop
	}
}

func init() {
	fmt.Println(`
  ___  _                        _
 |   \(_)___ __ _  _ ______ (_)___ _ _  ___
 | |) | (_-</ _| || (_-<_-< | / _ \ ' \(_-<
 |___/|_/__/\__|\_,_/__/__/ |_\___/_||_/__/
	`)
}
