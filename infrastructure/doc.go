// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: In-memory cache using go-cache
// - cache/redis: Redis cache shared between API instances
// - cache/sqlite: SQLite cache for single-host persistence
// - http/standard: Standard library HTTP client with retries and per-host rate limits
// - http/breaker: Per-host circuit breaker decorator
// - logger/structured: logrus JSON logger with optional rotated file output
// - page: Page title lookup and fixed-page tab sources
// - tracing: OpenTelemetry tracer provider setup
//
// # HTTP Client
//
//	inner := standard.NewStandardHTTPClientWithOptions(standard.Options{
//	    Timeout:       10 * time.Second,
//	    RatePerSecond: 5,
//	})
//	client := breaker.New(inner, breaker.Config{}, logger)
//	resp, err := client.Get(ctx, "https://hn.algolia.com/api/v1/search?query=go.dev")
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", File: "discussions.log"})
//	logger.Info("Lookup finished", map[string]interface{}{
//	    "url": "https://go.dev",
//	})
package infrastructure
