// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for caches, HTTP clients and loggers

package discussions

import (
	"time"

	"discussions-app-api/core/interfaces"
	"discussions-app-api/infrastructure/cache/memory"
	"discussions-app-api/infrastructure/cache/redis"
	"discussions-app-api/infrastructure/cache/sqlite"
	"discussions-app-api/infrastructure/http/breaker"
	httpInfra "discussions-app-api/infrastructure/http/standard"
	"discussions-app-api/infrastructure/logger/structured"
	"discussions-app-api/pkg/config"
)

// DefaultHTTPClient creates the standard client behind a per-host circuit breaker
func DefaultHTTPClient() interfaces.HTTPClient {
	return NewHTTPClient(DefaultHTTPClientConfig(), nil)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache at filePath
func DefaultSQLiteCache(filePath string, logger interfaces.Logger) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath, logger)
}

// DefaultLogger creates a JSON logger on stderr at the given level
func DefaultLogger(level string) interfaces.Logger {
	return structured.New(structured.Options{Level: level})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type CacheType

	// FilePath is the SQLite database file
	FilePath string

	// Redis configures the redis cache
	Redis config.RedisConfig
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeNone   CacheType = "none"
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeNone:
			c.Cache = nil
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "discussions-cache.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath, c.Logger)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open SQLite cache").WithCause(err)
			}
			c.Cache = cache
		case CacheTypeRedis:
			cache, err := redis.NewRedisCache(opt.Redis)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to connect to Redis").
					WithCause(err).
					WithContext("address", opt.Redis.Address)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// HTTPClientConfig holds configuration for the HTTP client
type HTTPClientConfig struct {
	Timeout       time.Duration
	MaxAttempts   int
	RatePerSecond float64
	UserAgent     string

	// Breaker configures the per-host circuit breaker; zero values use defaults
	Breaker breaker.Config
}

// DefaultHTTPClientConfig returns default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:       10 * time.Second,
		MaxAttempts:   httpInfra.DefaultMaxAttempts,
		RatePerSecond: 5,
		UserAgent:     httpInfra.DefaultUserAgent,
	}
}

// NewHTTPClient builds the standard client with cfg behind a circuit breaker
func NewHTTPClient(cfg HTTPClientConfig, logger interfaces.Logger) interfaces.HTTPClient {
	inner := httpInfra.NewStandardHTTPClientWithOptions(httpInfra.Options{
		Timeout:       cfg.Timeout,
		MaxAttempts:   cfg.MaxAttempts,
		RatePerSecond: cfg.RatePerSecond,
		UserAgent:     cfg.UserAgent,
	})
	return breaker.New(inner, cfg.Breaker, logger)
}

// WithHTTPClientConfig creates an HTTP client with custom configuration
func WithHTTPClientConfig(cfg HTTPClientConfig) Option {
	return func(c *Config) error {
		c.HTTPClient = NewHTTPClient(cfg, c.Logger)
		return nil
	}
}

// WithAppConfig applies the shared application config: endpoints,
// cache backend and TTL, and HTTP client settings
func WithAppConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewError(ErrorTypeConfiguration, "config cannot be nil")
		}

		c.Search.HackerNewsBaseURL = cfg.Search.HackerNewsBaseURL
		c.Search.RedditBaseURL = cfg.Search.RedditBaseURL
		c.Search.CacheTTL = cfg.CacheTTL()

		httpCfg := DefaultHTTPClientConfig()
		httpCfg.Timeout = cfg.HTTPTimeout()
		httpCfg.MaxAttempts = cfg.Search.MaxRetries
		httpCfg.RatePerSecond = cfg.Search.OutboundRatePerSecond
		if err := WithHTTPClientConfig(httpCfg)(c); err != nil {
			return err
		}

		return WithCacheOption(CacheOption{
			Type:     CacheType(cfg.Cache.Type),
			FilePath: cfg.Cache.SQLite.Path,
			Redis:    cfg.Cache.Redis,
		})(c)
	}
}
