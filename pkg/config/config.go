// ABOUTME: Configuration management with defaults, an optional YAML file and environment overrides
// ABOUTME: Defines server, cache, search, logging and display settings

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Search contains outbound search API configuration
	Search SearchConfig `yaml:"search"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`

	// Display contains result formatting configuration
	Display DisplayConfig `yaml:"display"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	// RateLimit is the number of requests per minute allowed per client; 0 disables limiting
	RateLimit int `yaml:"rate_limit"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `yaml:"type"`

	// TTLSeconds is how long search responses are cached
	TTLSeconds int `yaml:"ttl_seconds"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`

	// KeyPrefix namespaces every key
	KeyPrefix string `yaml:"key_prefix"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string `yaml:"path"`
}

// SearchConfig holds outbound search settings
type SearchConfig struct {
	HackerNewsBaseURL string `yaml:"hackernews_base_url"`
	RedditBaseURL     string `yaml:"reddit_base_url"`

	// TimeoutSeconds bounds each outbound request
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxRetries is the total number of attempts per request; 1 means no retry
	MaxRetries int `yaml:"max_retries"`

	// OutboundRatePerSecond limits requests per search host; 0 disables limiting
	OutboundRatePerSecond float64 `yaml:"outbound_rate_per_second"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`

	// File enables rotated file logging when set
	File string `yaml:"file"`
}

// DisplayConfig holds date formatting settings
type DisplayConfig struct {
	// DateLayout is a Go time layout for result dates
	DateLayout string `yaml:"date_layout"`

	// Timezone is an IANA zone name, or "Local"
	Timezone string `yaml:"timezone"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8000",
			RateLimit: 100,
		},
		Cache: CacheConfig{
			Type:       "memory",
			TTLSeconds: 300,
			Redis: RedisConfig{
				Address:   "localhost:6379",
				KeyPrefix: "discussions:",
			},
			SQLite: SQLiteConfig{
				Path: "discussions-cache.db",
			},
		},
		Search: SearchConfig{
			HackerNewsBaseURL:     "https://hn.algolia.com",
			RedditBaseURL:         "https://www.reddit.com",
			TimeoutSeconds:        10,
			MaxRetries:            1,
			OutboundRatePerSecond: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			DateLayout: "1/2/2006",
			Timezone:   "Local",
		},
	}
}

// LoadFromEnv builds the configuration from defaults, the YAML file named by
// CONFIG_FILE (if any), then environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile builds the configuration from defaults overlaid with a YAML file
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()
	if err := cfg.applyFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnvOverrides maps environment variables onto cfg. Malformed numbers are errors.
func ApplyEnvOverrides(cfg *Config) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Cache.Type, "CACHE_TYPE")
	setString(&cfg.Cache.Redis.Address, "REDIS_ADDRESS")
	setString(&cfg.Cache.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Cache.Redis.KeyPrefix, "REDIS_KEY_PREFIX")
	setString(&cfg.Cache.SQLite.Path, "SQLITE_PATH")
	setString(&cfg.Search.HackerNewsBaseURL, "HACKERNEWS_BASE_URL")
	setString(&cfg.Search.RedditBaseURL, "REDDIT_BASE_URL")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.File, "LOG_FILE")
	setString(&cfg.Display.DateLayout, "DATE_LAYOUT")
	setString(&cfg.Display.Timezone, "TIMEZONE")

	ints := []struct {
		key string
		dst *int
	}{
		{"RATE_LIMIT", &cfg.Server.RateLimit},
		{"REDIS_DB", &cfg.Cache.Redis.DB},
		{"CACHE_TTL_SECONDS", &cfg.Cache.TTLSeconds},
		{"HTTP_TIMEOUT_SECONDS", &cfg.Search.TimeoutSeconds},
		{"HTTP_MAX_RETRIES", &cfg.Search.MaxRetries},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	if value := os.Getenv("OUTBOUND_RATE_PER_SECOND"); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("OUTBOUND_RATE_PER_SECOND: %w", err)
		}
		cfg.Search.OutboundRatePerSecond = f
	}

	return nil
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.TTLSeconds < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	for name, raw := range map[string]string{
		"hackernews base URL": c.Search.HackerNewsBaseURL,
		"reddit base URL":     c.Search.RedditBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL", name)
		}
	}

	if c.Search.TimeoutSeconds < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	if c.Search.MaxRetries < 1 {
		return errors.New("HTTP max retries must be at least 1")
	}

	if c.Search.OutboundRatePerSecond < 0 {
		return errors.New("outbound rate cannot be negative")
	}

	if c.Display.DateLayout == "" {
		return errors.New("date layout cannot be empty")
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	return nil
}

// CacheTTL returns the cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// HTTPTimeout returns the outbound request timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Search.TimeoutSeconds) * time.Second
}

// Location resolves the display timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" || c.Display.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}
