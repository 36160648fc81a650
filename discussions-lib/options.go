// ABOUTME: Configuration options for the discussions library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package discussions

import (
	"time"

	core "discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// Cache stores search responses; nil disables caching
	Cache interfaces.Cache

	// HTTPClient performs the search requests
	HTTPClient interfaces.HTTPClient

	// Logger receives pipeline logs
	Logger interfaces.Logger

	// TitleSource resolves page titles for the title search mode.
	// Defaults to the caller-supplied title, then the page's <title>.
	TitleSource interfaces.TitleSource

	// Tabs, when set, makes the default title lookup re-query the active
	// page before fetching the page's <title>
	Tabs interfaces.TabQuerier

	// Search configures endpoints, cache TTL and result count
	Search core.Options
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTitleSource sets how page titles are resolved
func WithTitleSource(source interfaces.TitleSource) Option {
	return func(c *Config) error {
		c.TitleSource = source
		return nil
	}
}

// WithTabQuerier reads titles from a fresh query of the active page
func WithTabQuerier(tabs interfaces.TabQuerier) Option {
	return func(c *Config) error {
		c.Tabs = tabs
		return nil
	}
}

// WithHackerNewsBaseURL points the Hacker News pipeline at another origin
func WithHackerNewsBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "Hacker News base URL cannot be empty")
		}
		c.Search.HackerNewsBaseURL = baseURL
		return nil
	}
}

// WithRedditBaseURL points the Reddit pipeline at another origin
func WithRedditBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "Reddit base URL cannot be empty")
		}
		c.Search.RedditBaseURL = baseURL
		return nil
	}
}

// WithCacheTTL sets how long search responses are cached; 0 disables caching
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.Search.CacheTTL = ttl
		return nil
	}
}

// WithMaxResults caps the number of discussions per source
func WithMaxResults(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewError(ErrorTypeConfiguration, "max results must be positive").
				WithContext("max_results", n)
		}
		c.Search.MaxResults = n
		return nil
	}
}

// LookupOption is a functional option for a single lookup
type LookupOption func(*LookupOptions)

// LookupOptions holds options for a single lookup
type LookupOptions struct {
	Modes domain.SearchModeSet
}

// WithModes selects the Reddit search modes
func WithModes(modes domain.SearchModeSet) LookupOption {
	return func(o *LookupOptions) {
		o.Modes = modes
	}
}

// WithAllModes enables every Reddit search mode
func WithAllModes() LookupOption {
	return WithModes(domain.SearchModeSet{ByURL: true, ByTitle: true, ByDomain: true})
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:      DefaultMemoryCache(),
		HTTPClient: DefaultHTTPClient(),
		Logger:     QuietLogger(),
		Search:     core.DefaultOptions(),
	}
}

// defaultLookupOptions returns URL-only search, matching the popup's initial state
func defaultLookupOptions() LookupOptions {
	return LookupOptions{Modes: domain.DefaultSearchModes()}
}

func applyLookupOptions(opts []LookupOption) LookupOptions {
	options := defaultLookupOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
