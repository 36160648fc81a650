// ABOUTME: Main client for the discussions library
// ABOUTME: Looks up related Hacker News and Reddit threads without the HTTP API

package discussions

import (
	"context"
	"io"
	"sync"

	core "discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	"discussions-app-api/core/popup"
	"discussions-app-api/infrastructure/page"
)

// Client is the main entry point for the discussions library
type Client struct {
	service *core.Service
	deps    interfaces.Dependencies
	config  Config

	mu     sync.Mutex
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	titles := config.TitleSource
	if titles == nil {
		titles = defaultTitleSource(&config)
	}

	return &Client{
		service: core.NewService(deps, titles, config.Search),
		deps:    deps,
		config:  config,
	}, nil
}

func defaultTitleSource(config *Config) interfaces.TitleSource {
	fetcher := page.NewTitleFetcher(config.HTTPClient, config.Logger)
	if config.Tabs != nil {
		return page.TitleChain{popup.TabTitleSource{Tabs: config.Tabs}, fetcher}
	}
	return page.TitleChain{page.RequestTitle{}, fetcher}
}

// Service returns the underlying discussion service, for hosts that drive
// the popup controller directly
func (c *Client) Service() *core.Service {
	return c.service
}

// Close releases the cache when it holds resources
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if closer, ok := c.config.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Lookup searches both sources for discussions about pageURL.
// title may be empty; it is only used by the title search mode.
func (c *Client) Lookup(ctx context.Context, pageURL, title string, opts ...LookupOption) (*LookupResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	target, err := newPage(pageURL, title)
	if err != nil {
		return nil, err
	}
	options := applyLookupOptions(opts)

	ctx = page.WithRequestTitle(ctx, target.URL, target.Title)
	result := c.service.Lookup(ctx, target, options.Modes)

	return &LookupResult{
		URL:        target.URL,
		Domain:     target.Domain,
		Modes:      result.Modes.String(),
		HackerNews: outcomeToPublic(result.HackerNews),
		Reddit:     outcomeToPublic(result.Reddit),
	}, nil
}

// SearchHackerNews searches Hacker News only
func (c *Client) SearchHackerNews(ctx context.Context, pageURL string) (*Outcome, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	target, err := newPage(pageURL, "")
	if err != nil {
		return nil, err
	}

	outcome := outcomeToPublic(c.service.SearchHackerNews(ctx, target.URL))
	return &outcome, nil
}

// SearchReddit runs the Reddit fallback chain only
func (c *Client) SearchReddit(ctx context.Context, pageURL, title string, opts ...LookupOption) (*Outcome, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	target, err := newPage(pageURL, title)
	if err != nil {
		return nil, err
	}
	options := applyLookupOptions(opts)

	ctx = page.WithRequestTitle(ctx, target.URL, target.Title)
	outcome := outcomeToPublic(c.service.SearchReddit(ctx, target, options.Modes))
	return &outcome, nil
}

func newPage(pageURL, title string) (domain.PageContext, error) {
	target, err := domain.NewPageContext(pageURL, title)
	if err != nil {
		return domain.PageContext{}, NewError(ErrorTypeValidation, "invalid page URL").
			WithCause(err).
			WithContext("url", pageURL)
	}
	return target, nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	// cache is optional; without one every lookup goes to the network
	return nil
}
