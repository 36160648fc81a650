// ABOUTME: Standard HTTP client implementation with optional retries, timeout and per-host rate limiting
// ABOUTME: Backs the discussion search pipelines' outbound GET requests

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"discussions-app-api/core/interfaces"
	"golang.org/x/time/rate"
)

const (
	// DefaultUserAgent identifies the service to the search APIs
	DefaultUserAgent = "DiscussionsApp/1.0"

	// DefaultMaxAttempts makes exactly one attempt
	DefaultMaxAttempts = 1
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds each attempt
	Timeout time.Duration

	// MaxAttempts is the total number of attempts on transport errors and 5xx.
	// Values below 1 mean a single attempt.
	MaxAttempts int

	// RatePerSecond limits requests per remote host; zero disables limiting
	RatePerSecond float64

	// UserAgent overrides DefaultUserAgent
	UserAgent string

	// Transport replaces http.DefaultTransport, e.g. to log each request
	Transport http.RoundTripper
}

// StandardHTTPClient implements the HTTPClient interface using the standard library
type StandardHTTPClient struct {
	client      *http.Client
	maxAttempts int
	userAgent   string
	rps         float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewStandardHTTPClient creates a single-attempt client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewStandardHTTPClientWithOptions(Options{Timeout: timeout})
}

// NewStandardHTTPClientWithOptions creates a client from opts
func NewStandardHTTPClientWithOptions(opts Options) *StandardHTTPClient {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		maxAttempts: opts.MaxAttempts,
		userAgent:   opts.UserAgent,
		rps:         opts.RatePerSecond,
		limiters:    make(map[string]*rate.Limiter),
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, rawURL string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.wait(ctx, req.URL); err != nil {
			return nil, err
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			continue
		}

		// Don't retry on success or 4xx errors; the last attempt's 5xx is returned as is
		if resp.StatusCode < 500 || attempt == c.maxAttempts-1 {
			break
		}

		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// wait blocks until the host's limiter admits a request
func (c *StandardHTTPClient) wait(ctx context.Context, u *url.URL) error {
	if c.rps <= 0 {
		return nil
	}
	return c.limiter(u.Host).Wait(ctx)
}

func (c *StandardHTTPClient) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[host]
	if !ok {
		burst := int(c.rps)
		if burst < 1 {
			burst = 1
		}
		l = rate.NewLimiter(rate.Limit(c.rps), burst)
		c.limiters[host] = l
	}
	return l
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
