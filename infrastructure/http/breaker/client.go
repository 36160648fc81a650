// ABOUTME: Circuit breaking HTTP client decorator keyed by remote host
// ABOUTME: Fails fast with CircuitOpenError once a search API keeps failing

package breaker

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	coreerrors "discussions-app-api/core/errors"
	"discussions-app-api/core/interfaces"
)

// Default circuit breaker settings
const (
	DefaultMaxFailures uint32        = 5
	DefaultOpenTimeout time.Duration = 30 * time.Second
	DefaultInterval    time.Duration = 60 * time.Second
)

// errServerStatus marks a 5xx response so the breaker counts it as a failure
var errServerStatus = errors.New("server error status")

// Config configures the breakers
type Config struct {
	// MaxFailures is the number of consecutive failures before a host's circuit opens
	MaxFailures uint32

	// OpenTimeout is how long a circuit stays open before a half-open probe
	OpenTimeout time.Duration

	// Interval clears failure counts while closed
	Interval time.Duration
}

// Client wraps an HTTPClient with one circuit breaker per host
type Client struct {
	inner  interfaces.HTTPClient
	cfg    Config
	logger interfaces.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[interfaces.Response]
}

// New wraps inner. Zero config values fall back to the defaults.
func New(inner interfaces.HTTPClient, cfg Config, logger interfaces.Logger) *Client {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = DefaultMaxFailures
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = DefaultOpenTimeout
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &Client{
		inner:    inner,
		cfg:      cfg,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker[interfaces.Response]),
	}
}

// Get implements interfaces.HTTPClient. Transport errors and 5xx responses
// count as failures; 5xx responses are still returned to the caller.
func (c *Client) Get(ctx context.Context, rawURL string) (interfaces.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	cb := c.breaker(u.Host)
	resp, err := cb.Execute(func() (interfaces.Response, error) {
		resp, err := c.inner.Get(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= 500 {
			return resp, errServerStatus
		}
		return resp, nil
	})

	switch {
	case err == nil:
		return resp, nil
	case errors.Is(err, errServerStatus):
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, &coreerrors.CircuitOpenError{Host: u.Host, Err: err}
	default:
		return nil, err
	}
}

// State returns the breaker state for host
func (c *Client) State(host string) gobreaker.State {
	return c.breaker(host).State()
}

func (c *Client) breaker(host string) *gobreaker.CircuitBreaker[interfaces.Response] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[host]; ok {
		return cb
	}

	maxFailures := c.cfg.MaxFailures
	cb := gobreaker.NewCircuitBreaker[interfaces.Response](gobreaker.Settings{
		Name:        fmt.Sprintf("search:%s", host),
		MaxRequests: 1,
		Interval:    c.cfg.Interval,
		Timeout:     c.cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Circuit breaker state change", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
	c.breakers[host] = cb
	return cb
}

var _ interfaces.HTTPClient = (*Client)(nil)
