// ABOUTME: Shared HTTP fetch, decode and cache helpers for the search pipelines
// ABOUTME: Wraps every remote query in a trace span and caches non-empty responses

package discussions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"discussions-app-api/core/domain"
	coreerrors "discussions-app-api/core/errors"
	"discussions-app-api/core/interfaces"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "discussions-app-api/core/discussions"

// Options configures the search pipelines
type Options struct {
	// HackerNewsBaseURL is the Algolia API origin
	HackerNewsBaseURL string

	// RedditBaseURL is the Reddit origin
	RedditBaseURL string

	// CacheTTL is how long non-empty responses are cached; 0 disables caching
	CacheTTL time.Duration

	// MaxResults caps each rendered result list
	MaxResults int
}

// DefaultOptions returns the public API endpoints, 5 results and a 5 minute cache
func DefaultOptions() Options {
	return Options{
		HackerNewsBaseURL: DefaultHackerNewsBaseURL,
		RedditBaseURL:     DefaultRedditBaseURL,
		CacheTTL:          5 * time.Minute,
		MaxResults:        DefaultMaxResults,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.HackerNewsBaseURL == "" {
		o.HackerNewsBaseURL = d.HackerNewsBaseURL
	}
	if o.RedditBaseURL == "" {
		o.RedditBaseURL = d.RedditBaseURL
	}
	if o.MaxResults <= 0 {
		o.MaxResults = d.MaxResults
	}
	return o
}

// fetcher performs one JSON GET against a search API
type fetcher struct {
	deps     interfaces.Dependencies
	api      string
	failMsg  string
	cacheTTL time.Duration
}

// getJSON fetches requestURL and decodes the body into out.
// Any non-2xx status becomes an ExternalAPIError carrying failMsg.
func (f *fetcher) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	if f.deps.HTTPClient == nil {
		return fmt.Errorf("HTTP client not configured")
	}

	resp, err := f.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    f.failMsg,
			API:        f.api,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", f.api, err)
	}
	return nil
}

func (f *fetcher) cacheKey(requestURL string) string {
	return fmt.Sprintf("discussions:%s:%s", f.api, requestURL)
}

// cached returns previously stored results for requestURL
func (f *fetcher) cached(ctx context.Context, requestURL string) ([]domain.DiscussionResult, bool) {
	if f.deps.Cache == nil || f.cacheTTL <= 0 {
		return nil, false
	}

	data, err := f.deps.Cache.Get(ctx, f.cacheKey(requestURL))
	if err != nil || data == nil {
		return nil, false
	}

	var items []domain.DiscussionResult
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, len(items) > 0
}

// store caches non-empty results for requestURL
func (f *fetcher) store(ctx context.Context, requestURL string, items []domain.DiscussionResult) {
	if f.deps.Cache == nil || f.cacheTTL <= 0 || len(items) == 0 {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := f.deps.Cache.Set(ctx, f.cacheKey(requestURL), data, f.cacheTTL); err != nil {
		f.deps.Log().Warn("Failed to cache search results", map[string]interface{}{
			"api":   f.api,
			"error": err.Error(),
		})
	}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records the outcome on span and ends it
func endSpan(span trace.Span, outcome Outcome) {
	span.SetAttributes(
		attribute.String("outcome", outcome.Kind.String()),
		attribute.Int("results", len(outcome.Items)),
	)
	if outcome.Kind == OutcomeFailed && outcome.Err != nil {
		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, outcome.Err.Error())
	}
	span.End()
}
