// ABOUTME: Hacker News pipeline searches Algolia for stories linking to a page
// ABOUTME: Re-filters hits by hostname and ranks them by comment count

package discussions

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultHackerNewsBaseURL is the public Algolia HN search origin
	DefaultHackerNewsBaseURL = "https://hn.algolia.com"

	// HackerNewsItemURL prefixes an objectID to build the thread permalink
	HackerNewsItemURL = "https://news.ycombinator.com/item?id="

	hackerNewsFailMsg = "Hacker News API request failed"
	untitled          = "No title"
)

// hackerNewsResponse mirrors the fields we read from /api/v1/search
type hackerNewsResponse struct {
	Hits []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Points      *int   `json:"points"`
		NumComments *int   `json:"num_comments"`
		ObjectID    string `json:"objectID"`
		CreatedAtI  *int64 `json:"created_at_i"`
	} `json:"hits"`
}

// HackerNewsPipeline looks up Hacker News discussions for a page
type HackerNewsPipeline struct {
	deps       interfaces.Dependencies
	baseURL    string
	maxResults int
	fetch      *fetcher
}

// NewHackerNewsPipeline creates the Hacker News pipeline
func NewHackerNewsPipeline(deps interfaces.Dependencies, opts Options) *HackerNewsPipeline {
	opts = opts.withDefaults()
	return &HackerNewsPipeline{
		deps:       deps,
		baseURL:    strings.TrimRight(opts.HackerNewsBaseURL, "/"),
		maxResults: opts.MaxResults,
		fetch: &fetcher{
			deps:     deps,
			api:      string(domain.SourceHackerNews),
			failMsg:  hackerNewsFailMsg,
			cacheTTL: opts.CacheTTL,
		},
	}
}

// BuildHackerNewsQuery returns the search URL for pageURL and the hostname
// results must match. The query is the hostname plus the path when it is not "/".
func BuildHackerNewsQuery(baseURL, pageURL string) (requestURL string, host string, err error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", "", err
	}

	host = strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", "", fmt.Errorf("page URL %q has no host", pageURL)
	}

	query := host
	if path := parsed.EscapedPath(); path != "" && path != "/" {
		query += " " + path
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("restrictSearchableAttributes", "url")

	return strings.TrimRight(baseURL, "/") + "/api/v1/search?" + params.Encode(), host, nil
}

// Search runs the single-mode Hacker News lookup for pageURL
func (p *HackerNewsPipeline) Search(ctx context.Context, pageURL string) Outcome {
	ctx, span := startSpan(ctx, "hackernews.search", attribute.String("page.url", pageURL))

	outcome := p.search(ctx, pageURL)
	endSpan(span, outcome)

	p.deps.Log().Debug("Hacker News search finished", map[string]interface{}{
		"url":     pageURL,
		"outcome": outcome.Kind.String(),
		"results": len(outcome.Items),
	})
	return outcome
}

func (p *HackerNewsPipeline) search(ctx context.Context, pageURL string) Outcome {
	requestURL, host, err := BuildHackerNewsQuery(p.baseURL, pageURL)
	if err != nil {
		return Failed(err)
	}

	if items, ok := p.fetch.cached(ctx, requestURL); ok {
		return Found(RankByComments(items, p.maxResults))
	}

	var resp hackerNewsResponse
	if err := p.fetch.getJSON(ctx, requestURL, &resp); err != nil {
		return Failed(err)
	}

	relevant := make([]domain.DiscussionResult, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		// Algolia matches loosely; keep only hits that really point at this host
		if !sameHost(hit.URL, host) {
			continue
		}

		title := hit.Title
		if title == "" {
			title = untitled
		}
		relevant = append(relevant, domain.DiscussionResult{
			Title:        title,
			URL:          HackerNewsItemURL + hit.ObjectID,
			Points:       hit.Points,
			CommentCount: hit.NumComments,
			CreatedAt:    hit.CreatedAtI,
			Source:       domain.SourceHackerNews,
		})
	}

	if len(relevant) == 0 {
		return Empty()
	}

	p.fetch.store(ctx, requestURL, relevant)
	return Found(RankByComments(relevant, p.maxResults))
}

// sameHost reports whether rawURL parses and has hostname host
func sameHost(rawURL, host string) bool {
	if rawURL == "" {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.ToLower(parsed.Hostname()) == host
}
