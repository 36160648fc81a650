// ABOUTME: Reddit pipeline searches by URL, then title, then domain until one yields results
// ABOUTME: Each enabled mode is one step of a strictly sequential fallback chain

package discussions

import (
	"context"
	"net/url"
	"strings"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultRedditBaseURL is the public Reddit origin
	DefaultRedditBaseURL = "https://www.reddit.com"

	redditPermalinkBase = "https://www.reddit.com"
	redditFailMsg       = "Reddit API request failed"
	redditSearchLimit   = "10"
)

// redditResponse mirrors the fields we read from /search.json
type redditResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				Title       string   `json:"title"`
				Permalink   string   `json:"permalink"`
				Score       *int     `json:"score"`
				NumComments *int     `json:"num_comments"`
				CreatedUTC  *float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// RedditPipeline looks up Reddit discussions for a page
type RedditPipeline struct {
	deps       interfaces.Dependencies
	baseURL    string
	maxResults int
	titles     interfaces.TitleSource
	fetch      *fetcher
}

// NewRedditPipeline creates the Reddit pipeline. titles performs the fresh
// title lookup for by-title searches; nil means only the snapshot title is used.
func NewRedditPipeline(deps interfaces.Dependencies, titles interfaces.TitleSource, opts Options) *RedditPipeline {
	opts = opts.withDefaults()
	return &RedditPipeline{
		deps:       deps,
		baseURL:    strings.TrimRight(opts.RedditBaseURL, "/"),
		maxResults: opts.MaxResults,
		titles:     titles,
		fetch: &fetcher{
			deps:     deps,
			api:      string(domain.SourceReddit),
			failMsg:  redditFailMsg,
			cacheTTL: opts.CacheTTL,
		},
	}
}

// BuildRedditSearchURL returns the search.json URL for a raw query
func BuildRedditSearchURL(baseURL, query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "relevance")
	params.Set("t", "all")
	params.Set("limit", redditSearchLimit)

	return strings.TrimRight(baseURL, "/") + "/search.json?" + params.Encode()
}

// Search runs the fallback chain over the enabled modes in priority order:
// url, title, domain. With no mode enabled nothing is requested.
func (p *RedditPipeline) Search(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) Outcome {
	if !modes.Any() {
		p.deps.Log().Info("Reddit search skipped, no search mode enabled", map[string]interface{}{
			"url": page.URL,
		})
		return NoModes()
	}

	ctx, span := startSpan(ctx, "reddit.search",
		attribute.String("page.url", page.URL),
		attribute.String("modes", modes.String()),
	)

	enabled := modes.Modes()
	steps := make([]Step, 0, len(enabled))
	for _, mode := range enabled {
		steps = append(steps, p.step(page, mode))
	}

	outcome := Fallback(steps...)(ctx)
	endSpan(span, outcome)
	return outcome
}

// step builds the fallback step for one mode
func (p *RedditPipeline) step(page domain.PageContext, mode domain.SearchMode) Step {
	return func(ctx context.Context) Outcome {
		var outcome Outcome
		switch mode {
		case domain.SearchByURL:
			outcome = p.Query(ctx, "url:"+page.URL)
		case domain.SearchByTitle:
			title, ok := p.resolveTitle(ctx, page)
			if !ok {
				outcome = Skipped(MsgNoTitle)
				break
			}
			outcome = p.Query(ctx, title)
		case domain.SearchByDomain:
			outcome = p.Query(ctx, "url:"+page.Domain)
		default:
			outcome = Skipped(MsgNoResults)
		}

		fields := map[string]interface{}{
			"url":     page.URL,
			"mode":    string(mode),
			"outcome": outcome.Kind.String(),
			"results": len(outcome.Items),
		}
		if outcome.Err != nil {
			fields["error"] = outcome.Err.Error()
		}
		p.deps.Log().Debug("Reddit search step finished", fields)

		return outcome
	}
}

// resolveTitle asks the title source for a fresh title and falls back to the
// snapshot taken when the lookup started.
func (p *RedditPipeline) resolveTitle(ctx context.Context, page domain.PageContext) (string, bool) {
	if p.titles != nil {
		if title, ok := p.titles.Title(ctx, page.URL); ok && strings.TrimSpace(title) != "" {
			return strings.TrimSpace(title), true
		}
	}
	if page.HasTitle() {
		return page.Title, true
	}
	return "", false
}

// Query runs a single Reddit search. Zero items is Empty; any error is Failed.
func (p *RedditPipeline) Query(ctx context.Context, query string) Outcome {
	requestURL := BuildRedditSearchURL(p.baseURL, query)

	ctx, span := startSpan(ctx, "reddit.query", attribute.String("query", query))

	outcome := p.query(ctx, requestURL)
	endSpan(span, outcome)
	return outcome
}

func (p *RedditPipeline) query(ctx context.Context, requestURL string) Outcome {
	if items, ok := p.fetch.cached(ctx, requestURL); ok {
		return Found(RankByComments(items, p.maxResults))
	}

	var resp redditResponse
	if err := p.fetch.getJSON(ctx, requestURL, &resp); err != nil {
		return Failed(err)
	}

	children := resp.Data.Children
	if len(children) == 0 {
		return Empty()
	}

	items := make([]domain.DiscussionResult, 0, len(children))
	for _, child := range children {
		post := child.Data

		title := post.Title
		if title == "" {
			title = untitled
		}

		var createdAt *int64
		if post.CreatedUTC != nil {
			createdAt = domain.Int64(int64(*post.CreatedUTC))
		}

		items = append(items, domain.DiscussionResult{
			Title:        title,
			URL:          redditPermalinkBase + post.Permalink,
			Points:       post.Score,
			CommentCount: post.NumComments,
			CreatedAt:    createdAt,
			Source:       domain.SourceReddit,
		})
	}

	p.fetch.store(ctx, requestURL, items)
	return Found(RankByComments(items, p.maxResults))
}
