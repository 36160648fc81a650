// ABOUTME: Discussion service composes the Hacker News and Reddit pipelines
// ABOUTME: Runs both lookups concurrently; neither pipeline affects the other

package discussions

import (
	"context"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	"golang.org/x/sync/errgroup"
)

// LookupResult holds both pipelines' outcomes for one page
type LookupResult struct {
	Page       domain.PageContext
	Modes      domain.SearchModeSet
	HackerNews Outcome
	Reddit     Outcome
}

// Service handles related-discussion lookups
type Service struct {
	deps       interfaces.Dependencies
	hackerNews *HackerNewsPipeline
	reddit     *RedditPipeline
}

// NewService creates a discussion service
func NewService(deps interfaces.Dependencies, titles interfaces.TitleSource, opts Options) *Service {
	return &Service{
		deps:       deps,
		hackerNews: NewHackerNewsPipeline(deps, opts),
		reddit:     NewRedditPipeline(deps, titles, opts),
	}
}

// SearchHackerNews runs the Hacker News pipeline
func (s *Service) SearchHackerNews(ctx context.Context, pageURL string) Outcome {
	return s.hackerNews.Search(ctx, pageURL)
}

// SearchReddit runs the Reddit fallback chain
func (s *Service) SearchReddit(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) Outcome {
	return s.reddit.Search(ctx, page, modes)
}

// Lookup runs both pipelines concurrently and waits for both
func (s *Service) Lookup(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) LookupResult {
	result := LookupResult{Page: page, Modes: modes}

	// pipelines report failures as outcomes, so the group never errors
	var g errgroup.Group
	g.Go(func() error {
		result.HackerNews = s.SearchHackerNews(ctx, page.URL)
		return nil
	})
	g.Go(func() error {
		result.Reddit = s.SearchReddit(ctx, page, modes)
		return nil
	})
	_ = g.Wait()

	s.deps.Log().Info("Discussion lookup finished", map[string]interface{}{
		"url":        page.URL,
		"modes":      modes.String(),
		"hackernews": result.HackerNews.Kind.String(),
		"reddit":     result.Reddit.Kind.String(),
	})

	return result
}
