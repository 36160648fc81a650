package handlers

import (
	"context"
	"sync"

	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/infrastructure/page"
)

// mockDiscussionService is a mock implementation of the discussion service
type mockDiscussionService struct {
	mu sync.Mutex

	lookupFunc     func(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.LookupResult
	hackerNewsFunc func(ctx context.Context, pageURL string) discussions.Outcome
	redditFunc     func(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.Outcome

	lookupCalls     int
	hackerNewsCalls int
	redditCalls     int
	lastModes       domain.SearchModeSet
	lastTitle       string
}

func (m *mockDiscussionService) Lookup(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.LookupResult {
	m.mu.Lock()
	m.lookupCalls++
	m.lastModes = modes
	m.lastTitle, _ = page.RequestTitle{}.Title(ctx, p.URL)
	m.mu.Unlock()

	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, p, modes)
	}
	return discussions.LookupResult{
		Page:       p,
		Modes:      modes,
		HackerNews: discussions.Empty(),
		Reddit:     discussions.Empty(),
	}
}

func (m *mockDiscussionService) SearchHackerNews(ctx context.Context, pageURL string) discussions.Outcome {
	m.mu.Lock()
	m.hackerNewsCalls++
	m.mu.Unlock()

	if m.hackerNewsFunc != nil {
		return m.hackerNewsFunc(ctx, pageURL)
	}
	return discussions.Empty()
}

func (m *mockDiscussionService) SearchReddit(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.Outcome {
	m.mu.Lock()
	m.redditCalls++
	m.lastModes = modes
	m.lastTitle, _ = page.RequestTitle{}.Title(ctx, p.URL)
	m.mu.Unlock()

	if m.redditFunc != nil {
		return m.redditFunc(ctx, p, modes)
	}
	return discussions.Empty()
}

func hnResults() []domain.DiscussionResult {
	return []domain.DiscussionResult{
		{
			Title:        "Ask HN: Example",
			URL:          "https://news.ycombinator.com/item?id=123",
			Points:       domain.Int(10),
			CommentCount: domain.Int(4),
			CreatedAt:    domain.Int64(1700000000),
			Source:       domain.SourceHackerNews,
		},
	}
}
