package popup

import (
	"context"
	"sync"

	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
)

type mockSearcher struct {
	mu              sync.Mutex
	hackerNewsCalls []string
	redditCalls     []domain.SearchModeSet

	SearchHackerNewsFunc func(ctx context.Context, pageURL string) discussions.Outcome
	SearchRedditFunc     func(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) discussions.Outcome
}

func (m *mockSearcher) SearchHackerNews(ctx context.Context, pageURL string) discussions.Outcome {
	m.mu.Lock()
	m.hackerNewsCalls = append(m.hackerNewsCalls, pageURL)
	m.mu.Unlock()

	if m.SearchHackerNewsFunc != nil {
		return m.SearchHackerNewsFunc(ctx, pageURL)
	}
	return discussions.Empty()
}

func (m *mockSearcher) SearchReddit(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) discussions.Outcome {
	m.mu.Lock()
	m.redditCalls = append(m.redditCalls, modes)
	m.mu.Unlock()

	if m.SearchRedditFunc != nil {
		return m.SearchRedditFunc(ctx, page, modes)
	}
	return discussions.Empty()
}

func (m *mockSearcher) redditModes() []domain.SearchModeSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SearchModeSet(nil), m.redditCalls...)
}

type mockTabs struct {
	mu    sync.Mutex
	page  domain.PageContext
	ok    bool
	err   error
	calls int
}

func (m *mockTabs) ActivePage(ctx context.Context) (domain.PageContext, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.page, m.ok, m.err
}

func (m *mockTabs) set(page domain.PageContext) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.page = page
	m.ok = true
}

func tabsFor(rawURL, title string) *mockTabs {
	page, err := domain.NewPageContext(rawURL, title)
	if err != nil {
		panic(err)
	}
	return &mockTabs{page: page, ok: true}
}

func results(titles ...string) []domain.DiscussionResult {
	items := make([]domain.DiscussionResult, len(titles))
	for i, title := range titles {
		items[i] = domain.DiscussionResult{
			Title:        title,
			URL:          "https://www.reddit.com/r/golang/" + title,
			CommentCount: domain.Int(i),
			Source:       domain.SourceReddit,
		}
	}
	return items
}
