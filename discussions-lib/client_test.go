package discussions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	core "discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/infrastructure/page"
	"discussions-app-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hnBody = `{"hits":[
	{"title":"Example launch","url":"https://example.com/post","points":50,"num_comments":12,"objectID":"101","created_at_i":1672531200},
	{"title":"Other site","url":"https://other.com/post","points":5,"num_comments":99,"objectID":"102"}
]}`

const redditBody = `{"data":{"children":[
	{"data":{"title":"Discussion thread","permalink":"/r/golang/comments/abc/","score":8,"num_comments":3,"created_utc":1672531200.0}}
]}}`

const emptyRedditBody = `{"data":{"children":[]}}`

// fakeAPIs serves both search APIs and records Reddit queries
type fakeAPIs struct {
	mu            sync.Mutex
	redditQueries []string
	redditFound   func(q string) bool
}

func (f *fakeAPIs) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "url", r.URL.Query().Get("restrictSearchableAttributes"))
		w.Write([]byte(hnBody))
	})
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		f.mu.Lock()
		f.redditQueries = append(f.redditQueries, q)
		f.mu.Unlock()

		if f.redditFound != nil && f.redditFound(q) {
			w.Write([]byte(redditBody))
			return
		}
		w.Write([]byte(emptyRedditBody))
	})
	return mux
}

func (f *fakeAPIs) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.redditQueries...)
}

func newTestClient(t *testing.T, f *fakeAPIs, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(f.handler(t))
	t.Cleanup(server.Close)

	base := []Option{
		WithHackerNewsBaseURL(server.URL),
		WithRedditBaseURL(server.URL),
		WithCacheOption(CacheOption{Type: CacheTypeNone}),
	}
	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClient_Lookup(t *testing.T) {
	f := &fakeAPIs{redditFound: func(q string) bool { return q == "url:https://example.com/post" }}
	client := newTestClient(t, f)

	result, err := client.Lookup(context.Background(), "https://example.com/post", "")
	require.NoError(t, err)

	assert.Equal(t, "example.com", result.Domain)
	assert.Equal(t, "url", result.Modes)

	require.True(t, result.HackerNews.Found())
	require.Len(t, result.HackerNews.Discussions, 1)
	hn := result.HackerNews.Discussions[0]
	assert.Equal(t, "Example launch", hn.Title)
	assert.Equal(t, "https://news.ycombinator.com/item?id=101", hn.URL)
	assert.Equal(t, "hackernews", hn.Source)
	require.NotNil(t, hn.CommentCount)
	assert.Equal(t, 12, *hn.CommentCount)

	require.True(t, result.Reddit.Found())
	require.Len(t, result.Reddit.Discussions, 1)
	assert.Equal(t, "https://www.reddit.com/r/golang/comments/abc/", result.Reddit.Discussions[0].URL)
	assert.Equal(t, []string{"url:https://example.com/post"}, f.queries())
}

func TestClient_SearchReddit_FallsBackToTitle(t *testing.T) {
	f := &fakeAPIs{redditFound: func(q string) bool { return q == "My Page" }}
	client := newTestClient(t, f)

	outcome, err := client.SearchReddit(context.Background(), "https://example.com/post", "My Page", WithAllModes())
	require.NoError(t, err)

	assert.Equal(t, StatusFound, outcome.Status)
	assert.Equal(t, []string{"url:https://example.com/post", "My Page"}, f.queries())
}

func TestClient_TabQuerierSuppliesTitle(t *testing.T) {
	f := &fakeAPIs{redditFound: func(q string) bool { return q == "Tab Title" }}
	tab, err := page.NewStaticTab("https://example.com/post", "Tab Title")
	require.NoError(t, err)
	client := newTestClient(t, f, WithTabQuerier(tab))

	// the snapshot carries no title, so only the tab can supply one
	target, err := domain.NewPageContext("https://example.com/post", "")
	require.NoError(t, err)
	outcome := client.Service().SearchReddit(context.Background(), target,
		domain.SearchModeSet{ByTitle: true})

	assert.Equal(t, core.OutcomeFound, outcome.Kind)
	assert.Equal(t, []string{"Tab Title"}, f.queries())
}

func TestClient_SearchReddit_Exhausted(t *testing.T) {
	f := &fakeAPIs{}
	client := newTestClient(t, f)

	outcome, err := client.SearchReddit(context.Background(), "https://example.com/post", "",
		WithModes(domain.SearchModeSet{ByURL: true, ByDomain: true}))
	require.NoError(t, err)

	assert.Equal(t, StatusEmpty, outcome.Status)
	assert.Equal(t, "No related discussions found", outcome.Message)
	assert.Equal(t, "No related discussions found", outcome.Text())
	assert.Empty(t, outcome.Discussions)
	assert.Equal(t, []string{"url:https://example.com/post", "url:example.com"}, f.queries())
}

func TestClient_SearchReddit_NoModes(t *testing.T) {
	f := &fakeAPIs{}
	client := newTestClient(t, f)

	outcome, err := client.SearchReddit(context.Background(), "https://example.com/post", "",
		WithModes(domain.SearchModeSet{}))
	require.NoError(t, err)

	assert.Equal(t, StatusNoModes, outcome.Status)
	assert.Equal(t, "Please select at least one search method", outcome.Message)
	assert.Empty(t, f.queries())
}

func TestClient_SearchHackerNews(t *testing.T) {
	client := newTestClient(t, &fakeAPIs{})

	outcome, err := client.SearchHackerNews(context.Background(), "https://example.com/post")
	require.NoError(t, err)

	require.True(t, outcome.Found())
	text := outcome.Text()
	assert.True(t, strings.HasPrefix(text, "Example launch\n  https://news.ycombinator.com/item?id=101"), text)
	assert.Contains(t, text, "50 points · 12 comments")
}

func TestClient_SearchHackerNews_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(WithHackerNewsBaseURL(server.URL), WithCacheTTL(0))
	require.NoError(t, err)
	defer client.Close()

	outcome, err := client.SearchHackerNews(context.Background(), "https://example.com/post")
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, "Query failed: Hacker News API request failed", outcome.Message)
	assert.Error(t, outcome.Err)
}

func TestClient_InvalidURL(t *testing.T) {
	client := newTestClient(t, &fakeAPIs{})

	_, err := client.Lookup(context.Background(), "not a url", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestClient_Closed(t *testing.T) {
	client, err := NewClient()
	require.NoError(t, err)
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err = client.SearchHackerNews(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestNewClient_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty hn base", WithHackerNewsBaseURL("")},
		{"empty reddit base", WithRedditBaseURL("")},
		{"negative ttl", WithCacheTTL(-time.Second)},
		{"zero results", WithMaxResults(0)},
		{"unknown cache", WithCacheOption(CacheOption{Type: "disk"})},
		{"nil http client", WithHTTPClient(nil)},
		{"nil app config", WithAppConfig(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.opt)
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestWithAppConfig(t *testing.T) {
	f := &fakeAPIs{redditFound: func(string) bool { return true }}
	server := httptest.NewServer(f.handler(t))
	defer server.Close()

	cfg := config.Defaults()
	cfg.Search.HackerNewsBaseURL = server.URL
	cfg.Search.RedditBaseURL = server.URL
	cfg.Cache.Type = "sqlite"
	cfg.Cache.SQLite.Path = t.TempDir() + "/cache.db"

	client, err := NewClient(WithAppConfig(cfg))
	require.NoError(t, err)
	defer client.Close()

	for i := 0; i < 2; i++ {
		outcome, err := client.SearchReddit(context.Background(), "https://example.com/post", "")
		require.NoError(t, err)
		assert.True(t, outcome.Found())
	}

	// second lookup is served from the SQLite cache
	assert.Len(t, f.queries(), 1)
}
