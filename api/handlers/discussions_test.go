package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"discussions-app-api/api/dto/responses"
	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/pkg/featureflags"
	"github.com/PuerkitoBio/goquery"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, service DiscussionService, flags featureflags.Manager) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDiscussionsHandler(service, flags).RegisterRoutes(api)
	return api
}

func TestDiscussionsHandler_RegisterRoutes(t *testing.T) {
	api := newTestAPI(t, &mockDiscussionService{}, nil)

	openapi := api.OpenAPI()
	for _, path := range []string{"/discussions", "/discussions/hackernews", "/discussions/reddit", "/health"} {
		require.NotNil(t, openapi.Paths[path], "path %s not registered", path)
		assert.NotNil(t, openapi.Paths[path].Get, "GET not registered for %s", path)
	}
}

func TestDiscussionsHandler_Lookup(t *testing.T) {
	service := &mockDiscussionService{
		lookupFunc: func(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.LookupResult {
			return discussions.LookupResult{
				Page:       p,
				Modes:      modes,
				HackerNews: discussions.Found(hnResults()),
				Reddit:     discussions.Failed(errors.New("connection refused")),
			}
		},
	}
	api := newTestAPI(t, service, nil)

	resp := api.Get("/discussions?url=https://example.com/post&title=Example+Post&modes=url,title")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body responses.LookupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, "example.com", body.Page.Domain)
	assert.Equal(t, "Example Post", body.Page.Title)
	assert.Equal(t, "url,title", body.Modes)

	assert.Equal(t, "found", body.HackerNews.Status)
	require.Len(t, body.HackerNews.Results, 1)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body.HackerNews.Results[0].HTML))
	require.NoError(t, err)
	href, _ := doc.Find("a.discussion-title").Attr("href")
	assert.Equal(t, "https://news.ycombinator.com/item?id=123", href)

	assert.Equal(t, "failed", body.Reddit.Status)
	assert.Equal(t, "Query failed: connection refused", body.Reddit.Message)
	assert.Empty(t, body.Reddit.Results)

	assert.Equal(t, 1, service.lookupCalls)
	assert.Equal(t, "Example Post", service.lastTitle)
}

func TestDiscussionsHandler_Lookup_DefaultModes(t *testing.T) {
	service := &mockDiscussionService{}
	api := newTestAPI(t, service, nil)

	resp := api.Get("/discussions?url=https://example.com/")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	assert.Equal(t, domain.SearchModeSet{ByURL: true}, service.lastModes)
	assert.Empty(t, service.lastTitle)
}

func TestDiscussionsHandler_Lookup_NoModes(t *testing.T) {
	service := &mockDiscussionService{
		lookupFunc: func(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.LookupResult {
			return discussions.LookupResult{Page: p, Modes: modes, HackerNews: discussions.Empty(), Reddit: discussions.NoModes()}
		},
	}
	api := newTestAPI(t, service, nil)

	resp := api.Get("/discussions?url=https://example.com/&modes=none")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body responses.LookupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "no_modes", body.Reddit.Status)
	assert.Equal(t, discussions.MsgNoModes, body.Reddit.Message)
	assert.False(t, service.lastModes.Any())
}

func TestDiscussionsHandler_Lookup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "missing url", path: "/discussions", want: http.StatusUnprocessableEntity},
		{name: "relative url", path: "/discussions?url=/just/a/path", want: http.StatusBadRequest},
		{name: "unknown mode", path: "/discussions?url=https://example.com&modes=votes", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockDiscussionService{}
			api := newTestAPI(t, service, nil)

			resp := api.Get(tt.path)
			assert.Equal(t, tt.want, resp.Code, resp.Body.String())
			assert.Zero(t, service.lookupCalls)
		})
	}
}

func TestDiscussionsHandler_Lookup_SourceDisabled(t *testing.T) {
	flags := featureflags.NewStaticManager(featureflags.Defaults())
	flags.SetEnabled(featureflags.HackerNewsEnabled, false)

	service := &mockDiscussionService{
		redditFunc: func(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.Outcome {
			return discussions.Empty()
		},
	}
	api := newTestAPI(t, service, flags)

	resp := api.Get("/discussions?url=https://example.com/")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body responses.LookupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "skipped", body.HackerNews.Status)
	assert.Equal(t, MsgHackerNewsDisabled, body.HackerNews.Message)
	assert.Equal(t, "empty", body.Reddit.Status)

	assert.Zero(t, service.lookupCalls)
	assert.Zero(t, service.hackerNewsCalls)
	assert.Equal(t, 1, service.redditCalls)
}

func TestDiscussionsHandler_SearchHackerNews(t *testing.T) {
	var gotURL string
	service := &mockDiscussionService{
		hackerNewsFunc: func(ctx context.Context, pageURL string) discussions.Outcome {
			gotURL = pageURL
			return discussions.Found(hnResults())
		},
	}
	api := newTestAPI(t, service, nil)

	resp := api.Get("/discussions/hackernews?url=https://example.com/a")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body responses.SourceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "https://example.com/a", gotURL)
	assert.Equal(t, "found", body.Outcome.Status)
	require.Len(t, body.Outcome.Results, 1)
	assert.Equal(t, "hackernews", body.Outcome.Results[0].Source)
}

func TestDiscussionsHandler_SearchHackerNews_Disabled(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.HackerNewsEnabled: false,
	})
	service := &mockDiscussionService{}
	api := newTestAPI(t, service, flags)

	resp := api.Get("/discussions/hackernews?url=https://example.com/a")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Zero(t, service.hackerNewsCalls)
}

func TestDiscussionsHandler_SearchReddit(t *testing.T) {
	var gotModes domain.SearchModeSet
	service := &mockDiscussionService{
		redditFunc: func(ctx context.Context, p domain.PageContext, modes domain.SearchModeSet) discussions.Outcome {
			gotModes = modes
			return discussions.Skipped(discussions.MsgNoTitle)
		},
	}
	api := newTestAPI(t, service, nil)

	resp := api.Get("/discussions/reddit?url=https://example.com/a&modes=title&title=Hello")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body responses.SourceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, domain.SearchModeSet{ByTitle: true}, gotModes)
	assert.Equal(t, "Hello", service.lastTitle)
	assert.Equal(t, "skipped", body.Outcome.Status)
	assert.Equal(t, discussions.MsgNoTitle, body.Outcome.Message)
}

func TestDiscussionsHandler_Health(t *testing.T) {
	api := newTestAPI(t, &mockDiscussionService{}, nil)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Flags[string(featureflags.HackerNewsEnabled)])
	assert.False(t, body.Flags[string(featureflags.TracingEnabled)])
}
