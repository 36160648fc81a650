package discussions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	service := NewService(interfaces.Dependencies{}, nil, DefaultOptions())

	if service == nil {
		t.Error("NewService returned nil")
	}
}

func TestService_Lookup_PipelinesAreIndependent(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, requestURL string) (interfaces.Response, error) {
			if strings.Contains(requestURL, "hn.algolia.com") {
				return nil, errors.New("algolia unreachable")
			}
			return ok(redditOne), nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, nil, DefaultOptions())

	page, err := domain.NewPageContext("https://example.com/foo", "")
	assert.NoError(t, err)

	result := service.Lookup(context.Background(), page, domain.DefaultSearchModes())

	assert.Equal(t, OutcomeFailed, result.HackerNews.Kind)
	assert.Equal(t, "Query failed: algolia unreachable", result.HackerNews.Message())
	assert.Equal(t, OutcomeFound, result.Reddit.Kind)
	assert.Len(t, client.requested(), 2)
}

func TestService_Lookup_NoModesStillSearchesHackerNews(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, requestURL string) (interfaces.Response, error) {
			return ok(`{"hits": []}`), nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, nil, DefaultOptions())

	page, _ := domain.NewPageContext("https://example.com/foo", "")
	result := service.Lookup(context.Background(), page, domain.SearchModeSet{})

	assert.Equal(t, OutcomeEmpty, result.HackerNews.Kind)
	assert.Equal(t, OutcomeNoModes, result.Reddit.Kind)
	assert.Len(t, client.requested(), 1)
}

func TestService_CustomBaseURLs(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, requestURL string) (interfaces.Response, error) {
			return ok(redditEmpty), nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, nil, Options{
		HackerNewsBaseURL: "http://hn.local/",
		RedditBaseURL:     "http://reddit.local",
	})

	service.SearchHackerNews(context.Background(), "https://example.com/")
	service.SearchReddit(context.Background(), testPage, domain.DefaultSearchModes())

	calls := client.requested()
	assert.Len(t, calls, 2)
	assert.True(t, strings.HasPrefix(calls[0], "http://hn.local/api/v1/search?"))
	assert.True(t, strings.HasPrefix(calls[1], "http://reddit.local/search.json?"))
}
