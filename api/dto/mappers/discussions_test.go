package mappers

import (
	"errors"
	"strings"
	"testing"

	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDiscussionResponse(t *testing.T) {
	result := domain.DiscussionResult{
		Title:        "Show HN: Something",
		URL:          "https://news.ycombinator.com/item?id=1",
		Points:       domain.Int(42),
		CommentCount: domain.Int(7),
		CreatedAt:    domain.Int64(1672531200),
		Source:       domain.SourceHackerNews,
	}

	response, err := ToDiscussionResponse(result)
	require.NoError(t, err)

	assert.Equal(t, "Show HN: Something", response.Title)
	assert.Equal(t, "https://news.ycombinator.com/item?id=1", response.URL)
	assert.Equal(t, "hackernews", response.Source)
	require.NotNil(t, response.Points)
	assert.Equal(t, 42, *response.Points)
	require.NotNil(t, response.CommentCount)
	assert.Equal(t, 7, *response.CommentCount)
	assert.NotEmpty(t, response.Date)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(response.HTML))
	require.NoError(t, err)
	link := doc.Find("div.discussion-item > a.discussion-title")
	assert.Equal(t, "Show HN: Something", link.Text())
	assert.Equal(t, "42 points", doc.Find("span.points").Text())
	assert.Equal(t, "7 comments", doc.Find("span.comments").Text())
}

func TestToDiscussionResponse_MissingOptionalFields(t *testing.T) {
	response, err := ToDiscussionResponse(domain.DiscussionResult{
		Title:  "Bare",
		URL:    "https://www.reddit.com/r/golang/comments/x",
		Source: domain.SourceReddit,
	})
	require.NoError(t, err)

	assert.Nil(t, response.Points)
	assert.Nil(t, response.CommentCount)
	assert.Empty(t, response.Date)
	assert.NotContains(t, response.HTML, "span")
}

func TestToDiscussionResponse_ZeroTimestampHasNoDate(t *testing.T) {
	response, err := ToDiscussionResponse(domain.DiscussionResult{
		Title:        "Epoch",
		URL:          "https://www.reddit.com/r/golang/comments/y",
		CommentCount: domain.Int(3),
		CreatedAt:    domain.Int64(0),
		Source:       domain.SourceReddit,
	})
	require.NoError(t, err)

	assert.Empty(t, response.Date)
	assert.NotContains(t, response.HTML, "span class=\"date\"")
	assert.Contains(t, response.HTML, "3 comments")
}

func TestToOutcomeResponse(t *testing.T) {
	tests := []struct {
		name        string
		outcome     discussions.Outcome
		wantStatus  string
		wantMessage string
		wantResults int
	}{
		{
			name: "found",
			outcome: discussions.Found([]domain.DiscussionResult{
				{Title: "a", URL: "https://example.com/a"},
				{Title: "b", URL: "https://example.com/b"},
			}),
			wantStatus:  "found",
			wantResults: 2,
		},
		{name: "empty", outcome: discussions.Empty(), wantStatus: "empty", wantMessage: discussions.MsgNoResults},
		{name: "failed", outcome: discussions.Failed(errors.New("boom")), wantStatus: "failed", wantMessage: "Query failed: boom"},
		{name: "skipped", outcome: discussions.Skipped(discussions.MsgNoTitle), wantStatus: "skipped", wantMessage: discussions.MsgNoTitle},
		{name: "no modes", outcome: discussions.NoModes(), wantStatus: "no_modes", wantMessage: discussions.MsgNoModes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := ToOutcomeResponse(tt.outcome)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, response.Status)
			assert.Equal(t, tt.wantMessage, response.Message)
			assert.Len(t, response.Results, tt.wantResults)
			assert.NotNil(t, response.Results)
		})
	}
}

func TestToLookupResponse(t *testing.T) {
	page, err := domain.NewPageContext("https://example.com/post", "Post")
	require.NoError(t, err)

	response, err := ToLookupResponse(discussions.LookupResult{
		Page:       page,
		Modes:      domain.SearchModeSet{ByURL: true, ByDomain: true},
		HackerNews: discussions.Empty(),
		Reddit:     discussions.Found([]domain.DiscussionResult{{Title: "r", URL: "https://www.reddit.com/r/x"}}),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/post", response.Page.URL)
	assert.Equal(t, "Post", response.Page.Title)
	assert.Equal(t, "example.com", response.Page.Domain)
	assert.Equal(t, "url,domain", response.Modes)
	assert.Equal(t, "empty", response.HackerNews.Status)
	assert.Equal(t, "found", response.Reddit.Status)
	assert.Len(t, response.Reddit.Results, 1)
}
