// ABOUTME: Discussion domain models for related-discussion lookups
// ABOUTME: Defines discussion results and the page snapshot the lookup pipelines work from

package domain

import (
	"errors"
	"net/url"
	"strings"
)

// Source identifies a discussion search backend
type Source string

const (
	// SourceHackerNews is the Hacker News Algolia search
	SourceHackerNews Source = "hackernews"

	// SourceReddit is the Reddit search endpoint
	SourceReddit Source = "reddit"
)

// DiscussionResult is one external forum post related to a page.
// Optional fields are nil when the remote API did not report them.
type DiscussionResult struct {
	// Title is the post title
	Title string

	// URL is the permalink of the discussion thread
	URL string

	// Points is the post score
	Points *int

	// CommentCount is the number of comments on the thread
	CommentCount *int

	// CreatedAt is the creation time in epoch seconds
	CreatedAt *int64

	// Source is the backend that returned the result
	Source Source
}

// Comments returns the comment count, treating a missing count as zero
func (r DiscussionResult) Comments() int {
	if r.CommentCount == nil {
		return 0
	}
	return *r.CommentCount
}

// PageContext is a read-only snapshot of the page being looked up
type PageContext struct {
	// URL is the full page URL
	URL string

	// Title is the page title, empty when unknown
	Title string

	// Domain is the hostname derived from URL
	Domain string
}

// NewPageContext builds a PageContext, deriving the domain from rawURL
func NewPageContext(rawURL, title string) (PageContext, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return PageContext{}, errors.New("page URL cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PageContext{}, err
	}
	if parsed.Hostname() == "" {
		return PageContext{}, errors.New("page URL has no host")
	}

	return PageContext{
		URL:    rawURL,
		Title:  strings.TrimSpace(title),
		Domain: strings.ToLower(parsed.Hostname()),
	}, nil
}

// HasTitle reports whether the snapshot carries a page title
func (p PageContext) HasTitle() bool {
	return p.Title != ""
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer to v
func Int64(v int64) *int64 {
	return &v
}
