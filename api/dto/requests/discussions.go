// ABOUTME: Request DTOs for discussion lookup endpoints
// ABOUTME: Query parameters are validated here before reaching the service

package requests

import (
	"strings"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/errors"
)

// DiscussionsRequest looks up both sources for a page
type DiscussionsRequest struct {
	URL   string `query:"url" required:"true" maxLength:"2048" doc:"Page URL to find discussions for"`
	Title string `query:"title" maxLength:"512" doc:"Page title used by the title search mode"`
	Modes string `query:"modes" default:"url" doc:"Comma separated Reddit search modes: url, title, domain"`
}

// Page validates the URL and builds the page snapshot
func (r *DiscussionsRequest) Page() (domain.PageContext, error) {
	return pageFor(r.URL, r.Title)
}

// SearchModes parses the modes parameter
func (r *DiscussionsRequest) SearchModes() (domain.SearchModeSet, error) {
	return parseModes(r.Modes)
}

// HackerNewsRequest looks up Hacker News only
type HackerNewsRequest struct {
	URL string `query:"url" required:"true" maxLength:"2048" doc:"Page URL to find discussions for"`
}

// Page validates the URL and builds the page snapshot
func (r *HackerNewsRequest) Page() (domain.PageContext, error) {
	return pageFor(r.URL, "")
}

// RedditRequest looks up Reddit only
type RedditRequest struct {
	URL   string `query:"url" required:"true" maxLength:"2048" doc:"Page URL to find discussions for"`
	Title string `query:"title" maxLength:"512" doc:"Page title used by the title search mode"`
	Modes string `query:"modes" default:"url" doc:"Comma separated search modes: url, title, domain"`
}

// Page validates the URL and builds the page snapshot
func (r *RedditRequest) Page() (domain.PageContext, error) {
	return pageFor(r.URL, r.Title)
}

// SearchModes parses the modes parameter
func (r *RedditRequest) SearchModes() (domain.SearchModeSet, error) {
	return parseModes(r.Modes)
}

func pageFor(rawURL, title string) (domain.PageContext, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return domain.PageContext{}, &errors.ValidationError{Field: "url", Message: "must be an http or https URL"}
	}
	page, err := domain.NewPageContext(rawURL, title)
	if err != nil {
		return domain.PageContext{}, &errors.ValidationError{Field: "url", Message: err.Error()}
	}
	return page, nil
}

// parseModes treats an empty value as the default set; an explicit
// "none" asks for no modes at all.
func parseModes(value string) (domain.SearchModeSet, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.DefaultSearchModes(), nil
	}
	if strings.EqualFold(value, "none") {
		return domain.SearchModeSet{}, nil
	}
	modes, err := domain.ParseSearchModes(value)
	if err != nil {
		return domain.SearchModeSet{}, &errors.ValidationError{Field: "modes", Message: err.Error()}
	}
	return modes, nil
}
