// ABOUTME: Response DTOs for discussion lookup endpoints
// ABOUTME: Each outcome carries its status, user-visible message and rendered results

package responses

// DiscussionResponse is one related discussion
type DiscussionResponse struct {
	Title        string `json:"title" doc:"Discussion title"`
	URL          string `json:"url" doc:"Discussion permalink"`
	Source       string `json:"source" doc:"Backend that returned the result" enum:"hackernews,reddit"`
	Points       *int   `json:"points,omitempty" doc:"Post score"`
	CommentCount *int   `json:"comment_count,omitempty" doc:"Number of comments"`
	CreatedAt    *int64 `json:"created_at,omitempty" doc:"Creation time in epoch seconds"`
	Date         string `json:"date,omitempty" doc:"Creation date formatted for display"`
	HTML         string `json:"html" doc:"Rendered discussion-item element"`
}

// OutcomeResponse is the result of one source's pipeline
type OutcomeResponse struct {
	Status  string               `json:"status" doc:"Outcome kind" enum:"found,empty,failed,skipped,no_modes"`
	Message string               `json:"message,omitempty" doc:"Text shown when there are no results"`
	Results []DiscussionResponse `json:"results" doc:"Top discussions, most commented first"`
}

// PageResponse echoes the page that was looked up
type PageResponse struct {
	URL    string `json:"url" doc:"Page URL"`
	Title  string `json:"title,omitempty" doc:"Page title supplied with the request"`
	Domain string `json:"domain" doc:"Page hostname"`
}

// LookupResponse holds both sources' outcomes
type LookupResponse struct {
	Page       PageResponse    `json:"page" doc:"Page that was looked up"`
	Modes      string          `json:"modes" doc:"Reddit search modes that were enabled"`
	HackerNews OutcomeResponse `json:"hackernews" doc:"Hacker News outcome"`
	Reddit     OutcomeResponse `json:"reddit" doc:"Reddit outcome"`
}

// SourceResponse is a single source lookup
type SourceResponse struct {
	Page    PageResponse    `json:"page" doc:"Page that was looked up"`
	Outcome OutcomeResponse `json:"outcome" doc:"Pipeline outcome"`
}

// HealthResponse reports service status
type HealthResponse struct {
	Status string          `json:"status" doc:"Service status"`
	Flags  map[string]bool `json:"flags" doc:"Feature flag state"`
}
