// ABOUTME: Public types for the discussions library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package discussions

import (
	core "discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/core/render"
	"github.com/jinzhu/copier"
)

// Status is the kind of a search outcome
type Status string

const (
	StatusFound   Status = "found"
	StatusEmpty   Status = "empty"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusNoModes Status = "no_modes"
)

// Discussion is one related thread
type Discussion struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Source       string `json:"source"`
	Points       *int   `json:"points,omitempty"`
	CommentCount *int   `json:"comment_count,omitempty"`
	CreatedAt    *int64 `json:"created_at,omitempty"`
}

// Outcome is one source's search result
type Outcome struct {
	Status      Status       `json:"status"`
	Message     string       `json:"message,omitempty"`
	Discussions []Discussion `json:"discussions"`

	// Err is the failure behind a failed outcome
	Err error `json:"-"`
}

// Found reports whether the outcome carries discussions
func (o Outcome) Found() bool {
	return o.Status == StatusFound
}

// Text renders the outcome as plain text, one discussion per block
func (o Outcome) Text() string {
	if !o.Found() {
		return o.Message
	}

	text := ""
	for i, d := range o.Discussions {
		if i > 0 {
			text += "\n"
		}
		text += render.RenderText(discussionToDomain(d))
	}
	return text
}

// LookupResult holds both sources' outcomes for a page
type LookupResult struct {
	URL        string  `json:"url"`
	Domain     string  `json:"domain"`
	Modes      string  `json:"modes"`
	HackerNews Outcome `json:"hackernews"`
	Reddit     Outcome `json:"reddit"`
}

func outcomeToPublic(outcome core.Outcome) Outcome {
	public := Outcome{
		Status:      Status(outcome.Kind.String()),
		Message:     outcome.Message(),
		Discussions: make([]Discussion, 0, len(outcome.Items)),
		Err:         outcome.Err,
	}
	if len(outcome.Items) > 0 {
		_ = copier.Copy(&public.Discussions, &outcome.Items)
	}
	return public
}

func discussionToDomain(d Discussion) domain.DiscussionResult {
	var result domain.DiscussionResult
	_ = copier.Copy(&result, &d)
	return result
}
