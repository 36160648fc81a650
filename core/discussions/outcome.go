// ABOUTME: Discriminated outcome of a discussion search step or pipeline
// ABOUTME: Maps each outcome to the message shown in the source's result region

package discussions

import (
	"discussions-app-api/core/domain"
	coreerrors "discussions-app-api/core/errors"
)

// User-visible messages
const (
	MsgNoResults      = "No related discussions found"
	MsgNoModes        = "Please select at least one search method"
	MsgNoTitle        = "Could not get page title and domain search is disabled"
	QueryFailedPrefix = "Query failed: "
)

// OutcomeKind discriminates Outcome values
type OutcomeKind int

const (
	// OutcomeFound means at least one result was returned
	OutcomeFound OutcomeKind = iota

	// OutcomeEmpty means the query succeeded with nothing relevant
	OutcomeEmpty

	// OutcomeFailed means the query could not be completed
	OutcomeFailed

	// OutcomeSkipped means a step could not run, e.g. no page title
	OutcomeSkipped

	// OutcomeNoModes means no search mode was enabled and nothing was queried
	OutcomeNoModes
)

// String returns the kind name used in logs and API payloads
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNoModes:
		return "no_modes"
	default:
		return "unknown"
	}
}

// Outcome is the result of a search step or a whole pipeline
type Outcome struct {
	Kind  OutcomeKind
	Items []domain.DiscussionResult
	Err   error

	// reason explains a skipped step
	reason string
}

// Found wraps a non-empty result list
func Found(items []domain.DiscussionResult) Outcome {
	return Outcome{Kind: OutcomeFound, Items: items}
}

// Empty reports a successful query with no relevant results
func Empty() Outcome {
	return Outcome{Kind: OutcomeEmpty}
}

// Failed reports a transport, status or decoding failure
func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}

// Skipped reports a step that could not run
func Skipped(reason string) Outcome {
	return Outcome{Kind: OutcomeSkipped, reason: reason}
}

// NoModes reports that no search mode was enabled
func NoModes() Outcome {
	return Outcome{Kind: OutcomeNoModes}
}

// IsFound reports whether the outcome carries results
func (o Outcome) IsFound() bool {
	return o.Kind == OutcomeFound
}

// Message returns the text shown in the result region; empty for Found
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeEmpty:
		return MsgNoResults
	case OutcomeFailed:
		return QueryFailedPrefix + coreerrors.Reason(o.Err)
	case OutcomeSkipped:
		return o.reason
	case OutcomeNoModes:
		return MsgNoModes
	default:
		return ""
	}
}
