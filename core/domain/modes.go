// ABOUTME: Search mode set controlling the Reddit fallback chain
// ABOUTME: Provides parsing and ordered iteration over enabled search modes

package domain

import (
	"fmt"
	"strings"
)

// SearchMode is one way of querying the link aggregator
type SearchMode string

const (
	// SearchByURL queries for the exact page URL
	SearchByURL SearchMode = "url"

	// SearchByTitle queries the page title as free text
	SearchByTitle SearchMode = "title"

	// SearchByDomain queries for the page hostname
	SearchByDomain SearchMode = "domain"
)

// SearchModes lists every mode in fallback priority order
var SearchModes = []SearchMode{SearchByURL, SearchByTitle, SearchByDomain}

// Label returns the checkbox label for the mode
func (m SearchMode) Label() string {
	switch m {
	case SearchByURL:
		return "URL"
	case SearchByTitle:
		return "Title"
	case SearchByDomain:
		return "Domain"
	default:
		return string(m)
	}
}

// SearchModeSet holds which search modes are enabled.
// Keeping at least one mode enabled is the UI's job, not the orchestrator's.
type SearchModeSet struct {
	ByURL    bool
	ByTitle  bool
	ByDomain bool
}

// DefaultSearchModes returns the initial checkbox state: URL only
func DefaultSearchModes() SearchModeSet {
	return SearchModeSet{ByURL: true}
}

// Enabled reports whether mode m is enabled
func (s SearchModeSet) Enabled(m SearchMode) bool {
	switch m {
	case SearchByURL:
		return s.ByURL
	case SearchByTitle:
		return s.ByTitle
	case SearchByDomain:
		return s.ByDomain
	default:
		return false
	}
}

// With returns a copy of s with mode m set to on
func (s SearchModeSet) With(m SearchMode, on bool) SearchModeSet {
	switch m {
	case SearchByURL:
		s.ByURL = on
	case SearchByTitle:
		s.ByTitle = on
	case SearchByDomain:
		s.ByDomain = on
	}
	return s
}

// Any reports whether at least one mode is enabled
func (s SearchModeSet) Any() bool {
	return s.ByURL || s.ByTitle || s.ByDomain
}

// Modes returns the enabled modes in priority order
func (s SearchModeSet) Modes() []SearchMode {
	modes := make([]SearchMode, 0, len(SearchModes))
	for _, m := range SearchModes {
		if s.Enabled(m) {
			modes = append(modes, m)
		}
	}
	return modes
}

// String renders the set as a comma separated list, e.g. "url,domain"
func (s SearchModeSet) String() string {
	modes := s.Modes()
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

// ParseSearchModes parses a comma separated mode list.
// An empty string yields an empty set.
func ParseSearchModes(value string) (SearchModeSet, error) {
	var set SearchModeSet
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}

		mode := SearchMode(part)
		switch mode {
		case SearchByURL, SearchByTitle, SearchByDomain:
			set = set.With(mode, true)
		default:
			return SearchModeSet{}, fmt.Errorf("unknown search mode %q", part)
		}
	}
	return set, nil
}
