// ABOUTME: Host-side service interfaces for the discussion lookup
// ABOUTME: Defines how the core asks its host for the active page

package interfaces

import (
	"context"

	"discussions-app-api/core/domain"
)

// TabQuerier answers "what page is the user looking at right now".
// Browser-like hosts return the active tab; server hosts return the page
// named by the request.
type TabQuerier interface {
	// ActivePage returns a fresh snapshot of the active page.
	// ok is false when no page is available.
	ActivePage(ctx context.Context) (page domain.PageContext, ok bool, err error)
}

// TitleSource resolves a page title for by-title searches
type TitleSource interface {
	// Title returns the title of the page at pageURL; ok is false when unavailable.
	Title(ctx context.Context, pageURL string) (title string, ok bool)
}
