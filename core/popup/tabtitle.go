package popup

import (
	"context"

	"discussions-app-api/core/interfaces"
)

// TabTitleSource reads the title from a fresh tab query. The title only
// counts when the tab still shows the page being searched.
type TabTitleSource struct {
	Tabs interfaces.TabQuerier
}

// Title implements interfaces.TitleSource
func (s TabTitleSource) Title(ctx context.Context, pageURL string) (string, bool) {
	page, ok, err := s.Tabs.ActivePage(ctx)
	if err != nil || !ok {
		return "", false
	}
	if page.URL != pageURL || !page.HasTitle() {
		return "", false
	}
	return page.Title, true
}
