package page

import (
	"context"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
)

// StaticTab is a TabQuerier for hosts that are told which page to look up,
// such as the CLI and the HTTP API.
type StaticTab struct {
	page domain.PageContext
}

// NewStaticTab builds a tab showing rawURL with an optional title
func NewStaticTab(rawURL, title string) (*StaticTab, error) {
	page, err := domain.NewPageContext(rawURL, title)
	if err != nil {
		return nil, err
	}
	return &StaticTab{page: page}, nil
}

// ActivePage implements interfaces.TabQuerier
func (t *StaticTab) ActivePage(ctx context.Context) (domain.PageContext, bool, error) {
	if t == nil || t.page.URL == "" {
		return domain.PageContext{}, false, nil
	}
	return t.page, true, nil
}

// TitleChain tries each source in order and returns the first title found
type TitleChain []interfaces.TitleSource

// Title implements interfaces.TitleSource
func (c TitleChain) Title(ctx context.Context, pageURL string) (string, bool) {
	for _, source := range c {
		if source == nil {
			continue
		}
		if title, ok := source.Title(ctx, pageURL); ok {
			return title, true
		}
	}
	return "", false
}

// FixedTitle is a TitleSource answering only for one URL
type FixedTitle struct {
	URL   string
	Value string
}

// Title implements interfaces.TitleSource
func (f FixedTitle) Title(ctx context.Context, pageURL string) (string, bool) {
	if f.Value == "" || f.URL != pageURL {
		return "", false
	}
	return f.Value, true
}

type requestTitleKey struct{}

// WithRequestTitle attaches a caller-supplied title for pageURL to ctx
func WithRequestTitle(ctx context.Context, pageURL, title string) context.Context {
	if title == "" {
		return ctx
	}
	return context.WithValue(ctx, requestTitleKey{}, FixedTitle{URL: pageURL, Value: title})
}

// RequestTitle is a TitleSource reading the title attached by WithRequestTitle
type RequestTitle struct{}

// Title implements interfaces.TitleSource
func (RequestTitle) Title(ctx context.Context, pageURL string) (string, bool) {
	fixed, ok := ctx.Value(requestTitleKey{}).(FixedTitle)
	if !ok {
		return "", false
	}
	return fixed.Title(ctx, pageURL)
}
