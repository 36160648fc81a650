// ABOUTME: Page title lookup for hosts without a browser tab
// ABOUTME: Fetches the page and reads its <title> (or og:title) with goquery

package page

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"discussions-app-api/core/interfaces"
)

// MaxPageBytes caps how much of a page is read looking for its title
const MaxPageBytes = 1 << 20

// TitleFetcher implements interfaces.TitleSource by fetching the page
type TitleFetcher struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewTitleFetcher creates a fetcher using client for page requests
func NewTitleFetcher(client interfaces.HTTPClient, logger interfaces.Logger) *TitleFetcher {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &TitleFetcher{client: client, logger: logger}
}

// Title returns the page title; ok is false when the page cannot be fetched or has none
func (f *TitleFetcher) Title(ctx context.Context, pageURL string) (string, bool) {
	resp, err := f.client.Get(ctx, pageURL)
	if err != nil {
		f.logger.Warn("Failed to fetch page for title", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		f.logger.Warn("Page returned non-OK status", map[string]interface{}{
			"url":    pageURL,
			"status": resp.StatusCode(),
		})
		return "", false
	}

	if !isHTML(resp.Header("Content-Type")) {
		f.logger.Debug("Page is not HTML, skipping title lookup", map[string]interface{}{
			"url":          pageURL,
			"content_type": resp.Header("Content-Type"),
		})
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body(), MaxPageBytes))
	if err != nil {
		return "", false
	}

	title := ExtractTitle(doc)
	return title, title != ""
}

// ExtractTitle returns the document title, falling back to og:title
func ExtractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		return collapseSpace(title)
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return collapseSpace(title)
	}

	content, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return collapseSpace(strings.TrimSpace(content))
}

// isHTML accepts HTML media types; a missing Content-Type is let through
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
