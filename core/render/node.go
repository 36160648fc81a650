// ABOUTME: Result renderer builds display nodes for discussion results
// ABOUTME: Produces HTML node trees for web hosts and plain text for terminal hosts

package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"discussions-app-api/core/domain"
	"discussions-app-api/pkg/utils/format"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSS class names used on rendered nodes
const (
	ClassItem     = "discussion-item"
	ClassTitle    = "discussion-title"
	ClassMeta     = "discussion-meta"
	ClassPoints   = "points"
	ClassComments = "comments"
	ClassDate     = "date"
)

// BuildResultNode builds the display node for one discussion:
// a link to the thread followed by a metadata line. Points, comments and
// date appear in that order, each only when present.
func BuildResultNode(title, url string, points, comments *int, createdAt *int64) *html.Node {
	item := element(atom.Div, ClassItem)

	link := element(atom.A, ClassTitle)
	link.Attr = append(link.Attr,
		html.Attribute{Key: "href", Val: url},
		html.Attribute{Key: "target", Val: "_blank"},
		html.Attribute{Key: "rel", Val: "noopener noreferrer"},
	)
	link.AppendChild(text(title))

	meta := element(atom.Div, ClassMeta)
	for _, part := range metaParts(points, comments, createdAt) {
		span := element(atom.Span, part.class)
		span.AppendChild(text(part.text))
		meta.AppendChild(span)
	}

	item.AppendChild(link)
	item.AppendChild(meta)
	return item
}

// BuildResultNodeFor builds the display node for a domain result
func BuildResultNodeFor(r domain.DiscussionResult) *html.Node {
	return BuildResultNode(r.Title, r.URL, r.Points, r.CommentCount, r.CreatedAt)
}

// RenderHTML serializes nodes in order
func RenderHTML(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render node: %w", err)
		}
	}
	return buf.String(), nil
}

// RenderText renders a result as two plain lines: title and link, then metadata
func RenderText(r domain.DiscussionResult) string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteString("\n  ")
	sb.WriteString(r.URL)

	if meta := MetaLine(r); meta != "" {
		sb.WriteString("\n  ")
		sb.WriteString(meta)
	}
	return sb.String()
}

// MetaLine returns the metadata of r joined with " · "
func MetaLine(r domain.DiscussionResult) string {
	parts := metaParts(r.Points, r.CommentCount, r.CreatedAt)
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.text
	}
	return strings.Join(texts, " · ")
}

type metaPart struct {
	class string
	text  string
}

func metaParts(points, comments *int, createdAt *int64) []metaPart {
	parts := make([]metaPart, 0, 3)
	if points != nil {
		parts = append(parts, metaPart{ClassPoints, strconv.Itoa(*points) + " points"})
	}
	if comments != nil {
		parts = append(parts, metaPart{ClassComments, strconv.Itoa(*comments) + " comments"})
	}
	// a zero timestamp is treated as absent
	if createdAt != nil && *createdAt != 0 {
		parts = append(parts, metaPart{ClassDate, format.FormatDate(*createdAt)})
	}
	return parts
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
