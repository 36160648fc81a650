// ABOUTME: Text formatting helpers shared by the result renderer and the popup
// ABOUTME: Truncates labels with an ellipsis and formats epoch timestamps as dates

package format

// DefaultTruncateLength is the maximum label length shown before truncation
const DefaultTruncateLength = 50

// Ellipsis is appended to truncated text
const Ellipsis = "..."

// Truncate returns text unchanged when it has at most maxLen runes,
// otherwise its first maxLen runes followed by an ellipsis.
func Truncate(text string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + Ellipsis
}

// TruncateDefault truncates text to DefaultTruncateLength
func TruncateDefault(text string) string {
	return Truncate(text, DefaultTruncateLength)
}
