// ABOUTME: Lipgloss styles for the terminal discussions popup
// ABOUTME: Adaptive colors so the popup reads on light and dark terminals

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#c2410c", Dark: "#fb923c"}
	colorError   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ef5350"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#e65100", Dark: "#ffa726"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
	colorTabBg   = lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#333333"}
	colorTabFg   = lipgloss.AdaptiveColor{Light: "#616161", Dark: "#9e9e9e"}
	colorActBg   = lipgloss.AdaptiveColor{Light: "#c2410c", Dark: "#fb923c"}
	colorActFg   = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1e1e1e"}
)

var (
	tabNormalStyle = lipgloss.NewStyle().
			Foreground(colorTabFg).
			Background(colorTabBg).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorActFg).
			Background(colorActBg).
			Bold(true).
			Padding(0, 2)

	urlStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)

	linkStyle = lipgloss.NewStyle().
			Underline(true).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	notificationStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWarning).
				Padding(0, 1)

	fadedStyle = lipgloss.NewStyle().Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
