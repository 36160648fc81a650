// ABOUTME: Bubble Tea model rendering the discussions popup controller
// ABOUTME: Maps keys to controller actions and redraws on every state change

package tui

import (
	"context"
	"fmt"
	"strings"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/popup"
	"discussions-app-api/core/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stateChangedMsg tells the model to re-read the controller snapshot
type stateChangedMsg struct{}

// Model is the popup's Bubble Tea model
type Model struct {
	ctx     context.Context
	ctrl    *popup.Controller
	updates chan struct{}
	state   popup.State
	width   int
	done    bool
}

// NewModel wraps ctrl. The controller is started by Init.
func NewModel(ctx context.Context, ctrl *popup.Controller) Model {
	updates := make(chan struct{}, 1)
	ctrl.Subscribe(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		updates: updates,
		state:   ctrl.Snapshot(),
	}
}

// Init starts the lookups and begins listening for state changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.start(), waitForChange(m.updates))
}

func (m Model) start() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Start(m.ctx)
		return stateChangedMsg{}
	}
}

func waitForChange(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

// Update handles controller notifications, key presses and resizes
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = m.ctrl.Snapshot()
		return m, waitForChange(m.updates)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.ctrl.Close()
		m.done = true
		return m, tea.Quit
	case "tab":
		if m.state.ActiveTab == popup.NewsView {
			m.ctrl.SelectView(popup.AggregatorView)
		} else {
			m.ctrl.SelectView(popup.NewsView)
		}
	case "left", "h":
		m.ctrl.SelectView(popup.NewsView)
	case "right", "l":
		m.ctrl.SelectView(popup.AggregatorView)
	case "1", "2", "3":
		mode := domain.SearchModes[msg.String()[0]-'1']
		m.ctrl.ToggleMode(mode, !m.state.Modes.Enabled(mode))
	default:
		return m, nil
	}

	m.state = m.ctrl.Snapshot()
	return m, nil
}

// View renders the popup
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(urlStyle.Render(m.state.URLLabel))
	b.WriteString("\n")

	if m.state.Transitioning {
		b.WriteString(fadedStyle.Render(m.renderPanel(m.state.Outgoing)))
	} else {
		b.WriteString(m.renderPanel(m.state.ActivePanel))
	}

	b.WriteString(helpStyle.Render("tab/←/→ switch  1/2/3 toggle modes  q quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	views := []popup.View{popup.NewsView, popup.AggregatorView}
	parts := make([]string, 0, len(views))
	for _, v := range views {
		if v == m.state.ActiveTab {
			parts = append(parts, tabActiveStyle.Render(v.Label()))
		} else {
			parts = append(parts, tabNormalStyle.Render(v.Label()))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if remaining := m.width - lipgloss.Width(bar); m.width > 0 && remaining > 0 {
		bar += tabNormalStyle.Copy().UnsetPadding().Render(strings.Repeat(" ", remaining))
	}
	return bar
}

func (m Model) renderPanel(v popup.View) string {
	if v == popup.NewsView {
		return renderRegion(m.state.News)
	}
	return m.renderCheckboxes() + "\n" + renderRegion(m.state.Aggregator)
}

func (m Model) renderCheckboxes() string {
	var b strings.Builder
	for i, mode := range domain.SearchModes {
		box := "[ ]"
		if m.state.Modes.Enabled(mode) {
			box = "[x]"
		}
		fmt.Fprintf(&b, "%d %s %s  ", i+1, box, mode.Label())
	}
	line := strings.TrimRight(b.String(), " ")

	for _, n := range m.state.Notifications {
		if n.Phase == popup.NotificationEntering {
			continue
		}
		style := notificationStyle
		if n.Phase == popup.NotificationLeaving {
			style = style.Copy().Faint(true)
		}
		line += "\n" + style.Render(fmt.Sprintf("%s: %s", n.Anchor.Label(), n.Message))
	}
	return line
}

func renderRegion(r popup.RegionSnapshot) string {
	var out string
	switch r.State {
	case popup.RegionLoading:
		out = loadingStyle.Render("Loading...")
	case popup.RegionError:
		out = errorStyle.Render(r.Message)
	case popup.RegionResults:
		blocks := make([]string, 0, len(r.Results))
		for _, result := range r.Results {
			blocks = append(blocks, renderResult(result))
		}
		out = strings.Join(blocks, "\n")
	default:
		return ""
	}

	if r.Faded {
		out = fadedStyle.Render(out)
	}
	return out + "\n"
}

func renderResult(result domain.DiscussionResult) string {
	lines := []string{
		titleStyle.Render(result.Title),
		linkStyle.Render(result.URL),
	}
	if meta := render.MetaLine(result); meta != "" {
		lines = append(lines, metaStyle.Render(meta))
	}
	return strings.Join(lines, "\n")
}
