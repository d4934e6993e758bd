// Package logpane shows the debug log inside the running program.
package logpane

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/ui/overlay"
	"github.com/zjrosen/cellar/internal/ui/styles"
)

const (
	maxLines = 20
	minLines = 4
	maxWidth = 140
	minWidth = 40
	// chrome is title, divider, footer divider, footer and two borders.
	chrome = 6
)

// CloseMsg is emitted when the pane closes itself.
type CloseMsg struct{}

var levelKeys = map[string]log.Level{
	"d": log.LevelDebug,
	"i": log.LevelInfo,
	"w": log.LevelWarn,
	"e": log.LevelError,
}

// Model is the log pane state.
type Model struct {
	open     bool
	minLevel log.Level
	width    int
	height   int
	vp       viewport.Model
}

// New returns a closed pane that shows every level.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Open reports whether the pane is showing.
func (m Model) Open() bool { return m.open }

// MinLevel returns the active filter.
func (m Model) MinLevel() log.Level { return m.minLevel }

// Toggle opens or closes the pane.
func (m Model) Toggle() Model {
	m.open = !m.open
	if m.open {
		m.reload()
	}
	return m
}

// SetSize records the terminal size.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	if m.open {
		m.reload()
	}
	return m
}

// Append refreshes the pane after a new entry arrived.
func (m Model) Append() Model {
	if m.open {
		atBottom := m.vp.AtBottom()
		m.reload()
		if atBottom {
			m.vp.GotoBottom()
		}
	}
	return m
}

// Update handles keys while the pane is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !m.open {
		return m, nil
	}
	if lvl, ok := levelKeys[k.String()]; ok {
		m.minLevel = lvl
		m.reload()
		return m, nil
	}
	switch k.String() {
	case "c":
		log.ClearRecent()
		m.reload()
	case "up", "k":
		m.vp.ScrollUp(1)
	case "down", "j":
		m.vp.ScrollDown(1)
	case "g":
		m.vp.GotoTop()
	case "G":
		m.vp.GotoBottom()
	case "esc", "ctrl+x":
		m.open = false
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, maxWidth), minWidth)
}

func (m *Model) reload() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := m.boxWidth() - 2
	lines := max(min(maxLines, m.height-chrome), minLines)
	m.vp = viewport.New(inner, lines)
	m.vp.SetContent(m.body(inner))
	m.vp.GotoBottom()
}

func (m Model) body(width int) string {
	var out []string
	for _, entry := range log.Recent(log.RecentCapacity) {
		if lvl, known := log.ParseLevel(entry); known && lvl < m.minLevel {
			continue
		}
		out = append(out, colorize(entry, width))
	}
	if len(out) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No log entries")
	}
	return strings.Join(out, "\n")
}

func colorize(entry string, width int) string {
	entry = strings.TrimSuffix(entry, "\n")
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width, "…")
	}
	color := styles.TextPrimaryColor
	if lvl, known := log.ParseLevel(entry); known {
		switch lvl {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.ToastBorderInfoColor
		default:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

func (m Model) footer() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{muted.Render("[c] clear")}
	for _, opt := range []struct {
		key  string
		name string
	}{{"d", "debug"}, {"i", "info"}, {"w", "warn"}, {"e", "error"}} {
		s := muted
		if levelKeys[opt.key] == m.minLevel {
			s = active
		}
		parts = append(parts, s.Render("["+opt.key+"] "+opt.name))
	}
	return strings.Join(parts, "  ")
}

// View renders the pane box, or "" when closed.
func (m Model) View() string {
	if !m.open {
		return ""
	}
	w := m.boxWidth()
	rule := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", w))
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1).Render("Debug log")

	content := strings.Join([]string{title, rule, m.vp.View(), rule, m.footer()}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(w).
		Render(content)
}

// Overlay centers the pane over bg.
func (m Model) Overlay(bg string) string {
	if !m.open {
		return bg
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, m.View(), bg)
}
