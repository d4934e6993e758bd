// Package toaster shows short-lived notifications over the sheet.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/cellar/internal/ui/overlay"
	"github.com/zjrosen/cellar/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the border color and glyph.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DismissMsg hides the toast it was scheduled for. A newer toast ignores
// dismissals meant for an older one.
type DismissMsg struct {
	Seq int
}

// Model holds the toaster state.
type Model struct {
	message  string
	style    Style
	visible  bool
	seq      int
	duration time.Duration
}

// New creates a toaster with DefaultDuration.
func New() Model {
	return Model{duration: DefaultDuration}
}

// Show displays message and returns the command that will dismiss it.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	m.visible = true
	seq, d := m.seq, m.duration
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{Seq: seq} })
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		return m.Hide()
	}
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible && m.message != ""
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}

	var (
		border lipgloss.TerminalColor
		glyph  string
	)
	switch m.style {
	case StyleError:
		border, glyph = styles.ToastBorderErrorColor, "✗"
	case StyleInfo:
		border, glyph = styles.ToastBorderInfoColor, "i"
	case StyleWarn:
		border, glyph = styles.ToastBorderWarnColor, "!"
	default:
		border, glyph = styles.ToastBorderSuccessColor, "✓"
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(glyph + " " + m.message)
}

// Overlay renders the toast in the bottom-right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     1,
		PadY:     1,
	}, m.View(), bg)
}
