// Package help renders the key reference overlay.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/cellar/internal/keys"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/ui/markdown"
	"github.com/zjrosen/cellar/internal/ui/overlay"
	"github.com/zjrosen/cellar/internal/ui/styles"
)

const (
	boxWidth  = 64
	boxHeight = 30
)

// sections pairs a heading with one FullHelp group, in order.
var sections = []string{"Navigation", "Selection", "Editing", "General"}

// Document returns the key reference as markdown.
func Document(km keys.SheetKeyMap, ed keys.EditKeyMap) string {
	var b strings.Builder
	for i, group := range km.FullHelp() {
		heading := "More"
		if i < len(sections) {
			heading = sections[i]
		}
		writeTable(&b, heading, group)
	}
	writeTable(&b, "While editing a cell", ed.FullHelp()[0])
	b.WriteString("Click a cell to select it, shift-click or drag to select a range, ")
	b.WriteString("double-click to edit. Protected template cells are read-only.\n")
	return b.String()
}

func writeTable(b *strings.Builder, heading string, bindings []key.Binding) {
	fmt.Fprintf(b, "## %s\n\n| Key | Action |\n| --- | --- |\n", heading)
	for _, kb := range bindings {
		h := kb.Help()
		fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\n")
}

// Model is the help overlay.
type Model struct {
	style    string
	width    int
	height   int
	rendered string
}

// New returns a help overlay that renders with the given markdown style.
func New(style string) Model {
	return Model{style: style}
}

// SetSize records the terminal size and re-renders the document.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.rendered = m.render()
	return m
}

func (m Model) frameSize() (int, int) {
	return min(boxWidth, max(m.width-2, 20)), min(boxHeight, max(m.height-2, 5))
}

func (m Model) render() string {
	w, _ := m.frameSize()
	doc := Document(keys.Sheet, keys.Edit)
	r, err := markdown.New(w-4, m.style)
	if err == nil {
		var out string
		if out, err = r.Render(doc); err == nil {
			return out
		}
	}
	log.ErrorErr(log.CatUI, "help render failed, showing plain text", err, "style", m.style)
	return doc
}

// View renders the framed help box.
func (m Model) View() string {
	w, h := m.frameSize()
	body := m.rendered
	if body == "" {
		body = m.render()
	}
	pad := lipgloss.NewStyle().PaddingLeft(1)
	return styles.Frame{
		Title:   "Keys",
		Footer:  "? or esc to close",
		Width:   w,
		Height:  h,
		Focused: true,
	}.Render(pad.Render(body))
}

// Overlay centers the help box over bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
