package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rounded frame glyphs.
const (
	frameTopLeft     = "╭"
	frameTopRight    = "╮"
	frameBottomLeft  = "╰"
	frameBottomRight = "╯"
	frameHorizontal  = "─"
	frameVertical    = "│"
)

// Frame describes a rounded box with a title in the top edge:
//
//	╭─ Sheet ──────╮
//	│ content      │
//	╰─ A1 ─────────╯
type Frame struct {
	Title   string
	Footer  string
	Width   int
	Height  int
	Focused bool
}

// Render draws content inside the frame. Lines longer than the inner width
// are cut, shorter ones are padded so the right edge lines up.
func (f Frame) Render(content string) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if f.Focused {
		borderColor = BorderHighlightFocusColor
	}
	edge := lipgloss.NewStyle().Foreground(borderColor)
	title := lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(f.Focused)

	inner := max(f.Width-2, 1)
	rows := max(f.Height-2, 1)

	lines := strings.Split(content, "\n")
	body := make([]string, rows)
	for i := range rows {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], inner, "")
		}
		if w := ansi.StringWidth(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		body[i] = edge.Render(frameVertical) + line + edge.Render(frameVertical)
	}

	var b strings.Builder
	b.WriteString(edgeWithCaption(frameTopLeft, frameTopRight, f.Title, inner, edge, title))
	b.WriteString("\n")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n")
	b.WriteString(edgeWithCaption(frameBottomLeft, frameBottomRight, f.Footer, inner, edge, title))
	return b.String()
}

// edgeWithCaption renders a horizontal edge, embedding caption after "─ "
// when there is room for it. Captions that do not fit are cut with "...".
func edgeWithCaption(left, right, caption string, inner int, edge, text lipgloss.Style) string {
	if caption == "" || inner < 4 {
		return edge.Render(left + strings.Repeat(frameHorizontal, inner) + right)
	}
	caption = ansi.Truncate(caption, inner-4, "...")
	rest := max(inner-3-ansi.StringWidth(caption), 0)
	return edge.Render(left+frameHorizontal+" ") +
		text.Render(caption) +
		edge.Render(" "+strings.Repeat(frameHorizontal, rest)+right)
}
