package gridview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/keys"
	"github.com/zjrosen/cellar/internal/ui/styles"
)

// frameHeight is the height left for the bordered grid.
func (m Model) frameHeight() int {
	if m.cfg.ShowStatusBar {
		return m.height - 1
	}
	return m.height
}

func (m Model) gutter() int {
	return max(len(strconv.Itoa(m.sheet.Rows()))+1, 3)
}

// visible returns how many rows and columns fit inside the frame.
func (m Model) visible() (rows, cols int) {
	// Two border lines plus the column header.
	rows = max(m.frameHeight()-3, 1)
	cols = max((m.width-2-m.gutter())/m.cfg.CellWidth, 1)
	return min(rows, m.sheet.Rows()), min(cols, m.sheet.Cols())
}

// View renders the framed grid and, when enabled, the status bar.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	out := styles.Frame{
		Title:   m.cfg.Title,
		Footer:  m.footer(),
		Width:   m.width,
		Height:  m.frameHeight(),
		Focused: true,
	}.Render(m.table())
	if m.cfg.ShowStatusBar {
		out += "\n" + m.statusBar()
	}
	return out
}

func (m Model) footer() string {
	if a, ok := m.sheet.Editing(); ok {
		return "editing " + a.Label()
	}
	if n := m.sheet.UndoDepth(); n > 0 {
		return "undo " + strconv.Itoa(n)
	}
	return ""
}

func (m Model) table() string {
	rows, cols := m.visible()
	focus, hasFocus := m.focus()
	gutter := m.gutter()
	w := m.cfg.CellWidth - 1

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	for c := m.colOff; c < m.colOff+cols; c++ {
		st := styles.AxisStyle
		if hasFocus && c == focus.Col {
			st = styles.AxisActiveStyle
		}
		b.WriteString(st.Width(w).Align(lipgloss.Center).Render(string(rune('A' + c))))
		b.WriteString(" ")
	}

	for r := m.rowOff; r < m.rowOff+rows; r++ {
		b.WriteString("\n")
		st := styles.AxisStyle
		if hasFocus && r == focus.Row {
			st = styles.AxisActiveStyle
		}
		b.WriteString(st.Width(gutter - 1).Align(lipgloss.Right).Render(strconv.Itoa(r + 1)))
		b.WriteString(" ")
		for c := m.colOff; c < m.colOff+cols; c++ {
			a := grid.At(r, c)
			b.WriteString(zone.Mark(m.zoneID(a), m.cell(a, w)))
			b.WriteString(" ")
		}
	}
	return b.String()
}

// cell renders one cell at width w with its state style.
func (m Model) cell(a grid.Address, w int) string {
	if at, ok := m.sheet.Editing(); ok && at == a {
		text := ansi.Truncate(m.editor.View(), w, "")
		if pad := w - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		return styles.CellEditingStyle.Render(text)
	}

	text := m.fitted(m.sheet.Get(a), w)
	sel := m.sheet.Selection()
	switch {
	case isCell(sel.Cell, a):
		return styles.CellSelectedStyle.Render(text)
	case inRange(sel.Range, a):
		return styles.CellRangeStyle.Render(text)
	case m.sheet.IsProtected(a):
		return styles.CellProtectedStyle.Render(text)
	default:
		return styles.CellStyle.Render(text)
	}
}

func isCell(get func() (grid.Address, bool), a grid.Address) bool {
	c, ok := get()
	return ok && c == a
}

func inRange(get func() (grid.Range, bool), a grid.Address) bool {
	r, ok := get()
	return ok && r.Contains(a)
}

func (m Model) statusBar() string {
	left := m.StatusText()
	var right string
	if m.Editing() {
		right = m.help.ShortHelpView(keys.Edit.ShortHelp())
	} else {
		right = m.help.ShortHelpView(keys.Sheet.ShortHelp())
	}
	// Padding(0, 1) costs two cells.
	inner := m.width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return styles.StatusBarStyle.Width(m.width).Render(ansi.Truncate(line, inner, "…"))
}
