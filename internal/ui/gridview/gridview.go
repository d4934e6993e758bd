// Package gridview is the interactive grid: it draws the sheet, maps mouse
// and keyboard input onto sheet commands, and hosts the in-cell editor.
package gridview

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/cellar/internal/cachemanager"
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/sheet"
)

// Defaults used when Config leaves a field zero.
const (
	DefaultCellWidth   = 12
	DefaultDoubleClick = 500 * time.Millisecond
	minCellWidth       = 4
)

// Config controls layout and pointer timing.
type Config struct {
	Title         string
	CellWidth     int
	ShowStatusBar bool
	DoubleClick   time.Duration
	// Now is the clock used for double-click detection.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.CellWidth < minCellWidth {
		c.CellWidth = DefaultCellWidth
	}
	if c.DoubleClick <= 0 {
		c.DoubleClick = DefaultDoubleClick
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Title == "" {
		c.Title = "cellar"
	}
	return c
}

// instances keeps zone ids distinct when several views are alive, as in
// tests.
var instances atomic.Int64

type click struct {
	at   grid.Address
	when time.Time
}

// Model is the grid view. It holds the sheet by pointer; the sheet is
// owned by the Bubble Tea loop like the model itself.
type Model struct {
	cfg    Config
	sheet  *sheet.Sheet
	zones  string
	editor textinput.Model
	help   help.Model
	cells  *cachemanager.InMemoryCacheManager[fitKey, string]
	fit    *cachemanager.ReadThroughCache[fitKey, string, fitInput]

	width, height int
	rowOff        int
	colOff        int

	lastClick click
	dragging  bool
	dragAt    grid.Address
}

// New builds a view over s.
func New(s *sheet.Sheet, cfg Config) Model {
	cfg = cfg.withDefaults()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = cfg.CellWidth - 2
	// A blinking cursor would tick the whole grid twice a second.
	_ = ti.Cursor.SetMode(cursor.CursorStatic)

	cells := cachemanager.NewInMemoryCacheManager[fitKey, string]("cells", fitTTL, cachemanager.DefaultCleanupInterval)
	return Model{
		cfg:    cfg,
		sheet:  s,
		zones:  "cell" + strconv.FormatInt(instances.Add(1), 10) + ":",
		editor: ti,
		help:   help.New(),
		cells:  cells,
		fit:    cachemanager.NewReadThroughCache(cells, fitCell, false),
	}
}

// SetSize records the space the view may draw in.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.help.Width = width
	m.follow()
	return m
}

// Sheet returns the underlying sheet.
func (m Model) Sheet() *sheet.Sheet {
	return m.sheet
}

// Editing reports whether the in-cell editor is open.
func (m Model) Editing() bool {
	_, ok := m.sheet.Editing()
	return ok
}

// Offset returns the first visible row and column.
func (m Model) Offset() (row, col int) {
	return m.rowOff, m.colOff
}

// StatusText is the selection readout shown in the status bar.
func (m Model) StatusText() string {
	return "Selected Cell(s): " + m.sheet.Label()
}

func (m Model) zoneID(a grid.Address) string {
	return m.zones + a.String()
}

// cellAt maps a mouse event onto the cell zone under it.
func (m Model) cellAt(msg tea.MouseMsg) (grid.Address, bool) {
	top, left := m.rowOff, m.colOff
	rows, cols := m.visible()
	for r := top; r < min(top+rows, m.sheet.Rows()); r++ {
		for c := left; c < min(left+cols, m.sheet.Cols()); c++ {
			a := grid.At(r, c)
			if zone.Get(m.zoneID(a)).InBounds(msg) {
				return a, true
			}
		}
	}
	return grid.Address{}, false
}

// focus is the cell that must stay on screen: the moving corner of a
// range, or the selected cell.
func (m Model) focus() (grid.Address, bool) {
	if r, ok := m.sheet.Selection().Range(); ok {
		return r.End, true
	}
	return m.sheet.Selection().Cell()
}

// follow scrolls so the focused cell is visible.
func (m *Model) follow() {
	a, ok := m.focus()
	if !ok {
		return
	}
	rows, cols := m.visible()
	switch {
	case a.Row < m.rowOff:
		m.rowOff = a.Row
	case a.Row >= m.rowOff+rows:
		m.rowOff = a.Row - rows + 1
	}
	switch {
	case a.Col < m.colOff:
		m.colOff = a.Col
	case a.Col >= m.colOff+cols:
		m.colOff = a.Col - cols + 1
	}
	m.clampOffsets()
}

func (m *Model) clampOffsets() {
	rows, cols := m.visible()
	m.rowOff = max(0, min(m.rowOff, m.sheet.Rows()-rows))
	m.colOff = max(0, min(m.colOff, m.sheet.Cols()-cols))
}

// Close releases the render cache.
func (m Model) Close() {
	_ = m.cells.Flush(context.Background())
}
