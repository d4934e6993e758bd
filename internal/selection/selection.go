// Package selection tracks the selected cell, the anchor used to extend a
// range, and the rectangular range itself.
package selection

import (
	"github.com/zjrosen/cellar/internal/grid"
)

// Mode is the tracker state.
type Mode int

const (
	// None means nothing is selected.
	None Mode = iota
	// Point means a single cell is selected and no range is active.
	Point
	// Ranged means an anchor and a far corner span a rectangle.
	Ranged
)

func (m Mode) String() string {
	switch m {
	case Point:
		return "point"
	case Ranged:
		return "range"
	default:
		return "none"
	}
}

// NoneLabel is shown when nothing is selected.
const NoneLabel = "None"

// Tracker is the selection state for a rows x cols grid.
// The zero value tracks an empty 0x0 grid; use New.
type Tracker struct {
	rows, cols int

	mode   Mode
	cell   grid.Address
	anchor grid.Address
	far    grid.Address
}

// New returns a tracker with nothing selected.
func New(rows, cols int) Tracker {
	return Tracker{rows: rows, cols: cols}
}

func (t Tracker) inBounds(a grid.Address) bool {
	return a.Row >= 0 && a.Row < t.rows && a.Col >= 0 && a.Col < t.cols
}

func (t Tracker) clamp(a grid.Address) grid.Address {
	return grid.Address{
		Row: max(0, min(a.Row, t.rows-1)),
		Col: max(0, min(a.Col, t.cols-1)),
	}
}

// Mode returns the current state.
func (t Tracker) Mode() Mode {
	return t.mode
}

// HasSelection reports whether a cell is selected.
func (t Tracker) HasSelection() bool {
	return t.mode != None
}

// Cell returns the selected cell.
func (t Tracker) Cell() (grid.Address, bool) {
	return t.cell, t.mode != None
}

// Anchor returns the fixed corner used by shift-click and drag.
func (t Tracker) Anchor() (grid.Address, bool) {
	return t.anchor, t.mode != None
}

// Range returns the active range. ok is false in Point and None modes.
func (t Tracker) Range() (grid.Range, bool) {
	if t.mode != Ranged {
		return grid.Range{}, false
	}
	return grid.Range{Start: t.anchor, End: t.far}, true
}

// Targets returns the cells a range command acts on: every cell of the
// range in row-major order, or the selected cell alone.
func (t Tracker) Targets() []grid.Address {
	switch t.mode {
	case Ranged:
		return grid.Range{Start: t.anchor, End: t.far}.Addresses()
	case Point:
		return []grid.Address{t.cell}
	default:
		return nil
	}
}

// Label is the status text: "B3", "A1:C4" or "None".
func (t Tracker) Label() string {
	switch t.mode {
	case Ranged:
		return grid.Range{Start: t.anchor, End: t.far}.Label()
	case Point:
		return t.cell.Label()
	default:
		return NoneLabel
	}
}

// Click selects a single cell and re-anchors on it. Out-of-bounds clicks
// are ignored.
func (t Tracker) Click(a grid.Address) Tracker {
	if !t.inBounds(a) {
		return t
	}
	t.mode = Point
	t.cell, t.anchor, t.far = a, a, a
	return t
}

// ShiftClick spans a range from the anchor to a. The selected cell does not
// move. Without an anchor it behaves like Click.
func (t Tracker) ShiftClick(a grid.Address) Tracker {
	if !t.inBounds(a) {
		return t
	}
	if t.mode == None {
		return t.Click(a)
	}
	t.mode = Ranged
	t.far = a
	return t
}

// Move steps the selected cell by (dRow, dCol), clamped to the grid,
// collapsing any range and re-anchoring. With nothing selected, A1 is
// selected.
func (t Tracker) Move(dRow, dCol int) Tracker {
	if t.rows <= 0 || t.cols <= 0 {
		return t
	}
	if t.mode == None {
		return t.Click(grid.At(0, 0))
	}
	return t.Click(t.clamp(t.cell.Offset(dRow, dCol)))
}

// Extend moves the far corner of the range by (dRow, dCol), clamped to the
// grid. From Point mode the far corner starts at the selected cell.
func (t Tracker) Extend(dRow, dCol int) Tracker {
	if t.mode == None {
		return t.Move(0, 0)
	}
	return t.ShiftClick(t.clamp(t.far.Offset(dRow, dCol)))
}

// Collapse drops the range and keeps the selected cell.
func (t Tracker) Collapse() Tracker {
	if t.mode != Ranged {
		return t
	}
	return t.Click(t.cell)
}
