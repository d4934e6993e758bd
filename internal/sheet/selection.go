package sheet

import (
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
)

// Click selects a single cell. An open edit session is committed first,
// since moving the selection blurs the editor.
func (s *Sheet) Click(a grid.Address) {
	if s.closed() {
		return
	}
	s.Commit()
	s.sel = s.sel.Click(a)
	log.Debug(log.CatSheet, "click", "selection", s.sel.Label())
}

// ShiftClick spans a range from the anchor to a.
func (s *Sheet) ShiftClick(a grid.Address) {
	if s.closed() {
		return
	}
	s.Commit()
	s.sel = s.sel.ShiftClick(a)
	log.Debug(log.CatSheet, "shift-click", "selection", s.sel.Label())
}

// DragTo extends the range from the cell where the drag started to a.
// Dragging back onto that cell leaves it selected on its own.
func (s *Sheet) DragTo(a grid.Address) {
	if s.closed() || !s.sel.HasSelection() {
		return
	}
	if anchor, _ := s.sel.Anchor(); anchor == a {
		s.sel = s.sel.Collapse()
		return
	}
	s.sel = s.sel.ShiftClick(a)
}

// Move steps the selected cell, clamped to the grid, collapsing any range.
func (s *Sheet) Move(dRow, dCol int) {
	if s.closed() {
		return
	}
	s.Commit()
	s.sel = s.sel.Move(dRow, dCol)
}

// Extend moves the far corner of the range, clamped to the grid.
func (s *Sheet) Extend(dRow, dCol int) {
	if s.closed() {
		return
	}
	s.Commit()
	s.sel = s.sel.Extend(dRow, dCol)
}

// Escape leaves the edit session if one is open, otherwise collapses the
// range to the selected cell.
func (s *Sheet) Escape() {
	if s.closed() {
		return
	}
	if s.session.Active() {
		s.Commit()
		return
	}
	s.sel = s.sel.Collapse()
}
