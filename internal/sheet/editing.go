package sheet

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/cellar/internal/edit"
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/tracing"
)

// DoubleClick selects a and opens it for editing.
func (s *Sheet) DoubleClick(a grid.Address) error {
	if s.closed() {
		return ErrClosed
	}
	s.Click(a)
	return s.BeginEdit()
}

// BeginEdit opens the selected cell for editing. Protected cells are
// refused with edit.ErrProtected; with nothing selected it is a no-op.
func (s *Sheet) BeginEdit() error {
	if s.closed() {
		return ErrClosed
	}
	a, ok := s.sel.Cell()
	if !ok {
		return nil
	}
	if at, editing := s.session.At(); editing {
		if at == a {
			return nil
		}
		s.Commit()
	}
	session, err := edit.Begin(s.store.Grid(), a, s.store.IsProtected(a))
	if err != nil {
		log.Debug(log.CatSheet, "edit refused", "cell", a.Label(), "error", err)
		return err
	}
	s.session = session
	log.Debug(log.CatSheet, "edit opened", "cell", a.Label())
	return nil
}

// Input replaces the draft of the open cell and writes it into the grid.
// Without an open session it is a no-op.
func (s *Sheet) Input(text string) {
	if s.closed() || !s.session.Active() {
		return
	}
	session, g := s.session.Input(s.store.Grid(), text)
	s.session = session
	if g.Equal(s.store.Grid()) {
		return
	}
	s.install(s.ctx, g, "input")
}

// Commit closes the edit session. The grid already holds the committed
// text; if the cell changed, the grid from before the session opened is
// pushed onto the undo stack. Returns whether a session was open.
func (s *Sheet) Commit() bool {
	session, res, ok := s.session.Commit()
	if !ok {
		return false
	}
	s.session = session

	ctx, span := s.span("commit", attribute.String(tracing.AttrCell, res.At.Label()))
	defer tracing.Finish(span, nil)
	if res.Changed {
		s.snapshot(ctx, res.Before)
	}
	log.Debug(log.CatSheet, "edit committed", "cell", res.At.Label(), "changed", res.Changed)
	return true
}

// SetCell writes text into a, respecting protection, as one undoable step.
// It backs the non-interactive surfaces (CLI, tests).
func (s *Sheet) SetCell(a grid.Address, text string) error {
	if s.closed() {
		return ErrClosed
	}
	s.Commit()
	if !s.store.Grid().InBounds(a) {
		return fmt.Errorf("set %s: %w", a.Label(), grid.ErrOutOfBounds)
	}
	if s.store.IsProtected(a) {
		return fmt.Errorf("set %s: %w", a.Label(), edit.ErrProtected)
	}
	before := s.store.Grid()
	next := before.Set(a, text)
	if next.Equal(before) {
		return nil
	}
	ctx, span := s.span("set", attribute.String(tracing.AttrCell, a.Label()))
	defer tracing.Finish(span, nil)
	s.snapshot(ctx, before)
	s.install(ctx, next, "set")
	return nil
}
