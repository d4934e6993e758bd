// Package edit implements the single-cell edit session. A session writes
// every draft straight into the grid it is given; committing only decides
// whether the grid captured when the session opened is worth an undo entry.
package edit

import (
	"errors"
	"fmt"

	"github.com/zjrosen/cellar/internal/grid"
)

var (
	// ErrProtected is returned when opening a session on a protected cell.
	ErrProtected = errors.New("cell is protected")

	// ErrBusy is returned when opening a session while another is open.
	ErrBusy = errors.New("another cell is being edited")
)

// Session is the edit state. The zero value is idle.
type Session struct {
	open     bool
	at       grid.Address
	before   grid.Grid
	original string
	draft    string
}

// Begin opens a session on a. before is the grid at the moment the session
// opens and becomes the undo snapshot if the commit changes the cell.
func Begin(before grid.Grid, a grid.Address, protected bool) (Session, error) {
	if !before.InBounds(a) {
		return Session{}, fmt.Errorf("edit %s: %w", a.Label(), grid.ErrOutOfBounds)
	}
	if protected {
		return Session{}, fmt.Errorf("edit %s: %w", a.Label(), ErrProtected)
	}
	text := before.Get(a)
	return Session{open: true, at: a, before: before, original: text, draft: text}, nil
}

// Active reports whether a cell is open for editing.
func (s Session) Active() bool {
	return s.open
}

// At returns the cell being edited.
func (s Session) At() (grid.Address, bool) {
	return s.at, s.open
}

// Draft returns the current text of the edited cell.
func (s Session) Draft() string {
	return s.draft
}

// Input replaces the draft with text and returns g with the draft written
// into the edited cell. An idle session returns g unchanged.
func (s Session) Input(g grid.Grid, text string) (Session, grid.Grid) {
	if !s.open {
		return s, g
	}
	s.draft = text
	return s, g.Set(s.at, text)
}

// Result is the outcome of closing a session.
type Result struct {
	At      grid.Address
	Before  grid.Grid
	Changed bool
}

// Commit closes the session. The grid already holds the committed text, so
// nothing is written; Changed reports whether the cell differs from when
// the session opened.
func (s Session) Commit() (Session, Result, bool) {
	if !s.open {
		return s, Result{}, false
	}
	res := Result{At: s.at, Before: s.before, Changed: s.draft != s.original}
	return Session{}, res, true
}
