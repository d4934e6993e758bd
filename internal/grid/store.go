package grid

import (
	"fmt"

	"github.com/zjrosen/cellar/internal/log"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDerivedProtection switches the store to the content-derived
// protection rule instead of the explicit mask.
func WithDerivedProtection() StoreOption {
	return func(s *Store) { s.derived = true }
}

// Store owns the installed grid and the protection policy for it.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Store struct {
	grid    Grid
	tmpl    Template
	prot    Protection
	derived bool
}

// NewStore installs g and builds the protection mask from its current
// contents.
func NewStore(g Grid, t Template, opts ...StoreOption) *Store {
	s := &Store{grid: g, tmpl: t, prot: NewProtection(t, g)}
	for _, opt := range opts {
		opt(s)
	}
	log.Debug(log.CatGrid, "store created",
		"rows", g.Rows(), "cols", g.Cols(), "protected", s.prot.Count(), "derived", s.derived)
	return s
}

// Grid returns the installed grid.
func (s *Store) Grid() Grid {
	return s.grid
}

// Template returns the template the store was built with.
func (s *Store) Template() Template {
	return s.tmpl
}

// Get returns the installed text at a.
func (s *Store) Get(a Address) string {
	return s.grid.Get(a)
}

// Set returns the installed grid with a set to text. It does not install
// the result.
func (s *Store) Set(a Address, text string) Grid {
	return s.grid.Set(a, text)
}

// IsProtected reports whether writes to a must be skipped.
func (s *Store) IsProtected(a Address) bool {
	if s.derived {
		return DerivedProtected(s.tmpl, s.grid, a)
	}
	return s.prot.Protected(a)
}

// Writable filters writes down to in-bounds, unprotected targets and
// reports how many were dropped.
func (s *Store) Writable(writes []Write) ([]Write, int) {
	kept := make([]Write, 0, len(writes))
	for _, w := range writes {
		if !s.grid.InBounds(w.At) || s.IsProtected(w.At) {
			continue
		}
		kept = append(kept, w)
	}
	return kept, len(writes) - len(kept)
}

// Install replaces the grid. The new grid must have the same shape. Mask
// bits for cells that no longer hold their template text are released.
func (s *Store) Install(g Grid) error {
	if !g.SameShape(s.grid) {
		return fmt.Errorf("%w: install %dx%d into %dx%d", ErrDimensions, g.Rows(), g.Cols(), s.grid.Rows(), s.grid.Cols())
	}
	s.grid = g
	if n := s.prot.Release(g); n > 0 {
		log.Debug(log.CatGrid, "released protection", "cells", n)
	}
	return nil
}

// Fresh synthesizes a template-only grid of the installed shape.
func (s *Store) Fresh() Grid {
	return s.tmpl.Synthesize(s.grid.Rows(), s.grid.Cols(), nil)
}
