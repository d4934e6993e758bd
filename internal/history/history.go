// Package history is the bounded undo stack of whole-grid snapshots.
package history

import (
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
)

// DefaultDepth is the number of snapshots kept when none is configured.
const DefaultDepth = 5

// Option configures a Stack.
type Option func(*Stack)

// WithParity selects the double-jump undo: pop one snapshot, then install
// the new top without popping it, or a fresh grid when the stack is empty.
func WithParity() Option {
	return func(s *Stack) { s.parity = true }
}

// Stack holds deep copies of prior grids, oldest first. It never holds the
// current grid.
type Stack struct {
	depth  int
	parity bool
	snaps  []grid.Grid
}

// New returns an empty stack. depth <= 0 selects DefaultDepth.
func New(depth int, opts ...Option) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}
	s := &Stack{depth: depth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the maximum number of snapshots.
func (s *Stack) Depth() int {
	return s.depth
}

// Len returns the number of snapshots held.
func (s *Stack) Len() int {
	return len(s.snaps)
}

// Snapshot deep-copies g onto the stack, evicting the oldest entry when the
// stack is full.
func (s *Stack) Snapshot(g grid.Grid) {
	s.snaps = append(s.snaps, g.Clone())
	if over := len(s.snaps) - s.depth; over > 0 {
		clear(s.snaps[:over])
		s.snaps = s.snaps[over:]
		log.Debug(log.CatHistory, "evicted oldest snapshot", "evicted", over)
	}
}

// Undo returns the grid to install. ok is false when the stack is empty.
// fresh synthesizes the replacement grid in parity mode once the stack runs
// dry.
func (s *Stack) Undo(fresh func() grid.Grid) (grid.Grid, bool) {
	n := len(s.snaps)
	if n == 0 {
		return grid.Grid{}, false
	}
	top := s.snaps[n-1]
	s.snaps[n-1] = grid.Grid{}
	s.snaps = s.snaps[:n-1]

	if !s.parity {
		log.Debug(log.CatHistory, "undo", "remaining", len(s.snaps))
		return top, true
	}
	if len(s.snaps) == 0 {
		log.Debug(log.CatHistory, "undo to fresh grid")
		return fresh(), true
	}
	log.Debug(log.CatHistory, "undo to previous snapshot", "remaining", len(s.snaps))
	return s.snaps[len(s.snaps)-1].Clone(), true
}

// Reset drops every snapshot.
func (s *Stack) Reset() {
	s.snaps = nil
}
