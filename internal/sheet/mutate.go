package sheet

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/tracing"
)

// Report summarizes a multi-cell write.
type Report struct {
	Written int
	Skipped int
}

// Delete clears every selected cell that is not protected. Protected cells
// are skipped one by one; the rest of the range is still cleared.
func (s *Sheet) Delete() Report {
	if s.closed() {
		return Report{}
	}
	s.Commit()
	targets := s.sel.Targets()
	if len(targets) == 0 {
		return Report{}
	}
	writes := make([]grid.Write, len(targets))
	for i, a := range targets {
		writes[i] = grid.Write{At: a}
	}
	return s.applyWrites("delete", writes)
}

// applyWrites filters writes through the protection policy and installs
// the result as one undoable step. A step that changes nothing is not
// recorded.
func (s *Sheet) applyWrites(command string, writes []grid.Write) Report {
	ctx, span := s.span(command)
	kept, skipped := s.store.Writable(writes)
	rep := Report{Written: len(kept), Skipped: skipped}
	span.SetAttributes(
		attribute.Int(tracing.AttrWritten, rep.Written),
		attribute.Int(tracing.AttrSkipped, rep.Skipped),
	)
	defer tracing.Finish(span, nil)

	before := s.store.Grid()
	next := before.Apply(kept)
	if next.Equal(before) {
		log.Debug(log.CatSheet, command+" changed nothing", "skipped", skipped)
		return rep
	}
	s.snapshot(ctx, before)
	s.install(ctx, next, command)
	log.Debug(log.CatSheet, command, "written", rep.Written, "skipped", rep.Skipped)
	return rep
}

// Undo installs the previous grid from the undo stack. An empty stack is a
// no-op; returns whether anything was restored.
func (s *Sheet) Undo() bool {
	if s.closed() {
		return false
	}
	s.Commit()
	ctx, span := s.span("undo")
	defer tracing.Finish(span, nil)

	g, ok := s.undo.Undo(s.store.Fresh)
	if !ok {
		return false
	}
	span.SetAttributes(attribute.Int(tracing.AttrUndoDepth, s.undo.Len()))
	s.install(ctx, g, "undo")
	return true
}

// Reset replaces the grid with a freshly synthesized one and clears the
// undo stack.
func (s *Sheet) Reset() {
	if s.closed() {
		return
	}
	s.Commit()
	ctx, span := s.span("reset")
	defer tracing.Finish(span, nil)
	s.undo.Reset()
	s.install(ctx, s.store.Fresh(), "reset")
}
