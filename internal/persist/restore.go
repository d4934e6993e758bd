package persist

import (
	"context"
	"errors"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
)

// Origin says where a restored grid came from.
type Origin int

const (
	// Synthesized means the grid was built from the template and initial values.
	Synthesized Origin = iota
	// Loaded means the grid came from the durable record.
	Loaded
)

func (o Origin) String() string {
	if o == Loaded {
		return "loaded"
	}
	return "synthesized"
}

// Shape describes the grid a sheet expects.
type Shape struct {
	Rows     int
	Cols     int
	Template grid.Template
	// Initial is copied onto a synthesized grid cell by cell. It is ignored
	// when a record is loaded.
	Initial [][]string
}

// Restore loads the record from slot when it exists and matches the shape.
// A missing, unreadable, malformed or differently shaped record falls back
// to synthesis; the error that caused the fallback is returned alongside
// the synthesized grid for diagnostics.
func Restore(ctx context.Context, slot Slot, shape Shape) (grid.Grid, Origin, error) {
	rec, err := slot.Load(ctx)
	if err == nil && (rec.Grid.Rows() != shape.Rows || rec.Grid.Cols() != shape.Cols) {
		err = errors.Join(ErrMalformed, grid.ErrDimensions)
		log.Warn(log.CatPersist, "persisted grid has wrong shape",
			"rows", rec.Grid.Rows(), "cols", rec.Grid.Cols(), "wantRows", shape.Rows, "wantCols", shape.Cols)
	}
	if err == nil {
		log.Info(log.CatPersist, "restored grid", "key", rec.Key, "revision", rec.Revision)
		return rec.Grid, Loaded, nil
	}

	if !errors.Is(err, ErrNotFound) {
		log.ErrorErr(log.CatPersist, "discarding persisted grid", err)
	}
	g := shape.Template.Synthesize(shape.Rows, shape.Cols, shape.Initial)
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	return g, Synthesized, err
}
