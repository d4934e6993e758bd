// Package persist round-trips the whole grid through a durable key/value
// slot. The record is a JSON array of rows, each an array of cell strings.
package persist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/cellar/internal/grid"
)

// DefaultKey is the slot key the grid is stored under.
const DefaultKey = "spreadsheetGrid"

var (
	// ErrNotFound is returned by Load when no record exists.
	ErrNotFound = errors.New("no persisted grid")

	// ErrMalformed is returned by Load when the record cannot be decoded
	// into a rectangular grid.
	ErrMalformed = errors.New("malformed persisted grid")
)

// Record is one saved grid with its revision metadata.
type Record struct {
	Key       string
	Grid      grid.Grid
	Revision  string
	UpdatedAt time.Time
}

// Slot is a durable home for the grid record. Save overwrites
// unconditionally; the last writer wins.
type Slot interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, g grid.Grid) (Record, error)
}

// Eraser is implemented by slots that can delete their record.
type Eraser interface {
	Erase(ctx context.Context) error
}

// newRecord stamps g with a fresh revision.
func newRecord(key string, g grid.Grid, now time.Time) Record {
	return Record{Key: key, Grid: g, Revision: uuid.NewString(), UpdatedAt: now.UTC()}
}

// NewRecord stamps g with a fresh revision id and the current time.
func NewRecord(key string, g grid.Grid) Record {
	return newRecord(key, g, time.Now())
}
