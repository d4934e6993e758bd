// Package grid holds the cell matrix, the address/label codec and the
// protected-region policy derived from a static template.
package grid

import (
	"fmt"
	"slices"
)

// Grid is an immutable rows x columns matrix of text cells.
// Every mutating method returns a new Grid; rows that were not written are
// shared between the old and new value, which is safe because no method
// writes into an existing row.
type Grid struct {
	cells [][]string
}

// Write is a single pending cell assignment.
type Write struct {
	At   Address
	Text string
}

// CheckDimensions validates rows and columns for a new grid.
func CheckDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 || cols > MaxColumns {
		return fmt.Errorf("%w: %dx%d (rows > 0, 1 <= columns <= %d)", ErrDimensions, rows, cols, MaxColumns)
	}
	return nil
}

// New returns a rows x cols grid of empty cells.
// Non-positive dimensions yield an empty grid; callers validate with
// CheckDimensions first.
func New(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		return Grid{}
	}
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}
	return Grid{cells: cells}
}

// FromMatrix copies m into a new grid. m must be non-empty and rectangular.
func FromMatrix(m [][]string) (Grid, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty matrix", ErrDimensions)
	}
	cols := len(m[0])
	cells := make([][]string, len(m))
	for r, row := range m {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, r, len(row), cols)
		}
		cells[r] = slices.Clone(row)
	}
	return Grid{cells: cells}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// IsZero reports whether g has no cells.
func (g Grid) IsZero() bool {
	return len(g.cells) == 0
}

// SameShape reports whether g and o have identical dimensions.
func (g Grid) SameShape(o Grid) bool {
	return g.Rows() == o.Rows() && g.Cols() == o.Cols()
}

// InBounds reports whether a addresses a cell of g.
func (g Grid) InBounds(a Address) bool {
	return a.Row >= 0 && a.Row < g.Rows() && a.Col >= 0 && a.Col < g.Cols()
}

// Clamp moves a to the nearest in-bounds address.
func (g Grid) Clamp(a Address) Address {
	return Address{
		Row: max(0, min(a.Row, g.Rows()-1)),
		Col: max(0, min(a.Col, g.Cols()-1)),
	}
}

// Get returns the text at a, or "" when a is out of bounds.
func (g Grid) Get(a Address) string {
	if !g.InBounds(a) {
		return ""
	}
	return g.cells[a.Row][a.Col]
}

// Row returns a copy of row r.
func (g Grid) Row(r int) []string {
	if r < 0 || r >= g.Rows() {
		return nil
	}
	return slices.Clone(g.cells[r])
}

// Set returns a grid with a set to text. Out-of-bounds writes return g.
func (g Grid) Set(a Address, text string) Grid {
	return g.Apply([]Write{{At: a, Text: text}})
}

// Apply returns a grid with every in-bounds write applied in order.
// Out-of-bounds writes are skipped. Only touched rows are copied.
func (g Grid) Apply(writes []Write) Grid {
	if len(writes) == 0 {
		return g
	}
	var cells [][]string
	copied := make(map[int]bool)
	for _, w := range writes {
		if !g.InBounds(w.At) {
			continue
		}
		if cells == nil {
			cells = slices.Clone(g.cells)
		}
		if !copied[w.At.Row] {
			cells[w.At.Row] = slices.Clone(cells[w.At.Row])
			copied[w.At.Row] = true
		}
		cells[w.At.Row][w.At.Col] = w.Text
	}
	if cells == nil {
		return g
	}
	return Grid{cells: cells}
}

// Clone returns a deep copy of g that shares no storage with it.
func (g Grid) Clone() Grid {
	if g.IsZero() {
		return Grid{}
	}
	cells := make([][]string, len(g.cells))
	for r, row := range g.cells {
		cells[r] = slices.Clone(row)
	}
	return Grid{cells: cells}
}

// Matrix returns a deep copy of the cells as rows of strings.
func (g Grid) Matrix() [][]string {
	return g.Clone().cells
}

// Equal reports whether g and o have the same shape and contents.
func (g Grid) Equal(o Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for r := range g.cells {
		if !slices.Equal(g.cells[r], o.cells[r]) {
			return false
		}
	}
	return true
}

// Block returns a copy of the cells inside r, clipped to the grid.
func (g Grid) Block(r Range) [][]string {
	rowMin, rowMax, colMin, colMax := r.Bounds()
	rowMin, colMin = max(rowMin, 0), max(colMin, 0)
	rowMax, colMax = min(rowMax, g.Rows()-1), min(colMax, g.Cols()-1)
	if rowMin > rowMax || colMin > colMax {
		return nil
	}
	out := make([][]string, 0, rowMax-rowMin+1)
	for row := rowMin; row <= rowMax; row++ {
		out = append(out, slices.Clone(g.cells[row][colMin:colMax+1]))
	}
	return out
}

// Overlay copies m onto g cell by cell starting at A1, bounded by the grid
// dimensions. Ragged and oversized matrices are clipped; empty source cells
// are copied like any other value.
func (g Grid) Overlay(m [][]string) Grid {
	var writes []Write
	for r, row := range m {
		for c, text := range row {
			writes = append(writes, Write{At: Address{Row: r, Col: c}, Text: text})
		}
	}
	return g.Apply(writes)
}
