package grid

import (
	"fmt"
	"strconv"
)

// MaxColumns is the widest grid a single-letter label can address.
const MaxColumns = 26

// Address is a zero-based (row, column) cell position.
type Address struct {
	Row int
	Col int
}

// At is shorthand for Address{Row: row, Col: col}.
func At(row, col int) Address {
	return Address{Row: row, Col: col}
}

// Label returns the spreadsheet-style label, e.g. "C10".
func (a Address) Label() string {
	return Label(a.Row, a.Col)
}

// Offset returns the address shifted by (dRow, dCol). The result may be out of bounds.
func (a Address) Offset(dRow, dCol int) Address {
	return Address{Row: a.Row + dRow, Col: a.Col + dCol}
}

func (a Address) String() string {
	return a.Label()
}

// Label maps (row, col) to a letter for the column followed by the 1-based
// row number. Only columns 0-25 have a defined label.
func Label(row, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// ParseLabel is the inverse of Label. Lowercase column letters are accepted.
func ParseLabel(s string) (Address, error) {
	if len(s) < 2 {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 || s[1] == '+' {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return Address{Row: row - 1, Col: int(letter - 'A')}, nil
}

// Range is a rectangle spanned by two corner addresses. Start is the
// anchor and End the far corner; they need not be ordered.
type Range struct {
	Start Address
	End   Address
}

// NormalizeRange returns the inclusive bounds of the rectangle spanned by a
// and b, taking min/max independently on each axis.
func NormalizeRange(a, b Address) (rowMin, rowMax, colMin, colMax int) {
	return min(a.Row, b.Row), max(a.Row, b.Row), min(a.Col, b.Col), max(a.Col, b.Col)
}

// Bounds returns the normalized inclusive bounds of r.
func (r Range) Bounds() (rowMin, rowMax, colMin, colMax int) {
	return NormalizeRange(r.Start, r.End)
}

// Contains reports whether a lies inside r.
func (r Range) Contains(a Address) bool {
	rowMin, rowMax, colMin, colMax := r.Bounds()
	return a.Row >= rowMin && a.Row <= rowMax && a.Col >= colMin && a.Col <= colMax
}

// Addresses lists every cell of r in row-major order.
func (r Range) Addresses() []Address {
	rowMin, rowMax, colMin, colMax := r.Bounds()
	out := make([]Address, 0, (rowMax-rowMin+1)*(colMax-colMin+1))
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			out = append(out, Address{Row: row, Col: col})
		}
	}
	return out
}

// Label renders r as "<start>:<end>" in the order the corners were given.
func (r Range) Label() string {
	return r.Start.Label() + ":" + r.End.Label()
}

// Single returns the one-cell range at a.
func Single(a Address) Range {
	return Range{Start: a, End: a}
}
