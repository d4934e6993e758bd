package grid

import "errors"

var (
	// ErrDimensions indicates rows or columns outside the supported range.
	ErrDimensions = errors.New("invalid grid dimensions")

	// ErrNotRectangular indicates a matrix whose rows differ in length.
	ErrNotRectangular = errors.New("matrix is not rectangular")

	// ErrOutOfBounds indicates an address outside the grid.
	ErrOutOfBounds = errors.New("address out of bounds")

	// ErrInvalidLabel indicates a string that is not a cell label such as "B12".
	ErrInvalidLabel = errors.New("invalid cell label")

	// ErrTemplateOverlap indicates a header cell that lands on a field cell.
	ErrTemplateOverlap = errors.New("template header overlaps accounting fields")
)
