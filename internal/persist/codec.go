package persist

import (
	"encoding/json"
	"fmt"

	"github.com/zjrosen/cellar/internal/grid"
)

// Encode serializes g as a JSON array of rows.
func Encode(g grid.Grid) ([]byte, error) {
	m := g.Matrix()
	if m == nil {
		m = [][]string{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding grid: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of rows. Anything that is not a non-empty
// rectangular array of string arrays is ErrMalformed.
func Decode(data []byte) (grid.Grid, error) {
	var m [][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return grid.Grid{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	g, err := grid.FromMatrix(m)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}
