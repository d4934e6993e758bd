package clipboard

import (
	"strings"

	"github.com/zjrosen/cellar/internal/grid"
)

// Serialize joins cells with tabs and rows with newlines.
func Serialize(block [][]string) string {
	rows := make([]string, len(block))
	for i, row := range block {
		rows[i] = strings.Join(row, "\t")
	}
	return strings.Join(rows, "\n")
}

// Parse splits text on newlines then tabs. A trailing carriage return on a
// row is dropped. A trailing newline yields an empty last row, so a block
// whose bottom row is blank survives a copy and paste.
func Parse(text string) [][]string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Split(strings.TrimSuffix(line, "\r"), "\t")
	}
	return out
}

// Plan maps every source cell at local offset (i, j) to anchor + (i, j).
// Bounds and protection are applied by the caller.
func Plan(anchor grid.Address, block [][]string) []grid.Write {
	var writes []grid.Write
	for i, row := range block {
		for j, text := range row {
			writes = append(writes, grid.Write{At: anchor.Offset(i, j), Text: text})
		}
	}
	return writes
}
