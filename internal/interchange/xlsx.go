package interchange

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
)

// DefaultSheet is the worksheet name used on export.
const DefaultSheet = "Sheet1"

// ReadXLSX returns the active worksheet's cells as text. Trailing empty
// cells are omitted by excelize, so rows come back ragged.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	log.Debug(log.CatPersist, "read workbook", "sheet", sheet, "rows", len(rows))
	return rows, nil
}

// WriteXLSX writes g to a single-sheet workbook. Empty cells are left unset.
func WriteXLSX(w io.Writer, g grid.Grid) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for r := range g.Rows() {
		for c, text := range g.Row(r) {
			if text == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell %s: %w", grid.Label(r, c), err)
			}
			if err := f.SetCellStr(DefaultSheet, cell, text); err != nil {
				return fmt.Errorf("setting %s: %w", cell, err)
			}
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
