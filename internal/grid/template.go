package grid

import "fmt"

// AccountingHeaders is the header row of the accounting layout.
var AccountingHeaders = []string{
	"Account", "Entity", "Product Group", "Transaction Type", "Current", "Debit/Credit", "Amount",
}

// Template describes the optional pre-populated region of a grid:
// accounting-field labels down column 0 from row 0, and a row of headers at
// HeaderRow starting at HeaderCol.
type Template struct {
	Fields    []string
	HeaderRow int
	HeaderCol int
	Headers   []string
}

// Accounting is the header-only layout used by the ledger sheet.
func Accounting() Template {
	return Template{Headers: append([]string(nil), AccountingHeaders...)}
}

// IsZero reports whether t defines no template cells.
func (t Template) IsZero() bool {
	return len(t.Fields) == 0 && len(t.Headers) == 0
}

// Cells lists every template cell with its designated text, fields first.
func (t Template) Cells() []Write {
	out := make([]Write, 0, len(t.Fields)+len(t.Headers))
	for r, text := range t.Fields {
		out = append(out, Write{At: Address{Row: r, Col: 0}, Text: text})
	}
	for c, text := range t.Headers {
		out = append(out, Write{At: Address{Row: t.HeaderRow, Col: t.HeaderCol + c}, Text: text})
	}
	return out
}

// index returns the position of a in Cells, or -1 when a is not a template cell.
func (t Template) index(a Address) int {
	if a.Col == 0 && a.Row >= 0 && a.Row < len(t.Fields) {
		return a.Row
	}
	if a.Row == t.HeaderRow && a.Col >= t.HeaderCol && a.Col < t.HeaderCol+len(t.Headers) {
		return len(t.Fields) + a.Col - t.HeaderCol
	}
	return -1
}

// TextAt returns the designated text for a and whether a is in the template.
func (t Template) TextAt(a Address) (string, bool) {
	i := t.index(a)
	if i < 0 {
		return "", false
	}
	return t.Cells()[i].Text, true
}

// Validate checks that the template fits a rows x cols grid and that the
// header row does not overlap the field column.
func (t Template) Validate(rows, cols int) error {
	if t.IsZero() {
		return nil
	}
	if len(t.Fields) > rows {
		return fmt.Errorf("%d accounting fields exceed %d rows: %w", len(t.Fields), rows, ErrOutOfBounds)
	}
	if len(t.Headers) > 0 {
		if t.HeaderRow < 0 || t.HeaderRow >= rows || t.HeaderCol < 0 || t.HeaderCol+len(t.Headers) > cols {
			return fmt.Errorf("header row %d cols %d-%d do not fit %dx%d: %w",
				t.HeaderRow, t.HeaderCol, t.HeaderCol+len(t.Headers)-1, rows, cols, ErrOutOfBounds)
		}
		if t.HeaderCol == 0 && t.HeaderRow < len(t.Fields) {
			return fmt.Errorf("cell %s: %w", Label(t.HeaderRow, 0), ErrTemplateOverlap)
		}
	}
	return nil
}

// Synthesize builds a fresh rows x cols grid: template text first, then the
// optional initial content copied cell by cell within bounds. Non-empty
// initial cells override template text; empty ones leave it in place.
func (t Template) Synthesize(rows, cols int, initial [][]string) Grid {
	g := New(rows, cols).Apply(t.Cells())
	var writes []Write
	for r, row := range initial {
		for c, text := range row {
			if text == "" {
				continue
			}
			writes = append(writes, Write{At: Address{Row: r, Col: c}, Text: text})
		}
	}
	return g.Apply(writes)
}
