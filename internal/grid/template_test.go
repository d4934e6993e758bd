package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ledgerTemplate() Template {
	return Template{
		Fields:    []string{"Ledger", "Journal", "Period"},
		HeaderRow: 4,
		HeaderCol: 1,
		Headers:   []string{"Debit", "Credit"},
	}
}

func TestTemplate_Cells(t *testing.T) {
	cells := ledgerTemplate().Cells()

	require.Equal(t, []Write{
		{At: At(0, 0), Text: "Ledger"},
		{At: At(1, 0), Text: "Journal"},
		{At: At(2, 0), Text: "Period"},
		{At: At(4, 1), Text: "Debit"},
		{At: At(4, 2), Text: "Credit"},
	}, cells)
}

func TestTemplate_TextAt(t *testing.T) {
	tmpl := ledgerTemplate()

	text, ok := tmpl.TextAt(At(1, 0))
	require.True(t, ok)
	require.Equal(t, "Journal", text)

	text, ok = tmpl.TextAt(At(4, 2))
	require.True(t, ok)
	require.Equal(t, "Credit", text)

	_, ok = tmpl.TextAt(At(3, 0))
	require.False(t, ok)
	_, ok = tmpl.TextAt(At(4, 0))
	require.False(t, ok)
	_, ok = tmpl.TextAt(At(4, 3))
	require.False(t, ok)
}

func TestTemplate_Validate(t *testing.T) {
	require.NoError(t, Template{}.Validate(1, 1))
	require.NoError(t, ledgerTemplate().Validate(30, 15))
	require.NoError(t, Accounting().Validate(30, 15))

	require.ErrorIs(t, ledgerTemplate().Validate(2, 15), ErrOutOfBounds, "fields exceed rows")
	require.ErrorIs(t, ledgerTemplate().Validate(30, 2), ErrOutOfBounds, "headers exceed columns")
	require.ErrorIs(t, Accounting().Validate(30, 6), ErrOutOfBounds)

	overlap := Template{Fields: []string{"Ledger"}, Headers: []string{"Account"}}
	require.ErrorIs(t, overlap.Validate(30, 15), ErrTemplateOverlap)
}

func TestTemplate_Synthesize(t *testing.T) {
	g := ledgerTemplate().Synthesize(6, 4, nil)

	require.Equal(t, "Ledger", g.Get(At(0, 0)))
	require.Equal(t, "Credit", g.Get(At(4, 2)))
	require.Equal(t, "", g.Get(At(5, 3)))
}

func TestTemplate_SynthesizeInitialOverride(t *testing.T) {
	initial := [][]string{
		{"", "Cash"},
		{"Override"},
		{"x", "y", "z", "w", "dropped"},
	}
	g := ledgerTemplate().Synthesize(6, 4, initial)

	require.Equal(t, "Ledger", g.Get(At(0, 0)), "empty initial cells keep template text")
	require.Equal(t, "Cash", g.Get(At(0, 1)))
	require.Equal(t, "Override", g.Get(At(1, 0)))
	require.Equal(t, "w", g.Get(At(2, 3)))
	require.Equal(t, 4, g.Cols())
}

func TestAccounting_HeaderRow(t *testing.T) {
	g := Accounting().Synthesize(30, 15, nil)

	for c, h := range AccountingHeaders {
		require.Equal(t, h, g.Get(At(0, c)))
	}
	require.Equal(t, "", g.Get(At(0, len(AccountingHeaders))))
}
