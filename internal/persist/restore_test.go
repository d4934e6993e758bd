package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cellar/internal/grid"
)

func ledger() grid.Template {
	return grid.Template{Fields: []string{"Ledger"}, HeaderRow: 2, HeaderCol: 1, Headers: []string{"Debit"}}
}

func TestRestore_SynthesizesWhenMissing(t *testing.T) {
	shape := Shape{Rows: 4, Cols: 3, Template: ledger(), Initial: [][]string{{"", "Cash"}}}

	g, origin, err := Restore(context.Background(), NewMemorySlot(), shape)
	require.NoError(t, err)
	require.Equal(t, Synthesized, origin)
	require.Equal(t, "Ledger", g.Get(grid.At(0, 0)))
	require.Equal(t, "Cash", g.Get(grid.At(0, 1)))
	require.Equal(t, "Debit", g.Get(grid.At(2, 1)))
}

func TestRestore_LoadsRecordAndIgnoresInitial(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	stored := grid.New(4, 3).Set(grid.At(3, 2), "kept")
	_, err := slot.Save(ctx, stored)
	require.NoError(t, err)

	g, origin, err := Restore(ctx, slot, Shape{Rows: 4, Cols: 3, Template: ledger(), Initial: [][]string{{"ignored"}}})
	require.NoError(t, err)
	require.Equal(t, Loaded, origin)
	require.True(t, g.Equal(stored))
}

func TestRestore_FallsBackOnMalformed(t *testing.T) {
	slot := NewMemorySlot()
	slot.Seed([]byte(`{"not":"a grid"}`))

	g, origin, err := Restore(context.Background(), slot, Shape{Rows: 2, Cols: 2})
	require.ErrorIs(t, err, ErrMalformed)
	require.Equal(t, Synthesized, origin)
	require.True(t, g.Equal(grid.New(2, 2)))
}

func TestRestore_FallsBackOnShapeMismatch(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	_, err := slot.Save(ctx, grid.New(5, 5))
	require.NoError(t, err)

	g, origin, err := Restore(ctx, slot, Shape{Rows: 2, Cols: 2})
	require.ErrorIs(t, err, ErrMalformed)
	require.ErrorIs(t, err, grid.ErrDimensions)
	require.Equal(t, Synthesized, origin)
	require.Equal(t, 2, g.Rows())
}
