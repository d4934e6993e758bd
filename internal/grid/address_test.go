package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{0, 1, "B1"},
		{9, 2, "C10"},
		{11, 1, "B12"},
		{29, 14, "O30"},
		{0, 25, "Z1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Label(tt.row, tt.col))
			require.Equal(t, tt.want, At(tt.row, tt.col).Label())
		})
	}
}

func TestLabel_InjectiveProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		a := At(rapid.IntRange(0, 999).Draw(r, "rowA"), rapid.IntRange(0, MaxColumns-1).Draw(r, "colA"))
		b := At(rapid.IntRange(0, 999).Draw(r, "rowB"), rapid.IntRange(0, MaxColumns-1).Draw(r, "colB"))
		if a != b && a.Label() == b.Label() {
			r.Fatalf("labels collide: %v and %v both %q", a, b, a.Label())
		}
		back, err := ParseLabel(a.Label())
		if err != nil {
			r.Fatalf("parse %q: %v", a.Label(), err)
		}
		if back != a {
			r.Fatalf("round trip %v -> %q -> %v", a, a.Label(), back)
		}
	})
}

func TestParseLabel_Errors(t *testing.T) {
	for _, s := range []string{"", "A", "1A", "A0", "A-1", "A+1", "AA1", "?3"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseLabel(s)
			require.ErrorIs(t, err, ErrInvalidLabel)
		})
	}
}

func TestParseLabel_Lowercase(t *testing.T) {
	a, err := ParseLabel("c10")
	require.NoError(t, err)
	require.Equal(t, At(9, 2), a)
}

func TestNormalizeRange_AnyCornerOrder(t *testing.T) {
	corners := [][2]Address{
		{At(1, 1), At(3, 4)},
		{At(3, 4), At(1, 1)},
		{At(1, 4), At(3, 1)},
		{At(3, 1), At(1, 4)},
	}
	for _, c := range corners {
		rowMin, rowMax, colMin, colMax := NormalizeRange(c[0], c[1])
		require.Equal(t, []int{1, 3, 1, 4}, []int{rowMin, rowMax, colMin, colMax})
	}
}

func TestRange_Helpers(t *testing.T) {
	r := Range{Start: At(2, 3), End: At(0, 1)}

	require.Equal(t, "D3:B1", r.Label())
	require.True(t, r.Contains(At(1, 2)))
	require.False(t, r.Contains(At(3, 2)))

	addrs := r.Addresses()
	require.Len(t, addrs, 9)
	require.Equal(t, At(0, 1), addrs[0])
	require.Equal(t, At(0, 2), addrs[1], "row-major order")
	require.Equal(t, At(2, 3), addrs[8])
}
