package persist

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/cellar/internal/grid"
)

func TestEncode_ArrayOfArrays(t *testing.T) {
	g := grid.New(2, 2).Set(grid.At(0, 1), "Cash")

	data, err := Encode(g)
	require.NoError(t, err)
	require.JSONEq(t, `[["","Cash"],["",""]]`, string(data))
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{
		``,
		`{}`,
		`"grid"`,
		`[]`,
		`[[]]`,
		`[["a"],["b","c"]]`,
		`[[1,2]]`,
		`[["a"]`,
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Decode([]byte(raw))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestCodec_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(1, 12).Draw(rt, "rows")
		cols := rapid.IntRange(1, grid.MaxColumns).Draw(rt, "cols")
		g := grid.New(rows, cols)
		for i := rapid.IntRange(0, 20).Draw(rt, "writes"); i > 0; i-- {
			a := grid.At(rapid.IntRange(0, rows-1).Draw(rt, "r"), rapid.IntRange(0, cols-1).Draw(rt, "c"))
			g = g.Set(a, rapid.String().Draw(rt, "text"))
		}

		data, err := Encode(g)
		if err != nil {
			rt.Fatal(err)
		}
		back, err := Decode(data)
		if err != nil {
			rt.Fatal(err)
		}
		if !back.Equal(g) {
			rt.Fatalf("round trip changed grid: %s", data)
		}
	})
}
