package interchange

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cellar/internal/grid"
)

func TestChanges(t *testing.T) {
	before := grid.New(2, 2).Set(grid.At(0, 0), "Cash").Set(grid.At(1, 1), "100")
	after := before.Set(grid.At(0, 0), "Card").Set(grid.At(1, 0), "new")

	require.Equal(t, []Change{
		{At: grid.At(0, 0), Old: "Cash", New: "Card"},
		{At: grid.At(1, 0), Old: "", New: "new"},
	}, Changes(before, after))

	require.Empty(t, Changes(before, before.Clone()))
}

func TestChanges_DifferentShapes(t *testing.T) {
	small := grid.New(1, 1).Set(grid.At(0, 0), "x")
	big := grid.New(2, 2).Set(grid.At(0, 0), "x").Set(grid.At(1, 1), "y")

	require.Equal(t, []Change{{At: grid.At(1, 1), Old: "", New: "y"}}, Changes(small, big))
}

func TestTextDiff(t *testing.T) {
	segs := TextDiff("Cash", "Card")
	var before, after string
	for _, s := range segs {
		if s.Op != OpInsert {
			before += s.Text
		}
		if s.Op != OpDelete {
			after += s.Text
		}
	}
	require.Equal(t, "Cash", before)
	require.Equal(t, "Card", after)
	require.Equal(t, Segment{Op: OpEqual, Text: "Ca"}, segs[0])

	require.Equal(t, []Segment{{Op: OpInsert, Text: "new"}}, TextDiff("", "new"))
	require.Empty(t, TextDiff("", ""))
}

func TestRender(t *testing.T) {
	out := Render([]Change{
		{At: grid.At(2, 1), Old: "", New: "100"},
		{At: grid.At(0, 0), Old: "gone", New: ""},
	})
	require.Equal(t, "B3: {+100+}\nA1: [-gone-]\n", out)
}
