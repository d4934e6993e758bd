package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/cellar/internal/grid"
)

func TestTracker_StartsEmpty(t *testing.T) {
	tr := New(30, 15)

	require.Equal(t, None, tr.Mode())
	require.False(t, tr.HasSelection())
	require.Equal(t, "None", tr.Label())
	require.Nil(t, tr.Targets())

	_, ok := tr.Cell()
	require.False(t, ok)
}

func TestTracker_ClickSetsCellAndAnchor(t *testing.T) {
	tr := New(30, 15).Click(grid.At(2, 1))

	cell, ok := tr.Cell()
	require.True(t, ok)
	require.Equal(t, grid.At(2, 1), cell)

	anchor, _ := tr.Anchor()
	require.Equal(t, cell, anchor)
	require.Equal(t, Point, tr.Mode())
	require.Equal(t, "B3", tr.Label())
}

func TestTracker_ClickClearsRange(t *testing.T) {
	tr := New(30, 15).Click(grid.At(0, 0)).ShiftClick(grid.At(3, 2))
	require.Equal(t, Ranged, tr.Mode())

	tr = tr.Click(grid.At(5, 5))
	_, ok := tr.Range()
	require.False(t, ok)
	require.Equal(t, "F6", tr.Label())
}

func TestTracker_ShiftClick(t *testing.T) {
	tr := New(30, 15).Click(grid.At(3, 2)).ShiftClick(grid.At(0, 0))

	r, ok := tr.Range()
	require.True(t, ok)
	require.Equal(t, grid.At(3, 2), r.Start)
	require.Equal(t, grid.At(0, 0), r.End)
	require.Equal(t, "C4:A1", tr.Label())

	cell, _ := tr.Cell()
	require.Equal(t, grid.At(3, 2), cell, "shift-click does not move the selected cell")
	require.Len(t, tr.Targets(), 12)
}

func TestTracker_ShiftClickWithoutAnchorIsClick(t *testing.T) {
	tr := New(30, 15).ShiftClick(grid.At(1, 1))

	require.Equal(t, Point, tr.Mode())
	require.Equal(t, "B2", tr.Label())
}

func TestTracker_OutOfBoundsClickIgnored(t *testing.T) {
	tr := New(3, 3).Click(grid.At(1, 1))

	require.Equal(t, tr, tr.Click(grid.At(3, 0)))
	require.Equal(t, tr, tr.ShiftClick(grid.At(0, -1)))
}

func TestTracker_MoveClampsAndCollapses(t *testing.T) {
	tests := []struct {
		name       string
		start      grid.Address
		dRow, dCol int
		want       string
	}{
		{"down", grid.At(0, 0), 1, 0, "A2"},
		{"right", grid.At(0, 0), 0, 1, "B1"},
		{"up at top edge", grid.At(0, 1), -1, 0, "B1"},
		{"left at left edge", grid.At(2, 0), 0, -1, "A3"},
		{"down at bottom edge", grid.At(2, 2), 1, 0, "C3"},
		{"right at right edge", grid.At(2, 2), 0, 1, "C3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(3, 3).Click(tt.start).ShiftClick(grid.At(1, 1)).Move(tt.dRow, tt.dCol)
			require.Equal(t, Point, tr.Mode())
			require.Equal(t, tt.want, tr.Label())

			anchor, _ := tr.Anchor()
			cell, _ := tr.Cell()
			require.Equal(t, cell, anchor)
		})
	}
}

func TestTracker_MoveFromNothingSelectsA1(t *testing.T) {
	require.Equal(t, "A1", New(3, 3).Move(1, 0).Label())
}

func TestTracker_ExtendGrowsFromAnchor(t *testing.T) {
	tr := New(5, 5).Click(grid.At(1, 1)).Extend(1, 0).Extend(0, 2)

	require.Equal(t, "B2:D3", tr.Label())

	tr = tr.Extend(10, 10)
	require.Equal(t, "B2:E5", tr.Label(), "far corner is clamped")

	cell, _ := tr.Cell()
	require.Equal(t, grid.At(1, 1), cell)
}

func TestTracker_CollapseKeepsCell(t *testing.T) {
	tr := New(5, 5).Click(grid.At(1, 1)).ShiftClick(grid.At(3, 3)).Collapse()

	require.Equal(t, Point, tr.Mode())
	require.Equal(t, "B2", tr.Label())
}

func TestTracker_SelectionStaysInBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(1, 40).Draw(rt, "rows")
		cols := rapid.IntRange(1, grid.MaxColumns).Draw(rt, "cols")
		tr := New(rows, cols)

		steps := rapid.IntRange(1, 50).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			d := rapid.IntRange(-3, 3)
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				tr = tr.Move(d.Draw(rt, "dr"), d.Draw(rt, "dc"))
			case 1:
				tr = tr.Extend(d.Draw(rt, "dr"), d.Draw(rt, "dc"))
			case 2:
				tr = tr.Click(grid.At(rapid.IntRange(-2, rows+2).Draw(rt, "r"), rapid.IntRange(-2, cols+2).Draw(rt, "c")))
			case 3:
				tr = tr.Collapse()
			}
		}

		g := grid.New(rows, cols)
		for _, a := range tr.Targets() {
			if !g.InBounds(a) {
				rt.Fatalf("target %v outside %dx%d", a, rows, cols)
			}
		}
	})
}
