package edit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cellar/internal/grid"
)

func TestBegin(t *testing.T) {
	g := grid.New(3, 3).Set(grid.At(1, 1), "old")

	s, err := Begin(g, grid.At(1, 1), false)
	require.NoError(t, err)
	require.True(t, s.Active())
	require.Equal(t, "old", s.Draft())

	at, ok := s.At()
	require.True(t, ok)
	require.Equal(t, grid.At(1, 1), at)
}

func TestBegin_Rejects(t *testing.T) {
	g := grid.New(3, 3)

	_, err := Begin(g, grid.At(0, 0), true)
	require.ErrorIs(t, err, ErrProtected)

	_, err = Begin(g, grid.At(3, 0), false)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestInput_WritesEveryKeystroke(t *testing.T) {
	g := grid.New(3, 3)
	s, err := Begin(g, grid.At(0, 0), false)
	require.NoError(t, err)

	for _, draft := range []string{"C", "Ca", "Cas", "Cash"} {
		s, g = s.Input(g, draft)
		require.Equal(t, draft, g.Get(grid.At(0, 0)))
	}
	require.Equal(t, "Cash", s.Draft())
}

func TestInput_IdleIsNoop(t *testing.T) {
	g := grid.New(2, 2)
	_, out := Session{}.Input(g, "x")
	require.True(t, g.Equal(out))
}

func TestCommit_ReportsChange(t *testing.T) {
	start := grid.New(3, 3)
	s, err := Begin(start, grid.At(0, 0), false)
	require.NoError(t, err)

	g := start
	s, g = s.Input(g, "Cash")
	s, res, ok := s.Commit()

	require.True(t, ok)
	require.False(t, s.Active())
	require.True(t, res.Changed)
	require.True(t, res.Before.Equal(start), "snapshot is the grid before the first keystroke")
	require.Equal(t, "Cash", g.Get(grid.At(0, 0)))
}

func TestCommit_UnchangedCell(t *testing.T) {
	g := grid.New(3, 3).Set(grid.At(0, 0), "same")
	s, err := Begin(g, grid.At(0, 0), false)
	require.NoError(t, err)

	s, g = s.Input(g, "sam")
	s, _ = s.Input(g, "same")
	_, res, ok := s.Commit()

	require.True(t, ok)
	require.False(t, res.Changed)
}

func TestCommit_Idle(t *testing.T) {
	_, _, ok := Session{}.Commit()
	require.False(t, ok)
}
