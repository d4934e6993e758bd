package persist

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cellar/internal/grid"
)

func TestMemorySlot(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySlot()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	g := grid.New(3, 2).Set(grid.At(2, 1), "x")
	saved, err := s.Save(ctx, g)
	require.NoError(t, err)
	require.NotEmpty(t, saved.Revision)
	require.Equal(t, DefaultKey, saved.Key)

	rec, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, rec.Grid.Equal(g))
	require.Equal(t, saved.Revision, rec.Revision)
	require.Equal(t, 1, s.Saves())

	require.NoError(t, s.Erase(ctx))
	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileSlot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cellar.json")
	s := NewFileSlot(path, "")

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	g := grid.New(30, 15).Set(grid.At(0, 0), "Cash")
	saved, err := s.Save(ctx, g)
	require.NoError(t, err)

	rec, err := NewFileSlot(path, DefaultKey).Load(ctx)
	require.NoError(t, err)
	require.True(t, rec.Grid.Equal(g))
	require.Equal(t, saved.Revision, rec.Revision)
	require.True(t, saved.UpdatedAt.Equal(rec.UpdatedAt))
}

func TestFileSlot_RevisionChangesOnEverySave(t *testing.T) {
	ctx := context.Background()
	s := NewFileSlot(filepath.Join(t.TempDir(), "cellar.json"), "")

	first, err := s.Save(ctx, grid.New(1, 1))
	require.NoError(t, err)
	second, err := s.Save(ctx, grid.New(1, 1))
	require.NoError(t, err)
	require.NotEqual(t, first.Revision, second.Revision)
}

func TestFileSlot_KeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cellar.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))

	s := NewFileSlot(path, "")
	_, err := s.Save(ctx, grid.New(1, 1))
	require.NoError(t, err)

	var entries map[string]json.RawMessage
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &entries))
	require.JSONEq(t, `"dark"`, string(entries["theme"]))
	require.JSONEq(t, `[[""]]`, string(entries[DefaultKey]))

	require.NoError(t, s.Erase(ctx))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"theme":"dark"}`, string(data))
}

func TestFileSlot_EraseRemovesFileWhenEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cellar.json")
	s := NewFileSlot(path, "")

	require.NoError(t, s.Erase(ctx), "erasing a missing record is not an error")
	_, err := s.Save(ctx, grid.New(1, 1))
	require.NoError(t, err)
	require.NoError(t, s.Erase(ctx))

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestFileSlot_Malformed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("not json"), 0o600))
	_, err := NewFileSlot(garbage, "").Load(ctx)
	require.ErrorIs(t, err, ErrMalformed)

	ragged := filepath.Join(dir, "ragged.json")
	require.NoError(t, os.WriteFile(ragged, []byte(`{"spreadsheetGrid":[["a"],[]]}`), 0o600))
	_, err = NewFileSlot(ragged, "").Load(ctx)
	require.ErrorIs(t, err, ErrMalformed)

	s := NewFileSlot(garbage, "")
	_, err = s.Save(ctx, grid.New(1, 1))
	require.NoError(t, err, "an unreadable file is overwritten")
	_, err = s.Load(ctx)
	require.NoError(t, err)
}
