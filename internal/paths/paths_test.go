package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveDataDir(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty uses cwd", "", DataDirName},
		{"project dir", "/work/books", "/work/books/.cellar"},
		{"data dir", "/work/books/.cellar", "/work/books/.cellar"},
		{"trailing slash", "/work/books/", "/work/books/.cellar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveDataDir(tt.input))
		})
	}
}

func TestResolveDataDir_FollowsRedirect(t *testing.T) {
	root := t.TempDir()
	shared := filepath.Join(root, "shared", DataDirName)
	require.NoError(t, os.MkdirAll(shared, 0o750))

	local := filepath.Join(root, "checkout", DataDirName)
	require.NoError(t, os.MkdirAll(local, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(local, "redirect"), []byte("../../shared/.cellar\n"), 0o600))

	require.Equal(t, shared, ResolveDataDir(filepath.Join(root, "checkout")))
}

func TestResolveDataDir_EmptyRedirectIgnored(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DataDirName)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "redirect"), []byte("  \n"), 0o600))

	require.Equal(t, dir, ResolveDataDir(dir))
}

func TestResolveRecordPath(t *testing.T) {
	dir := t.TempDir()

	require.Equal(t, filepath.Join(dir, DataDirName, FileRecordName), ResolveRecordPath(dir, "file"))
	require.Equal(t, filepath.Join(dir, DataDirName, SQLiteRecordName), ResolveRecordPath(dir, "sqlite"))

	explicit := filepath.Join(dir, "books.json")
	require.Equal(t, explicit, ResolveRecordPath(explicit, "file"))
}
