// Package paths resolves where cellar keeps its config, records and traces.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDirName is the per-project directory holding cellar state.
const DataDirName = ".cellar"

// Record file names per storage backend.
const (
	FileRecordName   = "grid.json"
	SQLiteRecordName = "cellar.db"
)

// ResolveDataDir normalizes user input into a .cellar directory:
//   - "/path/to/project" -> "/path/to/project/.cellar"
//   - "/path/to/project/.cellar" -> unchanged
//   - "" -> "./.cellar"
//
// When the directory holds a "redirect" file its contents, relative to the
// directory, name the real location. Several checkouts of one project can
// share a sheet this way.
func ResolveDataDir(path string) string {
	if path == "" {
		path = "."
	}
	path = filepath.Clean(path)
	if filepath.Base(path) != DataDirName {
		path = filepath.Join(path, DataDirName)
	}
	return followRedirect(path)
}

// ResolveRecordPath returns the record location for backend. An explicit
// path with an extension is taken as the record file itself; anything else
// is treated as a project or data directory.
func ResolveRecordPath(path, backend string) string {
	if path != "" && filepath.Ext(path) != "" {
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			return filepath.Clean(path)
		}
	}
	name := FileRecordName
	if backend == "sqlite" {
		name = SQLiteRecordName
	}
	return filepath.Join(ResolveDataDir(path), name)
}

// ConfigDir returns ~/.config/cellar, or "" when the home directory is unknown.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cellar")
}

// DefaultTracesFile returns ~/.config/cellar/traces/traces.jsonl.
func DefaultTracesFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

func followRedirect(dir string) string {
	content, err := os.ReadFile(filepath.Join(dir, "redirect")) //nolint:gosec // redirect lives inside the data dir
	if err != nil {
		return dir
	}
	target := strings.TrimSpace(string(content))
	if target == "" {
		return dir
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Clean(filepath.Join(dir, target))
}
