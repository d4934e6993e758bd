package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
)

// FileSlot stores records in a JSON object file, one entry per key, so
// several keys can share a file the way a browser's local storage would.
// Revision metadata lives next to the grid under "<key>.meta".
type FileSlot struct {
	mu   sync.Mutex
	path string
	key  string
}

type fileMeta struct {
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewFileSlot returns a slot for key inside the file at path. An empty key
// selects DefaultKey.
func NewFileSlot(path, key string) *FileSlot {
	if key == "" {
		key = DefaultKey
	}
	return &FileSlot{path: path, key: key}
}

// Path returns the backing file.
func (s *FileSlot) Path() string {
	return s.path
}

func (s *FileSlot) metaKey() string {
	return s.key + ".meta"
}

func (s *FileSlot) readEntries() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	entries := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, s.path, err)
	}
	return entries, nil
}

// Load reads and decodes the record for the slot's key.
func (s *FileSlot) Load(_ context.Context) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return Record{}, err
	}
	raw, ok := entries[s.key]
	if !ok {
		return Record{}, ErrNotFound
	}
	g, err := Decode(raw)
	if err != nil {
		return Record{}, err
	}
	rec := Record{Key: s.key, Grid: g}
	var meta fileMeta
	if m, ok := entries[s.metaKey()]; ok && json.Unmarshal(m, &meta) == nil {
		rec.Revision, rec.UpdatedAt = meta.Revision, meta.UpdatedAt
	}
	return rec, nil
}

// Save writes g under the slot's key, keeping other keys in the file. The
// file is replaced atomically.
func (s *FileSlot) Save(_ context.Context, g grid.Grid) (Record, error) {
	data, err := Encode(g)
	if err != nil {
		return Record{}, err
	}
	rec := NewRecord(s.key, g)
	meta, err := json.Marshal(fileMeta{Revision: rec.Revision, UpdatedAt: rec.UpdatedAt})
	if err != nil {
		return Record{}, fmt.Errorf("encoding record metadata: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn(log.CatPersist, "overwriting unreadable record file", "path", s.path, "error", err)
		}
		entries = make(map[string]json.RawMessage)
	}
	entries[s.key] = data
	entries[s.metaKey()] = meta

	if err := s.writeEntries(entries); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Erase removes the slot's key. The file is removed when no keys remain.
func (s *FileSlot) Erase(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return os.Remove(s.path)
	}
	delete(entries, s.key)
	delete(entries, s.metaKey())
	if len(entries) == 0 {
		return os.Remove(s.path)
	}
	return s.writeEntries(entries)
}

func (s *FileSlot) writeEntries(entries map[string]json.RawMessage) error {
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record file: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(out, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
