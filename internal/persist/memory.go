package persist

import (
	"context"
	"sync"

	"github.com/zjrosen/cellar/internal/grid"
)

// MemorySlot keeps the encoded record in process memory.
type MemorySlot struct {
	mu    sync.Mutex
	key   string
	data  []byte
	rec   Record
	saves int
}

// NewMemorySlot returns an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{key: DefaultKey}
}

// Seed stores raw record bytes, as if written by an earlier session.
func (s *MemorySlot) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.rec = Record{Key: s.key}
}

// Load decodes the stored record.
func (s *MemorySlot) Load(_ context.Context) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return Record{}, ErrNotFound
	}
	g, err := Decode(s.data)
	if err != nil {
		return Record{}, err
	}
	rec := s.rec
	rec.Grid = g
	return rec, nil
}

// Save encodes and stores g.
func (s *MemorySlot) Save(_ context.Context, g grid.Grid) (Record, error) {
	data, err := Encode(g)
	if err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.rec = NewRecord(s.key, g)
	s.saves++
	return s.rec, nil
}

// Erase drops the stored record.
func (s *MemorySlot) Erase(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.rec = Record{}
	return nil
}

// Saves returns how many times Save succeeded.
func (s *MemorySlot) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Raw returns the stored bytes.
func (s *MemorySlot) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}
