package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/persist"
)

// GridSlot implements persist.Slot on the kv table.
type GridSlot struct {
	db  *sql.DB
	key string
}

var (
	_ persist.Slot   = (*GridSlot)(nil)
	_ persist.Eraser = (*GridSlot)(nil)
)

func newGridSlot(db *sql.DB, key string) *GridSlot {
	if key == "" {
		key = persist.DefaultKey
	}
	return &GridSlot{db: db, key: key}
}

// Load reads and decodes the record.
func (s *GridSlot) Load(ctx context.Context) (persist.Record, error) {
	var (
		value     string
		revision  string
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT value, revision, updated_at FROM kv WHERE key = ?`, s.key,
	).Scan(&value, &revision, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return persist.Record{}, persist.ErrNotFound
	}
	if err != nil {
		return persist.Record{}, fmt.Errorf("failed to load grid: %w", err)
	}
	g, err := persist.Decode([]byte(value))
	if err != nil {
		return persist.Record{}, err
	}
	return persist.Record{
		Key:       s.key,
		Grid:      g,
		Revision:  revision,
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}, nil
}

// Save upserts the record.
func (s *GridSlot) Save(ctx context.Context, g grid.Grid) (persist.Record, error) {
	data, err := persist.Encode(g)
	if err != nil {
		return persist.Record{}, err
	}
	rec := persist.NewRecord(s.key, g)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, revision, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, revision = excluded.revision, updated_at = excluded.updated_at`,
		s.key, string(data), rec.Revision, rec.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return persist.Record{}, fmt.Errorf("failed to save grid: %w", err)
	}
	return rec, nil
}

// Erase deletes the record.
func (s *GridSlot) Erase(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("failed to erase grid: %w", err)
	}
	return nil
}
