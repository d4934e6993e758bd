package cmd

import (
	"fmt"

	"github.com/zjrosen/cellar/internal/clipboard"
	"github.com/zjrosen/cellar/internal/config"
	"github.com/zjrosen/cellar/internal/infrastructure/sqlite"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/paths"
	"github.com/zjrosen/cellar/internal/persist"
)

// store is an opened durable slot plus whatever must be closed with it.
type store struct {
	Slot persist.Slot
	// Path is the record file on disk, empty for the memory backend.
	Path string

	db *sqlite.DB
}

func (s *store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openStore resolves the configured backend to a slot.
func openStore(sc config.StorageConfig) (*store, error) {
	switch sc.Backend {
	case config.BackendMemory:
		return &store{Slot: persist.NewMemorySlot()}, nil
	case config.BackendSQLite:
		path := paths.ResolveRecordPath(sc.Path, sc.Backend)
		db, err := sqlite.NewDB(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		log.Debug(log.CatPersist, "using sqlite slot", "path", path, "key", sc.Key)
		return &store{Slot: db.GridSlot(sc.Key), Path: path, db: db}, nil
	default:
		path := paths.ResolveRecordPath(sc.Path, config.BackendFile)
		log.Debug(log.CatPersist, "using file slot", "path", path, "key", sc.Key)
		return &store{Slot: persist.NewFileSlot(path, sc.Key), Path: path}, nil
	}
}

// newSink builds the clipboard sink for the configured strategy.
func newSink(cc config.ClipboardConfig) clipboard.Sink {
	if cc.Strategy == config.ClipboardBuffer {
		return clipboard.NewBuffer()
	}
	return clipboard.NewSystem(clipboard.WithOSC52(cc.OSC52))
}
