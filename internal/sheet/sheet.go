// Package sheet is the command surface of the grid editor. Every input the
// host receives becomes one Sheet method call: it reads selection and edit
// state, applies the protection policy, snapshots for undo, installs the
// new grid and writes the durable record.
//
// A Sheet is owned by the Bubble Tea update loop and is not safe for
// concurrent use. The only work done off the loop is the system clipboard
// read and write, returned as tea.Cmds whose results come back through
// ApplyPaste and the copy message.
package sheet

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/cellar/internal/clipboard"
	"github.com/zjrosen/cellar/internal/edit"
	"github.com/zjrosen/cellar/internal/flags"
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/history"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/persist"
	"github.com/zjrosen/cellar/internal/pubsub"
	"github.com/zjrosen/cellar/internal/selection"
	"github.com/zjrosen/cellar/internal/tracing"
)

// ErrClosed is returned by commands issued after Close.
var ErrClosed = errors.New("sheet is closed")

// Config is everything a Sheet needs at construction.
type Config struct {
	Rows     int
	Cols     int
	Template grid.Template
	// Initial is copied onto a synthesized grid when no record exists.
	Initial [][]string

	Slot      persist.Slot
	Sink      clipboard.Sink
	UndoDepth int
	Flags     *flags.Registry
	Tracer    trace.Tracer
}

// Sheet ties the grid store, selection, edit session, clipboard, undo
// stack and durable slot together.
type Sheet struct {
	ctx    context.Context
	cancel context.CancelFunc

	store   *grid.Store
	sel     selection.Tracker
	session edit.Session
	undo    *history.Stack

	slot   persist.Slot
	sink   clipboard.Sink
	tracer trace.Tracer
	broker *pubsub.Broker[Notice]

	origin   persist.Origin
	record   persist.Record
	pasteSeq uint64
}

// New validates cfg, restores the grid from the slot (or synthesizes it)
// and returns a sheet with nothing selected.
func New(ctx context.Context, cfg Config) (*Sheet, error) {
	if err := grid.CheckDimensions(cfg.Rows, cfg.Cols); err != nil {
		return nil, err
	}
	if err := cfg.Template.Validate(cfg.Rows, cfg.Cols); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	if cfg.Slot == nil {
		cfg.Slot = persist.NewMemorySlot()
	}
	if cfg.Sink == nil {
		cfg.Sink = clipboard.NewBuffer()
	}

	g, origin, loadErr := persist.Restore(ctx, cfg.Slot, persist.Shape{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Template: cfg.Template,
		Initial:  cfg.Initial,
	})

	var storeOpts []grid.StoreOption
	if cfg.Flags.Enabled(flags.FlagDerivedProtection) {
		storeOpts = append(storeOpts, grid.WithDerivedProtection())
	}
	var undoOpts []history.Option
	if cfg.Flags.Enabled(flags.FlagUndoParity) {
		undoOpts = append(undoOpts, history.WithParity())
	}

	sctx, cancel := context.WithCancel(ctx)
	s := &Sheet{
		ctx:     sctx,
		cancel:  cancel,
		store:   grid.NewStore(g, cfg.Template, storeOpts...),
		sel:     selection.New(cfg.Rows, cfg.Cols),
		undo:    history.New(cfg.UndoDepth, undoOpts...),
		slot:    cfg.Slot,
		sink:    cfg.Sink,
		tracer:  cfg.Tracer,
		broker:  pubsub.NewBroker[Notice](),
		origin:  origin,
	}
	if loadErr != nil {
		s.diagnose("persisted grid discarded", loadErr)
	}
	log.Info(log.CatSheet, "sheet ready",
		"rows", cfg.Rows, "cols", cfg.Cols, "origin", origin, "undoDepth", s.undo.Depth())
	return s, nil
}

// Close cancels in-flight clipboard work and stops notifications. Commands
// issued afterwards are ignored.
func (s *Sheet) Close() {
	if s.closed() {
		return
	}
	s.cancel()
	s.broker.Close()
	log.Debug(log.CatSheet, "sheet closed")
}

func (s *Sheet) closed() bool {
	return s.ctx.Err() != nil
}

// Subscribe streams notices until ctx is cancelled or the sheet closes.
func (s *Sheet) Subscribe(ctx context.Context) <-chan pubsub.Event[Notice] {
	return s.broker.Subscribe(ctx)
}

// Broker exposes the notice broker for tea listeners.
func (s *Sheet) Broker() *pubsub.Broker[Notice] {
	return s.broker
}

// Grid returns the installed grid.
func (s *Sheet) Grid() grid.Grid {
	return s.store.Grid()
}

// Get returns the text at a.
func (s *Sheet) Get(a grid.Address) string {
	return s.store.Get(a)
}

// Rows returns the row count.
func (s *Sheet) Rows() int {
	return s.store.Grid().Rows()
}

// Cols returns the column count.
func (s *Sheet) Cols() int {
	return s.store.Grid().Cols()
}

// IsProtected reports whether a is a protected template cell.
func (s *Sheet) IsProtected(a grid.Address) bool {
	return s.store.IsProtected(a)
}

// Selection returns the selection state.
func (s *Sheet) Selection() selection.Tracker {
	return s.sel
}

// Label is the status-bar selection text.
func (s *Sheet) Label() string {
	return s.sel.Label()
}

// Editing returns the cell open for editing.
func (s *Sheet) Editing() (grid.Address, bool) {
	return s.session.At()
}

// Draft returns the text of the cell being edited.
func (s *Sheet) Draft() string {
	return s.session.Draft()
}

// UndoDepth returns the number of snapshots available to Undo.
func (s *Sheet) UndoDepth() int {
	return s.undo.Len()
}

// Origin says whether the grid was loaded or synthesized at startup.
func (s *Sheet) Origin() persist.Origin {
	return s.origin
}

// Record returns the last successfully saved record.
func (s *Sheet) Record() persist.Record {
	return s.record
}

func (s *Sheet) span(command string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String(tracing.AttrSelection, s.sel.Label()))
	return tracing.StartCommand(s.ctx, s.tracer, command, attrs...)
}

// install replaces the grid and writes the durable record. Save failures
// are reported as diagnostics; the in-memory grid stays authoritative.
func (s *Sheet) install(ctx context.Context, g grid.Grid, reason string) {
	if err := s.store.Install(g); err != nil {
		// Every grid handed in is derived from the installed one.
		s.diagnose("install rejected", err)
		return
	}
	s.broker.Publish(pubsub.ChangedEvent, Notice{Message: reason})

	rec, err := s.slot.Save(ctx, g)
	if err != nil {
		s.diagnose("save failed", err)
		return
	}
	s.record = rec
	trace.SpanFromContext(ctx).AddEvent(tracing.EventSaved,
		trace.WithAttributes(attribute.String(tracing.AttrRevision, rec.Revision)))
	s.broker.Publish(pubsub.RecordEvent, Notice{Message: reason, Revision: rec.Revision})
}

func (s *Sheet) snapshot(ctx context.Context, g grid.Grid) {
	s.undo.Snapshot(g)
	trace.SpanFromContext(ctx).AddEvent(tracing.EventSnapshot,
		trace.WithAttributes(attribute.Int(tracing.AttrUndoDepth, s.undo.Len())))
}

func (s *Sheet) diagnose(msg string, err error) {
	log.ErrorErr(log.CatSheet, msg, err)
	s.broker.Publish(pubsub.DiagnosticEvent, Notice{Message: msg, Err: err})
}
