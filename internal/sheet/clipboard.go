package sheet

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/cellar/internal/clipboard"
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/tracing"
)

// ErrSuperseded marks a paste result that arrived after a newer paste was
// started.
var ErrSuperseded = errors.New("paste superseded")

// CopiedMsg reports the outcome of a copy.
type CopiedMsg struct {
	Label string
	Text  string
	Err   error
}

// PasteResultMsg carries an asynchronous clipboard read back to the update
// loop. Anchor is the selected cell captured when the paste started.
type PasteResultMsg struct {
	Anchor grid.Address
	Seq    uint64
	Text   string
	Err    error
}

// PastedMsg reports the outcome of a paste.
type PastedMsg struct {
	Anchor grid.Address
	Report Report
	Err    error
}

// CopyText serializes the selection: the range row-major, or the selected
// cell alone.
func (s *Sheet) CopyText() (string, bool) {
	if r, ok := s.sel.Range(); ok {
		return clipboard.Serialize(s.store.Grid().Block(r)), true
	}
	if a, ok := s.sel.Cell(); ok {
		return s.store.Get(a), true
	}
	return "", false
}

// Copy stores the selection in the clipboard sink. Synchronous sinks are
// written before Copy returns; asynchronous ones are written by the
// returned command. With nothing selected Copy returns nil.
func (s *Sheet) Copy() tea.Cmd {
	if s.closed() {
		return nil
	}
	s.Commit()
	text, ok := s.CopyText()
	if !ok {
		return nil
	}
	label := s.sel.Label()
	sink, tracer := s.sink, s.tracer
	// write may run on a command goroutine; it touches only captured values
	// and the broker.
	write := func(ctx context.Context) CopiedMsg {
		_, span := tracing.StartCommand(ctx, tracer, "copy",
			attribute.String(tracing.AttrSelection, label),
			attribute.String(tracing.AttrSink, sinkName(sink)))
		err := sink.Write(ctx, text)
		tracing.Finish(span, err)
		if err != nil {
			err = fmt.Errorf("copy %s: %w", label, err)
			s.diagnose("copy failed", err)
		}
		return CopiedMsg{Label: label, Text: text, Err: err}
	}

	if !s.sink.Async() {
		msg := write(s.ctx)
		return func() tea.Msg { return msg }
	}
	ctx := s.ctx
	return func() tea.Msg { return write(ctx) }
}

// Paste reads the clipboard and writes it at the selected cell. The anchor
// is captured now, before any asynchronous read. Synchronous sinks are
// applied before Paste returns; for asynchronous ones the returned command
// yields a PasteResultMsg to pass to ApplyPaste. With nothing selected
// Paste returns nil.
func (s *Sheet) Paste() tea.Cmd {
	if s.closed() {
		return nil
	}
	s.Commit()
	anchor, ok := s.sel.Cell()
	if !ok {
		return nil
	}
	s.pasteSeq++
	seq := s.pasteSeq

	if !s.sink.Async() {
		text, err := s.sink.Read(s.ctx)
		msg := s.ApplyPaste(PasteResultMsg{Anchor: anchor, Seq: seq, Text: text, Err: err})
		return func() tea.Msg { return msg }
	}

	ctx, sink := s.ctx, s.sink
	log.Debug(log.CatClipboard, "paste read issued", "anchor", anchor.Label(), "seq", seq)
	return func() tea.Msg {
		text, err := sink.Read(ctx)
		return PasteResultMsg{Anchor: anchor, Seq: seq, Text: text, Err: err}
	}
}

// ApplyPaste writes a clipboard read at its captured anchor. Results that
// arrive after Close, or after a newer paste was started, are discarded.
// A failed or empty read is abandoned without touching the grid.
func (s *Sheet) ApplyPaste(msg PasteResultMsg) PastedMsg {
	out := PastedMsg{Anchor: msg.Anchor}
	switch {
	case s.closed():
		log.Debug(log.CatClipboard, "paste discarded after close", "seq", msg.Seq)
		out.Err = ErrClosed
		return out
	case msg.Seq != s.pasteSeq:
		log.Debug(log.CatClipboard, "paste discarded", "seq", msg.Seq, "current", s.pasteSeq)
		out.Err = ErrSuperseded
		return out
	case msg.Err != nil:
		out.Err = fmt.Errorf("paste at %s: %w", msg.Anchor.Label(), msg.Err)
		s.diagnose("paste abandoned", out.Err)
		return out
	case msg.Text == "":
		out.Err = fmt.Errorf("paste at %s: %w", msg.Anchor.Label(), clipboard.ErrEmpty)
		s.diagnose("paste abandoned", out.Err)
		return out
	}
	s.Commit()
	out.Report = s.pasteAt(msg.Anchor, msg.Text)
	return out
}

// PasteText writes text at the selected cell without going through the
// sink, as for a terminal bracketed paste.
func (s *Sheet) PasteText(text string) Report {
	if s.closed() || text == "" {
		return Report{}
	}
	s.Commit()
	anchor, ok := s.sel.Cell()
	if !ok {
		return Report{}
	}
	return s.pasteAt(anchor, text)
}

func (s *Sheet) pasteAt(anchor grid.Address, text string) Report {
	return s.applyWrites("paste", clipboard.Plan(anchor, clipboard.Parse(text)))
}

func sinkName(sink clipboard.Sink) string {
	switch sink.(type) {
	case *clipboard.Buffer:
		return "buffer"
	case *clipboard.System:
		return "system"
	default:
		return fmt.Sprintf("%T", sink)
	}
}
