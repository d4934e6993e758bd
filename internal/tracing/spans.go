package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys for sheet commands.
const (
	AttrCommand   = "sheet.command"
	AttrSelection = "sheet.selection"
	AttrCell      = "sheet.cell"
	AttrWritten   = "sheet.cells.written"
	AttrSkipped   = "sheet.cells.skipped"
	AttrUndoDepth = "sheet.undo.depth"
	AttrRevision  = "persist.revision"
	AttrSink      = "clipboard.sink"
)

// SpanPrefixSheet prefixes every command span name.
const SpanPrefixSheet = "sheet."

// Event names recorded on command spans.
const (
	EventSnapshot  = "undo.snapshot"
	EventSaved     = "record.saved"
	EventDiscarded = "paste.discarded"
)

// StartCommand opens a span for a sheet command. A nil tracer yields a
// non-recording span.
func StartCommand(ctx context.Context, tr trace.Tracer, command string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tr == nil {
		return ctx, trace.SpanFromContext(context.Background())
	}
	ctx, span := tr.Start(ctx, SpanPrefixSheet+command, trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(append(attrs, attribute.String(AttrCommand, command))...)
	return ctx, span
}

// Finish records err (if any) as the span status and ends the span.
func Finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
