// Package pubsub provides a small generic publish/subscribe broker used to
// fan out grid changes, diagnostics and log lines to listeners outside the
// command path.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened.
type EventType string

const (
	// ChangedEvent reports that the installed grid was replaced.
	ChangedEvent EventType = "changed"
	// DiagnosticEvent reports a recoverable failure (clipboard, storage).
	DiagnosticEvent EventType = "diagnostic"
	// RecordEvent reports that the durable record changed on disk.
	RecordEvent EventType = "record"
	// LogEvent carries one formatted log line.
	LogEvent EventType = "log"
)

// Event is a published payload stamped with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes typed payloads.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
