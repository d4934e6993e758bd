// Package clipboard moves tab/newline-separated cell blocks between the
// sheet and a sink: an in-process buffer or the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrEmpty is returned when a read yields no text.
	ErrEmpty = errors.New("clipboard is empty")

	// ErrUnavailable is returned when the system clipboard cannot be used.
	ErrUnavailable = errors.New("clipboard unavailable")
)

// Sink stores and returns clipboard text.
type Sink interface {
	Write(ctx context.Context, text string) error
	Read(ctx context.Context) (string, error)
	// Async reports whether Read may block and must run off the UI loop.
	Async() bool
}

// Buffer is an in-process sink. Its reads are synchronous.
type Buffer struct {
	mu   sync.Mutex
	text string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write replaces the buffer contents.
func (b *Buffer) Write(_ context.Context, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	return nil
}

// Read returns the buffer contents, or ErrEmpty.
func (b *Buffer) Read(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text == "" {
		return "", ErrEmpty
	}
	return b.text, nil
}

// Async is false.
func (b *Buffer) Async() bool {
	return false
}
