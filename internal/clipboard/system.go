package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/zjrosen/cellar/internal/log"
)

// System uses the host clipboard through atotto/clipboard. Over SSH or
// inside tmux/screen, writes are also sent to the terminal as an OSC 52
// sequence so they land on the user's local clipboard.
type System struct {
	out    io.Writer
	osc52  bool
	native bool

	writeAll func(string) error
	readAll  func() (string, error)
}

// SystemOption configures a System sink.
type SystemOption func(*System)

// WithOSC52 enables or disables the OSC 52 write path.
func WithOSC52(enabled bool) SystemOption {
	return func(s *System) { s.osc52 = enabled }
}

// WithTerminal sets where OSC 52 sequences are written. Defaults to stderr.
func WithTerminal(w io.Writer) SystemOption {
	return func(s *System) { s.out = w }
}

// WithBackend replaces the native clipboard calls.
func WithBackend(write func(string) error, read func() (string, error)) SystemOption {
	return func(s *System) {
		s.writeAll = write
		s.readAll = read
		s.native = false
	}
}

// NewSystem returns a sink backed by the host clipboard.
func NewSystem(opts ...SystemOption) *System {
	s := &System{
		out:      os.Stderr,
		osc52:    true,
		native:   true,
		writeAll: clipboard.WriteAll,
		readAll:  clipboard.ReadAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write copies text to the native clipboard and, in a remote or multiplexed
// session, to the terminal. It succeeds if either path does.
func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sent := false
	if s.osc52 && shouldUseOSC52() {
		if err := s.writeOSC52(text); err != nil {
			log.ErrorErr(log.CatClipboard, "osc52 write failed", err)
		} else {
			sent = true
		}
	}
	if s.unsupported() {
		if sent {
			return nil
		}
		return fmt.Errorf("write: %w", ErrUnavailable)
	}
	if err := s.writeAll(text); err != nil {
		if sent {
			log.Debug(log.CatClipboard, "native clipboard write failed after osc52", "error", err)
			return nil
		}
		return fmt.Errorf("write: %w: %w", ErrUnavailable, err)
	}
	return nil
}

func (s *System) writeOSC52(text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(s.out)
	return err
}

// Read returns the native clipboard text. OSC 52 is write-only here.
func (s *System) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.unsupported() {
		return "", fmt.Errorf("read: %w", ErrUnavailable)
	}
	text, err := s.readAll()
	if err != nil {
		return "", fmt.Errorf("read: %w: %w", ErrUnavailable, err)
	}
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// unsupported reports whether the native backend found no clipboard tool.
func (s *System) unsupported() bool {
	return s.native && clipboard.Unsupported
}

// Async is true; native reads shell out and may block.
func (s *System) Async() bool {
	return true
}

// shouldUseOSC52 reports whether the process runs over SSH or inside a
// terminal multiplexer, where the native clipboard is usually not the
// user's.
func shouldUseOSC52() bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}
