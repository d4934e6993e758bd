package log

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := Format(ts, LevelError, CatPersist, "save failed", "key", "spreadsheetGrid", "rows", 30)
	assert.Equal(t, "2025-12-06T10:45:00 [ERROR] [persist] save failed key=spreadsheetGrid rows=30", got)

	odd := Format(ts, LevelInfo, CatSheet, "paste", "anchor")
	assert.Equal(t, "2025-12-06T10:45:00 [INFO] [sheet] paste anchor=<missing>", odd)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestWrite_RespectsMinLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetMinLevel(LevelWarn)
	Info(CatGrid, "hidden")
	Warn(CatGrid, "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN] [grid] shown")

	SetEnabled(false)
	Error(CatGrid, "muted")
	assert.NotContains(t, buf.String(), "muted")
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	ErrorErr(CatClipboard, "read failed", fmt.Errorf("boom"))
	ErrorErr(CatClipboard, "read failed", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "error=boom"))
	assert.True(t, strings.HasSuffix(lines[1], "error=<nil>"))
}

func TestUninitializedIsNoop(t *testing.T) {
	defaultLogger = nil
	Debug(CatUI, "nothing")
	assert.Nil(t, Recent(10))
	assert.Nil(t, NewListener(context.Background()))
	ClearRecent()
}

func TestRecent(t *testing.T) {
	InitWriter(&bytes.Buffer{})
	t.Cleanup(func() { defaultLogger = nil })

	for i := range RecentCapacity + 3 {
		Debug(CatCache, "entry", "i", i)
	}

	all := Recent(RecentCapacity * 2)
	require.Len(t, all, RecentCapacity)
	assert.Contains(t, all[0], "i=3\n")
	assert.Contains(t, all[len(all)-1], fmt.Sprintf("i=%d\n", RecentCapacity+2))

	two := Recent(2)
	require.Len(t, two, 2)
	assert.Equal(t, all[len(all)-2:], two)

	ClearRecent()
	assert.Empty(t, Recent(10))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		entry string
		want  Level
		ok    bool
	}{
		{"2025-01-01T00:00:00 [ERROR] [grid] x", LevelError, true},
		{"2025-01-01T00:00:00 [WARN] [grid] x", LevelWarn, true},
		{"2025-01-01T00:00:00 [INFO] [grid] x", LevelInfo, true},
		{"2025-01-01T00:00:00 [DEBUG] [grid] x", LevelDebug, true},
		{"plain text", LevelDebug, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.entry)
		assert.Equal(t, tt.want, got, tt.entry)
		assert.Equal(t, tt.ok, ok, tt.entry)
	}
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	InitWriter(&bytes.Buffer{})
	t.Cleanup(func() { defaultLogger = nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewListener(ctx)
	require.NotNil(t, l)

	Info(CatWatcher, "changed", "path", filepath.Join("a", "b"))

	msg := l.Listen()()
	ev, ok := msg.(Entry)
	require.True(t, ok, "got %T", msg)
	assert.Contains(t, ev.Payload, "[watcher] changed")
}
