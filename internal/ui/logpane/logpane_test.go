package logpane

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cellar/internal/log"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	log.InitWriter(&bytes.Buffer{})
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func opened(t *testing.T) Model {
	t.Helper()
	m := New().SetSize(100, 40).Toggle()
	require.True(t, m.Open())
	return m
}

func TestClosedByDefault(t *testing.T) {
	m := New()
	assert.False(t, m.Open())
	assert.Empty(t, m.View())
	assert.Equal(t, "bg", m.Overlay("bg"))
}

func TestView_ShowsEntriesAndFooter(t *testing.T) {
	log.ClearRecent()
	log.Warn(log.CatPersist, "save failed", "key", "spreadsheetGrid")

	view := opened(t).View()
	assert.Contains(t, view, "Debug log")
	assert.Contains(t, view, "[persist] save failed")
	assert.Contains(t, view, "[c] clear")
	assert.Contains(t, view, "[e] error")
	assert.Contains(t, view, "╭")
}

func TestView_EmptyMessage(t *testing.T) {
	log.ClearRecent()
	assert.Contains(t, opened(t).View(), "No log entries")
}

func TestLevelFilter(t *testing.T) {
	log.ClearRecent()
	log.Debug(log.CatUI, "noise")
	log.Error(log.CatClipboard, "unavailable")

	m := opened(t)
	assert.Contains(t, m.View(), "noise")

	m, cmd := m.Update(runes("e"))
	assert.Nil(t, cmd)
	assert.Equal(t, log.LevelError, m.MinLevel())
	assert.NotContains(t, m.View(), "noise")
	assert.Contains(t, m.View(), "unavailable")

	m, _ = m.Update(runes("d"))
	assert.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestClear(t *testing.T) {
	log.ClearRecent()
	log.Info(log.CatSheet, "copy")

	m, _ := opened(t).Update(runes("c"))
	assert.Empty(t, log.Recent(10))
	assert.Contains(t, m.View(), "No log entries")
}

func TestClose(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlX}} {
		m, cmd := opened(t).Update(k)
		assert.False(t, m.Open())
		require.NotNil(t, cmd)
		assert.Equal(t, CloseMsg{}, cmd())
	}
}

func TestUpdate_IgnoredWhenClosed(t *testing.T) {
	m, cmd := New().Update(runes("e"))
	assert.Nil(t, cmd)
	assert.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestAppend_PicksUpNewEntries(t *testing.T) {
	log.ClearRecent()
	m := opened(t)
	log.Info(log.CatWatcher, "record changed")
	assert.NotContains(t, m.View(), "record changed")
	assert.Contains(t, m.Append().View(), "record changed")
}

func TestColorize_Truncates(t *testing.T) {
	got := colorize(strings.Repeat("x", 80)+"\n", 20)
	assert.Equal(t, 20, lipgloss.Width(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestOverlay_Centers(t *testing.T) {
	log.ClearRecent()
	m := opened(t)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 100)+"\n", 40), "\n")
	lines := strings.Split(m.Overlay(bg), "\n")
	require.Len(t, lines, 40)
	assert.Equal(t, strings.Repeat(".", 100), lines[0])
	assert.Contains(t, strings.Join(lines, "\n"), "Debug log")
}
