package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cellar/internal/keys"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestDocument_ListsEveryBinding(t *testing.T) {
	doc := Document(keys.Sheet, keys.Edit)

	for _, heading := range []string{"## Navigation", "## Selection", "## Editing", "## General", "## While editing a cell"} {
		assert.Contains(t, doc, heading)
	}
	for _, group := range keys.Sheet.FullHelp() {
		for _, b := range group {
			assert.Contains(t, doc, "| `"+b.Help().Key+"` | "+b.Help().Desc+" |")
		}
	}
	assert.Contains(t, doc, "| `enter` | commit |")
}

func TestView_Framed(t *testing.T) {
	m := New("ascii").SetSize(100, 40)
	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, boxHeight)
	assert.True(t, strings.HasPrefix(lines[0], "╭─ Keys "))
	assert.Contains(t, lines[len(lines)-1], "? or esc to close")
	assert.Contains(t, view, "undo")
	for _, l := range lines {
		assert.Equal(t, boxWidth, lipgloss.Width(l))
	}
}

func TestView_ShrinksToTerminal(t *testing.T) {
	m := New("ascii").SetSize(40, 12)
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, 38, lipgloss.Width(lines[0]))
}

func TestView_UnknownStyleFallsBackToPlainText(t *testing.T) {
	m := New("auto").SetSize(100, 40)
	assert.Contains(t, m.View(), "## Navigation")
}

func TestOverlay_KeepsBackgroundSize(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 100)+"\n", 40), "\n")
	out := New("ascii").SetSize(100, 40).Overlay(bg)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	assert.Equal(t, strings.Repeat(".", 100), lines[0])
	assert.Contains(t, out, "Keys")
}
