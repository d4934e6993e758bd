package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToDark(t *testing.T) {
	r, err := New(40, "")
	require.NoError(t, err)
	assert.Equal(t, 40, r.Width())
}

func TestNew_RejectsUnknownStyle(t *testing.T) {
	_, err := New(40, "auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown markdown style")
}

func TestRender(t *testing.T) {
	r, err := New(40, "ascii")
	require.NoError(t, err)

	out, err := r.Render("## Navigation\n\nMove with the **arrow** keys.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "arrow")
	assert.NotRegexp(t, `\n$`, out)
}

func TestRender_Wraps(t *testing.T) {
	r, err := New(20, "notty")
	require.NoError(t, err)

	out, err := r.Render("one two three four five six seven eight nine ten eleven twelve")
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20, line)
	}
}
