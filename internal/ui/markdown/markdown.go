// Package markdown renders markdown documents for terminal overlays.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by New. "auto" is deliberately absent: it probes the
// terminal background and the reply leaks into Bubble Tea's input.
var Styles = []string{"dark", "light", "notty", "ascii"}

// flush drops glamour's document margins so the output fits a Frame.
const flush = `{"document": {"margin": 0, "block_prefix": "", "block_suffix": ""}}`

// Renderer is a glamour renderer bound to one wrap width.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// New returns a renderer for style that wraps at width. An empty style
// means "dark".
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	if !knownStyle(style) {
		return nil, fmt.Errorf("unknown markdown style %q", style)
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(flush)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Renderer{tr: tr, width: width}, nil
}

func knownStyle(s string) bool {
	for _, k := range Styles {
		if k == s {
			return true
		}
	}
	return false
}

// Width is the wrap width.
func (r *Renderer) Width() int { return r.width }

// Render converts doc and strips the trailing blank lines glamour adds.
func (r *Renderer) Render(doc string) (string, error) {
	out, err := r.tr.Render(doc)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n "), nil
}
