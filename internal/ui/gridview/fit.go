package gridview

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"
)

// fitTTL keeps fitted cells around for a few minutes of idle editing.
const fitTTL = 5 * time.Minute

type fitKey string

type fitInput struct {
	text  string
	width int
}

func keyFor(in fitInput) fitKey {
	return fitKey(strconv.Itoa(in.width) + "\x00" + in.text)
}

// fitCell flattens text to one line and pads or cuts it to exactly width
// terminal cells. Wide runes that would straddle the edge are dropped.
func fitCell(_ context.Context, in fitInput) (string, error) {
	return fit(in.text, in.width), nil
}

func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = strings.NewReplacer("\r\n", "⏎", "\n", "⏎", "\t", " ").Replace(text)
	if uniseg.StringWidth(text) > width {
		text = truncate.StringWithTail(text, uint(width), "…") //nolint:gosec // width > 0
	}
	return runewidth.FillRight(text, width)
}

// fitted returns the padded text for a cell, going through the cache.
func (m Model) fitted(text string, width int) string {
	in := fitInput{text: text, width: width}
	out, _ := m.fit.Get(context.Background(), keyFor(in), in, fitTTL)
	return out
}
