package interchange

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/cellar/internal/grid"
)

// Change is one cell whose text differs between two grids.
type Change struct {
	At  grid.Address
	Old string
	New string
}

// Op classifies a Segment.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Segment is a run of text within a changed cell.
type Segment struct {
	Op   Op
	Text string
}

// Changes lists differing cells in row-major order. Grids of different
// shapes are compared over the larger extent; missing cells read as "".
func Changes(before, after grid.Grid) []Change {
	rows := max(before.Rows(), after.Rows())
	cols := max(before.Cols(), after.Cols())

	var out []Change
	for r := range rows {
		for c := range cols {
			a := grid.At(r, c)
			if old, cur := before.Get(a), after.Get(a); old != cur {
				out = append(out, Change{At: a, Old: old, New: cur})
			}
		}
	}
	return out
}

// TextDiff splits the edit from before to after into equal, deleted and inserted
// runs, merged to human-sized pieces.
func TextDiff(before, after string) []Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	out := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		default:
			op = OpEqual
		}
		out = append(out, Segment{Op: op, Text: d.Text})
	}
	return out
}

// Render prints one line per change in word-diff style:
//
//	B3: Ca[-sh-]{+rd+}
func Render(changes []Change) string {
	var b strings.Builder
	for _, ch := range changes {
		fmt.Fprintf(&b, "%s: ", ch.At.Label())
		for _, seg := range TextDiff(ch.Old, ch.New) {
			switch seg.Op {
			case OpDelete:
				b.WriteString("[-" + seg.Text + "-]")
			case OpInsert:
				b.WriteString("{+" + seg.Text + "+}")
			default:
				b.WriteString(seg.Text)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
