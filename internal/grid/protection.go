package grid

// Protection is an explicit per-cell mask over a template's cells.
// A bit is set once, when the mask is built from a grid, and afterwards can
// only be cleared. Cell contents are never consulted again, so a user value
// that happens to equal a template label is not protected.
type Protection struct {
	tmpl Template
	mask []bool
}

// NewProtection marks every template cell of g that currently holds its
// designated text.
func NewProtection(t Template, g Grid) Protection {
	cells := t.Cells()
	mask := make([]bool, len(cells))
	for i, c := range cells {
		mask[i] = c.Text != "" && g.InBounds(c.At) && g.Get(c.At) == c.Text
	}
	return Protection{tmpl: t, mask: mask}
}

// Protected reports whether a is a masked template cell.
func (p Protection) Protected(a Address) bool {
	i := p.tmpl.index(a)
	return i >= 0 && i < len(p.mask) && p.mask[i]
}

// Release clears every bit whose cell no longer holds its designated text
// in g. Bits are never set again.
func (p *Protection) Release(g Grid) int {
	released := 0
	for i, c := range p.tmpl.Cells() {
		if i < len(p.mask) && p.mask[i] && g.Get(c.At) != c.Text {
			p.mask[i] = false
			released++
		}
	}
	return released
}

// Count returns how many cells are currently protected.
func (p Protection) Count() int {
	n := 0
	for _, set := range p.mask {
		if set {
			n++
		}
	}
	return n
}

// DerivedProtected is the content-derived rule: a is protected iff it lies in
// the template and g currently holds the designated text there.
func DerivedProtected(t Template, g Grid, a Address) bool {
	text, ok := t.TextAt(a)
	return ok && text != "" && g.Get(a) == text
}
