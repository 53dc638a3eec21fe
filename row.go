package indiepixel

import "github.com/gogpu/indiepixel/canvas"

// Row lays its children out left to right with a one pixel gap.
type Row struct {
	children []Widget
	expand   bool
}

// NewRow returns a row of children. WithExpand makes the row as wide as its
// bounds.
func NewRow(children []Widget, opts ...Option) *Row {
	o := newOptions(opts)
	return &Row{children: children, expand: o.expand}
}

func (*Row) widget() {}

// Size returns the sum of the children's widths plus the gaps between them,
// and the tallest child's height. Every child is measured against b.
func (r *Row) Size(b Bounds) Size {
	var out Size
	for i, c := range r.children {
		cs := c.Size(b)
		if i > 0 {
			out.Width++
		}
		out.Width += cs.Width
		out.Height = max(out.Height, cs.Height)
	}
	if r.expand {
		out.Width = b.Width()
	}
	return out
}

// FrameCount returns the largest frame count among the children.
func (r *Row) FrameCount() int {
	return maxFrames(r.children)
}

// Paint paints each child with its left edge advanced past the previous
// children. Only the left edge moves; the other edges stay those of b.
func (r *Row) Paint(s *canvas.Surface, b Bounds, frame int) {
	left := b.Left
	for _, c := range r.children {
		paintClamped(c, s, Bounds{Left: left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}, frame)
		left += c.Size(b).Width + 1
	}
}
