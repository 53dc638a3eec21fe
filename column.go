package indiepixel

import "github.com/gogpu/indiepixel/canvas"

// Column lays its children out top to bottom with a one pixel gap.
type Column struct {
	children []Widget
	expand   bool
}

// NewColumn returns a column of children. WithExpand makes the column as
// tall as its bounds.
func NewColumn(children []Widget, opts ...Option) *Column {
	o := newOptions(opts)
	return &Column{children: children, expand: o.expand}
}

func (*Column) widget() {}

// Size returns the widest child's width, and the sum of the children's
// heights plus the gaps between them.
func (c *Column) Size(b Bounds) Size {
	var out Size
	for i, child := range c.children {
		cs := child.Size(b)
		if i > 0 {
			out.Height++
		}
		out.Height += cs.Height
		out.Width = max(out.Width, cs.Width)
	}
	if c.expand {
		out.Height = b.Height()
	}
	return out
}

// FrameCount returns the largest frame count among the children.
func (c *Column) FrameCount() int {
	return maxFrames(c.children)
}

// Paint paints each child with its top edge advanced past the previous
// children.
func (c *Column) Paint(s *canvas.Surface, b Bounds, frame int) {
	top := b.Top
	for _, child := range c.children {
		paintClamped(child, s, Bounds{Left: b.Left, Top: top, Right: b.Right, Bottom: b.Bottom}, frame)
		top += child.Size(b).Height + 1
	}
}
