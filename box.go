package indiepixel

import (
	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
)

// Box wraps one child with padding and an optional background.
type Box struct {
	child      Widget
	padding    int
	background colors.Color
	expand     bool
}

// NewBox returns a box around child. Use WithPadding, WithBackground and
// WithExpand.
func NewBox(child Widget, opts ...Option) *Box {
	o := newOptions(opts)
	return &Box{child: child, padding: o.padding, background: o.background, expand: o.expand}
}

func (*Box) widget() {}

// Size returns the full bounds when expanding. Otherwise it is the child's
// size plus padding on both sides plus one pixel, which keeps the inclusive
// background rectangle from overlapping the next sibling.
func (x *Box) Size(b Bounds) Size {
	if x.expand {
		return Size{Width: b.Width(), Height: b.Height()}
	}
	cs := x.child.Size(b)
	return Size{
		Width:  cs.Width + 2*x.padding + 1,
		Height: cs.Height + 2*x.padding + 1,
	}
}

// FrameCount returns the child's frame count.
func (x *Box) FrameCount() int {
	return x.child.FrameCount()
}

// Paint draws the background, then the child inset by the padding.
func (x *Box) Paint(s *canvas.Surface, b Bounds, frame int) {
	if !x.background.IsNone() {
		if x.expand {
			s.FillRectangle(b.Left, b.Top, b.Right, b.Bottom, x.background)
		} else {
			cs := x.child.Size(b)
			s.FillRectangle(b.Left, b.Top,
				b.Left+cs.Width+2*x.padding, b.Top+cs.Height+2*x.padding, x.background)
		}
	}
	x.child.Paint(s, b.Inset(x.padding), frame)
}
