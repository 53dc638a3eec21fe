package indiepixel

import (
	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
)

// Rect is a solid rectangle. Without a color it paints nothing.
type Rect struct {
	width, height int
	color         colors.Color
}

// NewRect returns a 10×10 rectangle. Use WithWidth, WithHeight and WithColor.
func NewRect(opts ...Option) *Rect {
	o := newOptions(opts)
	return &Rect{width: o.width, height: o.height, color: o.color}
}

func (*Rect) widget() {}

// Size returns the configured size regardless of b.
func (r *Rect) Size(Bounds) Size {
	return Size{Width: r.width, Height: r.height}
}

// FrameCount returns 1.
func (*Rect) FrameCount() int { return 1 }

// Paint fills the rectangle from (b.Left, b.Top) to
// (b.Left+width, b.Top+height), both corners included.
func (r *Rect) Paint(s *canvas.Surface, b Bounds, _ int) {
	if r.color.IsNone() {
		return
	}
	s.FillRectangle(b.Left, b.Top, b.Left+r.width, b.Top+r.height, r.color)
}
