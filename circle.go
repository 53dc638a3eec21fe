package indiepixel

import (
	"math"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
)

// Circle is a filled circle with an optional child centered inside it.
type Circle struct {
	child    Widget
	diameter int
	color    colors.Color
}

// NewCircle returns a circle of diameter 10. child may be nil. Use
// WithDiameter and WithColor.
func NewCircle(child Widget, opts ...Option) *Circle {
	o := newOptions(opts)
	return &Circle{child: child, diameter: o.diameter, color: o.color}
}

func (*Circle) widget() {}

// Size returns (diameter, diameter).
func (c *Circle) Size(Bounds) Size {
	return Size{Width: c.diameter, Height: c.diameter}
}

// FrameCount returns the child's frame count, or 1 without a child, so an
// animated child keeps animating inside the circle.
func (c *Circle) FrameCount() int {
	if c.child == nil {
		return 1
	}
	return c.child.FrameCount()
}

// Paint draws the circle in the top-left of b, then the child. The circle
// fills the inclusive box from (Left, Top) to (Left+diameter, Top+diameter),
// the same convention rectangles use.
//
// The child's far edges are computed with the two paddings swapped: the
// right edge uses the vertical padding and the bottom edge the horizontal
// one. Existing layouts depend on this, so it is kept.
func (c *Circle) Paint(s *canvas.Surface, b Bounds, frame int) {
	if !c.color.IsNone() {
		s.FillEllipse(b.Left, b.Top, b.Left+c.diameter, b.Top+c.diameter, c.color)
	}
	if c.child == nil {
		return
	}

	box := Bounds{Left: b.Left, Top: b.Top, Right: b.Left + c.diameter, Bottom: b.Top + c.diameter}
	cs := c.child.Size(box)
	padX := roundHalfEven(float64(c.diameter-cs.Width) / 2)
	padY := roundHalfEven(float64(c.diameter-cs.Height) / 2)
	c.child.Paint(s, Bounds{
		Left:   b.Left + padX,
		Top:    b.Top + padY,
		Right:  b.Left + c.diameter - padY,
		Bottom: b.Top + c.diameter - padX,
	}, frame)
}

// roundHalfEven rounds to the nearest integer, ties to even.
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
