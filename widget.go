package indiepixel

import (
	"image"

	"github.com/gogpu/indiepixel/canvas"
)

// Bounds is the rectangle, in surface pixels, a widget may measure and paint
// within. Right and Bottom are exclusive for width and height purposes.
//
// Bounds are not validated: inverted bounds produce odd output, not errors.
type Bounds struct {
	Left, Top, Right, Bottom int
}

// NewBounds returns the bounds with the given corners.
func NewBounds(left, top, right, bottom int) Bounds {
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (b Bounds) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Bounds) Height() int {
	return b.Bottom - b.Top
}

// Inset shrinks the bounds by n on every side.
func (b Bounds) Inset(n int) Bounds {
	return Bounds{Left: b.Left + n, Top: b.Top + n, Right: b.Right - n, Bottom: b.Bottom - n}
}

// Rectangle converts the bounds to an image.Rectangle.
func (b Bounds) Rectangle() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Size is the footprint a widget reports for some bounds.
type Size struct {
	Width, Height int
}

// maxSize returns the componentwise maximum of a and b.
func maxSize(a, b Size) Size {
	return Size{Width: max(a.Width, b.Width), Height: max(a.Height, b.Height)}
}

// Widget is a node of the render tree.
//
// Size and FrameCount must be pure: calling them twice with the same input
// returns the same result. Paint draws frame number frame into s within b.
// Calling Paint with frame outside [0, FrameCount()) is a programming error.
//
// The set of widgets is closed; all implementations live in this package.
type Widget interface {
	// Size returns the intrinsic size of the widget inside b.
	Size(b Bounds) Size

	// FrameCount returns the number of animation frames, at least 1.
	FrameCount() int

	// Paint draws frame into s, constrained to b.
	Paint(s *canvas.Surface, b Bounds, frame int)

	widget()
}

// paintClamped paints a child of a multi-child container with frame mapped
// to the child's own range. A child with fewer frames holds its last one and
// a child without frames paints nothing.
func paintClamped(w Widget, s *canvas.Surface, b Bounds, frame int) {
	n := w.FrameCount()
	if n == 0 {
		return
	}
	w.Paint(s, b, min(frame, n-1))
}

// maxFrames returns the largest frame count among children, or 1.
func maxFrames(children []Widget) int {
	n := 1
	for _, c := range children {
		n = max(n, c.FrameCount())
	}
	return n
}
