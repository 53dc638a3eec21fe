package indiepixel

import "github.com/gogpu/indiepixel/canvas"

// Stack paints its children on top of each other, first child at the back.
type Stack struct {
	children []Widget
}

// NewStack returns a stack of children.
func NewStack(children []Widget) *Stack {
	return &Stack{children: children}
}

func (*Stack) widget() {}

// Size returns the componentwise maximum of the children's sizes.
func (x *Stack) Size(b Bounds) Size {
	var out Size
	for _, c := range x.children {
		out = maxSize(out, c.Size(b))
	}
	return out
}

// FrameCount returns the largest frame count among the children.
func (x *Stack) FrameCount() int {
	return maxFrames(x.children)
}

// Paint paints every child at b. Children with fewer frames than the stack
// hold their last frame.
func (x *Stack) Paint(s *canvas.Surface, b Bounds, frame int) {
	for _, c := range x.children {
		paintClamped(c, s, b, frame)
	}
}
