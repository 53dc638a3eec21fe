package indiepixel

import (
	"fmt"
	"sort"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/internal/logger"
)

// Animation plays its children one after another. Each child owns a
// contiguous range of the animation's frames, as many as its own frame count,
// in list order.
type Animation struct {
	children []Widget
	label    string
}

// NewAnimation returns an animation of children. WithLabel names it in debug
// logs. An animation without children has no frames: rendering it on its own
// yields nothing, and containers skip it.
func NewAnimation(children []Widget, opts ...Option) *Animation {
	o := newOptions(opts)
	return &Animation{children: children, label: o.label}
}

func (*Animation) widget() {}

// Size returns the componentwise maximum of the children's sizes.
func (a *Animation) Size(b Bounds) Size {
	var out Size
	for _, c := range a.children {
		out = maxSize(out, c.Size(b))
	}
	return out
}

// FrameCount returns the sum of the children's frame counts.
func (a *Animation) FrameCount() int {
	n := 0
	for _, c := range a.children {
		n += c.FrameCount()
	}
	return n
}

// starts returns the first global frame of each child, followed by the
// total frame count.
func (a *Animation) starts() []int {
	out := make([]int, len(a.children)+1)
	for i, c := range a.children {
		out[i+1] = out[i] + c.FrameCount()
	}
	return out
}

// Locate returns the index of the child that owns global frame and the frame
// number local to that child. ok is false when no child owns frame.
func (a *Animation) Locate(frame int) (child, local int, ok bool) {
	if frame < 0 {
		return 0, 0, false
	}
	starts := a.starts()
	// The first child whose range ends after frame.
	i := sort.Search(len(a.children), func(i int) bool { return starts[i+1] > frame })
	if i == len(a.children) {
		return 0, 0, false
	}
	return i, frame - starts[i], true
}

// Paint paints the single child that owns frame with its local frame
// number. It panics if frame is outside [0, FrameCount()).
func (a *Animation) Paint(s *canvas.Surface, b Bounds, frame int) {
	i, local, ok := a.Locate(frame)
	if !ok {
		panic(fmt.Sprintf("indiepixel: animation %q has no frame %d (frame count %d)", a.label, frame, a.FrameCount()))
	}
	logger.Get().Debug("animation frame", "label", a.label, "frame", frame, "child", i, "local", local)
	a.children[i].Paint(s, b, local)
}
