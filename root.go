package indiepixel

import (
	"time"

	"github.com/gogpu/indiepixel/canvas"
)

// Root anchors a tree to a fixed canvas. It is the usual top of a tree and
// carries metadata for whoever displays the result.
type Root struct {
	child               Widget
	width, height       int
	maxAge              time.Duration
	delay               time.Duration
	showFullApplication bool
}

// NewRoot returns a 64×32 root around child. Use WithCanvasSize, WithMaxAge,
// WithDelay and WithShowFullApplication.
func NewRoot(child Widget, opts ...Option) *Root {
	o := newOptions(opts)
	return &Root{
		child:               child,
		width:               o.canvasWidth,
		height:              o.canvasHeight,
		maxAge:              o.maxAge,
		delay:               o.delay,
		showFullApplication: o.showFullApplication,
	}
}

func (*Root) widget() {}

// Child returns the wrapped widget.
func (r *Root) Child() Widget { return r.child }

// MaxAge returns how long the output may be cached.
func (r *Root) MaxAge() time.Duration { return r.maxAge }

// Delay returns the duration of one frame.
func (r *Root) Delay() time.Duration { return r.delay }

// ShowFullApplication reports the show-full-application display flag.
func (r *Root) ShowFullApplication() bool { return r.showFullApplication }

// Canvas returns the bounds of the whole canvas.
func (r *Root) Canvas() Bounds {
	return Bounds{Right: r.width, Bottom: r.height}
}

// Size returns the canvas size regardless of b.
func (r *Root) Size(Bounds) Size {
	return Size{Width: r.width, Height: r.height}
}

// FrameCount returns the child's frame count.
func (r *Root) FrameCount() int {
	return r.child.FrameCount()
}

// Paint ignores b and paints the child over the whole canvas.
func (r *Root) Paint(s *canvas.Surface, _ Bounds, frame int) {
	r.child.Paint(s, r.Canvas(), frame)
}
