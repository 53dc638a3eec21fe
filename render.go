package indiepixel

import (
	"iter"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/internal/logger"
)

// RenderOption configures a render pass.
type RenderOption func(*renderOptions)

type renderOptions struct {
	width, height int
	sizeSet       bool
}

// WithRenderSize overrides the canvas size. Without it a Root renders at its
// own canvas size and any other widget at 64×32.
func WithRenderSize(width, height int) RenderOption {
	return func(o *renderOptions) {
		o.width = width
		o.height = height
		o.sizeSet = true
	}
}

func canvasSize(w Widget, opts []RenderOption) (int, int) {
	o := renderOptions{width: DefaultCanvasWidth, height: DefaultCanvasHeight}
	if r, ok := w.(*Root); ok {
		o.width, o.height = r.width, r.height
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o.width, o.height
}

// Frames returns a sequence of (frame number, surface) pairs, one per frame
// of w, in frame order. Each surface is fresh, opaque black, and painted
// with w over the whole canvas. Frames are painted lazily as the sequence is
// consumed; iterating again walks the tree again.
func Frames(w Widget, opts ...RenderOption) iter.Seq2[int, *canvas.Surface] {
	width, height := canvasSize(w, opts)
	return func(yield func(int, *canvas.Surface) bool) {
		n := w.FrameCount()
		logger.Get().Debug("render started", "frames", n, "width", width, "height", height)
		bounds := Bounds{Right: width, Bottom: height}
		for frame := range n {
			s := canvas.New(width, height)
			w.Paint(s, bounds, frame)
			if !yield(frame, s) {
				return
			}
		}
		logger.Get().Debug("render finished", "frames", n)
	}
}

// Render paints every frame of w and returns the surfaces in frame order.
func Render(w Widget, opts ...RenderOption) []*canvas.Surface {
	var out []*canvas.Surface
	for _, s := range Frames(w, opts...) {
		out = append(out, s)
	}
	return out
}
