package indiepixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
)

// paintCall records one Paint invocation of a probe.
type paintCall struct {
	bounds Bounds
	frame  int
}

// probe is a test widget with a fixed size and frame count that records
// how it is painted.
type probe struct {
	size   Size
	frames int
	calls  []paintCall
}

func newProbe(w, h, frames int) *probe {
	return &probe{size: Size{Width: w, Height: h}, frames: frames}
}

func (*probe) widget() {}

func (p *probe) Size(Bounds) Size { return p.size }

func (p *probe) FrameCount() int { return p.frames }

func (p *probe) Paint(_ *canvas.Surface, b Bounds, frame int) {
	if frame < 0 || frame >= p.frames {
		panic("probe painted out of range")
	}
	p.calls = append(p.calls, paintCall{bounds: b, frame: frame})
}

var (
	screen = Bounds{Right: 64, Bottom: 32}
	black  = color.RGBA{A: 255}
	red    = colors.MustParse("red")
	green  = colors.MustParse("#00ff00")
)

// countPainted returns the number of pixels that are not black.
func countPainted(s *canvas.Surface) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.RGBAAt(x, y) != black {
				n++
			}
		}
	}
	return n
}

func paint(w Widget, b Bounds, frame int) *canvas.Surface {
	s := canvas.New(64, 32)
	w.Paint(s, b, frame)
	return s
}

func TestBounds(t *testing.T) {
	b := NewBounds(2, 3, 12, 8)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.Equal(t, NewBounds(3, 4, 11, 7), b.Inset(1))
	assert.Equal(t, image.Rect(2, 3, 12, 8), b.Rectangle())
}

func TestRectSize(t *testing.T) {
	r := NewRect()
	for _, b := range []Bounds{screen, NewBounds(0, 0, 1, 1), NewBounds(5, 5, 2, 2), {}} {
		assert.Equal(t, Size{Width: 10, Height: 10}, r.Size(b))
	}
	assert.Equal(t, Size{Width: 3, Height: 7}, NewRect(WithWidth(3), WithHeight(7)).Size(screen))
	assert.Equal(t, 1, r.FrameCount())
}

func TestRectPaint(t *testing.T) {
	s := paint(NewRect(WithWidth(2), WithHeight(1), WithColor(red)), NewBounds(4, 5, 64, 32), 0)
	assert.Equal(t, 3*2, countPainted(s))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(4, 5))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(6, 6))
	assert.Equal(t, black, s.RGBAAt(7, 6))

	assert.Zero(t, countPainted(paint(NewRect(), screen, 0)), "a rect without color paints nothing")
}

func TestBoxSize(t *testing.T) {
	child := newProbe(7, 5, 1)
	for padding := 0; padding < 4; padding++ {
		box := NewBox(child, WithPadding(padding))
		assert.Equal(t, Size{Width: 7 + 2*padding + 1, Height: 5 + 2*padding + 1}, box.Size(screen))
	}

	expanded := NewBox(child, WithPadding(2), WithExpand(true))
	assert.Equal(t, Size{Width: 30, Height: 20}, expanded.Size(NewBounds(10, 10, 40, 30)))
}

func TestBoxPaint(t *testing.T) {
	child := newProbe(2, 2, 3)
	box := NewBox(child, WithPadding(1), WithBackground(red))
	assert.Equal(t, 3, box.FrameCount())

	s := paint(box, screen, 2)
	// Background covers child size plus padding, both corners included.
	assert.Equal(t, 5*5, countPainted(s))
	assert.Equal(t, []paintCall{{bounds: NewBounds(1, 1, 63, 31), frame: 2}}, child.calls)

	expanded := NewBox(newProbe(2, 2, 1), WithPadding(1), WithBackground(red), WithExpand(true))
	s = paint(expanded, NewBounds(0, 0, 9, 4), 0)
	assert.Equal(t, 10*5, countPainted(s))
}

func TestRowSize(t *testing.T) {
	for n := 1; n <= 4; n++ {
		children := make([]Widget, n)
		for i := range children {
			children[i] = newProbe(6, 4, 1)
		}
		assert.Equal(t, Size{Width: n*6 + n - 1, Height: 4}, NewRow(children).Size(screen), "n=%d", n)
		assert.Equal(t, Size{Width: 4, Height: n*6 + n - 1}, NewColumn(rotate(children)).Size(screen), "n=%d", n)
	}

	mixed := NewRow([]Widget{newProbe(3, 9, 1), newProbe(5, 2, 1)})
	assert.Equal(t, Size{Width: 9, Height: 9}, mixed.Size(screen))

	expanded := NewRow([]Widget{newProbe(3, 9, 1)}, WithExpand(true))
	assert.Equal(t, Size{Width: 64, Height: 9}, expanded.Size(screen))

	tall := NewColumn([]Widget{newProbe(3, 9, 1)}, WithExpand(true))
	assert.Equal(t, Size{Width: 3, Height: 32}, tall.Size(screen))

	assert.Equal(t, Size{}, NewRow(nil).Size(screen))
	assert.Equal(t, 1, NewRow(nil).FrameCount())
}

// rotate swaps width and height of probe children.
func rotate(children []Widget) []Widget {
	out := make([]Widget, len(children))
	for i, c := range children {
		p := c.(*probe)
		out[i] = newProbe(p.size.Height, p.size.Width, p.frames)
	}
	return out
}

func TestRowPaint(t *testing.T) {
	a, b, c := newProbe(3, 1, 1), newProbe(5, 1, 4), newProbe(2, 1, 2)
	row := NewRow([]Widget{a, b, c})
	assert.Equal(t, 4, row.FrameCount())

	paint(row, NewBounds(2, 3, 64, 32), 3)
	assert.Equal(t, []paintCall{{NewBounds(2, 3, 64, 32), 0}}, a.calls)
	assert.Equal(t, []paintCall{{NewBounds(6, 3, 64, 32), 3}}, b.calls)
	assert.Equal(t, []paintCall{{NewBounds(12, 3, 64, 32), 1}}, c.calls)
}

func TestColumnPaint(t *testing.T) {
	a, b := newProbe(1, 3, 1), newProbe(1, 5, 1)
	col := NewColumn([]Widget{a, b})

	paint(col, NewBounds(2, 3, 64, 32), 0)
	assert.Equal(t, []paintCall{{NewBounds(2, 3, 64, 32), 0}}, a.calls)
	assert.Equal(t, []paintCall{{NewBounds(2, 7, 64, 32), 0}}, b.calls)
}

func TestStack(t *testing.T) {
	short, long := newProbe(10, 2, 2), newProbe(3, 8, 5)
	stack := NewStack([]Widget{short, long})
	assert.Equal(t, 5, stack.FrameCount())
	assert.Equal(t, Size{Width: 10, Height: 8}, stack.Size(screen))

	paint(stack, screen, 4)
	assert.Equal(t, []paintCall{{screen, 1}}, short.calls, "shorter child holds its last frame")
	assert.Equal(t, []paintCall{{screen, 4}}, long.calls)

	assert.Equal(t, 1, NewStack(nil).FrameCount())
	assert.Equal(t, Size{}, NewStack(nil).Size(screen))
}

func TestStackPaintsBackToFront(t *testing.T) {
	stack := NewStack([]Widget{
		NewRect(WithColor(red)),
		NewRect(WithWidth(2), WithHeight(2), WithColor(green)),
	})
	s := paint(stack, screen, 0)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, s.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(5, 5))
}

func TestRoot(t *testing.T) {
	root := NewRoot(NewRect())
	for _, b := range []Bounds{screen, NewBounds(3, 3, 4, 4), {}} {
		assert.Equal(t, Size{Width: 64, Height: 32}, root.Size(b))
	}
	assert.Equal(t, DefaultMaxAge, root.MaxAge())
	assert.Equal(t, DefaultDelay, root.Delay())
	assert.False(t, root.ShowFullApplication())

	child := newProbe(1, 1, 2)
	root = NewRoot(child, WithCanvasSize(32, 16), WithShowFullApplication(true))
	assert.Equal(t, 2, root.FrameCount())
	assert.True(t, root.ShowFullApplication())
	assert.Same(t, Widget(child), root.Child())

	root.Paint(canvas.New(32, 16), NewBounds(7, 7, 9, 9), 1)
	assert.Equal(t, []paintCall{{NewBounds(0, 0, 32, 16), 1}}, child.calls)
}

func TestCircleCentersChildAsymmetrically(t *testing.T) {
	child := newProbe(4, 2, 1)
	circle := NewCircle(child)
	assert.Equal(t, Size{Width: 10, Height: 10}, circle.Size(screen))

	paint(circle, NewBounds(1, 1, 64, 32), 0)
	// padX = 3, padY = 4; the far edges use the opposite padding.
	assert.Equal(t, []paintCall{{NewBounds(4, 5, 7, 8), 0}}, child.calls)

	// 2.5 rounds to even.
	even := newProbe(5, 5, 1)
	paint(NewCircle(even), Bounds{}, 0)
	assert.Equal(t, NewBounds(2, 2, 8, 8), even.calls[0].bounds)
}

func TestCirclePaint(t *testing.T) {
	s := paint(NewCircle(nil, WithDiameter(8), WithColor(red)), NewBounds(2, 2, 64, 32), 0)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(6, 6))
	assert.Equal(t, black, s.RGBAAt(2, 2))
	// Diameter 8 covers 9 pixels, matching an 8 wide Rect.
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(10, 6))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(6, 10))
	assert.Equal(t, black, s.RGBAAt(11, 6))
	assert.Equal(t, 1, NewCircle(nil).FrameCount())
	assert.Equal(t, 3, NewCircle(newProbe(1, 1, 3)).FrameCount())
}

func TestPieChart(t *testing.T) {
	pie, err := NewPieChart([]colors.Color{red, green, red}, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 90, 180}, pie.Angles())
	assert.Equal(t, Size{Width: 10, Height: 10}, pie.Size(screen))

	_, err = NewPieChart([]colors.Color{red}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrWeightsMismatch)
	_, err = NewPieChart([]colors.Color{red, green}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrZeroWeight)
	_, err = NewPieChart([]colors.Color{red, green}, []float64{3, -1})
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestPieChartPaintsInListOrder(t *testing.T) {
	pie, err := NewPieChart([]colors.Color{red, green}, []float64{1, 1}, WithDiameter(10))
	require.NoError(t, err)

	s := paint(pie, screen, 0)
	// Angles grow clockwise from 3 o'clock: the first half is the bottom.
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.RGBAAt(5, 8))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, s.RGBAAt(5, 1))
}
