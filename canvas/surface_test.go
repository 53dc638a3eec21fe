package canvas

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

// painted returns the set of pixels that differ from opaque black.
func painted(s *Surface) map[image.Point]bool {
	out := make(map[image.Point]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.RGBAAt(x, y) != black {
				out[image.Pt(x, y)] = true
			}
		}
	}
	return out
}

func TestNew(t *testing.T) {
	s := New(64, 32)
	assert.Equal(t, 64, s.Width())
	assert.Equal(t, 32, s.Height())
	assert.Empty(t, painted(s))
	assert.Len(t, s.Pix(), 64*32*4)
}

func TestFillRectangleInclusive(t *testing.T) {
	s := New(16, 16)
	s.FillRectangle(2, 3, 4, 5, red)

	got := painted(s)
	assert.Len(t, got, 9)
	for y := 3; y <= 5; y++ {
		for x := 2; x <= 4; x++ {
			assert.True(t, got[image.Pt(x, y)], "pixel (%d,%d)", x, y)
		}
	}
}

func TestFillRectangleClipsAndIgnoresInverted(t *testing.T) {
	s := New(4, 4)
	s.FillRectangle(-10, -10, 100, 100, red)
	assert.Len(t, painted(s), 16)

	s = New(4, 4)
	s.FillRectangle(3, 3, 1, 1, red)
	assert.Empty(t, painted(s))
}

func TestFillRectangleTransparentIsNoop(t *testing.T) {
	s := New(4, 4)
	s.FillRectangle(0, 0, 3, 3, color.Transparent)
	assert.Empty(t, painted(s))
}

func TestFillCircle(t *testing.T) {
	s := New(20, 20)
	s.FillCircle(5, 5, 5, red)
	got := painted(s)

	for _, p := range []image.Point{{5, 5}, {0, 5}, {9, 5}, {5, 0}, {5, 9}, {4, 4}} {
		assert.True(t, got[p], "expected %v painted", p)
	}
	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		assert.False(t, got[p], "expected corner %v untouched", p)
	}
	for p := range got {
		assert.True(t, p.In(image.Rect(0, 0, 10, 10)), "pixel %v outside the circle box", p)
	}
}

func TestFillCircleHardEdges(t *testing.T) {
	s := New(12, 12)
	s.FillCircle(6, 6, 5, red)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			c := s.RGBAAt(x, y)
			assert.True(t, c == red || c == black, "pixel (%d,%d) is blended: %v", x, y, c)
		}
	}
}

func TestFillEllipseInclusiveBox(t *testing.T) {
	s := New(16, 16)
	s.FillEllipse(0, 0, 10, 10, red)
	got := painted(s)

	// A box of nominal size 10 spans 11 pixels, like FillRectangle.
	for _, p := range []image.Point{{0, 5}, {10, 5}, {5, 0}, {5, 10}, {5, 5}} {
		assert.True(t, got[p], "expected %v painted", p)
	}
	for _, p := range []image.Point{{11, 5}, {5, 11}, {0, 0}, {10, 10}} {
		assert.False(t, got[p], "expected %v untouched", p)
	}

	s = New(4, 4)
	s.FillEllipse(3, 3, 1, 1, red)
	assert.Empty(t, painted(s))
}

func TestFillPieSliceQuadrant(t *testing.T) {
	s := New(10, 10)
	s.FillPieSlice(0, 0, 10, 10, 0, 90, red)
	got := painted(s)

	assert.True(t, got[image.Pt(7, 7)])
	assert.False(t, got[image.Pt(2, 2)])
	assert.False(t, got[image.Pt(7, 2)])
	assert.False(t, got[image.Pt(2, 7)])
}

func TestFillPieSliceSweeps(t *testing.T) {
	full := New(12, 12)
	full.FillPieSlice(0, 0, 10, 10, 0, 360, red)
	circle := New(12, 12)
	circle.FillEllipse(0, 0, 10, 10, red)
	assert.True(t, full.Equal(circle))

	empty := New(10, 10)
	empty.FillPieSlice(0, 0, 10, 10, 90, 90, red)
	assert.Empty(t, painted(empty))
}

func TestPasteRespectsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 0})

	s := New(4, 4)
	s.Paste(src, 1, 2)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, s.RGBAAt(1, 2))
	assert.Equal(t, black, s.RGBAAt(2, 2))
}

func TestCloneAndEqual(t *testing.T) {
	s := New(3, 3)
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c.Set(1, 1, red)
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(nil))
	assert.False(t, s.Equal(New(3, 4)))
}

func TestSavePNG(t *testing.T) {
	s := New(4, 4)
	s.FillRectangle(0, 0, 1, 1, red)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.SavePNG(path))

	a, err := OpenAsset(path)
	require.NoError(t, err)
	assert.Equal(t, "png", a.Format())
	assert.Equal(t, 4, a.Width())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, a.Frame(0).At(0, 0))
}
