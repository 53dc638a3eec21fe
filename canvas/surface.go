// Package canvas provides the raster surface widgets paint into.
//
// A Surface is a fixed-size RGBA pixel buffer with the handful of primitives
// the layout engine needs: filled rectangles, filled circles, pie slices,
// pasting images, and (through the fonts package) text. Shapes are drawn
// without anti-aliasing: edge coverage is thresholded so every pixel is either
// painted or untouched, which keeps small LED-matrix style output crisp.
package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Surface is a mutable RGBA raster. It implements draw.Image, so any
// image/draw compatible code (including font drawers) can target it.
type Surface struct {
	img *image.RGBA
}

// New creates a surface of the given size filled with opaque black.
func New(width, height int) *Surface {
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.Clear(color.Black)
	return s
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Image returns the underlying RGBA image. Writes to it are visible on the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Pix returns the raw pixel data (RGBA, premultiplied, 4 bytes per pixel).
func (s *Surface) Pix() []uint8 {
	return s.img.Pix
}

// Clear fills the entire surface with a color, replacing existing pixels.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	img := image.NewRGBA(s.img.Rect)
	copy(img.Pix, s.img.Pix)
	return &Surface{img: img}
}

// Equal reports whether two surfaces have identical size and pixels.
func (s *Surface) Equal(other *Surface) bool {
	if other == nil {
		return false
	}
	return s.img.Rect == other.img.Rect && bytes.Equal(s.img.Pix, other.img.Pix)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface. Out-of-bounds writes are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

// RGBAAt returns the color of a single pixel.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.img)
}

// FillRectangle fills the rectangle with corners (x0, y0) and (x1, y1).
// Both corners are inclusive, so the filled area is (x1-x0+1)×(y1-y0+1)
// pixels. Inverted corners fill nothing. The color is composited with
// source-over, so a transparent color is a no-op.
func (s *Surface) FillRectangle(x0, y0, x1, y1 int, c color.Color) {
	r := image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1+1, y1+1)}
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r.Intersect(s.img.Rect), image.NewUniform(c), image.Point{}, draw.Over)
}

// FillCircle fills a circle centered at (cx, cy) with radius r.
func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.fill(func(p *path) {
		p.ellipse(cx, cy, r, r)
	}, c)
}

// FillEllipse fills the ellipse inscribed in the box with corners (x0, y0)
// and (x1, y1). Like FillRectangle, both corners are inclusive, so a box of
// nominal size d spans d+1 pixels. Inverted corners fill nothing.
func (s *Surface) FillEllipse(x0, y0, x1, y1 int, c color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	rx := float64(x1-x0+1) / 2
	ry := float64(y1-y0+1) / 2
	s.fill(func(p *path) {
		p.ellipse(float64(x0)+rx, float64(y0)+ry, rx, ry)
	}, c)
}

// FillPieSlice fills the pie slice of the circle inscribed in the inclusive
// box (x0, y0)-(x1, y1), from angle start to end in degrees. Angles grow
// clockwise from the 3 o'clock position. A sweep of 360 degrees or more fills
// the whole circle; an empty or negative sweep fills nothing.
func (s *Surface) FillPieSlice(x0, y0, x1, y1 int, start, end float64, c color.Color) {
	sweep := end - start
	if sweep <= 0 || x1 < x0 || y1 < y0 {
		return
	}
	if sweep >= 360 {
		s.FillEllipse(x0, y0, x1, y1, c)
		return
	}
	r := float64(x1-x0+1) / 2
	cx := float64(x0) + r
	cy := float64(y0) + float64(y1-y0+1)/2
	s.fill(func(p *path) {
		p.slice(cx, cy, r, radians(start), radians(end))
	}, c)
}

// Paste composites src onto the surface with its top-left corner at (x, y),
// respecting the source alpha. No scaling is applied.
func (s *Surface) Paste(src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+sb.Dx(), y+sb.Dy())}
	draw.Draw(s.img, r, src, sb.Min, draw.Over)
}

// fill rasterizes the path produced by build and paints every pixel whose
// coverage is at least half with c.
func (s *Surface) fill(build func(p *path), c color.Color) {
	b := s.img.Rect
	if b.Empty() {
		return
	}
	p := newPath(b.Dx(), b.Dy())
	build(p)

	mask := image.NewAlpha(b)
	p.z.Draw(mask, b, image.Opaque, image.Point{})
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	draw.DrawMask(s.img, b, image.NewUniform(c), image.Point{}, mask, b.Min, draw.Over)
}
