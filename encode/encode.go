// Package encode turns rendered frames into image files: a lossless WebP
// (still or animated), an animated GIF, or a PNG for a single frame.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/internal/logger"
)

// Sentinel errors for the encode package.
var (
	// ErrNoFrames is returned when there is nothing to encode.
	ErrNoFrames = errors.New("encode: no frames")

	// ErrDelayCount is returned when GIFDelays or WebPDelays gets a delay
	// count that does not match the frame count.
	ErrDelayCount = errors.New("encode: one delay per frame required")
)

// GIF writes frames as a looping animated GIF, showing each frame for delay.
// Frames with at most 256 distinct colors are encoded losslessly; use WebP
// when frames may have more.
func GIF(w io.Writer, frames []*canvas.Surface, delay time.Duration) error {
	delays := make([]time.Duration, len(frames))
	for i := range delays {
		delays[i] = delay
	}
	return GIFDelays(w, frames, delays)
}

// GIFDelays is like GIF with an explicit delay for every frame.
func GIFDelays(w io.Writer, frames []*canvas.Surface, delays []time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if len(delays) != len(frames) {
		return fmt.Errorf("%w: %d frames, %d delays", ErrDelayCount, len(frames), len(delays))
	}

	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		Disposal:  make([]byte, len(frames)),
		LoopCount: 0,
		Config: image.Config{
			Width:  frames[0].Width(),
			Height: frames[0].Height(),
		},
	}
	for i, f := range frames {
		g.Image[i] = paletted(f, i)
		g.Delay[i] = centiseconds(delays[i])
		g.Disposal[i] = gif.DisposalNone
	}

	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("encode: gif: %w", err)
	}
	return nil
}

// centiseconds converts d to GIF delay units, at least one.
func centiseconds(d time.Duration) int {
	return max(1, int((d+5*time.Millisecond)/(10*time.Millisecond)))
}

// paletted converts a frame to a paletted image. It uses the exact colors
// of the frame when they fit in a GIF palette and falls back to dithering
// against the Plan 9 palette otherwise.
func paletted(s *canvas.Surface, index int) *image.Paletted {
	src := s.Image()
	b := src.Bounds()

	if pal, ok := exactPalette(src); ok {
		dst := image.NewPaletted(b, pal)
		lookup := make(map[color.RGBA]uint8, len(pal))
		for i, c := range pal {
			lookup[c.(color.RGBA)] = uint8(i) //nolint:gosec // len(pal) <= 256
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetColorIndex(x, y, lookup[src.RGBAAt(x, y)])
			}
		}
		return dst
	}

	logger.Get().Warn("frame has more than 256 colors, encoding is lossy", "frame", index)
	dst := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, b, src, b.Min)
	return dst
}

// exactPalette returns the distinct colors of img in first-seen order, or
// false if there are more than 256.
func exactPalette(img *image.RGBA) (color.Palette, bool) {
	seen := make(map[color.RGBA]struct{})
	var pal color.Palette
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(pal) == 256 {
				return nil, false
			}
			seen[c] = struct{}{}
			pal = append(pal, c)
		}
	}
	if len(pal) == 0 {
		pal = append(pal, color.RGBA{A: 0xff})
	}
	return pal, true
}

// PNG writes a single frame as a PNG.
func PNG(w io.Writer, frame *canvas.Surface) error {
	if frame == nil {
		return ErrNoFrames
	}
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("encode: png: %w", err)
	}
	return nil
}
