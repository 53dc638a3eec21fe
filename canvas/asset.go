package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

// ErrEmptyAsset is returned when an image decodes to zero frames.
var ErrEmptyAsset = errors.New("canvas: image has no frames")

// Asset is a decoded raster image with one or more frames. Every frame has the
// full logical size of the image; animated GIF frames are composed with their
// disposal methods applied at decode time.
//
// An Asset is read-only after decoding and safe for concurrent use.
type Asset struct {
	format string
	frames []*image.NRGBA
}

// OpenAsset decodes the image file at path.
// PNG, JPEG, GIF (all frames), WebP and BMP are supported.
func OpenAsset(path string) (*Asset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	a, err := decodeAsset(data)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode %s: %w", path, err)
	}
	return a, nil
}

// DecodeAsset decodes an image from r.
func DecodeAsset(r io.Reader) (*Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	a, err := decodeAsset(data)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode: %w", err)
	}
	return a, nil
}

func decodeAsset(data []byte) (*Asset, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if format == "gif" {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		frames := composeGIF(g)
		if len(frames) == 0 {
			return nil, ErrEmptyAsset
		}
		return &Asset{format: format, frames: frames}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Asset{format: format, frames: []*image.NRGBA{toNRGBA(img)}}, nil
}

// composeGIF flattens GIF frames, which may cover only part of the logical
// screen, into full-size frames.
func composeGIF(g *gif.GIF) []*image.NRGBA {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, frame := range g.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}

	screen := image.NewNRGBA(bounds)
	frames := make([]*image.NRGBA, 0, len(g.Image))
	for i, frame := range g.Image {
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneNRGBA(screen)
		}

		draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneNRGBA(screen))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(screen, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			screen = previous
		}
	}
	return frames
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	return out
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// Format returns the name of the decoded format, such as "png" or "gif".
func (a *Asset) Format() string {
	return a.format
}

// Width returns the width of the image in pixels.
func (a *Asset) Width() int {
	return a.frames[0].Rect.Dx()
}

// Height returns the height of the image in pixels.
func (a *Asset) Height() int {
	return a.frames[0].Rect.Dy()
}

// FrameCount returns the number of frames; 1 for still images.
func (a *Asset) FrameCount() int {
	return len(a.frames)
}

// Frame returns frame i. It panics if i is out of range.
func (a *Asset) Frame(i int) image.Image {
	return a.frames[i]
}
