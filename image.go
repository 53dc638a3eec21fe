package indiepixel

import (
	"io"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/internal/logger"
)

// Image pastes a decoded image at its native size. Animated GIFs contribute
// one frame per GIF frame.
type Image struct {
	asset *canvas.Asset
}

// NewImage decodes the image file at path.
func NewImage(path string) (*Image, error) {
	a, err := canvas.OpenAsset(path)
	if err != nil {
		return nil, err
	}
	logger.Get().Debug("image decoded", "path", path, "format", a.Format(), "frames", a.FrameCount())
	return &Image{asset: a}, nil
}

// NewImageFromReader decodes an image from r.
func NewImageFromReader(r io.Reader) (*Image, error) {
	a, err := canvas.DecodeAsset(r)
	if err != nil {
		return nil, err
	}
	return &Image{asset: a}, nil
}

// NewImageFromAsset wraps an already decoded asset.
func NewImageFromAsset(a *canvas.Asset) *Image {
	return &Image{asset: a}
}

func (*Image) widget() {}

// Size returns the native size of the image.
func (m *Image) Size(Bounds) Size {
	return Size{Width: m.asset.Width(), Height: m.asset.Height()}
}

// FrameCount returns the number of frames in the image.
func (m *Image) FrameCount() int {
	return m.asset.FrameCount()
}

// Paint composites frame at (b.Left, b.Top).
func (m *Image) Paint(s *canvas.Surface, b Bounds, frame int) {
	s.Paste(m.asset.Frame(frame), b.Left, b.Top)
}
