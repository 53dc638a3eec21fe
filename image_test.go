package indiepixel

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageStill(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.SetNRGBA(0, 0, color.NRGBA{})

	path := filepath.Join(t.TempDir(), "dot.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, src), 0o600))

	img, err := NewImage(path)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 3, Height: 2}, img.Size(screen))
	assert.Equal(t, 1, img.FrameCount())

	s := paint(img, NewBounds(5, 6, 64, 32), 0)
	assert.Equal(t, 5, countPainted(s))
	assert.Equal(t, black, s.RGBAAt(5, 6), "transparent pixels keep the background")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.RGBAAt(7, 7))
}

func TestImageAnimated(t *testing.T) {
	frames := make([]*image.Paletted, 3)
	for i := range frames {
		frames[i] = image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9)
		frames[i].SetColorIndex(i, 0, uint8(frames[i].Palette.Index(color.White)))
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &gif.GIF{Image: frames, Delay: []int{5, 5, 5}}))

	img, err := NewImageFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, img.FrameCount())

	frames2 := Render(NewRoot(img))
	require.Len(t, frames2, 3)
	for i, s := range frames2 {
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.RGBAAt(i, 0), "frame %d", i)
	}
}

func TestImageErrors(t *testing.T) {
	_, err := NewImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	_, err = NewImageFromReader(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
