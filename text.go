package indiepixel

import (
	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
	"github.com/gogpu/indiepixel/fonts"
)

// Text is a single line of text. It is neither wrapped nor clipped.
type Text struct {
	content string
	face    *fonts.Face
	color   colors.Color
}

// NewText returns a text widget drawn with a font from reg, or from
// fonts.Default() when reg is nil. The color defaults to white and the font
// to fonts.DefaultFont. An unknown font name is an error.
func NewText(reg *fonts.Registry, content string, opts ...Option) (*Text, error) {
	o := newOptions(opts)
	face, err := lookupFace(reg, o.font)
	if err != nil {
		return nil, err
	}
	return &Text{content: content, face: face, color: o.textColor()}, nil
}

func lookupFace(reg *fonts.Registry, name string) (*fonts.Face, error) {
	if reg == nil {
		reg = fonts.Default()
	}
	return reg.Face(name)
}

func (*Text) widget() {}

// Content returns the text.
func (t *Text) Content() string { return t.content }

// Size returns the far corner of the text's bounding box measured from its
// top-left anchor.
func (t *Text) Size(Bounds) Size {
	bb := t.face.Bounds(t.content)
	return Size{Width: bb.Max.X, Height: bb.Max.Y}
}

// FrameCount returns 1.
func (*Text) FrameCount() int { return 1 }

// Paint draws the text anchored at (b.Left, b.Top).
func (t *Text) Paint(s *canvas.Surface, b Bounds, _ int) {
	if t.color.IsNone() {
		return
	}
	t.face.Draw(s, b.Left, b.Top, t.content, t.color)
}
