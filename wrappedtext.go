package indiepixel

import (
	"strings"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
	"github.com/gogpu/indiepixel/fonts"
)

// WrappedText is text broken into lines at word boundaries to fit a width.
type WrappedText struct {
	content     string
	face        *fonts.Face
	color       colors.Color
	width       int
	widthSet    bool
	lineSpacing int
	align       fonts.Align
}

// NewWrappedText returns a wrapped text widget. Without WithWidth, text wraps
// at the width of its bounds. Use WithLineSpacing and WithAlign for the
// layout of the lines and WithFont and WithColor for their look.
func NewWrappedText(reg *fonts.Registry, content string, opts ...Option) (*WrappedText, error) {
	o := newOptions(opts)
	face, err := lookupFace(reg, o.font)
	if err != nil {
		return nil, err
	}
	return &WrappedText{
		content:     content,
		face:        face,
		color:       o.textColor(),
		width:       o.width,
		widthSet:    o.widthSet,
		lineSpacing: o.lineSpacing,
		align:       o.align,
	}, nil
}

func (*WrappedText) widget() {}

// availableWidth returns the wrap width for b.
func (t *WrappedText) availableWidth(b Bounds) int {
	if t.widthSet {
		return t.width
	}
	return b.Width()
}

// Lines returns the content wrapped for b.
func (t *WrappedText) Lines(b Bounds) []string {
	return wrap(t.face, t.content, t.availableWidth(b))
}

// wrap breaks content at whitespace. A word joins the current line when the
// line, the word and one space together fit in width; otherwise it starts a
// new line. The first word always starts the first line, so a word wider
// than width gets a line of its own.
func wrap(face *fonts.Face, content string, width int) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil
	}

	space := face.Advance(" ")
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if face.Advance(line)+face.Advance(word)+space > width {
			lines = append(lines, line)
			line = word
		} else {
			line += " " + word
		}
	}
	return append(lines, line)
}

// Size returns the available width and the height of the wrapped lines,
// including the spacing between them.
func (t *WrappedText) Size(b Bounds) Size {
	bb := t.face.MultilineBounds(t.Lines(b), t.lineSpacing)
	return Size{Width: t.availableWidth(b), Height: bb.Max.Y}
}

// FrameCount returns 1.
func (*WrappedText) FrameCount() int { return 1 }

// Paint draws the wrapped lines. The block is aligned within the available
// width, and each line within the block.
func (t *WrappedText) Paint(s *canvas.Surface, b Bounds, _ int) {
	if t.color.IsNone() {
		return
	}
	lines := t.Lines(b)
	if len(lines) == 0 {
		return
	}

	w := t.availableWidth(b)
	textWidth := t.face.MultilineWidth(lines)
	left := b.Left
	if textWidth < w {
		switch t.align {
		case fonts.AlignRight:
			left += w - textWidth
		case fonts.AlignCenter:
			left += (w - textWidth) / 2
		}
	}
	t.face.DrawLines(s, left, b.Top, lines, t.lineSpacing, t.align, t.color)
}
