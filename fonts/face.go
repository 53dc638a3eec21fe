package fonts

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Align is the horizontal alignment of multi-line text.
type Align uint8

const (
	// AlignLeft aligns lines to the left edge. This is the default.
	AlignLeft Align = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseAlign parses "left", "center" or "right". The empty string is left.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("fonts: unknown alignment %q", s)
}

// offset returns how far a run of the given width is shifted inside space.
func (a Align) offset(width, space int) int {
	switch a {
	case AlignRight:
		return space - width
	case AlignCenter:
		return (space - width) / 2
	default:
		return 0
	}
}

// Face measures and draws text in one font at one size.
//
// All coordinates are relative to the top-left anchor of the text: drawing
// at (x, y) puts the top of the line box at y and the baseline at
// y + Ascent(). Glyph edges are not anti-aliased.
//
// Face is safe for concurrent use.
type Face struct {
	name   string
	family string

	mu     sync.Mutex
	face   font.Face
	ascent int
	height int
}

// NewFace wraps an x/image font face under the given registry name.
func NewFace(name string, f font.Face) *Face {
	m := f.Metrics()
	height := m.Height.Ceil()
	if h := (m.Ascent + m.Descent).Ceil(); height < h {
		height = h
	}
	return &Face{
		name:   name,
		face:   f,
		ascent: m.Ascent.Ceil(),
		height: height,
	}
}

// Name returns the registry key of the face.
func (f *Face) Name() string {
	return f.name
}

// Family returns the font family name, if the font file declared one.
func (f *Face) Family() string {
	return f.family
}

// Ascent returns the distance from the top of the line box to the baseline.
func (f *Face) Ascent() int {
	return f.ascent
}

// LineHeight returns the height of one line in pixels.
func (f *Face) LineHeight() int {
	return f.height
}

// Bounds returns the ink bounding box of s relative to the top-left anchor.
// Its Max corner is the (x1, y1) corner used for text sizing.
func (f *Face) Bounds(s string) image.Rectangle {
	s = norm.NFC.String(s)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bounds(s)
}

func (f *Face) bounds(s string) image.Rectangle {
	b, _ := font.BoundString(f.face, s)
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor()+f.ascent,
		b.Max.X.Ceil(), b.Max.Y.Ceil()+f.ascent,
	)
}

// Advance returns the advance width of s in pixels: the distance the pen
// moves when drawing s, including trailing spaces.
func (f *Face) Advance(s string) int {
	s = norm.NFC.String(s)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.advance(s)
}

func (f *Face) advance(s string) int {
	return font.MeasureString(f.face, s).Round()
}

// Draw draws s with its top-left anchor at (x, y).
func (f *Face) Draw(dst draw.Image, x, y int, s string, c color.Color) {
	s = norm.NFC.String(s)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draw(dst, x, y, s, c)
}

func (f *Face) draw(dst draw.Image, x, y int, s string, c color.Color) {
	b := f.bounds(s)
	if b.Empty() {
		return
	}

	mask := image.NewAlpha(b)
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	d.DrawString(s)
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}

	draw.DrawMask(dst, b.Add(image.Pt(x, y)), image.NewUniform(c), image.Point{}, mask, b.Min, draw.Over)
}

// lineTop returns the offset of line i in a block with the given spacing.
func (f *Face) lineTop(i, spacing int) int {
	return i * (f.height + spacing)
}

// MultilineBounds returns the ink bounding box of lines stacked with
// spacing extra pixels between consecutive lines.
func (f *Face) MultilineBounds(lines []string, spacing int) image.Rectangle {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out image.Rectangle
	for i, line := range lines {
		b := f.bounds(norm.NFC.String(line))
		if b.Empty() {
			continue
		}
		out = out.Union(b.Add(image.Pt(0, f.lineTop(i, spacing))))
	}
	return out
}

// MultilineWidth returns the advance width of the widest line.
func (f *Face) MultilineWidth(lines []string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	widest := 0
	for _, line := range lines {
		widest = max(widest, f.advance(norm.NFC.String(line)))
	}
	return widest
}

// DrawLines draws lines as a block whose top-left anchor is (x, y). Each line
// is aligned within the width of the widest line.
func (f *Face) DrawLines(dst draw.Image, x, y int, lines []string, spacing int, align Align, c color.Color) {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = norm.NFC.String(line)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	widths := make([]int, len(normalized))
	widest := 0
	for i, line := range normalized {
		widths[i] = f.advance(line)
		widest = max(widest, widths[i])
	}
	for i, line := range normalized {
		f.draw(dst, x+align.offset(widths[i], widest), y+f.lineTop(i, spacing), line, c)
	}
}
