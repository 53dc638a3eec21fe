package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/plan9font"
	"golang.org/x/image/font/sfnt"
)

// DefaultSize is the size in points that scalable fonts are loaded at.
const DefaultSize = 8

// LoadOption configures how a font file is turned into a Face.
type LoadOption func(*loadOptions)

type loadOptions struct {
	size float64
	dpi  float64
}

func defaultLoadOptions() loadOptions {
	return loadOptions{size: DefaultSize, dpi: 72}
}

// WithSize sets the size in points for TrueType and OpenType fonts.
// Bitmap fonts ignore it.
func WithSize(size float64) LoadOption {
	return func(o *loadOptions) {
		if size > 0 {
			o.size = size
		}
	}
}

// WithDPI sets the resolution scalable fonts are rasterized at. The default
// of 72 makes one point one pixel.
func WithDPI(dpi float64) LoadOption {
	return func(o *loadOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// ParseOpenType parses TrueType or OpenType data into a face named name.
func ParseOpenType(name string, data []byte, opts ...LoadOption) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse %s: %w", name, err)
	}
	xf, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.size,
		DPI:     o.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to create face %s: %w", name, err)
	}

	face := NewFace(name, xf)
	face.family = familyName(f)
	return face, nil
}

func familyName(f *opentype.Font) string {
	if s, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		return s
	}
	return ""
}

// ParsePlan9 parses a Plan 9 font description. readFile resolves the
// subfont files it references.
func ParsePlan9(name string, data []byte, readFile func(string) ([]byte, error)) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	xf, err := plan9font.ParseFont(data, readFile)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse %s: %w", name, err)
	}
	return NewFace(name, xf), nil
}
