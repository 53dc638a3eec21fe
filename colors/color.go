// Package colors resolves widget colors.
//
// A [Color] is resolved once, when a widget is constructed, from either a
// CSS-style string or explicit components. The zero value is [None]: a
// transparent color that widgets treat as "do not draw".
package colors

import (
	"image/color"
)

// Color is a resolved RGB or RGBA color, or None.
type Color struct {
	c     color.NRGBA
	valid bool
}

// None is the absent color. Widgets skip drawing when given None.
var None = Color{}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{c: color.NRGBA{R: r, G: g, B: b, A: 0xff}, valid: true}
}

// RGBA creates a color from 8-bit non-premultiplied components.
func RGBA(r, g, b, a uint8) Color {
	return Color{c: color.NRGBA{R: r, G: g, B: b, A: a}, valid: true}
}

// FromColor converts a standard color.Color. A nil color converts to None.
func FromColor(c color.Color) Color {
	if c == nil {
		return None
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{c: n, valid: true}
}

// IsNone reports whether c is the absent color.
func (c Color) IsNone() bool {
	return !c.valid
}

// Opaque reports whether c is a color with full alpha.
func (c Color) Opaque() bool {
	return c.valid && c.c.A == 0xff
}

// NRGBA returns the non-premultiplied components. None returns the zero NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return c.c
}

// RGBA implements color.Color. None reports fully transparent black.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.c.RGBA()
}

// String returns the color in #rrggbb or #rrggbbaa form, or "none".
func (c Color) String() string {
	if !c.valid {
		return "none"
	}
	const digits = "0123456789abcdef"
	buf := []byte{'#',
		digits[c.c.R>>4], digits[c.c.R&0xf],
		digits[c.c.G>>4], digits[c.c.G&0xf],
		digits[c.c.B>>4], digits[c.c.B&0xf],
	}
	if c.c.A != 0xff {
		buf = append(buf, digits[c.c.A>>4], digits[c.c.A&0xf])
	}
	return string(buf)
}
