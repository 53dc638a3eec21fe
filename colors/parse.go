package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("colors: invalid color")

// Parse resolves a CSS-style color string.
//
// Accepted forms (case-insensitive, surrounding space ignored):
//   - "" , "none", "transparent": None
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)" with integer 0-255 or percentage
//     components; an alpha written with a decimal point is a 0-1 fraction
//   - "hsl(h, s%, l%)", "hsla(h, s%, l%, a)", "hsv(h, s%, v%)", "hsb(...)"
//   - CSS/SVG color names such as "red" or "cornflowerblue"
func Parse(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch str {
	case "", "none", "transparent":
		return None, nil
	}

	if str[0] == '#' {
		c, ok := parseHexColor(str[1:])
		if !ok {
			return None, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	if open := strings.IndexByte(str, '('); open > 0 {
		if !strings.HasSuffix(str, ")") {
			return None, fmt.Errorf("%w: %q: missing ')'", ErrInvalidColor, s)
		}
		c, err := parseFunc(str[:open], str[open+1:len(str)-1])
		if err != nil {
			return None, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return c, nil
	}

	if named, ok := colornames.Map[str]; ok {
		return RGB(named.R, named.G, named.B), nil
	}
	return None, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It is intended for color literals in code.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexColor parses "rgb", "rgba", "rrggbb" or "rrggbbaa".
func parseHexColor(hex string) (Color, bool) {
	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3, 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
		if len(hex) == 4 {
			ok = ok && parseHex(hex[3:4], &a)
			a *= 17
		}
	case 6, 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			ok = ok && parseHex(hex[6:8], &a)
		}
	default:
		return None, false
	}
	if !ok {
		return None, false
	}
	if len(hex) == 4 || len(hex) == 8 {
		return RGBA(uint8(r), uint8(g), uint8(b), uint8(a)), true
	}
	return RGB(uint8(r), uint8(g), uint8(b)), true
}

// parseHex accumulates hex digits of s into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		default:
			return false
		}
	}
	return true
}

func parseFunc(name, args string) (Color, error) {
	parts := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == '/' || unicode.IsSpace(r)
	})

	switch name {
	case "rgb", "rgba":
		if len(parts) != 3 && len(parts) != 4 {
			return None, fmt.Errorf("%s() takes 3 or 4 components, got %d", name, len(parts))
		}
		var rgb [3]uint8
		for i := range rgb {
			v, err := parseChannel(parts[i])
			if err != nil {
				return None, err
			}
			rgb[i] = v
		}
		if len(parts) == 4 {
			a, err := parseAlpha(parts[3])
			if err != nil {
				return None, err
			}
			return RGBA(rgb[0], rgb[1], rgb[2], a), nil
		}
		return RGB(rgb[0], rgb[1], rgb[2]), nil

	case "hsl", "hsla", "hsv", "hsb":
		if len(parts) != 3 && len(parts) != 4 {
			return None, fmt.Errorf("%s() takes 3 or 4 components, got %d", name, len(parts))
		}
		h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
		if err != nil {
			return None, fmt.Errorf("hue %q: %w", parts[0], err)
		}
		s, err := parsePercent(parts[1])
		if err != nil {
			return None, err
		}
		l, err := parsePercent(parts[2])
		if err != nil {
			return None, err
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		var cf colorful.Color
		if name == "hsl" || name == "hsla" {
			cf = colorful.Hsl(h, s, l)
		} else {
			cf = colorful.Hsv(h, s, l)
		}
		r, g, b := cf.Clamped().RGB255()
		if len(parts) == 4 {
			a, err := parseAlpha(parts[3])
			if err != nil {
				return None, err
			}
			return RGBA(r, g, b, a), nil
		}
		return RGB(r, g, b), nil
	}
	return None, fmt.Errorf("unknown color function %q", name)
}

// parseChannel parses an integer 0-255 or a percentage.
func parseChannel(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") {
		p, err := parsePercent(s)
		if err != nil {
			return 0, err
		}
		return clamp8(p * 255), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("component %q: %w", s, err)
	}
	return clamp8(v), nil
}

// parseAlpha parses an alpha component: a percentage, a 0-1 fraction when
// written with a decimal point, or an integer 0-255.
func parseAlpha(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") || !strings.Contains(s, ".") {
		return parseChannel(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("alpha %q: %w", s, err)
	}
	return clamp8(v * 255), nil
}

// parsePercent parses "50%" (or a bare number, read as a percentage) into 0-1.
func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("percentage %q: %w", s, err)
	}
	return math.Max(0, math.Min(1, v/100)), nil
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
