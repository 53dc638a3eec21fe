package fonts

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fonts package.
var (
	// ErrUnknownFont is returned when a font name is not registered.
	ErrUnknownFont = errors.New("fonts: unknown font")

	// ErrEmptyFontData is returned when a font file is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrUnsupportedFont is returned for font files with an unknown extension.
	ErrUnsupportedFont = errors.New("fonts: unsupported font format")
)

// UnknownFontError is returned by Registry.Face for unregistered names.
// It lists the names that are registered.
type UnknownFontError struct {
	Name  string
	Known []string
}

func (e *UnknownFontError) Error() string {
	return fmt.Sprintf("fonts: unknown font %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Unwrap returns ErrUnknownFont.
func (e *UnknownFontError) Unwrap() error {
	return ErrUnknownFont
}
