package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"", None},
		{"none", None},
		{" Transparent ", None},
		{"#fff", RGB(255, 255, 255)},
		{"#F00", RGB(255, 0, 0)},
		{"#0f08", RGBA(0, 255, 0, 0x88)},
		{"#3498db", RGB(0x34, 0x98, 0xdb)},
		{"#3498db80", RGBA(0x34, 0x98, 0xdb, 0x80)},
		{"red", RGB(255, 0, 0)},
		{"CornflowerBlue", RGB(100, 149, 237)},
		{"rgb(10, 20, 30)", RGB(10, 20, 30)},
		{"rgb(100%, 0%, 50%)", RGB(255, 0, 128)},
		{"rgb(1 2 3)", RGB(1, 2, 3)},
		{"rgba(10, 20, 30, 128)", RGBA(10, 20, 30, 128)},
		{"rgba(10, 20, 30, 0.5)", RGBA(10, 20, 30, 128)},
		{"hsl(0, 100%, 50%)", RGB(255, 0, 0)},
		{"hsl(120, 100%, 50%)", RGB(0, 255, 0)},
		{"hsl(-120, 100%, 50%)", RGB(0, 0, 255)},
		{"hsv(0, 0%, 100%)", RGB(255, 255, 255)},
		{"hsla(0, 100%, 50%, 0.5)", RGBA(255, 0, 0, 128)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"#12",
		"#ggg",
		"#12345",
		"notacolor",
		"rgb(1, 2)",
		"rgb(1, 2, 3",
		"rgb(a, b, c)",
		"cmyk(1, 2, 3, 4)",
		"hsl(x, 10%, 10%)",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, RGB(0, 0, 255), MustParse("blue"))
	assert.Panics(t, func() { MustParse("bogus") })
}

func TestColorNone(t *testing.T) {
	assert.True(t, None.IsNone())
	assert.False(t, None.Opaque())
	assert.Equal(t, "none", None.String())

	r, g, b, a := None.RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0, 0}, [4]uint32{r, g, b, a})
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#ff0000", Red.String())
	assert.Equal(t, "#01020304", RGBA(1, 2, 3, 4).String())
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, None, FromColor(nil))
	assert.Equal(t, RGB(1, 2, 3), FromColor(color.RGBA{R: 1, G: 2, B: 3, A: 255}))
	assert.True(t, FromColor(color.Black).Opaque())
}
