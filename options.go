package indiepixel

import (
	"time"

	"github.com/gogpu/indiepixel/colors"
	"github.com/gogpu/indiepixel/fonts"
)

// Option configures a widget during construction. Widgets ignore options
// that do not apply to them.
//
// Example:
//
//	box := indiepixel.NewBox(child,
//	    indiepixel.WithPadding(1),
//	    indiepixel.WithBackground(colors.MustParse("navy")),
//	)
type Option func(*options)

// options holds every widget parameter; each constructor reads its own.
type options struct {
	width, height       int
	widthSet, heightSet bool

	color      colors.Color
	colorSet   bool
	background colors.Color

	padding  int
	expand   bool
	diameter int

	font        string
	lineSpacing int
	align       fonts.Align

	label string

	maxAge              time.Duration
	delay               time.Duration
	showFullApplication bool
	canvasWidth         int
	canvasHeight        int
}

// Default widget parameters.
const (
	DefaultRectSize     = 10
	DefaultDiameter     = 10
	DefaultCanvasWidth  = 64
	DefaultCanvasHeight = 32
	DefaultMaxAge       = 100 * time.Second
	DefaultDelay        = 100 * time.Millisecond
)

func newOptions(opts []Option) options {
	o := options{
		width:        DefaultRectSize,
		height:       DefaultRectSize,
		diameter:     DefaultDiameter,
		font:         fonts.DefaultFont,
		maxAge:       DefaultMaxAge,
		delay:        DefaultDelay,
		canvasWidth:  DefaultCanvasWidth,
		canvasHeight: DefaultCanvasHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// textColor returns the configured color, or white when none was given.
func (o *options) textColor() colors.Color {
	if o.colorSet {
		return o.color
	}
	return colors.White
}

// WithWidth sets the width of a Rect or the wrap width of a WrappedText.
func WithWidth(w int) Option {
	return func(o *options) {
		o.width = w
		o.widthSet = true
	}
}

// WithHeight sets the height of a Rect.
func WithHeight(h int) Option {
	return func(o *options) {
		o.height = h
		o.heightSet = true
	}
}

// WithColor sets the fill color of a Rect or Circle, or the text color.
func WithColor(c colors.Color) Option {
	return func(o *options) {
		o.color = c
		o.colorSet = true
	}
}

// WithBackground sets the background color of a Box.
func WithBackground(c colors.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPadding sets the padding of a Box on every side.
func WithPadding(p int) Option {
	return func(o *options) {
		o.padding = p
	}
}

// WithExpand makes a Box, Row or Column claim all of its bounds along its
// layout axis instead of its intrinsic size.
func WithExpand(expand bool) Option {
	return func(o *options) {
		o.expand = expand
	}
}

// WithDiameter sets the diameter of a Circle or PieChart.
func WithDiameter(d int) Option {
	return func(o *options) {
		o.diameter = d
	}
}

// WithFont selects a registered font by name.
func WithFont(name string) Option {
	return func(o *options) {
		o.font = name
	}
}

// WithLineSpacing sets the extra pixels between WrappedText lines.
func WithLineSpacing(px int) Option {
	return func(o *options) {
		o.lineSpacing = px
	}
}

// WithAlign sets the horizontal alignment of a WrappedText.
func WithAlign(a fonts.Align) Option {
	return func(o *options) {
		o.align = a
	}
}

// WithLabel names an Animation in debug logs.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithMaxAge sets how long clients may cache the output of a Root.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		o.maxAge = d
	}
}

// WithDelay sets the duration of one frame of a Root.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// WithShowFullApplication is display metadata carried by a Root.
func WithShowFullApplication(show bool) Option {
	return func(o *options) {
		o.showFullApplication = show
	}
}

// WithCanvasSize sets the canvas size of a Root.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		o.canvasWidth = width
		o.canvasHeight = height
	}
}
