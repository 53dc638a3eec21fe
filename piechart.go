package indiepixel

import (
	"fmt"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/colors"
)

// PieChart draws weighted slices of a circle.
type PieChart struct {
	diameter int
	colors   []colors.Color
	angles   []float64
}

// NewPieChart returns a pie chart with one slice per weight, colored by the
// color at the same index. Weights are scaled so that they add up to 360
// degrees. Slices are drawn in list order starting at 3 o'clock and going
// clockwise. Use WithDiameter.
func NewPieChart(sliceColors []colors.Color, weights []float64, opts ...Option) (*PieChart, error) {
	if len(sliceColors) != len(weights) {
		return nil, fmt.Errorf("%w: %d colors, %d weights", ErrWeightsMismatch, len(sliceColors), len(weights))
	}

	var total float64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weights[%d] = %v", ErrNegativeWeight, i, w)
		}
		total += w
	}
	if total == 0 {
		return nil, ErrZeroWeight
	}

	angles := make([]float64, len(weights))
	for i, w := range weights {
		angles[i] = 360 * w / total
	}

	o := newOptions(opts)
	return &PieChart{
		diameter: o.diameter,
		colors:   append([]colors.Color(nil), sliceColors...),
		angles:   angles,
	}, nil
}

func (*PieChart) widget() {}

// Angles returns the sweep of each slice in degrees.
func (p *PieChart) Angles() []float64 {
	return append([]float64(nil), p.angles...)
}

// Size returns (diameter, diameter).
func (p *PieChart) Size(Bounds) Size {
	return Size{Width: p.diameter, Height: p.diameter}
}

// FrameCount returns 1.
func (*PieChart) FrameCount() int { return 1 }

// Paint draws the slices inside the box from (b.Left, b.Top) spanning the
// diameter.
func (p *PieChart) Paint(s *canvas.Surface, b Bounds, _ int) {
	start := 0.0
	for i, sweep := range p.angles {
		if !p.colors[i].IsNone() {
			s.FillPieSlice(b.Left, b.Top, b.Left+p.diameter, b.Top+p.diameter, start, start+sweep, p.colors[i])
		}
		start += sweep
	}
}
