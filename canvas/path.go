package canvas

import (
	"math"

	"golang.org/x/image/vector"
)

// path builds closed outlines on a vector rasterizer in surface coordinates.
type path struct {
	z *vector.Rasterizer
}

func newPath(width, height int) *path {
	return &path{z: vector.NewRasterizer(width, height)}
}

func (p *path) moveTo(x, y float64) {
	p.z.MoveTo(float32(x), float32(y))
}

func (p *path) lineTo(x, y float64) {
	p.z.LineTo(float32(x), float32(y))
}

func (p *path) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

// ellipse adds a full axis-aligned ellipse made of four cubic Beziers.
func (p *path) ellipse(cx, cy, rx, ry float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox, oy := rx*k, ry*k

	p.moveTo(cx+rx, cy)
	p.cubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.cubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.cubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.cubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.z.ClosePath()
}

// slice adds a pie wedge: center, arc from angle1 to angle2 (radians), center.
func (p *path) slice(cx, cy, r, angle1, angle2 float64) {
	p.moveTo(cx, cy)
	p.lineTo(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	p.arc(cx, cy, r, angle1, angle2)
	p.z.ClosePath()
}

// arc continues the outline along a circular arc, splitting it into cubic
// segments of at most 90 degrees. The pen must already be at the arc start.
func (p *path) arc(cx, cy, r, angle1, angle2 float64) {
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		return
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment (at most 90 degrees).
func (p *path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	p.cubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
