package canvas2d

import "math"

// ConicGradientBrush paints a sweep ("conic") gradient: stops distributed
// around a full turn starting at StartAngle, clockwise. Grounded on
// gogpu-gg/gradient_sweep.go, simplified: the teacher's brush also carries
// an EndAngle/sweep-direction concept that spec.md's single-direction,
// full-turn formula does not have (DESIGN.md).
type ConicGradientBrush struct {
	Center     Point
	StartAngle float64
	Stops      []ColorStop

	sorted []ColorStop
}

// NewConicGradient creates a conic gradient brush.
func NewConicGradient(center Point, startAngle float64, stops []ColorStop) *ConicGradientBrush {
	return &ConicGradientBrush{Center: center, StartAngle: startAngle, Stops: stops, sorted: sortStops(stops)}
}

func (*ConicGradientBrush) brushMarker() {}

// ColorAt returns the gradient's color at (x, y).
func (g *ConicGradientBrush) ColorAt(x, y float64) RGBA {
	if len(g.sorted) == 0 {
		return Transparent
	}
	p := Pt(x, y).Sub(g.Center)
	if p.X == 0 && p.Y == 0 {
		return g.sorted[0].Color
	}
	angle := math.Atan2(p.Y, p.X) - g.StartAngle
	const twoPi = 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	t := angle / twoPi
	return colorAtOffset(g.sorted, t)
}
