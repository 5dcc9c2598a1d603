package canvas2d

// LinearGradientBrush paints a linear gradient between two points.
// Grounded on gogpu-gg/gradient_linear.go; the t formula is spec.md's
// projection of (x,y) onto the start->end axis.
type LinearGradientBrush struct {
	Start, End Point
	Stops      []ColorStop
	Extend     ExtendMode

	sorted []ColorStop
}

// NewLinearGradient creates a linear gradient brush. Stops need not be
// pre-sorted.
func NewLinearGradient(start, end Point, stops []ColorStop, extend ExtendMode) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: start, End: end, Stops: stops, Extend: extend,
		sorted: sortStops(stops),
	}
}

func (*LinearGradientBrush) brushMarker() {}

// ColorAt returns the gradient's color at (x, y).
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	if len(g.sorted) == 0 {
		return Transparent
	}
	d := g.End.Sub(g.Start)
	lenSq := d.Dot(d)
	if lenSq < 1e-12 {
		// Degenerate (zero-length) gradient: spec treats this as a solid
		// fill of the final stop's color.
		return g.sorted[len(g.sorted)-1].Color
	}
	p := Pt(x, y).Sub(g.Start)
	t := p.Dot(d) / lenSq
	t = applyExtendMode(t, g.Extend)
	return colorAtOffset(g.sorted, t)
}
