// Package stroke implements the StrokeGenerator layer (spec.md §4.3):
// expanding a flattened polyline into fill geometry representing its
// stroked outline, with line caps, joins, a miter limit, and dashing.
//
// Grounded closely on gogpu-gg/internal/stroke/expander.go's
// forward/backward/output builder structure and its miter/round/bevel
// join math (including the square-hypot miter-limit test that avoids an
// explicit trig call); adapted to consume already-flattened polylines
// (curve flattening is internal/geom's job here, not duplicated in the
// stroker) and to run dashing as an explicit pre-pass (dash.go), which
// the teacher's expander never implemented.
package stroke

import "math"

// Point is a 2D coordinate, mirroring the root package's Point to avoid
// an import cycle.
type Point struct{ X, Y float64 }

func (p Point) sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64     { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Point) normalized() Point {
	l := p.length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}
func (p Point) perp() Point { return Point{-p.Y, p.X} }

// LineCap selects the shape drawn at an open subpath's ends.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects the shape drawn where two stroked segments meet.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Style describes the stroke to generate.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Subpath is one polyline to stroke.
type Subpath struct {
	Points []Point
	Closed bool
}

// builder accumulates a sequence of line segments (the stroke outline is
// entirely polygonal once the input is already flattened).
type builder struct {
	points []Point
}

func (b *builder) lineTo(p Point) { b.points = append(b.points, p) }

func (b *builder) reversed() []Point {
	out := make([]Point, len(b.points))
	for i, p := range b.points {
		out[len(out)-1-i] = p
	}
	return out
}

// Expander expands stroked subpaths into filled polygon subpaths.
type Expander struct {
	style Style
}

// NewExpander returns an Expander for the given style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = 10
	}
	return &Expander{style: style}
}

// Expand converts each input subpath into one or two filled outline
// subpaths (closed subpaths always, matching spec.md §4.3: an open
// stroked subpath produces a single closed ring; a closed stroked
// subpath produces two rings, one per side).
func (e *Expander) Expand(subpaths []Subpath) [][]Point {
	var out [][]Point
	half := e.style.Width / 2
	if half <= 0 {
		return out
	}
	for _, sp := range subpaths {
		pts := dedupe(sp.Points)
		if len(pts) < 2 {
			if len(pts) == 1 && e.style.Cap == CapRound {
				out = append(out, circlePolygon(pts[0], half))
			}
			continue
		}
		if sp.Closed {
			out = append(out, e.expandClosed(pts, half)...)
		} else {
			out = append(out, e.expandOpen(pts, half))
		}
	}
	return out
}

func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.sub(out[len(out)-1]).length() > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

// expandOpen produces a single ring: forward side, end cap, backward
// side (reversed), start cap.
func (e *Expander) expandOpen(pts []Point, half float64) []Point {
	fwd := &builder{}
	bwd := &builder{}
	e.walkSide(pts, half, fwd, bwd, false)

	out := append([]Point{}, fwd.points...)
	last := pts[len(pts)-1]
	prev := pts[len(pts)-2]
	out = append(out, capPoints(last, last.sub(prev).normalized(), half, e.style.Cap)...)
	out = append(out, bwd.reversed()...)
	first := pts[0]
	second := pts[1]
	out = append(out, capPoints(first, first.sub(second).normalized(), half, e.style.Cap)...)
	return out
}

// expandClosed produces two separate rings, one offset to each side of
// the closed polyline.
func (e *Expander) expandClosed(pts []Point, half float64) [][]Point {
	fwd := &builder{}
	bwd := &builder{}
	e.walkSide(pts, half, fwd, bwd, true)
	return [][]Point{append([]Point{}, fwd.points...), bwd.reversed()}
}

// walkSide offsets pts by +half (forward/left side) and -half
// (backward/right side), inserting join geometry at each interior
// vertex (and, for closed subpaths, at the wrap-around vertex too).
func (e *Expander) walkSide(pts []Point, half float64, fwd, bwd *builder, closed bool) {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dir := b.sub(a).normalized()
		nrm := dir.perp()

		fwd.lineTo(a.add(nrm.mul(half)))
		fwd.lineTo(b.add(nrm.mul(half)))
		bwd.lineTo(a.add(nrm.mul(-half)))
		bwd.lineTo(b.add(nrm.mul(-half)))

		var nextIdx int
		if closed {
			nextIdx = (i + 2) % n
		} else if i+2 <= n-1 {
			nextIdx = i + 2
		} else {
			continue
		}
		if !closed && i == segs-1 {
			continue
		}
		c := pts[nextIdx]
		nextDir := c.sub(b).normalized()
		e.addJoin(fwd, b, dir, nextDir, half)
		e.addJoin(bwd, b, dir, nextDir, -half)
	}
}

// addJoin inserts join geometry at vertex v between incoming direction
// dir and outgoing direction nextDir, offset by the given signed half
// width (positive = left side, negative = right side).
func (e *Expander) addJoin(b *builder, v, dir, nextDir Point, signedHalf float64) {
	cross := dir.Cross(nextDir)
	if signedHalf < 0 {
		cross = -cross
	}
	if cross >= -1e-9 {
		// Offset side is on the inside of the turn (or collinear): the
		// segment offsets already overlap correctly with no join needed.
		return
	}

	n0 := dir.perp().mul(signedHalf)
	n1 := nextDir.perp().mul(signedHalf)

	switch e.style.Join {
	case JoinRound:
		b.points = append(b.points, arcPoints(v, n0, n1, math.Abs(signedHalf))...)
	case JoinBevel:
		b.lineTo(v.add(n1))
	default: // JoinMiter
		hyp := 1 + dir.dot(nextDir)
		if hyp < 1e-9 {
			b.lineTo(v.add(n1))
			return
		}
		// The miter length over the half width is sqrt(2/(1+dot)), so the
		// miter is kept while 2 < (1+dot)*miterLimit^2, avoiding an explicit
		// sqrt/trig call (gogpu-gg/internal/stroke/expander.go).
		limitSq := e.style.MiterLimit * e.style.MiterLimit
		if 2 < hyp*limitSq {
			mid := n0.add(n1).normalized()
			scale := math.Abs(signedHalf) / math.Max(mid.dot(n0.normalized()), 1e-6)
			miterPt := v.add(mid.mul(scale))
			b.lineTo(miterPt)
			b.lineTo(v.add(n1))
		} else {
			b.lineTo(v.add(n1))
		}
	}
}

// Cross returns the z-component of the cross product.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func capPoints(center, outward Point, half float64, cap LineCap) []Point {
	switch cap {
	case CapRound:
		start := outward.perp().mul(half)
		end := outward.perp().mul(-half)
		tip := outward.mul(half)
		return append(arcPoints(center, start, tip, half), arcPoints(center, tip, end, half)...)
	case CapSquare:
		start := outward.perp().mul(half)
		end := outward.perp().mul(-half)
		ext := outward.mul(half)
		return []Point{center.add(start), center.add(start).add(ext), center.add(end).add(ext), center.add(end)}
	default: // CapButt
		start := outward.perp().mul(half)
		end := outward.perp().mul(-half)
		return []Point{center.add(start), center.add(end)}
	}
}

// arcPoints approximates a circular arc from center+n0 to center+n1
// (both of length radius) with straight segments, sweeping the short way
// around.
func arcPoints(center, n0, n1 Point, radius float64) []Point {
	a0 := math.Atan2(n0.Y, n0.X)
	a1 := math.Atan2(n1.Y, n1.X)
	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	steps := int(math.Ceil(math.Abs(delta) / (math.Pi / 8)))
	if steps < 1 {
		steps = 1
	}
	out := make([]Point, 0, steps+1)
	for i := 1; i <= steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		out = append(out, center.add(Point{radius * math.Cos(a), radius * math.Sin(a)}))
	}
	return out
}

func circlePolygon(center Point, radius float64) []Point {
	const steps = 24
	out := make([]Point, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		out[i] = center.add(Point{radius * math.Cos(a), radius * math.Sin(a)})
	}
	return out
}
