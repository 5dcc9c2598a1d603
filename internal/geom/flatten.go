// Package geom flattens curved path geometry into polylines.
//
// This is the standalone PathFlattener layer spec.md §4.1 describes,
// grounded directly on gogpu-gg/internal/path/flatten.go (the teacher's
// general flattening module, kept separate from its stroke-expander's
// private copy) — same recursive de Casteljau subdivision, same
// perpendicular chord-distance flatness test.
package geom

import "math"

// Point is a 2D coordinate. It mirrors the root package's Point so this
// package has no import-cycle dependency on it.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
func (p Point) length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Point) distance(q Point) float64 { return p.sub(q).length() }

// maxDepth bounds recursive subdivision so a degenerate (near-cusped)
// curve can never recurse unboundedly; at this depth any finite tolerance
// chord test has long since converged.
const maxDepth = 24

// DefaultTolerance is the maximum perpendicular deviation, in device
// units, allowed between a curve and its polyline approximation.
const DefaultTolerance = 0.25

// FlattenQuad returns a polyline (excluding p0) approximating the
// quadratic Bezier p0-p1-p2 within tolerance.
func FlattenQuad(p0, p1, p2 Point, tolerance float64) []Point {
	var out []Point
	flattenQuadRec(p0, p1, p2, tolerance, 0, &out)
	return out
}

func flattenQuadRec(p0, p1, p2 Point, tolerance float64, depth int, out *[]Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*out = append(*out, p2)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)
	flattenQuadRec(p0, q0, q2, tolerance, depth+1, out)
	flattenQuadRec(q2, q1, p2, tolerance, depth+1, out)
}

// FlattenCubic returns a polyline (excluding p0) approximating the cubic
// Bezier p0-p1-p2-p3 within tolerance.
func FlattenCubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	var out []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, 0, &out)
	return out
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, out *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)
	if depth >= maxDepth || dist < tolerance {
		*out = append(*out, p3)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, out)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, out)
}

func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.distance(a)
	}
	ap := p.sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (abLen * abLen)
	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}
	closest := a.add(ab.mul(t))
	return p.distance(closest)
}
