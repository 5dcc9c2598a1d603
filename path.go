package canvas2d

import "math"

// PathElement is one recorded drawing command. Implementations are a
// sealed tagged union (MoveTo, LineTo, QuadTo, CubicTo, Close) matching
// spec.md §3's Path/command-list data model.
type PathElement interface {
	isPathElement()
}

// MoveTo begins a new subpath at Point.
type MoveTo struct{ Point Point }

// LineTo draws a straight line to Point.
type LineTo struct{ Point Point }

// QuadTo draws a quadratic Bezier curve to Point via Control.
type QuadTo struct{ Control, Point Point }

// CubicTo draws a cubic Bezier curve to Point via Control1 and Control2.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath with a straight line back to its start.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Close) isPathElement()   {}

// circleMagic is the cubic-Bezier control-point distance ratio that best
// approximates a quarter circle of unit radius.
const circleMagic = 0.5522847498307936

// Path is an ordered list of drawing commands, recorded in the coordinates
// it is given (a Context records its path already in device space).
// It carries no geometry resolution of its own; flattening into polygons
// is internal/geom's job (spec.md §4.1).
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	hasPoint bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// Elements returns the path's recorded commands.
func (p *Path) Elements() []PathElement { return p.elements }

// HasCurrentPoint reports whether MoveTo/LineTo/etc. have established a
// current point.
func (p *Path) HasCurrentPoint() bool { return p.hasPoint }

// CurrentPoint returns the path's current point.
func (p *Path) CurrentPoint() Point { return p.current }

// Clear removes all recorded commands.
func (p *Path) Clear() {
	p.elements = nil
	p.hasPoint = false
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasPoint = true
}

// LineTo appends a line segment to (x, y). If no subpath is open yet it
// starts one at (x, y) instead, like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasPoint {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo appends a quadratic Bezier curve segment.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo appends a cubic Bezier curve segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath and moves the current point back to
// the subpath's start.
func (p *Path) Close() {
	if !p.hasPoint {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	cp := &Path{
		elements: append([]PathElement(nil), p.elements...),
		start:    p.start,
		current:  p.current,
		hasPoint: p.hasPoint,
	}
	return cp
}

// Transform returns a new Path with every coordinate mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	for _, e := range p.elements {
		switch v := e.(type) {
		case MoveTo:
			tp := m.TransformPoint(v.Point)
			out.elements = append(out.elements, MoveTo{Point: tp})
			out.start, out.current, out.hasPoint = tp, tp, true
		case LineTo:
			tp := m.TransformPoint(v.Point)
			out.elements = append(out.elements, LineTo{Point: tp})
			out.current = tp
		case QuadTo:
			tc, tp := m.TransformPoint(v.Control), m.TransformPoint(v.Point)
			out.elements = append(out.elements, QuadTo{Control: tc, Point: tp})
			out.current = tp
		case CubicTo:
			tc1, tc2, tp := m.TransformPoint(v.Control1), m.TransformPoint(v.Control2), m.TransformPoint(v.Point)
			out.elements = append(out.elements, CubicTo{Control1: tc1, Control2: tc2, Point: tp})
			out.current = tp
		case Close:
			out.elements = append(out.elements, Close{})
			out.current = out.start
		}
	}
	return out
}

// Rect appends a rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundRect appends a rectangle subpath with all four corners rounded to
// radius r (clamped to half the shorter side).
func (p *Path) RoundRect(x, y, w, h, r float64) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		p.Rect(x, y, w, h)
		return
	}
	k := r * circleMagic
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
}

// Ellipse appends an ellipse subpath centered at (cx, cy) with radii
// (rx, ry), built from four cubic Bezier quadrants.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	kx, ky := rx*circleMagic, ry*circleMagic
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// Circle appends a circle subpath centered at (cx, cy) with radius r.
func (p *Path) Circle(cx, cy, r float64) { p.Ellipse(cx, cy, r, r) }

// Arc appends an elliptical arc, matching HTML5 Canvas's arc() semantics:
// sweeping from startAngle to endAngle (radians), counter-clockwise if
// anticlockwise is true, otherwise clockwise.
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float64, anticlockwise bool) {
	p.ArcTo(cx, cy, r, r, startAngle, endAngle, anticlockwise)
}

// ArcTo appends an elliptical arc with independent x/y radii.
func (p *Path) ArcTo(cx, cy, rx, ry, startAngle, endAngle float64, anticlockwise bool) {
	sweep := endAngle - startAngle
	if anticlockwise {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	if math.Abs(sweep) > 2*math.Pi {
		if sweep < 0 {
			sweep = -2 * math.Pi
		} else {
			sweep = 2 * math.Pi
		}
	}

	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	delta := sweep / float64(segments)

	first := true
	a0 := startAngle
	for i := 0; i < segments; i++ {
		a1 := a0 + delta
		p0 := Pt(cx+rx*math.Cos(a0), cy+ry*math.Sin(a0))
		if first {
			if p.hasPoint {
				p.LineTo(p0.X, p0.Y)
			} else {
				p.MoveTo(p0.X, p0.Y)
			}
			first = false
		}
		arcSegment(p, cx, cy, rx, ry, a0, a1)
		a0 = a1
	}
}

// arcSegment appends a single cubic-Bezier approximation of an elliptical
// arc spanning at most 90 degrees, from a0 to a1.
func arcSegment(p *Path, cx, cy, rx, ry, a0, a1 float64) {
	alpha := (a1 - a0) / 2
	k := 4.0 / 3.0 * math.Sin(alpha) / (1 + math.Cos(alpha))

	p0 := Pt(cx+rx*math.Cos(a0), cy+ry*math.Sin(a0))
	p3 := Pt(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))

	t0 := Pt(-rx*math.Sin(a0), ry*math.Cos(a0))
	t1 := Pt(-rx*math.Sin(a1), ry*math.Cos(a1))

	c1 := p0.Add(t0.Mul(k))
	c2 := p3.Sub(t1.Mul(k))

	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
}
