package canvas2d

import "github.com/rasterkit/canvas2d/internal/geom"

// Subpath is one contiguous polyline produced by flattening, plus whether
// the original command sequence explicitly closed it.
type Subpath struct {
	Points []Point
	Closed bool
}

// FlattenedPath is a Path resolved into straight-line polygons, the L1
// output spec.md §3/§4.1 describes. It is the PolygonRasterizer and
// StrokeGenerator's only input format — neither layer ever sees curves.
type FlattenedPath struct {
	Subpaths []Subpath
}

// Flatten adaptively subdivides every curve in p into line segments
// within tolerance (device units), grounded on internal/geom (itself
// grounded on gogpu-gg/internal/path/flatten.go).
func Flatten(p *Path, tolerance float64) *FlattenedPath {
	if tolerance <= 0 {
		tolerance = geom.DefaultTolerance
	}
	fp := &FlattenedPath{}
	var cur []Point
	var start, current Point
	hasStart := false
	closed := false

	flushSubpath := func() {
		if len(cur) >= 2 {
			fp.Subpaths = append(fp.Subpaths, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
		closed = false
	}

	for _, e := range p.Elements() {
		switch v := e.(type) {
		case MoveTo:
			flushSubpath()
			start, current = v.Point, v.Point
			hasStart = true
			cur = []Point{v.Point}
		case LineTo:
			if !hasStart {
				continue
			}
			cur = append(cur, v.Point)
			current = v.Point
		case QuadTo:
			if !hasStart {
				continue
			}
			pts := geom.FlattenQuad(
				geom.Point{X: current.X, Y: current.Y},
				geom.Point{X: v.Control.X, Y: v.Control.Y},
				geom.Point{X: v.Point.X, Y: v.Point.Y},
				tolerance,
			)
			for _, gp := range pts {
				cur = append(cur, Pt(gp.X, gp.Y))
			}
			current = v.Point
		case CubicTo:
			if !hasStart {
				continue
			}
			pts := geom.FlattenCubic(
				geom.Point{X: current.X, Y: current.Y},
				geom.Point{X: v.Control1.X, Y: v.Control1.Y},
				geom.Point{X: v.Control2.X, Y: v.Control2.Y},
				geom.Point{X: v.Point.X, Y: v.Point.Y},
				tolerance,
			)
			for _, gp := range pts {
				cur = append(cur, Pt(gp.X, gp.Y))
			}
			current = v.Point
		case Close:
			if !hasStart {
				continue
			}
			if current != start {
				cur = append(cur, start)
			}
			current = start
			closed = true
		}
	}
	flushSubpath()
	return fp
}

// Transform returns a copy of fp with every point mapped through m.
func (fp *FlattenedPath) Transform(m Matrix) *FlattenedPath {
	out := &FlattenedPath{Subpaths: make([]Subpath, len(fp.Subpaths))}
	for i, sp := range fp.Subpaths {
		pts := make([]Point, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = m.TransformPoint(p)
		}
		out.Subpaths[i] = Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}
