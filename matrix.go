package canvas2d

import "math"

// Matrix is a 2D affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// This layout (column-major-ish, matching the HTML5 canvas convention of
// a,b,c,d,e,f) follows spec.md §3's Transform data model.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation transform.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation transform by angle radians (clockwise in a
// y-down device space, matching canvas semantics).
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Shear returns a shear transform.
func Shear(shx, shy float64) Matrix {
	return Matrix{A: 1, B: shy, C: shx, D: 1}
}

// Multiply returns m applied after n, i.e. the transform that first applies
// n then m (m.Multiply(n) == canvas's ctx.transform composed so n is
// "inner").
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the linear part of the transform (no
// translation), appropriate for direction/extent vectors.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

func (m Matrix) determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. It returns ErrNonInvertible when
// the matrix's determinant is (near) zero, per spec.md §6.
func (m Matrix) Invert() (Matrix, error) {
	det := m.determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, ErrNonInvertible
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(a*m.E + c*m.F)
	f := -(b*m.E + d*m.F)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}, nil
}

// InvertOrIdentity returns Invert's result, falling back to the identity
// transform on failure. It is used by internal call sites (e.g. pattern
// sampling) that must never fail outright; caller-facing APIs use Invert
// directly so a NonInvertible condition is observable.
func (m Matrix) InvertOrIdentity() Matrix {
	inv, err := m.Invert()
	if err != nil {
		return Identity()
	}
	return inv
}

// IsIdentity reports whether m is (very close to) the identity transform.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-9
	return math.Abs(m.A-1) < eps && math.Abs(m.B) < eps &&
		math.Abs(m.C) < eps && math.Abs(m.D-1) < eps &&
		math.Abs(m.E) < eps && math.Abs(m.F) < eps
}
