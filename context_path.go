package canvas2d

// Grounded on gogpu-gg/context.go's MoveTo/LineTo/QuadraticTo/CubicTo:
// path-building calls on Context transform their coordinates through
// the current matrix immediately, so the recorded Path is always in
// device space and Fill/Stroke never need to re-apply a transform.

// MoveTo begins a new subpath at (x, y) in the current coordinate space.
func (c *Context) MoveTo(x, y float64) {
	p := c.state.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo appends a line segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	p := c.state.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticTo appends a quadratic Bezier curve segment.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	cp := c.state.matrix.TransformPoint(Pt(cx, cy))
	p := c.state.matrix.TransformPoint(Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// CubicTo appends a cubic Bezier curve segment.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.state.matrix.TransformPoint(Pt(c1x, c1y))
	cp2 := c.state.matrix.TransformPoint(Pt(c2x, c2y))
	p := c.state.matrix.TransformPoint(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// ClearPath discards the current path's recorded commands.
func (c *Context) ClearPath() { c.path.Clear() }

// Rect appends a device-space-transformed rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// Arc appends a device-space-transformed elliptical arc, matching
// Path.Arc's semantics but routed through the current transform.
func (c *Context) Arc(cx, cy, r, startAngle, endAngle float64, anticlockwise bool) {
	c.arcTransformed(cx, cy, r, r, startAngle, endAngle, anticlockwise)
}

func (c *Context) arcTransformed(cx, cy, rx, ry, startAngle, endAngle float64, anticlockwise bool) {
	// Build the arc in user space on a scratch path, then transform the
	// whole thing at once so the ellipse's axes rotate/scale correctly
	// under a non-axis-aligned matrix.
	scratch := NewPath()
	scratch.ArcTo(cx, cy, rx, ry, startAngle, endAngle, anticlockwise)
	transformed := scratch.Transform(c.state.matrix)
	c.path.elements = append(c.path.elements, transformed.elements...)
	if transformed.hasPoint {
		c.path.current = transformed.current
		c.path.hasPoint = true
	}
}
