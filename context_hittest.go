package canvas2d

import "github.com/rasterkit/canvas2d/internal/raster"

// IsPointInPath and IsPointInStroke are the Canvas2D hit-testing queries
// (spec.md §6): both transform the query point through the *current*
// transform (not whatever matrix was active while the path was built,
// matching MoveTo/LineTo's already-baked-to-device-space convention) and
// then run the same winding/parity accumulation raster.Fill uses, so a hit
// test agrees with what fill()/stroke() would actually paint there
// (spec.md §8).

// IsPointInPath reports whether (x, y), in the current coordinate space,
// lies inside the current path. rule defaults to the context's current
// fill rule; passing one overrides it for this call only.
func (c *Context) IsPointInPath(x, y float64, rule ...FillRule) bool {
	if len(c.path.Elements()) == 0 {
		return false
	}
	r := c.state.fillRule
	if len(rule) > 0 {
		r = rule[0]
	}

	p := c.state.matrix.TransformPoint(Pt(x, y))
	fp := Flatten(c.path, c.tolerance)
	polys := subpathsToRasterPoints(fp)
	return raster.PointInPolygon(polys, toRasterRule(r), p.X, p.Y)
}

// IsPointInStroke reports whether (x, y), in the current coordinate space,
// lies inside the current path's stroked outline under the current stroke
// style.
func (c *Context) IsPointInStroke(x, y float64) bool {
	if len(c.path.Elements()) == 0 || c.state.strokeStyle.Width <= 0 {
		return false
	}

	p := c.state.matrix.TransformPoint(Pt(x, y))
	fp := Flatten(c.path, c.tolerance)
	polys := c.strokeRingsDeviceSpace(fp)
	// Stroke outline rings are painted with nonzero winding, so the same
	// rule is used here regardless of the path's own fill rule.
	return raster.PointInPolygon(polys, raster.NonZero, p.X, p.Y)
}
