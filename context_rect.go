package canvas2d

import (
	"github.com/rasterkit/canvas2d/internal/blend"
	"github.com/rasterkit/canvas2d/internal/raster"
)

// FillRect, StrokeRect, and ClearRect are the Canvas2D rectangle-drawing
// shortcuts (spec.md §6): each operates on an implicit rectangle without
// touching the current path, grounded on gogpu-gg/context.go's pattern of
// building geometry straight from the current matrix rather than routing
// through Path/MoveTo/LineTo for throwaway shapes (see DrawImageScaled).

// rectDeviceSpaceCorners returns the four corners of the user-space
// rectangle (x, y, w, h), transformed through the current matrix into
// device space, in winding order starting from (x, y).
func (c *Context) rectDeviceSpaceCorners(x, y, w, h float64) []Point {
	return []Point{
		c.state.matrix.TransformPoint(Pt(x, y)),
		c.state.matrix.TransformPoint(Pt(x+w, y)),
		c.state.matrix.TransformPoint(Pt(x+w, y+h)),
		c.state.matrix.TransformPoint(Pt(x, y+h)),
	}
}

func rectPolygon(corners []Point) [][]raster.Point {
	pts := make([]raster.Point, len(corners))
	for i, p := range corners {
		pts[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return [][]raster.Point{pts}
}

// FillRect fills the axis-aligned (in user space) rectangle (x, y, w, h)
// with the current fill brush, honoring the transform, clip, global alpha,
// composite operator, and shadow — without touching the current path.
func (c *Context) FillRect(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	polys := rectPolygon(c.rectDeviceSpaceCorners(x, y, w, h))
	clipB := c.clipStack.Bounds()
	buf := raster.Fill(polys, raster.NonZero, clipB.MinX, clipB.MinY, clipB.MaxX, clipB.MaxY)
	c.paintCoverage(buf, c.state.fillBrush)
}

// StrokeRect strokes the rectangle (x, y, w, h) with the current stroke
// brush and style, as if it were moveTo/lineTo x4/closePath, without
// touching the current path.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if w == 0 || h == 0 || c.state.strokeStyle.Width <= 0 {
		return
	}
	fp := &FlattenedPath{Subpaths: []Subpath{{
		Points: c.rectDeviceSpaceCorners(x, y, w, h),
		Closed: true,
	}}}
	polys := c.strokeRingsDeviceSpace(fp)
	clipB := c.clipStack.Bounds()
	buf := raster.Fill(polys, raster.NonZero, clipB.MinX, clipB.MinY, clipB.MaxX, clipB.MaxY)
	c.paintCoverage(buf, c.state.strokeBrush)
}

// ClearRect force-erases the rectangle (x, y, w, h) to fully transparent,
// regardless of the current fill/stroke style, global alpha, composite
// operator, or shadow — only the transform and clip apply. This is
// distinct from Fill with CompositeClear (which still goes through
// globalAlpha/shadow) and is why it cannot be implemented as Rect+Fill.
func (c *Context) ClearRect(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	polys := rectPolygon(c.rectDeviceSpaceCorners(x, y, w, h))
	clipB := c.clipStack.Bounds()
	buf := raster.Fill(polys, raster.NonZero, clipB.MinX, clipB.MinY, clipB.MaxX, clipB.MaxY)
	if buf.Width == 0 || buf.Height == 0 {
		return
	}

	blendFn := blend.Lookup(blend.Clear)
	sw, sh := c.surface.Width(), c.surface.Height()
	for y := buf.OriginY; y < buf.OriginY+buf.Height; y++ {
		if y < 0 || y >= sh {
			continue
		}
		for x := buf.OriginX; x < buf.OriginX+buf.Width; x++ {
			if x < 0 || x >= sw {
				continue
			}
			cov := float64(buf.At(x, y))
			if cov <= 0 {
				continue
			}
			clipCov := float64(c.clipStack.Coverage(x, y)) / 255
			if clipCov <= 0 {
				continue
			}
			sA := to8(cov * clipCov)
			dr, dg, db, da := c.surface.GetPremul(x, y)
			rr, rg, rb, ra := blendFn(0, 0, 0, sA, dr, dg, db, da)
			c.surface.SetPremul(x, y, rr, rg, rb, ra)
		}
	}
}
