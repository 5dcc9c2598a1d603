package canvas2d

import "github.com/rasterkit/canvas2d/internal/clip"

// Grounded on gogpu-gg/context_clip.go's Clip/ClipPreserve/ClipRect/
// ResetClip, adapted to push onto this repo's internal/clip.Stack
// (min-combine redesign, see DESIGN.md) instead of the teacher's
// ClipStack, and to rasterize through internal/raster so clip masks get
// the current fill rule and full anti-aliasing.

// Clip intersects the current clip region with the current path
// (rasterized using the current fill rule), then clears the path.
func (c *Context) Clip() error {
	c.doClip()
	c.path.Clear()
	return nil
}

// ClipPreserve intersects the clip region with the current path without
// clearing it.
func (c *Context) ClipPreserve() error {
	c.doClip()
	return nil
}

func (c *Context) doClip() {
	if len(c.path.Elements()) == 0 {
		return
	}
	fp := Flatten(c.path, c.tolerance)
	polys := subpathsToRasterPoints(fp)
	rule := toRasterRule(c.state.fillRule)

	bounds := c.clipStack.Bounds()
	mask := clip.RasterizeMask(polys, rule, bounds)
	c.clipStack.PushMask(mask)
}

// ClipRect intersects the clip region with an axis-aligned rectangle in
// the current coordinate space. Since a rotated/sheared transform turns
// an axis-aligned rectangle into a non-axis-aligned one, this only
// takes the cheap rectangular-intersection path when the current
// transform has no rotation/shear component; otherwise it rasterizes
// the rectangle like any other path.
func (c *Context) ClipRect(x, y, w, h float64) {
	if c.state.matrix.B == 0 && c.state.matrix.C == 0 {
		p0 := c.state.matrix.TransformPoint(Pt(x, y))
		p1 := c.state.matrix.TransformPoint(Pt(x+w, y+h))
		minX, maxX := p0.X, p1.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		minY, maxY := p0.Y, p1.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		r := clip.Rect{MinX: int(minX), MinY: int(minY), MaxX: int(maxX + 0.5), MaxY: int(maxY + 0.5)}
		c.clipStack.PushRect(r)
		return
	}
	saved := c.path
	c.path = NewPath()
	c.Rect(x, y, w, h)
	c.Clip()
	c.path = saved
}

// ResetClip removes every pushed clip, restoring the clip region to the
// full surface bounds.
func (c *Context) ResetClip() {
	c.clipStack.Reset(clip.Rect{MinX: 0, MinY: 0, MaxX: c.surface.Width(), MaxY: c.surface.Height()})
}
