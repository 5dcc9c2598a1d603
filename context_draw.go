package canvas2d

import (
	"github.com/rasterkit/canvas2d/internal/blend"
	"github.com/rasterkit/canvas2d/internal/raster"
	"github.com/rasterkit/canvas2d/internal/shadow"
	"github.com/rasterkit/canvas2d/internal/stroke"
)

// Grounded on gogpu-gg/context.go's Fill/Stroke/FillPreserve/
// StrokePreserve (doFill/doStroke split, path cleared after Fill/Stroke
// but not after the Preserve variants), generalized so "doFill"/
// "doStroke" route through this repo's own raster/stroke/blend/shadow
// packages instead of gogpu-gg's Renderer interface and its GPU/CPU
// dispatch (an explicit Non-goal).

// Fill fills the current path using the current fill brush and fill
// rule, then clears the path.
func (c *Context) Fill() error {
	c.doFill()
	c.path.Clear()
	return nil
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	c.doFill()
	return nil
}

// Stroke strokes the current path using the current stroke brush and
// style, then clears the path.
func (c *Context) Stroke() error {
	c.doStroke()
	c.path.Clear()
	return nil
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	c.doStroke()
	return nil
}

func toRasterRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

func subpathsToRasterPoints(fp *FlattenedPath) [][]raster.Point {
	out := make([][]raster.Point, len(fp.Subpaths))
	for i, sp := range fp.Subpaths {
		pts := make([]raster.Point, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		out[i] = pts
	}
	return out
}

func (c *Context) doFill() {
	if len(c.path.Elements()) == 0 {
		return
	}
	fp := Flatten(c.path, c.tolerance)
	polys := subpathsToRasterPoints(fp)
	rule := toRasterRule(c.state.fillRule)

	clipB := c.clipStack.Bounds()
	buf := raster.Fill(polys, rule, clipB.MinX, clipB.MinY, clipB.MaxX, clipB.MaxY)
	c.paintCoverage(buf, c.state.fillBrush)
}

func (c *Context) doStroke() {
	if len(c.path.Elements()) == 0 {
		return
	}
	if c.state.strokeStyle.Width <= 0 {
		return
	}
	fp := Flatten(c.path, c.tolerance)
	polys := c.strokeRingsDeviceSpace(fp)

	clipB := c.clipStack.Bounds()
	buf := raster.Fill(polys, raster.NonZero, clipB.MinX, clipB.MinY, clipB.MaxX, clipB.MaxY)
	c.paintCoverage(buf, c.state.strokeBrush)
}

// strokeRingsDeviceSpace dashes (if a dash pattern is set) and expands fp's
// device-space subpaths into stroke outline rings under the current stroke
// style, shared by doStroke, StrokeRect, and IsPointInStroke so they never
// diverge on what counts as "inside the stroke".
func (c *Context) strokeRingsDeviceSpace(fp *FlattenedPath) [][]raster.Point {
	style := c.state.strokeStyle

	strokeSubpaths := make([]stroke.Subpath, len(fp.Subpaths))
	for i, sp := range fp.Subpaths {
		pts := make([]stroke.Point, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = stroke.Point{X: p.X, Y: p.Y}
		}
		strokeSubpaths[i] = stroke.Subpath{Points: pts, Closed: sp.Closed}
	}

	if style.Dash != nil {
		arr := style.Dash.effectiveArray()
		if len(arr) > 0 {
			strokeSubpaths = stroke.ApplyDash(strokeSubpaths, stroke.Dash{
				Array:  arr,
				Offset: style.Dash.normalizedOffset(),
			})
		}
	}

	exp := stroke.NewExpander(stroke.Style{
		Width:      style.Width,
		Cap:        toStrokeCap(style.Cap),
		Join:       toStrokeJoin(style.Join),
		MiterLimit: style.MiterLimit,
	})
	rings := exp.Expand(strokeSubpaths)

	polys := make([][]raster.Point, len(rings))
	for i, ring := range rings {
		pts := make([]raster.Point, len(ring))
		for j, p := range ring {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		polys[i] = pts
	}
	return polys
}

func toStrokeCap(c LineCap) stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.CapRound
	case LineCapSquare:
		return stroke.CapSquare
	default:
		return stroke.CapButt
	}
}

func toStrokeJoin(j LineJoin) stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}

func toBlendOp(op CompositeOp) blend.Op {
	switch op {
	case CompositeSourceIn:
		return blend.SourceIn
	case CompositeSourceOut:
		return blend.SourceOut
	case CompositeSourceAtop:
		return blend.SourceAtop
	case CompositeDestinationOver:
		return blend.DestinationOver
	case CompositeDestinationIn:
		return blend.DestinationIn
	case CompositeDestinationOut:
		return blend.DestinationOut
	case CompositeDestinationAtop:
		return blend.DestinationAtop
	case CompositeLighter:
		return blend.Lighter
	case CompositeCopy:
		return blend.Copy
	case CompositeXor:
		return blend.Xor
	case CompositeClear:
		return blend.Clear
	case CompositeDestination:
		return blend.Destination
	default:
		return blend.SourceOver
	}
}

// paintCoverage composites brush-sourced color through a rasterized
// coverage buffer into the surface, honoring the clip stack, global
// alpha, and composite operator, and (if a shadow is configured)
// painting an offset/blurred shadow layer first.
func (c *Context) paintCoverage(buf *raster.Buffer, brush Brush) {
	if buf.Width == 0 || buf.Height == 0 {
		return
	}
	if c.state.shadow.Blur > 0 || c.state.shadow.OffsetX != 0 || c.state.shadow.OffsetY != 0 {
		c.paintShadow(buf)
	}

	op := toBlendOp(c.state.compositeOp)
	blendFn := blend.Lookup(op)
	alpha := c.state.globalAlpha

	w, h := c.surface.Width(), c.surface.Height()

	if op.IsGlobal() {
		// Global operators must also visit destination-only pixels (no
		// source coverage there at all). Per row, walk only the union of
		// where the source buffer has coverage and where the destination
		// is already non-transparent (internal/blend.UnionRun), instead of
		// the entire clip bounds.
		clipB := c.clipStack.Bounds()
		for y := clipB.MinY; y < clipB.MaxY; y++ {
			srcMinX, srcMaxX := rowSourceSpan(buf, y, clipB.MinX)
			region := blend.UnionRun(srcMinX, srcMaxX, clipB.MinX, clipB.MaxX, func(x int) bool {
				_, _, _, da := c.surface.GetPremul(x, y)
				return da > 0
			})
			if region.Empty() {
				continue
			}
			for x := region.MinX; x < region.MaxX; x++ {
				cov := float64(buf.At(x, y))
				c.blendPixel(x, y, brush, cov, alpha, blendFn)
			}
		}
		return
	}

	for y := buf.OriginY; y < buf.OriginY+buf.Height; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := buf.OriginX; x < buf.OriginX+buf.Width; x++ {
			if x < 0 || x >= w {
				continue
			}
			cov := float64(buf.At(x, y))
			if cov <= 0 {
				continue
			}
			c.blendPixel(x, y, brush, cov, alpha, blendFn)
		}
	}
}

// rowSourceSpan returns the [min, max) column span of buf that has nonzero
// coverage on row y, the "source" span UnionRun unions against
// destination-alpha columns. If y falls outside buf's rows, it reports an
// empty span anchored at fallbackX, which UnionRun then widens to cover
// the row's destination-alpha columns.
func rowSourceSpan(buf *raster.Buffer, y, fallbackX int) (int, int) {
	if buf == nil || y < buf.OriginY || y >= buf.OriginY+buf.Height {
		return fallbackX, fallbackX
	}
	minX, maxX := -1, -1
	for x := buf.OriginX; x < buf.OriginX+buf.Width; x++ {
		if buf.At(x, y) > 0 {
			if minX == -1 {
				minX = x
			}
			maxX = x + 1
		}
	}
	if minX == -1 {
		return fallbackX, fallbackX
	}
	return minX, maxX
}

func (c *Context) blendPixel(x, y int, brush Brush, coverage, globalAlpha float64, fn blend.Func) {
	clipCov := float64(c.clipStack.Coverage(x, y)) / 255
	if clipCov <= 0 {
		return
	}
	srcColor := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
	sR, sG, sB, sA := premultipliedSource(srcColor, coverage*globalAlpha*clipCov)

	dr, dg, db, da := c.surface.GetPremul(x, y)
	rr, rg, rb, ra := fn(sR, sG, sB, sA, dr, dg, db, da)
	c.surface.SetPremul(x, y, rr, rg, rb, ra)
}

// premultipliedSource returns premultiplied 0-255 channel bytes for
// srcColor scaled by the combined coverage/alpha weight.
func premultipliedSource(srcColor RGBA, weight float64) (r, g, b, a uint8) {
	effAlpha := srcColor.A * weight
	return to8(srcColor.R * effAlpha), to8(srcColor.G * effAlpha), to8(srcColor.B * effAlpha), to8(effAlpha)
}

// paintShadow rasterizes the same coverage buffer as an offset, blurred,
// colorized shadow layer and composites it under the main draw,
// grounded on gogpu-gg/internal/filter/shadow.go's pipeline, adapted to
// internal/shadow's box-blur engine.
func (c *Context) paintShadow(buf *raster.Buffer) {
	layer := toShadowAlphaLayer(buf)
	blurred := shadow.Blur(layer, shadow.Params{Blur: c.state.shadow.Blur})
	ox, oy, w, h, pix := shadow.Colorize(blurred, shadow.Params{
		OffsetX: c.state.shadow.OffsetX,
		OffsetY: c.state.shadow.OffsetY,
		R:       c.state.shadow.Color.R,
		G:       c.state.shadow.Color.G,
		B:       c.state.shadow.Color.B,
		A:       c.state.shadow.Color.A,
	})

	blendFn := blend.Lookup(blend.SourceOver)
	sw, sh := c.surface.Width(), c.surface.Height()
	for y := 0; y < h; y++ {
		dy := oy + y
		if dy < 0 || dy >= sh {
			continue
		}
		for x := 0; x < w; x++ {
			dx := ox + x
			if dx < 0 || dx >= sw {
				continue
			}
			clipCov := float64(c.clipStack.Coverage(dx, dy)) / 255
			if clipCov <= 0 {
				continue
			}
			idx := (y*w + x) * 4
			sR := uint8(float64(pix[idx+0]) * clipCov)
			sG := uint8(float64(pix[idx+1]) * clipCov)
			sB := uint8(float64(pix[idx+2]) * clipCov)
			sA := uint8(float64(pix[idx+3]) * clipCov)
			dr, dg, db, da := c.surface.GetPremul(dx, dy)
			rr, rg, rb, ra := blendFn(sR, sG, sB, sA, dr, dg, db, da)
			c.surface.SetPremul(dx, dy, rr, rg, rb, ra)
		}
	}
}

func toShadowAlphaLayer(buf *raster.Buffer) *shadow.AlphaLayer {
	out := &shadow.AlphaLayer{
		OriginX: buf.OriginX, OriginY: buf.OriginY,
		Width: buf.Width, Height: buf.Height,
		Alpha: make([]float32, buf.Width*buf.Height),
	}
	copy(out.Alpha, buf.Coverage)
	return out
}
