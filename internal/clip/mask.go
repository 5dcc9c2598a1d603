package clip

import "github.com/rasterkit/canvas2d/internal/raster"

// RasterizeMask rasterizes subpaths into a coverage Mask restricted to
// clipBounds, via internal/raster — giving clip masks the same
// nonzero/evenodd fill-rule choice and anti-aliasing quality as an
// ordinary fill, unlike gogpu-gg/internal/clip/mask.go, which only
// rasterizes even-odd with no AA and flattens curves at a fixed
// segment count rather than adaptively. Both gaps rule the teacher's
// mask rasterizer out as a behavioral grounding source, though its
// bounds-intersection bookkeeping (via this package's Rect) is reused.
func RasterizeMask(subpaths [][]raster.Point, rule raster.FillRule, clipBounds Rect) *Mask {
	buf := raster.Fill(subpaths, rule, clipBounds.MinX, clipBounds.MinY, clipBounds.MaxX, clipBounds.MaxY)
	if buf.Width == 0 || buf.Height == 0 {
		return &Mask{X: clipBounds.MinX, Y: clipBounds.MinY}
	}
	data := make([]uint8, buf.Width*buf.Height)
	for i, c := range buf.Coverage {
		data[i] = uint8(c*255 + 0.5)
	}
	return &Mask{X: buf.OriginX, Y: buf.OriginY, Width: buf.Width, Height: buf.Height, Data: data}
}
