package canvas2d

import "image"

// DrawImage composites src into the surface at position (x, y) in the
// current coordinate space, at src's natural size, transformed by the
// current matrix, respecting clip, global
// alpha, and the current composite operator. Grounded on
// gogpu-gg/context.go's DrawImage family, generalized to route through
// this repo's own internal/blend compositor (rather than the teacher's
// GPU/pixmap blit path) so images participate in the same Porter-Duff
// pipeline as fills and strokes.
func (c *Context) DrawImage(src image.Image, x, y float64) {
	b := src.Bounds()
	c.DrawImageScaled(src, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled composites src into a destination rectangle of the
// given width/height (in the current coordinate space), resampling with
// NewImagePattern + Prescaled when the scale factor warrants it.
func (c *Context) DrawImageScaled(src image.Image, x, y, width, height float64) {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 || width <= 0 || height <= 0 {
		return
	}

	// NewImagePattern's transform maps image pixel space to the space
	// ColorAt is called in (here, user space): image (0,0) must land on
	// (x, y) and image (srcW, srcH) on (x+width, y+height).
	imageToUser := Translate(x, y).Multiply(Scale(width/float64(srcW), height/float64(srcH)))
	brush := NewImagePattern(src, imageToUser, RepeatNone)

	// When the destination is smaller, in device pixels, than the source
	// image along either axis, point-sampling the pattern would alias;
	// resample src down to the destination's device-pixel size first with
	// x/image/draw's bilinear scaler.
	devW := int(c.state.matrix.TransformVector(Pt(width, 0)).Length() + 0.5)
	devH := int(c.state.matrix.TransformVector(Pt(0, height)).Length() + 0.5)
	if devW > 0 && devH > 0 && (devW < srcW || devH < srcH) {
		brush = brush.Prescaled(devW, devH)
	}

	// Corners of the destination rectangle, in user space, transformed
	// through the current matrix to get the device-space bounding box to
	// rasterize.
	corners := []Point{
		c.state.matrix.TransformPoint(Pt(x, y)),
		c.state.matrix.TransformPoint(Pt(x+width, y)),
		c.state.matrix.TransformPoint(Pt(x+width, y+height)),
		c.state.matrix.TransformPoint(Pt(x, y+height)),
	}

	p := NewPath()
	p.MoveTo(corners[0].X, corners[0].Y)
	for _, pt := range corners[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()

	saved := c.path
	savedRule := c.state.fillRule
	savedBrush := c.state.fillBrush
	c.path = p
	c.state.fillRule = FillRuleNonZero
	c.state.fillBrush = &patternInDeviceSpace{inner: brush, inverse: c.state.matrix.InvertOrIdentity()}
	c.doFill()
	c.path = saved
	c.state.fillRule = savedRule
	c.state.fillBrush = savedBrush
}

// patternInDeviceSpace adapts a pattern brush (defined in the pattern's
// own coordinate space) so ColorAt can be called with device-space
// coordinates, by mapping back through the current transform's inverse
// first.
type patternInDeviceSpace struct {
	inner   Brush
	inverse Matrix
}

func (*patternInDeviceSpace) brushMarker() {}

func (p *patternInDeviceSpace) ColorAt(x, y float64) RGBA {
	up := p.inverse.TransformPoint(Pt(x, y))
	return p.inner.ColorAt(up.X, up.Y)
}

// GetImageData returns an unpremultiplied snapshot of the device-space
// pixel rectangle [x, y, x+w, y+h), bypassing the current transform
// entirely (spec.md §6's getImageData operates in device pixels, not the
// current coordinate space).
func (c *Context) GetImageData(x, y, w, h int) *ImageData {
	return c.surface.GetImageData(x, y, w, h)
}

// PutImageData writes data's pixels back into the surface at device-space
// (x, y), bypassing the transform, clip, paint, and composite state
// entirely, matching spec.md §6's putImageData semantics.
func (c *Context) PutImageData(data *ImageData, x, y int) {
	c.surface.PutImageData(data, x, y)
}
