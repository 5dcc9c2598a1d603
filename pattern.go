package canvas2d

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// RepeatMode controls how an ImagePatternBrush tiles outside its source
// image's bounds, matching the four CSS/HTML5 canvas pattern repeat
// modes. This extends gogpu-gg/internal/image/pattern.go's three-way
// SpreadMode (Pad/Repeat/Reflect, no per-axis control) to the four named
// modes spec.md's Pattern data model requires (DESIGN.md).
type RepeatMode int

const (
	RepeatBoth RepeatMode = iota
	RepeatX
	RepeatY
	RepeatNone
)

// ImagePatternBrush paints by sampling a source image through a pattern
// transform (pattern space -> image space) and a repeat mode.
type ImagePatternBrush struct {
	img       image.Image
	transform Matrix
	inverse   Matrix
	repeat    RepeatMode
	bounds    image.Rectangle
}

// NewImagePattern creates a pattern brush from src. The transform maps
// image pixel space to pattern space (the coordinate space ColorAt is
// called in); Identity() means pattern space equals image pixel space
// directly.
func NewImagePattern(src image.Image, transform Matrix, repeat RepeatMode) *ImagePatternBrush {
	return &ImagePatternBrush{
		img:       src,
		transform: transform,
		inverse:   transform.InvertOrIdentity(),
		repeat:    repeat,
		bounds:    src.Bounds(),
	}
}

func (*ImagePatternBrush) brushMarker() {}

// ColorAt samples the pattern at (x, y) in pattern space.
func (p *ImagePatternBrush) ColorAt(x, y float64) RGBA {
	ip := p.inverse.TransformPoint(Pt(x, y))
	w, h := float64(p.bounds.Dx()), float64(p.bounds.Dy())
	if w <= 0 || h <= 0 {
		return Transparent
	}

	u, v := ip.X-float64(p.bounds.Min.X), ip.Y-float64(p.bounds.Min.Y)

	switch p.repeat {
	case RepeatBoth:
		u, v = wrap(u, w), wrap(v, h)
	case RepeatX:
		u = wrap(u, w)
		if v < 0 || v >= h {
			return Transparent
		}
	case RepeatY:
		v = wrap(v, h)
		if u < 0 || u >= w {
			return Transparent
		}
	case RepeatNone:
		if u < 0 || u >= w || v < 0 || v >= h {
			return Transparent
		}
	}

	px := p.bounds.Min.X + int(u)
	py := p.bounds.Min.Y + int(v)
	return FromColor(p.img.At(px, py))
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Prescaled returns a copy of the pattern with its source image resampled
// to newW x newH using golang.org/x/image/draw's bilinear scaler — used
// when a pattern transform scales the tile down enough that point
// sampling would alias, per SPEC_FULL.md's domain-stack wiring of
// x/image/draw.
func (p *ImagePatternBrush) Prescaled(newW, newH int) *ImagePatternBrush {
	if newW <= 0 || newH <= 0 {
		return p
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.BiLinear.Scale(dst, dst.Bounds(), p.img, p.bounds, draw.Over, nil)

	scaleX := float64(p.bounds.Dx()) / float64(newW)
	scaleY := float64(p.bounds.Dy()) / float64(newH)
	adjust := Scale(scaleX, scaleY)

	return &ImagePatternBrush{
		img:       dst,
		transform: p.transform.Multiply(adjust),
		inverse:   adjust.InvertOrIdentity().Multiply(p.inverse),
		repeat:    p.repeat,
		bounds:    dst.Bounds(),
	}
}
