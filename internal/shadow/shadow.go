// Package shadow implements the ShadowEngine layer (spec.md §4.6):
// extracting a drawn shape's alpha, blurring it, colorizing it with the
// shadow color, and offsetting it to sit beneath the original drawing.
//
// Grounded on gogpu-gg/internal/filter/shadow.go's
// extract-alpha/blur/colorize/composite pipeline shape, and on
// blur.go's separable two-pass (horizontal then vertical) convolution
// structure. Deviates from the teacher in kernel choice: blur.go
// convolves with a true Gaussian kernel (CachedGaussianKernel); this
// package instead runs three passes of a box filter of radius
// round(sigma), the closest integer-box approximation to a Gaussian of
// standard deviation sigma, per this repo's Open Question decision
// (DESIGN.md) to keep the blur kernel a simple box (no kernel-weight
// table needed, and three passes already converges visually close to
// Gaussian).
package shadow

import "math"

// Params describes a drop shadow.
type Params struct {
	OffsetX, OffsetY float64
	Blur             float64
	R, G, B, A       float64 // shadow color, non-premultiplied (0-1)
}

// AlphaLayer is a single-channel coverage buffer over a rectangular
// region, the shape the ShadowEngine extracts alpha into before
// blurring.
type AlphaLayer struct {
	OriginX, OriginY int
	Width, Height    int
	Alpha            []float32
}

func (a *AlphaLayer) at(x, y int) float32 {
	lx, ly := x-a.OriginX, y-a.OriginY
	if lx < 0 || lx >= a.Width || ly < 0 || ly >= a.Height {
		return 0
	}
	return a.Alpha[ly*a.Width+lx]
}

// Blur applies p's box-blur approximation of a Gaussian with standard
// deviation sigma = p.Blur/2, three passes, separable horizontal then
// vertical per pass (grounded on blur.go's two-pass structure, run
// three times).
func Blur(src *AlphaLayer, p Params) *AlphaLayer {
	if p.Blur <= 0 || src.Width == 0 || src.Height == 0 {
		return src
	}
	sigma := p.Blur / 2
	radius := int(math.Round(sigma))
	if radius < 1 {
		return src
	}

	cur := &AlphaLayer{OriginX: src.OriginX, OriginY: src.OriginY, Width: src.Width, Height: src.Height,
		Alpha: append([]float32{}, src.Alpha...)}
	for pass := 0; pass < 3; pass++ {
		cur = boxBlurPass(cur, radius)
	}
	return cur
}

func boxBlurPass(src *AlphaLayer, radius int) *AlphaLayer {
	w, h := src.Width, src.Height
	temp := make([]float32, w*h)
	boxBlurHorizontal(src.Alpha, temp, w, h, radius)
	out := make([]float32, w*h)
	boxBlurVertical(temp, out, w, h, radius)
	return &AlphaLayer{OriginX: src.OriginX, OriginY: src.OriginY, Width: w, Height: h, Alpha: out}
}

func boxBlurHorizontal(src, dst []float32, w, h, radius int) {
	norm := float32(1) / float32(2*radius+1)
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var sum float32
			for k := -radius; k <= radius; k++ {
				kx := x + k
				if kx < 0 {
					kx = 0
				} else if kx >= w {
					kx = w - 1
				}
				sum += src[row+kx]
			}
			dst[row+x] = sum * norm
		}
	}
}

func boxBlurVertical(src, dst []float32, w, h, radius int) {
	norm := float32(1) / float32(2*radius+1)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum float32
			for k := -radius; k <= radius; k++ {
				ky := y + k
				if ky < 0 {
					ky = 0
				} else if ky >= h {
					ky = h - 1
				}
				sum += src[ky*w+x]
			}
			dst[y*w+x] = sum * norm
		}
	}
}

// Colorize produces premultiplied RGBA bytes for the shadow layer,
// offset by (p.OffsetX, p.OffsetY) relative to the source alpha's
// coordinate space.
func Colorize(alpha *AlphaLayer, p Params) (originX, originY, width, height int, pix []uint8) {
	ox := int(math.Round(p.OffsetX))
	oy := int(math.Round(p.OffsetY))
	originX = alpha.OriginX + ox
	originY = alpha.OriginY + oy
	width, height = alpha.Width, alpha.Height
	pix = make([]uint8, width*height*4)

	r := uint8(clamp255(p.R * 255))
	g := uint8(clamp255(p.G * 255))
	b := uint8(clamp255(p.B * 255))
	baseA := float32(p.A)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := alpha.at(alpha.OriginX+x, alpha.OriginY+y) * baseA
			idx := (y*width + x) * 4
			pix[idx+0] = uint8(float32(r) * a)
			pix[idx+1] = uint8(float32(g) * a)
			pix[idx+2] = uint8(float32(b) * a)
			pix[idx+3] = uint8(a * 255)
		}
	}
	return
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
