package canvas2d

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// maxSurfacePixels bounds width*height so the byte buffer (4 bytes/pixel)
// cannot overflow an int on 32-bit platforms.
const maxSurfacePixels = 1 << 28

// Surface is a strictly premultiplied-alpha RGBA8 pixel buffer: for every
// stored pixel, max(R,G,B) <= A. This is a deliberate rewrite of
// gogpu-gg/pixmap.go, whose Pixmap stores non-premultiplied values in
// SetPixel/GetPixel while treating the same buffer as premultiplied in
// FillSpanBlend — an inconsistency spec.md's invariant (§3) forbids.
type Surface struct {
	width, height int
	stride        int
	pix           []uint8 // premultiplied R,G,B,A bytes, row-major
}

// NewSurface allocates a transparent-black surface of the given
// dimensions.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width*height > maxSurfacePixels {
		return nil, ErrSurfaceTooLarge
	}
	return &Surface{
		width:  width,
		height: height,
		stride: width * 4,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the underlying premultiplied R,G,B,A byte buffer, row-major
// with the returned stride.
func (s *Surface) Pix() ([]uint8, int) { return s.pix, s.stride }

func (s *Surface) offset(x, y int) int { return y*s.stride + x*4 }

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetPremul sets the premultiplied-alpha pixel at (x, y). Out-of-bounds
// writes are silently ignored, per spec.md §7's out-of-bounds policy.
func (s *Surface) SetPremul(x, y int, r, g, b, a uint8) {
	if !s.inBounds(x, y) {
		return
	}
	i := s.offset(x, y)
	s.pix[i+0], s.pix[i+1], s.pix[i+2], s.pix[i+3] = r, g, b, a
}

// GetPremul reads the premultiplied-alpha pixel at (x, y). Out-of-bounds
// reads return fully transparent, per spec.md §7.
func (s *Surface) GetPremul(x, y int) (r, g, b, a uint8) {
	if !s.inBounds(x, y) {
		return 0, 0, 0, 0
	}
	i := s.offset(x, y)
	return s.pix[i+0], s.pix[i+1], s.pix[i+2], s.pix[i+3]
}

// Set writes a non-premultiplied color at (x, y), premultiplying it first.
func (s *Surface) Set(x, y int, c RGBA) {
	pm := c.Premultiply()
	s.SetPremul(x, y,
		to8(pm.R), to8(pm.G), to8(pm.B), to8(pm.A))
}

// At returns the non-premultiplied color at (x, y) as a color.Color,
// implementing image.Image.
func (s *Surface) At(x, y int) color.Color {
	r, g, b, a := s.GetPremul(x, y)
	if a == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(uint32(r) * 255 / uint32(a)),
		G: uint8(uint32(g) * 255 / uint32(a)),
		B: uint8(uint32(b) * 255 / uint32(a)),
		A: a,
	}
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.NRGBAModel }

// Clear resets every pixel to fully transparent.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = 0
	}
}

// ImageData is an unpremultiplied RGBA8 snapshot of a rectangular pixel
// region, matching the Canvas2D getImageData/putImageData contract: pixels
// always cross that boundary non-premultiplied (spec.md §6), independent of
// how the Surface stores them internally.
type ImageData struct {
	Width, Height int
	Pix           []uint8 // R,G,B,A per pixel, row-major, non-premultiplied
}

// GetImageData copies an unpremultiplied snapshot of the rectangle
// [x, y, x+w, y+h) out of s. Pixels outside the surface read back fully
// transparent, per spec.md §7's out-of-bounds policy.
func (s *Surface) GetImageData(x, y, w, h int) *ImageData {
	if w <= 0 || h <= 0 {
		return &ImageData{}
	}
	out := &ImageData{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := s.At(x+col, y+row).(color.NRGBA)
			i := (row*w + col) * 4
			out.Pix[i+0], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return out
}

// PutImageData writes data's unpremultiplied pixels into s at (x, y),
// premultiplying each one on the way in. Because Set's premultiplied
// invariant already forces transparent pixels to (0,0,0,0), a
// PutImageData(GetImageData(...)) round trip reproduces the original
// premultiplied bytes exactly for every pixel that was fully transparent or
// fully opaque; partially transparent pixels can lose a rounding step of
// precision, the same limitation any premultiplied-store canvas has.
// Writes landing outside the surface are silently clipped.
func (s *Surface) PutImageData(data *ImageData, x, y int) {
	for row := 0; row < data.Height; row++ {
		for col := 0; col < data.Width; col++ {
			i := (row*data.Width + col) * 4
			r, g, b, a := data.Pix[i+0], data.Pix[i+1], data.Pix[i+2], data.Pix[i+3]
			s.Set(x+col, y+row, RGBA{
				R: float64(r) / 255,
				G: float64(g) / 255,
				B: float64(b) / 255,
				A: float64(a) / 255,
			})
		}
	}
}

// EncodePNG writes the surface to w as a PNG, using the standard library
// encoder (spec.md explicitly scopes encoders out of the core; this is an
// optional convenience, per SPEC_FULL.md §1).
func (s *Surface) EncodePNG(w io.Writer) error {
	img := image.NewNRGBA(s.Bounds())
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.At(x, y).(color.NRGBA)
			img.SetNRGBA(x, y, c)
		}
	}
	return png.Encode(w, img)
}

func to8(v float64) uint8 {
	v = clamp01(v)
	return uint8(v*255 + 0.5)
}
