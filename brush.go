package canvas2d

// Brush is a paint source: something that can answer "what color at this
// (x, y) in user space". It is a sealed tagged union over solid colors,
// gradients, and image patterns, matching spec.md §3's Gradient/Pattern
// data model and grounded on gogpu-gg/brush.go's sealed-interface idiom.
type Brush interface {
	brushMarker()

	// ColorAt returns the non-premultiplied color at (x, y), in the same
	// coordinate space the brush was constructed in.
	ColorAt(x, y float64) RGBA
}

// SolidBrush paints a single constant color.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt returns the brush's color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA { return b.Color }

// Solid creates a SolidBrush.
func Solid(c RGBA) SolidBrush { return SolidBrush{Color: c} }
