package canvas2d

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestContext_DrawImagePlacesAtNaturalSize(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	src := solidImage(4, 4, color.NRGBA{R: 255, A: 255})
	c.DrawImage(src, 2, 2)

	r, g, b, a := c.Surface().GetPremul(3, 3)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel(3,3) = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
	_, _, _, a = c.Surface().GetPremul(10, 10)
	if a != 0 {
		t.Errorf("pixel(10,10) = alpha %d, want 0 (outside drawn image)", a)
	}
}

func TestContext_DrawImageScaledStretchesToDestination(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	src := solidImage(2, 2, color.NRGBA{G: 255, A: 255})
	c.DrawImageScaled(src, 0, 0, 10, 10)

	r, g, b, a := c.Surface().GetPremul(5, 5)
	if r != 0 || g != 255 || b != 0 || a != 255 {
		t.Errorf("pixel(5,5) = (%d,%d,%d,%d), want opaque green", r, g, b, a)
	}
	_, _, _, a = c.Surface().GetPremul(15, 15)
	if a != 0 {
		t.Errorf("pixel(15,15) = alpha %d, want 0 (outside scaled destination)", a)
	}
}

func TestContext_DrawImageIgnoresZeroSizedSource(t *testing.T) {
	c, _ := NewContext(10, 10)
	src := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	c.DrawImageScaled(src, 0, 0, 10, 10)
	_, _, _, a := c.Surface().GetPremul(5, 5)
	if a != 0 {
		t.Error("DrawImageScaled with zero-sized source should be a no-op")
	}
}

// quadrantImage returns a 2x2 source image with four distinct corner
// colors, used to prove downscaling goes through Prescaled's bilinear
// averaging rather than point-sampling a single corner verbatim.
func quadrantImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestContext_DrawImageScaledDownscalePrescalesInsteadOfPointSampling(t *testing.T) {
	c, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.DrawImageScaled(quadrantImage(), 0, 0, 1, 1)

	r, g, b, a := c.Surface().GetPremul(0, 0)
	if a != 255 {
		t.Fatalf("pixel(0,0) alpha = %d, want opaque", a)
	}
	// A 2x2-to-1x1 bilinear downscale blends all four corners; none of
	// them alone (pure red, green, blue, or white) should survive exactly,
	// which is only possible if Prescaled's x/image/draw bilinear pass ran
	// instead of ImagePatternBrush.ColorAt point-sampling a single texel.
	isCorner := (r == 255 && g == 0 && b == 0) ||
		(r == 0 && g == 255 && b == 0) ||
		(r == 0 && g == 0 && b == 255) ||
		(r == 255 && g == 255 && b == 255)
	if isCorner {
		t.Errorf("pixel(0,0) = (%d,%d,%d), want a blend of all four source corners, not one exactly", r, g, b)
	}
}

func TestContext_DrawImageScaledUpscaleSkipsPrescale(t *testing.T) {
	c, err := NewContext(10, 10)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	src := solidImage(2, 2, color.NRGBA{R: 255, A: 255})
	c.DrawImageScaled(src, 0, 0, 8, 8)

	r, g, b, a := c.Surface().GetPremul(4, 4)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("upscaled solid-color image pixel(4,4) = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
}
