package shadow

import "testing"

func solidAlpha(w, h int) *AlphaLayer {
	a := make([]float32, w*h)
	for i := range a {
		a[i] = 1
	}
	return &AlphaLayer{Width: w, Height: h, Alpha: a}
}

func TestBlur_ZeroRadiusIsNoOp(t *testing.T) {
	src := solidAlpha(5, 5)
	out := Blur(src, Params{Blur: 0})
	if out != src {
		t.Error("expected zero-blur to return the same layer unchanged")
	}
}

func TestBlur_SpreadsAlphaBeyondOriginalEdge(t *testing.T) {
	a := make([]float32, 10*10)
	a[5*10+5] = 1 // a single lit pixel in the middle
	src := &AlphaLayer{Width: 10, Height: 10, Alpha: a}

	out := Blur(src, Params{Blur: 4})
	if out.at(5, 5) >= 1 {
		t.Errorf("center alpha after blur = %v, want reduced from 1 (energy spread out)", out.at(5, 5))
	}
	if out.at(6, 5) <= 0 {
		t.Errorf("neighbor alpha after blur = %v, want > 0 (blur should spread)", out.at(6, 5))
	}
}

func TestColorize_AppliesOffsetAndPremultipliesByAlpha(t *testing.T) {
	src := solidAlpha(2, 2)
	ox, oy, w, h, pix := Colorize(src, Params{OffsetX: 3, OffsetY: 4, R: 0, G: 0, B: 0, A: 0.5})
	if ox != 3 || oy != 4 {
		t.Errorf("origin = (%d,%d), want (3,4)", ox, oy)
	}
	if w != 2 || h != 2 {
		t.Errorf("size = (%d,%d), want (2,2)", w, h)
	}
	// Fully covered source alpha (1.0) times shadow base alpha 0.5 should
	// premultiply to roughly half coverage in the alpha channel (255*0.5).
	gotA := pix[3]
	if gotA < 120 || gotA > 135 {
		t.Errorf("alpha channel = %d, want ~127", gotA)
	}
}
