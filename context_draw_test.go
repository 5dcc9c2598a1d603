package canvas2d

import "testing"

func TestContext_FillOpaqueRectPaintsExactColor(t *testing.T) {
	c, err := NewContext(10, 10)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetFillBrush(Solid(Red))
	c.Rect(2, 2, 4, 4)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	r, g, b, a := c.Surface().GetPremul(3, 3)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel(3,3) = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
	r, g, b, a = c.Surface().GetPremul(8, 8)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("pixel(8,8) = (%d,%d,%d,%d), want transparent", r, g, b, a)
	}
}

func TestContext_FillClearsPathAfterward(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.Rect(0, 0, 5, 5)
	c.Fill()
	if len(c.path.Elements()) != 0 {
		t.Error("Fill should clear the path")
	}
}

func TestContext_FillPreserveKeepsPath(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.Rect(0, 0, 5, 5)
	c.FillPreserve()
	if len(c.path.Elements()) == 0 {
		t.Error("FillPreserve should not clear the path")
	}
}

func TestContext_StrokePaintsAlongPathEdge(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetStrokeBrush(Solid(Blue))
	c.SetLineWidth(4)
	c.MoveTo(2, 10)
	c.LineTo(18, 10)
	if err := c.Stroke(); err != nil {
		t.Fatalf("Stroke: %v", err)
	}

	// The stroke is centered on y=10 with width 4, so y=10 itself should
	// be fully painted blue.
	r, g, b, a := c.Surface().GetPremul(10, 10)
	if r != 0 || g != 0 || b != 255 || a != 255 {
		t.Errorf("pixel(10,10) = (%d,%d,%d,%d), want (0,0,255,255)", r, g, b, a)
	}
	// Far from the stroke's width should be untouched.
	r, g, b, a = c.Surface().GetPremul(10, 2)
	if a != 0 {
		t.Errorf("pixel(10,2) = (%d,%d,%d,%d), want transparent", r, g, b, a)
	}
}

func TestContext_StrokeWithZeroWidthIsNoOp(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetLineWidth(0)
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	if err := c.Stroke(); err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	_, _, _, a := c.Surface().GetPremul(5, 5)
	if a != 0 {
		t.Error("zero-width stroke painted a pixel, want no-op")
	}
}

func TestContext_CompositeClearErasesDestination(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetFillBrush(Solid(White))
	c.Rect(0, 0, 10, 10)
	c.Fill()

	c.SetCompositeOp(CompositeClear)
	c.Rect(2, 2, 4, 4)
	c.Fill()

	_, _, _, a := c.Surface().GetPremul(3, 3)
	if a != 0 {
		t.Errorf("pixel under Clear op alpha = %d, want 0", a)
	}
	// Outside the cleared rect, the original fill should remain.
	_, _, _, a = c.Surface().GetPremul(8, 8)
	if a != 255 {
		t.Errorf("pixel outside Clear op alpha = %d, want 255", a)
	}
}

func TestContext_GlobalAlphaScalesCoverage(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetFillBrush(Solid(White))
	c.SetGlobalAlpha(0.5)
	c.Rect(0, 0, 10, 10)
	c.Fill()

	_, _, _, a := c.Surface().GetPremul(5, 5)
	if a < 120 || a > 135 {
		t.Errorf("pixel alpha with globalAlpha=0.5 = %d, want ~127", a)
	}
}
