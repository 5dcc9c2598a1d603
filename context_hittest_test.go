package canvas2d

import "testing"

func TestContext_IsPointInPathAgreesWithFillCoverage(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.Rect(4, 4, 10, 10)

	if !c.IsPointInPath(8, 8) {
		t.Error("IsPointInPath(8,8) = false, want true (well inside the rect)")
	}
	if c.IsPointInPath(1, 1) {
		t.Error("IsPointInPath(1,1) = true, want false (well outside the rect)")
	}

	c.SetFillBrush(Solid(Red))
	c.FillPreserve()
	r, g, b, a := c.Surface().GetPremul(8, 8)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("sanity check: pixel(8,8) = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
}

func TestContext_IsPointInPathEmptyPathIsFalse(t *testing.T) {
	c, _ := NewContext(10, 10)
	if c.IsPointInPath(5, 5) {
		t.Error("IsPointInPath with no path should be false")
	}
}

func TestContext_IsPointInPathHonorsExplicitRuleOverride(t *testing.T) {
	c, _ := NewContext(20, 20)
	// Two same-winding nested rects: nonzero fills the hole, evenodd
	// leaves it unfilled.
	c.Rect(2, 2, 16, 16)
	c.Rect(6, 6, 8, 8)

	if !c.IsPointInPath(10, 10, FillRuleNonZero) {
		t.Error("nonzero rule: center of nested rect should be inside")
	}
	if c.IsPointInPath(10, 10, FillRuleEvenOdd) {
		t.Error("evenodd rule: center of nested same-winding rect should be a hole")
	}
}

func TestContext_IsPointInPathUsesCurrentTransformAtCallTime(t *testing.T) {
	c, _ := NewContext(20, 20)
	c.Rect(0, 0, 4, 4)
	// The path is already baked to device space at (0,0)-(4,4). Query
	// points are remapped through whatever transform is active now.
	c.Translate(10, 10)
	if !c.IsPointInPath(-9, -9) {
		t.Error("IsPointInPath should transform the query point through the current matrix")
	}
}

func TestContext_IsPointInStrokeMatchesStrokedOutline(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetLineWidth(4)
	c.MoveTo(2, 10)
	c.LineTo(18, 10)

	if !c.IsPointInStroke(10, 10) {
		t.Error("IsPointInStroke(10,10) = false, want true (on the stroked line)")
	}
	if c.IsPointInStroke(10, 2) {
		t.Error("IsPointInStroke(10,2) = true, want false (far from the stroke)")
	}
}

func TestContext_IsPointInStrokeZeroWidthIsFalse(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetLineWidth(0)
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	if c.IsPointInStroke(5, 5) {
		t.Error("zero-width stroke should never report a hit")
	}
}
