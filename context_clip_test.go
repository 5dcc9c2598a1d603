package canvas2d

import "testing"

func TestContext_ClipRestrictsSubsequentFill(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.Rect(4, 4, 8, 8)
	if err := c.Clip(); err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if len(c.path.Elements()) != 0 {
		t.Error("Clip should clear the path")
	}

	c.SetFillBrush(Solid(White))
	c.Rect(0, 0, 20, 20)
	c.Fill()

	_, _, _, a := c.Surface().GetPremul(8, 8)
	if a != 255 {
		t.Errorf("pixel inside clip region alpha = %d, want 255", a)
	}
	_, _, _, a = c.Surface().GetPremul(1, 1)
	if a != 0 {
		t.Errorf("pixel outside clip region alpha = %d, want 0", a)
	}
}

func TestContext_ClipPreserveKeepsPath(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.Rect(0, 0, 5, 5)
	c.ClipPreserve()
	if len(c.path.Elements()) == 0 {
		t.Error("ClipPreserve should not clear the path")
	}
}

func TestContext_ClipRectFastPathUnderAxisAlignedTransform(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.ClipRect(4, 4, 8, 8)
	if c.clipStack.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", c.clipStack.Depth())
	}
	b := c.clipStack.Bounds()
	if b.MinX != 4 || b.MinY != 4 || b.MaxX != 12 || b.MaxY != 12 {
		t.Errorf("bounds = %+v, want {4 4 12 12}", b)
	}
}

func TestContext_ClipRectFallsBackToPathUnderRotation(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.Rotate(0.4)
	c.ClipRect(4, 4, 8, 8)
	// Under rotation the fast rectangular path is skipped; Clip still
	// pushes exactly one entry via the rasterized-path route.
	if c.clipStack.Depth() != 1 {
		t.Errorf("depth = %d, want 1", c.clipStack.Depth())
	}
}

func TestContext_ResetClipRestoresFullBounds(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.ClipRect(4, 4, 8, 8)
	c.ResetClip()
	if c.clipStack.Depth() != 0 {
		t.Errorf("depth after ResetClip = %d, want 0", c.clipStack.Depth())
	}
	b := c.clipStack.Bounds()
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 20 || b.MaxY != 20 {
		t.Errorf("bounds after ResetClip = %+v, want full surface", b)
	}
}
