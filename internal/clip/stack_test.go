package clip

import "testing"

func TestStack_PushRectIntersectsBounds(t *testing.T) {
	s := NewStack(Rect{0, 0, 100, 100})
	s.PushRect(Rect{10, 10, 50, 50})
	b := s.Bounds()
	if b != (Rect{10, 10, 50, 50}) {
		t.Errorf("bounds = %+v, want {10 10 50 50}", b)
	}
	s.PushRect(Rect{20, 20, 200, 200})
	b = s.Bounds()
	if b != (Rect{20, 20, 50, 50}) {
		t.Errorf("bounds after second push = %+v, want {20 20 50 50}", b)
	}
}

func TestStack_PopRestoresBounds(t *testing.T) {
	s := NewStack(Rect{0, 0, 100, 100})
	original := s.Bounds()
	s.PushRect(Rect{10, 10, 50, 50})
	s.Pop()
	if s.Bounds() != original {
		t.Errorf("bounds after pop = %+v, want %+v", s.Bounds(), original)
	}
	if s.Depth() != 0 {
		t.Errorf("depth after pop = %d, want 0", s.Depth())
	}
}

func TestStack_PushMaskCombinesViaMin(t *testing.T) {
	s := NewStack(Rect{0, 0, 4, 4})
	m1 := &Mask{X: 0, Y: 0, Width: 4, Height: 4, Data: []uint8{
		255, 255, 255, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
	}}
	s.PushMask(m1)
	m2 := &Mask{X: 0, Y: 0, Width: 4, Height: 4, Data: []uint8{
		0, 0, 0, 0,
		0, 128, 128, 0,
		0, 128, 128, 0,
		0, 0, 0, 0,
	}}
	s.PushMask(m2)
	if s.Coverage(1, 1) != 128 {
		t.Errorf("combined coverage at (1,1) = %d, want 128", s.Coverage(1, 1))
	}
	if s.Coverage(0, 0) != 0 {
		t.Errorf("combined coverage at (0,0) = %d, want 0", s.Coverage(0, 0))
	}
}

func TestStack_CoverageOutsideBoundsIsZero(t *testing.T) {
	s := NewStack(Rect{0, 0, 10, 10})
	s.PushRect(Rect{2, 2, 8, 8})
	if s.Coverage(0, 0) != 0 {
		t.Errorf("coverage outside clipped bounds = %d, want 0", s.Coverage(0, 0))
	}
	if s.Coverage(5, 5) != 255 {
		t.Errorf("coverage inside rect-only clip = %d, want 255 (no mask pushed)", s.Coverage(5, 5))
	}
}

func TestStack_DepthTracksPushPop(t *testing.T) {
	s := NewStack(Rect{0, 0, 10, 10})
	s.PushRect(Rect{0, 0, 10, 10})
	s.PushRect(Rect{0, 0, 5, 5})
	if s.Depth() != 2 {
		t.Errorf("depth = %d, want 2", s.Depth())
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Errorf("depth after one pop = %d, want 1", s.Depth())
	}
}
