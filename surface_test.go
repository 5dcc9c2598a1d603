package canvas2d

import "testing"

func TestSurface_GetImageDataOutOfBoundsIsTransparent(t *testing.T) {
	s, err := NewSurface(4, 4)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.Set(0, 0, Red)
	data := s.GetImageData(-2, -2, 4, 4)
	// (-2,-2)-(2,2) overlaps (0,0) at local offset (2,2).
	idx := (2*4 + 2) * 4
	if data.Pix[idx+3] != 255 {
		t.Errorf("overlapping pixel alpha = %d, want 255", data.Pix[idx+3])
	}
	if data.Pix[0] != 0 || data.Pix[3] != 0 {
		t.Errorf("out-of-bounds corner = %v, want fully transparent", data.Pix[0:4])
	}
}

func TestSurface_PutImageDataRoundTripsOpaquePixelsExactly(t *testing.T) {
	s, err := NewSurface(4, 4)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.Set(0, 0, RGB(0.1, 0.5, 0.9))
	s.Set(1, 0, Transparent)
	s.Set(2, 0, White)

	data := s.GetImageData(0, 0, 4, 4)
	out, err := NewSurface(4, 4)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	out.PutImageData(data, 0, 0)

	for x := 0; x < 4; x++ {
		wr, wg, wb, wa := s.GetPremul(x, 0)
		gr, gg, gb, ga := out.GetPremul(x, 0)
		if wr != gr || wg != gg || wb != gb || wa != ga {
			t.Errorf("pixel(%d,0) round-tripped to (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				x, gr, gg, gb, ga, wr, wg, wb, wa)
		}
	}
}

func TestSurface_PutImageDataClipsOutOfBoundsWrites(t *testing.T) {
	s, err := NewSurface(2, 2)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	data := &ImageData{Width: 2, Height: 2, Pix: []uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}}
	s.PutImageData(data, 1, 1) // writes 3 of 4 pixels out of bounds
	r, g, b, a := s.GetPremul(1, 1)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("in-bounds pixel(1,1) = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
}
