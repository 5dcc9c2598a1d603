package raster

import "testing"

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestFill_SimpleSquareFullyCovered(t *testing.T) {
	buf := Fill([][]Point{square(2, 2, 8, 8)}, NonZero, 0, 0, 10, 10)
	if buf.Width == 0 {
		t.Fatal("expected non-empty buffer")
	}
	// A pixel well inside the square should be fully covered.
	if v := buf.At(5, 5); v < 0.99 {
		t.Errorf("interior coverage = %v, want ~1", v)
	}
	// A pixel well outside should be zero.
	if v := buf.At(0, 0); v != 0 {
		t.Errorf("exterior coverage = %v, want 0", v)
	}
}

func TestFill_EvenOddHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(3, 3, 7, 7) // same winding direction as outer
	buf := Fill([][]Point{outer, inner}, EvenOdd, 0, 0, 10, 10)

	if v := buf.At(5, 5); v != 0 {
		t.Errorf("evenodd hole center coverage = %v, want 0", v)
	}
	if v := buf.At(1, 1); v < 0.99 {
		t.Errorf("evenodd ring coverage = %v, want ~1", v)
	}
}

func TestFill_NonZeroSameDirectionHasNoHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(3, 3, 7, 7)
	buf := Fill([][]Point{outer, inner}, NonZero, 0, 0, 10, 10)

	if v := buf.At(5, 5); v < 0.99 {
		t.Errorf("nonzero center coverage = %v, want ~1 (same-direction overlap has no hole)", v)
	}
}

func TestFill_EdgeAntialiasing(t *testing.T) {
	// A square whose right edge falls at x=5.5 should leave column 5
	// partially covered.
	buf := Fill([][]Point{square(0, 0, 5.5, 10)}, NonZero, 0, 0, 10, 10)
	v := buf.At(5, 5)
	if v <= 0 || v >= 1 {
		t.Errorf("partial-coverage column = %v, want strictly between 0 and 1", v)
	}
}

func TestFill_EmptyInput(t *testing.T) {
	buf := Fill(nil, NonZero, 0, 0, 10, 10)
	if buf.Width != 0 || buf.Height != 0 {
		t.Errorf("expected empty buffer for no subpaths")
	}
	if v := buf.At(0, 0); v != 0 {
		t.Errorf("At on empty buffer = %v, want 0", v)
	}
}
