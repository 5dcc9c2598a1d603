package blend

import "testing"

func TestLookup_SourceOverOpaqueSourceReplacesDestination(t *testing.T) {
	f := Lookup(SourceOver)
	r, g, b, a := f(255, 0, 0, 255, 0, 255, 0, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("got (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
}

func TestLookup_ClearAlwaysZero(t *testing.T) {
	f := Lookup(Clear)
	r, g, b, a := f(255, 255, 255, 255, 10, 20, 30, 40)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("clear produced (%d,%d,%d,%d), want all zero", r, g, b, a)
	}
}

func TestLookup_XorCancelsFullyOverlappingOpaquePixels(t *testing.T) {
	f := Lookup(Xor)
	_, _, _, a := f(255, 0, 0, 255, 0, 0, 255, 255)
	if a != 0 {
		t.Errorf("xor of two fully-opaque overlapping pixels alpha = %d, want 0", a)
	}
}

func TestLookup_UnknownOpDefaultsToSourceOver(t *testing.T) {
	f := Lookup(Op(255))
	r, g, b, a := f(255, 0, 0, 255, 0, 255, 0, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("default op got (%d,%d,%d,%d), want SourceOver result", r, g, b, a)
	}
}

func TestOp_IsGlobal(t *testing.T) {
	globals := []Op{Copy, SourceIn, SourceOut, DestinationIn, DestinationAtop}
	for _, op := range globals {
		if !op.IsGlobal() {
			t.Errorf("op %v expected IsGlobal() true", op)
		}
	}
	locals := []Op{Clear, SourceOver, DestinationOver, DestinationOut, SourceAtop, Xor, Destination, Lighter}
	for _, op := range locals {
		if op.IsGlobal() {
			t.Errorf("op %v expected IsGlobal() false", op)
		}
	}
}

func TestUnionRun_ExpandsToCoveredDestination(t *testing.T) {
	destAlpha := map[int]bool{2: true, 3: true, 8: true}
	r := UnionRun(4, 6, 0, 10, func(x int) bool { return destAlpha[x] })
	if r.MinX != 2 || r.MaxX != 9 {
		t.Errorf("region = %+v, want MinX=2 MaxX=9", r)
	}
}

func TestUnionRun_EmptyWhenNoCoverageAnywhere(t *testing.T) {
	r := UnionRun(5, 5, 0, 10, func(x int) bool { return false })
	if !r.Empty() {
		t.Errorf("expected empty region, got %+v", r)
	}
}
