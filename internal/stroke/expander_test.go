package stroke

import "testing"

func TestExpand_OpenButtCapProducesSingleRing(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 10})
	out := e.Expand([]Subpath{{Points: []Point{{0, 0}, {10, 0}}}})
	if len(out) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(out))
	}
	if len(out[0]) < 4 {
		t.Errorf("expected at least 4 points for a rectangle ring, got %d", len(out[0]))
	}
}

func TestExpand_ClosedProducesTwoRings(t *testing.T) {
	e := NewExpander(Style{Width: 2, Join: JoinMiter, MiterLimit: 10})
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := e.Expand([]Subpath{{Points: square, Closed: true}})
	if len(out) != 2 {
		t.Fatalf("expected 2 rings for a closed subpath, got %d", len(out))
	}
}

func TestExpand_ZeroWidthProducesNothing(t *testing.T) {
	e := NewExpander(Style{Width: 0})
	out := e.Expand([]Subpath{{Points: []Point{{0, 0}, {10, 0}}}})
	if len(out) != 0 {
		t.Errorf("expected no geometry for zero-width stroke, got %d rings", len(out))
	}
}

func TestExpand_RoundJoinAddsArcPoints(t *testing.T) {
	e := NewExpander(Style{Width: 2, Join: JoinRound, MiterLimit: 10})
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	out := e.Expand([]Subpath{{Points: pts}})
	if len(out) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(out))
	}
	// A round join at a 90-degree corner should add more than the 4
	// straight-segment endpoints a bevel/miter join would produce.
	if len(out[0]) < 6 {
		t.Errorf("expected round join to add arc points, got only %d points", len(out[0]))
	}
}

func TestExpand_MiterBeyondLimitFallsBackToBevel(t *testing.T) {
	// A very sharp near-180-degree-reversal corner exceeds any reasonable
	// miter limit and must fall back to a bevel (no huge spike point).
	e := NewExpander(Style{Width: 2, Join: JoinMiter, MiterLimit: 1})
	pts := []Point{{0, 0}, {10, 0}, {0, 1}}
	out := e.Expand([]Subpath{{Points: pts}})
	if len(out) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(out))
	}
	for _, p := range out[0] {
		if p.X > 20 || p.X < -20 || p.Y > 20 || p.Y < -20 {
			t.Errorf("found an unbounded miter spike point %v, bevel fallback should have prevented it", p)
		}
	}
}

func TestApplyDash_SimplePatternSplitsIntoSegments(t *testing.T) {
	sp := Subpath{Points: []Point{{0, 0}, {10, 0}}}
	out := ApplyDash([]Subpath{sp}, Dash{Array: []float64{2, 2}})
	if len(out) == 0 {
		t.Fatal("expected at least one dash segment")
	}
	for _, s := range out {
		if len(s.Points) < 2 {
			t.Errorf("dash segment has fewer than 2 points: %v", s.Points)
		}
	}
}

func TestApplyDash_EmptyPatternReturnsInputUnchanged(t *testing.T) {
	sp := Subpath{Points: []Point{{0, 0}, {10, 0}}}
	out := ApplyDash([]Subpath{sp}, Dash{})
	if len(out) != 1 || len(out[0].Points) != 2 {
		t.Errorf("expected pass-through subpath, got %+v", out)
	}
}

func TestApplyDash_OffsetShiftsPattern(t *testing.T) {
	sp := Subpath{Points: []Point{{0, 0}, {20, 0}}}
	noOffset := ApplyDash([]Subpath{sp}, Dash{Array: []float64{4, 4}})
	withOffset := ApplyDash([]Subpath{sp}, Dash{Array: []float64{4, 4}, Offset: 2})
	if len(noOffset) == 0 || len(withOffset) == 0 {
		t.Fatal("expected dash segments in both cases")
	}
	// Both first dashes start at the path start; the offset consumes part of
	// the first "on" run, so the first dash ends earlier.
	if noOffset[0].Points[len(noOffset[0].Points)-1] == withOffset[0].Points[len(withOffset[0].Points)-1] {
		t.Errorf("expected offset to shift the first dash's end point")
	}
}
