package canvas2d

import "sort"

// ExtendMode controls how a gradient handles positions outside [0, 1],
// matching spec.md's Pad/Repeat/Reflect gradient extend modes.
type ExtendMode int

const (
	ExtendPad ExtendMode = iota
	ExtendRepeat
	ExtendReflect
)

// ColorStop is one gradient stop.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// sortStops sorts stops by offset. Uses a *stable* sort (deviating from
// gogpu-gg/gradient.go's plain sort.Slice) so that when two stops share an
// offset, the later-added one keeps its position and wins when sampled —
// the tie-break spec.md requires.
func sortStops(stops []ColorStop) []ColorStop {
	out := append([]ColorStop(nil), stops...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= floor(t)
		if t < 0 {
			t += 1
		}
		return t
	case ExtendReflect:
		return reflect01(t)
	default: // ExtendPad
		return clamp01(t)
	}
}

func floor(v float64) float64 {
	i := float64(int64(v))
	if v < 0 && i != v {
		i--
	}
	return i
}

func reflect01(t float64) float64 {
	period := floor(t)
	frac := t - period
	if int64(period)%2 != 0 {
		return 1 - frac
	}
	return frac
}

// colorAtOffset samples a sorted, non-empty stop list at parameter t,
// which must already be in [0, 1] (post extend-mode). Interpolation is a
// direct non-premultiplied sRGB lerp between the stops bracketing t, per
// spec.md §9 Open Question (a) — deliberately not the linear-light
// round-trip gogpu-gg's gradient.go performs (see DESIGN.md).
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 1 {
		return stops[0].Color
	}
	if t < stops[0].Offset {
		return stops[0].Color
	}
	last := len(stops) - 1
	if t >= stops[last].Offset {
		return stops[last].Color
	}

	idx := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	if idx <= 0 {
		return stops[0].Color
	}
	upper := stops[idx]
	lower := stops[idx-1]
	span := upper.Offset - lower.Offset
	if span <= 1e-12 {
		return upper.Color
	}
	localT := (t - lower.Offset) / span
	return lower.Color.Lerp(upper.Color, localT)
}
