package stroke

import "math"

// Dash describes a dash pattern in the stroker's own terms (the root
// package's DashPattern already resolved array/offset edge cases; this
// is just the plain numbers that survive that resolution).
type Dash struct {
	Array  []float64
	Offset float64
}

// ApplyDash walks each subpath's arc length and splits it into the "on"
// sub-polylines implied by d, discarding the "off" gaps. This walking
// logic has no teacher counterpart — gogpu-gg's stroke expander never
// wires dashing into its pipeline at all — so it is original to this
// repo, built directly against the DashPattern semantics already
// modeled in dash.go at the repo root.
func ApplyDash(subpaths []Subpath, d Dash) []Subpath {
	if len(d.Array) == 0 {
		return subpaths
	}
	total := 0.0
	for _, v := range d.Array {
		total += v
	}
	if total <= 0 {
		return subpaths
	}

	var out []Subpath
	for _, sp := range subpaths {
		out = append(out, dashOne(sp, d.Array, d.Offset, total)...)
	}
	return out
}

func dashOne(sp Subpath, pattern []float64, offset, total float64) []Subpath {
	pts := sp.Points
	if len(pts) < 2 {
		return nil
	}
	if sp.Closed {
		pts = append(append([]Point{}, pts...), pts[0])
	}

	// Locate the starting index into pattern and the remaining length of
	// that segment, given the (already-normalized) offset.
	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - pos
	on := idx%2 == 0

	var out []Subpath
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := b.sub(a).length()
		walked := 0.0
		for walked < segLen {
			step := math.Min(remaining, segLen-walked)
			walked += step
			remaining -= step
			t := walked / segLen
			p := a.add(b.sub(a).mul(t))
			if on {
				cur = append(cur, p)
			}
			if remaining <= 1e-9 {
				if on && len(cur) >= 2 {
					out = append(out, Subpath{Points: cur})
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				if on {
					cur = []Point{p}
				} else {
					cur = nil
				}
			}
		}
	}
	if on && len(cur) >= 2 {
		out = append(out, Subpath{Points: cur})
	}
	return out
}
