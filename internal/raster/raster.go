// Package raster implements the PolygonRasterizer layer (spec.md §4.2):
// scanline rasterization of already-flattened polygons with nonzero/
// evenodd fill rules and anti-aliased coverage.
//
// The core accumulation technique (signed winding crossings walked left to
// right per scanline, fill rule applied to the running winding/parity
// state) is grounded on gogpu-gg/internal/raster/analytic_filler.go's
// algorithm; unlike that curve-aware, fixed-point engine, this rasterizer
// only ever sees straight-line edges (curve flattening already happened
// in internal/geom) and works in float64/float32. Anti-aliasing uses
// exact analytic coverage in X combined with subSamples-way supersampling
// in Y, the same quality/cost tradeoff as gogpu-gg's default
// RenderModeSupersampled engine (software.go), generalized here to support
// both fill rules (the teacher's default path is nonzero-only internally,
// though its Paint.FillRule field allows selecting evenodd).
package raster

import (
	"math"
	"sort"

	"github.com/chewxy/math32"
)

// FillRule selects how overlapping/self-intersecting geometry accumulates
// coverage.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// subSamples is the number of Y supersamples per scanline row.
const subSamples = 4

// coverageEpsilon is the minimum coverage value retained; anything below
// is flushed to exactly zero, per spec.md's numeric-underflow clamping
// policy.
const coverageEpsilon = 1e-4

// Point is a device-space coordinate.
type Point struct{ X, Y float64 }

// Buffer holds per-pixel coverage ([0,1]) for a bounding-box-restricted
// region of the full surface.
type Buffer struct {
	OriginX, OriginY int
	Width, Height    int
	Coverage         []float32
}

// At returns the coverage at absolute surface coordinates (x, y), or 0 if
// outside the buffer's region.
func (b *Buffer) At(x, y int) float32 {
	if b == nil {
		return 0
	}
	lx, ly := x-b.OriginX, y-b.OriginY
	if lx < 0 || lx >= b.Width || ly < 0 || ly >= b.Height {
		return 0
	}
	return b.Coverage[ly*b.Width+lx]
}

type edge struct {
	x0, y0, x1, y1 float64
	sign           float64
}

type crossing struct {
	x    float64
	sign float64
}

func buildEdges(subpaths [][]Point) []edge {
	var edges []edge
	for _, sp := range subpaths {
		n := len(sp)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := sp[i]
			b := sp[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			sign := 1.0
			if b.Y < a.Y {
				sign = -1.0
			}
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y, sign})
		}
	}
	return edges
}

// PointInPolygon reports whether (px, py) falls inside subpaths under the
// given fill rule. It accumulates crossings with the same per-scanline
// winding/parity logic Fill uses (just at a single exact y instead of
// subSamples supersampled rows), so a hit test against the interior of a
// shape agrees with what Fill would paint there.
func PointInPolygon(subpaths [][]Point, rule FillRule, px, py float64) bool {
	edges := buildEdges(subpaths)
	if len(edges) == 0 {
		return false
	}

	winding := 0.0
	count := 0
	for _, e := range edges {
		ylo, yhi := e.y0, e.y1
		if ylo > yhi {
			ylo, yhi = yhi, ylo
		}
		if py < ylo || py >= yhi {
			continue
		}
		t := (py - e.y0) / (e.y1 - e.y0)
		x := e.x0 + t*(e.x1-e.x0)
		if x > px {
			continue
		}
		winding += e.sign
		count++
	}

	if rule == EvenOdd {
		return count%2 != 0
	}
	return winding != 0
}

// Fill rasterizes subpaths (each implicitly closed for winding purposes,
// matching spec.md's fill semantics) against the given fill rule,
// restricted to [clipMinX,clipMaxX) x [clipMinY,clipMaxY).
func Fill(subpaths [][]Point, rule FillRule, clipMinX, clipMinY, clipMaxX, clipMaxY int) *Buffer {
	edges := buildEdges(subpaths)
	if len(edges) == 0 {
		return &Buffer{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range edges {
		minX = math.Min(minX, math.Min(e.x0, e.x1))
		maxX = math.Max(maxX, math.Max(e.x0, e.x1))
		minY = math.Min(minY, math.Min(e.y0, e.y1))
		maxY = math.Max(maxY, math.Max(e.y0, e.y1))
	}

	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX))
	y1 := int(math.Ceil(maxY))
	if x0 < clipMinX {
		x0 = clipMinX
	}
	if y0 < clipMinY {
		y0 = clipMinY
	}
	if x1 > clipMaxX {
		x1 = clipMaxX
	}
	if y1 > clipMaxY {
		y1 = clipMaxY
	}
	if x1 <= x0 || y1 <= y0 {
		return &Buffer{}
	}

	w, h := x1-x0, y1-y0
	buf := &Buffer{OriginX: x0, OriginY: y0, Width: w, Height: h, Coverage: make([]float32, w*h)}

	crossings := make([]crossing, 0, len(edges))
	rowAccum := make([]float64, w)

	for row := 0; row < h; row++ {
		y := y0 + row
		for i := range rowAccum {
			rowAccum[i] = 0
		}

		for s := 0; s < subSamples; s++ {
			sy := float64(y) + (float64(s)+0.5)/subSamples
			crossings = crossings[:0]
			for _, e := range edges {
				ylo, yhi := e.y0, e.y1
				if ylo > yhi {
					ylo, yhi = yhi, ylo
				}
				if sy < ylo || sy >= yhi {
					continue
				}
				t := (sy - e.y0) / (e.y1 - e.y0)
				crossings = append(crossings, crossing{x: e.x0 + t*(e.x1-e.x0), sign: e.sign})
			}
			if len(crossings) == 0 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

			winding := 0.0
			count := 0
			inside := false
			prevX := 0.0
			for i, c := range crossings {
				if i > 0 && inside {
					addSpan(rowAccum, prevX, c.x, x0, 1.0/subSamples, w)
				}
				winding += c.sign
				count++
				if rule == EvenOdd {
					inside = count%2 != 0
				} else {
					inside = winding != 0
				}
				prevX = c.x
			}
		}

		for i := 0; i < w; i++ {
			v := float32(rowAccum[i])
			if math32.Abs(v) < coverageEpsilon {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			if v < 0 {
				v = 0
			}
			buf.Coverage[row*w+i] = v
		}
	}
	return buf
}

// addSpan deposits weight for each unit of x overlap between
// [spanStart, spanEnd) and the buffer's pixel columns.
func addSpan(rowAccum []float64, spanStart, spanEnd float64, x0 int, weight float64, w int) {
	if spanEnd <= spanStart {
		return
	}
	bufMin := float64(x0)
	bufMax := float64(x0 + w)
	lo, hi := spanStart, spanEnd
	if lo < bufMin {
		lo = bufMin
	}
	if hi > bufMax {
		hi = bufMax
	}
	if hi <= lo {
		return
	}
	colStart := int(math.Floor(lo)) - x0
	colEnd := int(math.Ceil(hi)) - x0
	if colStart < 0 {
		colStart = 0
	}
	if colEnd > w {
		colEnd = w
	}
	for c := colStart; c < colEnd; c++ {
		cellLo := float64(x0 + c)
		cellHi := cellLo + 1
		ovLo := math.Max(lo, cellLo)
		ovHi := math.Min(hi, cellHi)
		if ovHi > ovLo {
			rowAccum[c] += weight * (ovHi - ovLo)
		}
	}
}
