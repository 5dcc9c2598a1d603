package blend

// Region identifies, for one scanline, the contiguous run of pixel
// columns that a global operator (Op.IsGlobal) must visit: the union of
// where the source has any coverage and where the destination is
// already non-transparent. Local operators only ever touch source
// coverage, so they never need this — gogpu-gg's blend package is only
// ever invoked per-source-pixel from inside the rasterizer's own
// coverage walk (software.go's blendAlphaRunsFromIter), and never
// builds a region like this. This walker is original to this repo,
// built directly from spec §4.7's description of which operators must
// consider destination-only pixels.
type Region struct {
	MinX, MaxX int
}

// Empty reports whether the region contains no columns.
func (r Region) Empty() bool { return r.MaxX <= r.MinX }

// UnionRun computes the column span a global operator must walk for one
// row, given the source's covered span [srcMinX, srcMaxX) and a
// predicate reporting whether the destination pixel at column x already
// has nonzero alpha.
func UnionRun(srcMinX, srcMaxX, rowMinX, rowMaxX int, destHasAlpha func(x int) bool) Region {
	minX, maxX := srcMinX, srcMaxX
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	for x := rowMinX; x < minX; x++ {
		if destHasAlpha(x) {
			minX = x
			break
		}
	}
	for x := rowMaxX - 1; x >= maxX; x-- {
		if destHasAlpha(x) {
			maxX = x + 1
			break
		}
	}
	if minX < rowMinX {
		minX = rowMinX
	}
	if maxX > rowMaxX {
		maxX = rowMaxX
	}
	if maxX < minX {
		maxX = minX
	}
	return Region{MinX: minX, MaxX: maxX}
}
