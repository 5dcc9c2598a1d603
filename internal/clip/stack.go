// Package clip implements the ClipStack layer (spec.md §4.4): a LIFO of
// nested clip regions, each intersected with the current effective
// clip at push time.
//
// Grounded on gogpu-gg/internal/clip/stack.go's ClipStack structure
// (entries, prevBounds save/restore, Push*/Pop/Depth/Reset), but
// restructured so that Coverage is a single stored mask per stack
// depth rather than a per-query walk over every pushed entry: the
// teacher's Coverage multiplies every mask in the stack on every call
// (O(depth) per pixel query), whereas this implementation folds each
// new push into the running mask once via per-pixel min, paying that
// cost a single time at push instead of on every subsequent query.
package clip

// Mask is a rectangular region of per-pixel coverage in [0,255].
type Mask struct {
	X, Y, Width, Height int
	Data                []uint8
}

// At returns the coverage at absolute coordinates (x, y), or 255
// (fully open) if m is nil, or 0 if outside m's bounds.
func (m *Mask) At(x, y int) uint8 {
	if m == nil {
		return 255
	}
	lx, ly := x-m.X, y-m.Y
	if lx < 0 || lx >= m.Width || ly < 0 || ly >= m.Height {
		return 0
	}
	return m.Data[ly*m.Width+lx]
}

type entry struct {
	mask       *Mask
	prevBounds Rect
}

// Stack is a LIFO of materialized clip masks.
type Stack struct {
	entries []entry
	bounds  Rect
}

// Rect is an integer pixel rectangle, half-open [Min, Max).
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
	if out.MaxX < out.MinX {
		out.MaxX = out.MinX
	}
	if out.MaxY < out.MinY {
		out.MaxY = out.MinY
	}
	return out
}

// Contains reports whether (x, y) falls within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// NewStack returns an empty clip stack whose initial effective region
// is bounds (typically the full surface).
func NewStack(bounds Rect) *Stack {
	return &Stack{bounds: bounds}
}

// PushRect intersects the current clip with r. No mask is materialized
// since a rectangular clip is already exactly representable by Bounds.
func (s *Stack) PushRect(r Rect) {
	top := s.top()
	prev := s.bounds
	s.entries = append(s.entries, entry{mask: top, prevBounds: prev})
	s.bounds = s.bounds.Intersect(r)
}

// PushMask intersects the current clip with an arbitrary coverage mask
// (the rasterized result of a clipped path), folding it into the
// current top mask via per-pixel min.
func (s *Stack) PushMask(m *Mask) {
	prev := s.bounds
	newBounds := s.bounds
	if m != nil {
		newBounds = newBounds.Intersect(Rect{m.X, m.Y, m.X + m.Width, m.Y + m.Height})
	}
	combined := combine(s.top(), m, newBounds)
	s.entries = append(s.entries, entry{mask: combined, prevBounds: prev})
	s.bounds = newBounds
}

// combine folds two (possibly nil) masks into one covering region,
// via per-pixel min, materialized once so later queries are O(1).
func combine(a, b *Mask, region Rect) *Mask {
	if a == nil && b == nil {
		return nil
	}
	w, h := region.MaxX-region.MinX, region.MaxY-region.MinY
	if w <= 0 || h <= 0 {
		return &Mask{X: region.MinX, Y: region.MinY}
	}
	out := &Mask{X: region.MinX, Y: region.MinY, Width: w, Height: h, Data: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			av := a.At(region.MinX+x, region.MinY+y)
			bv := b.At(region.MinX+x, region.MinY+y)
			v := av
			if bv < v {
				v = bv
			}
			out.Data[y*w+x] = v
		}
	}
	return out
}

func (s *Stack) top() *Mask {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].mask
}

// Pop removes the most recently pushed clip, restoring Bounds to what it
// was immediately before that push. No-op if the stack is already
// empty.
func (s *Stack) Pop() {
	if len(s.entries) == 0 {
		return
	}
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.bounds = last.prevBounds
}

// Bounds returns the current effective clip region.
func (s *Stack) Bounds() Rect { return s.bounds }

// Depth returns the number of clips currently pushed.
func (s *Stack) Depth() int { return len(s.entries) }

// Coverage returns the combined coverage (0-255) at (x, y): 0 outside
// Bounds, otherwise the top materialized mask's value (255 if no mask
// has ever been pushed, i.e. only rectangular clips are active).
func (s *Stack) Coverage(x, y int) uint8 {
	if !s.bounds.Contains(x, y) {
		return 0
	}
	return s.top().At(x, y)
}

// Reset clears the stack back to an empty state with the given bounds.
func (s *Stack) Reset(bounds Rect) {
	s.entries = s.entries[:0]
	s.bounds = bounds
}
