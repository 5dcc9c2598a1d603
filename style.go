package canvas2d

// LineCap selects the shape drawn at the end of an open subpath.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin selects the shape drawn where two stroked segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// FillRule selects how self-intersecting/overlapping subpaths accumulate
// coverage.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// CompositeOp names a Porter-Duff (or Porter-Duff-like) compositing
// operator, matching spec.md §4.7's operator table.
type CompositeOp int

const (
	CompositeSourceOver CompositeOp = iota
	CompositeSourceIn
	CompositeSourceOut
	CompositeSourceAtop
	CompositeDestinationOver
	CompositeDestinationIn
	CompositeDestinationOut
	CompositeDestinationAtop
	CompositeLighter
	CompositeCopy
	CompositeXor
	CompositeClear
	CompositeDestination
)

// isGlobal reports whether op requires considering the union of source and
// destination coverage, not just pixels the source geometry touches
// (spec.md §4.7/§9).
func (op CompositeOp) isGlobal() bool {
	switch op {
	case CompositeCopy, CompositeSourceIn, CompositeSourceOut, CompositeDestinationIn, CompositeDestinationAtop:
		return true
	default:
		return false
	}
}

// StrokeStyle describes how StrokeGenerator expands a path into fill
// geometry. The zero value is not directly usable; use DefaultStrokeStyle.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *DashPattern
}

// DefaultStrokeStyle returns the canvas default stroke style: width 1,
// butt caps, miter joins, miter limit 10 (spec.md's value; gogpu-gg's
// paint.go agrees, though its stroke.go's DefaultStroke disagrees at 4 —
// see DESIGN.md).
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// Clone returns an independent copy of the style.
func (s StrokeStyle) Clone() StrokeStyle {
	s.Dash = s.Dash.Clone()
	return s
}
