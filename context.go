package canvas2d

import (
	"io"
	"log/slog"

	"github.com/rasterkit/canvas2d/internal/clip"
)

// drawingState is everything Push/Pop must snapshot and restore: the
// transform, stroke style, fill/stroke brushes, global alpha, composite
// operator, shadow parameters, and clip depth. This is a deliberate
// completion of gogpu-gg/context.go's Push/Pop, which only snapshots
// the transform matrix, clip-stack depth, and mask — silently losing
// paint/style state across a save/restore pair. spec.md §8's
// save/restore round-trip property requires every one of these fields
// to survive a Push immediately followed by a Pop with no intervening
// mutation, so the teacher's partial snapshot does not satisfy it.
type drawingState struct {
	matrix      Matrix
	fillBrush   Brush
	strokeBrush Brush
	strokeStyle StrokeStyle
	fillRule    FillRule
	globalAlpha float64
	compositeOp CompositeOp
	shadow      ShadowStyle
	clipDepth   int
}

// ShadowStyle holds the shadow parameters a Context applies to every
// fill/stroke/image draw, mirroring the Canvas2D shadow* properties.
type ShadowStyle struct {
	OffsetX, OffsetY float64
	Blur             float64
	Color            RGBA
}

// Context is the stateful drawing orchestrator (spec.md §5): it owns a
// Surface, a current Path, and the full paint/transform/clip state,
// wiring together Flatten, internal/raster, internal/stroke,
// internal/clip, internal/blend, and internal/shadow for every drawing
// operation. Grounded on gogpu-gg/context.go's Context struct and its
// family of context_*.go files, generalized to a single compositing
// target (no GPU/layer-stack/text machinery, all explicit Non-goals).
type Context struct {
	surface *Surface
	path    *Path

	state     drawingState
	stack     []drawingState
	clipStack *clip.Stack

	tolerance float64
	logger    *slog.Logger
}

// NewContext creates a drawing context over a freshly allocated
// transparent Surface of the given dimensions.
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	surf, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	return newContext(surf, opts...)
}

// NewContextForSurface creates a drawing context over an existing
// Surface, matching gogpu-gg's NewContextForImage pattern but against
// this repo's own Surface type rather than an arbitrary image.Image.
func NewContextForSurface(surf *Surface, opts ...ContextOption) (*Context, error) {
	if surf == nil {
		return nil, ErrInvalidDimensions
	}
	return newContext(surf, opts...)
}

func newContext(surf *Surface, opts ...ContextOption) (*Context, error) {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = Logger()
	}
	return &Context{
		surface: surf,
		path:    NewPath(),
		state: drawingState{
			matrix:      Identity(),
			fillBrush:   Solid(Black),
			strokeBrush: Solid(Black),
			strokeStyle: DefaultStrokeStyle(),
			fillRule:    FillRuleNonZero,
			globalAlpha: 1,
			compositeOp: CompositeSourceOver,
		},
		clipStack: clip.NewStack(clip.Rect{MinX: 0, MinY: 0, MaxX: surf.Width(), MaxY: surf.Height()}),
		tolerance: o.flattenTolerance,
		logger:    logger,
	}, nil
}

// Surface returns the Context's backing pixel buffer.
func (c *Context) Surface() *Surface { return c.surface }

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.surface.Width() }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.surface.Height() }

// EncodePNG writes the current surface contents to w as a PNG.
func (c *Context) EncodePNG(w io.Writer) error { return c.surface.EncodePNG(w) }

// SetFillBrush sets the brush used by Fill operations.
func (c *Context) SetFillBrush(b Brush) { c.state.fillBrush = b }

// SetStrokeBrush sets the brush used by Stroke operations.
func (c *Context) SetStrokeBrush(b Brush) { c.state.strokeBrush = b }

// FillBrush returns the current fill brush.
func (c *Context) FillBrush() Brush { return c.state.fillBrush }

// StrokeBrush returns the current stroke brush.
func (c *Context) StrokeBrush() Brush { return c.state.strokeBrush }

// SetStrokeStyle replaces the current stroke style wholesale.
func (c *Context) SetStrokeStyle(s StrokeStyle) { c.state.strokeStyle = s }

// StrokeStyle returns the current stroke style.
func (c *Context) StrokeStyle() StrokeStyle { return c.state.strokeStyle }

// SetLineWidth sets the stroke width.
func (c *Context) SetLineWidth(w float64) { c.state.strokeStyle.Width = w }

// SetLineCap sets the stroke's line cap.
func (c *Context) SetLineCap(cap LineCap) { c.state.strokeStyle.Cap = cap }

// SetLineJoin sets the stroke's line join.
func (c *Context) SetLineJoin(join LineJoin) { c.state.strokeStyle.Join = join }

// SetMiterLimit sets the stroke's miter limit.
func (c *Context) SetMiterLimit(limit float64) { c.state.strokeStyle.MiterLimit = limit }

// SetFillRule sets the winding rule Fill uses.
func (c *Context) SetFillRule(rule FillRule) { c.state.fillRule = rule }

// FillRule returns the current winding rule.
func (c *Context) FillRule() FillRule { return c.state.fillRule }

// SetDash sets the stroke's dash pattern; passing no lengths clears it.
func (c *Context) SetDash(lengths ...float64) error {
	if len(lengths) == 0 {
		c.state.strokeStyle.Dash = nil
		return nil
	}
	offset := 0.0
	if c.state.strokeStyle.Dash != nil {
		offset = c.state.strokeStyle.Dash.Offset
	}
	d, err := NewDashPattern(lengths, offset)
	if err != nil {
		return err
	}
	c.state.strokeStyle.Dash = d
	return nil
}

// SetDashOffset sets the starting offset into the dash pattern, if any.
func (c *Context) SetDashOffset(offset float64) {
	if c.state.strokeStyle.Dash != nil {
		c.state.strokeStyle.Dash.Offset = offset
	}
}

// SetGlobalAlpha sets the global alpha multiplier applied to every
// subsequent draw operation (spec.md's globalAlpha).
func (c *Context) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.state.globalAlpha = a
}

// GlobalAlpha returns the current global alpha multiplier.
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetCompositeOp sets the Porter-Duff operator used by subsequent draws.
func (c *Context) SetCompositeOp(op CompositeOp) { c.state.compositeOp = op }

// CompositeOp returns the current compositing operator.
func (c *Context) CompositeOp() CompositeOp { return c.state.compositeOp }

// SetShadow sets the shadow style applied by subsequent draws.
func (c *Context) SetShadow(s ShadowStyle) { c.state.shadow = s }

// Shadow returns the current shadow style.
func (c *Context) Shadow() ShadowStyle { return c.state.shadow }

// Push saves the complete current drawing state (transform, brushes,
// stroke style, fill rule, global alpha, composite op, shadow, and clip
// depth) onto an internal stack.
func (c *Context) Push() {
	snapshot := c.state
	snapshot.strokeStyle = snapshot.strokeStyle.Clone()
	snapshot.clipDepth = c.clipStack.Depth()
	c.stack = append(c.stack, snapshot)
}

// Pop restores the most recently pushed drawing state. No-op if the
// stack is empty.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	snapshot := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	target := snapshot.clipDepth
	for c.clipStack.Depth() > target {
		c.clipStack.Pop()
	}
	c.state = snapshot
}

// Identity resets the transform to the identity matrix.
func (c *Context) Identity() { c.state.matrix = Identity() }

// Transform returns a copy of the current transform matrix.
func (c *Context) Transform() Matrix { return c.state.matrix }

// SetTransform replaces the current transform matrix wholesale.
func (c *Context) SetTransform(m Matrix) { c.state.matrix = m }

// Translate composes a translation onto the current transform.
func (c *Context) Translate(x, y float64) { c.state.matrix = c.state.matrix.Multiply(Translate(x, y)) }

// Scale composes a scale onto the current transform.
func (c *Context) Scale(x, y float64) { c.state.matrix = c.state.matrix.Multiply(Scale(x, y)) }

// Rotate composes a rotation (radians) onto the current transform.
func (c *Context) Rotate(angle float64) { c.state.matrix = c.state.matrix.Multiply(Rotate(angle)) }

// RotateAbout rotates by angle radians about the point (x, y).
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// ApplyMatrix composes an arbitrary matrix onto the current transform.
func (c *Context) ApplyMatrix(m Matrix) { c.state.matrix = c.state.matrix.Multiply(m) }
