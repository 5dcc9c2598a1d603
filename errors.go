package canvas2d

import "errors"

// Sentinel errors returned by construction and validation APIs. Runtime
// geometry/state problems encountered mid-draw never surface as errors;
// they degrade to a no-op per the error-handling policy in SPEC_FULL.md §7.
var (
	// ErrInvalidDimensions is returned when a Surface is constructed with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("canvas2d: invalid surface dimensions")

	// ErrSurfaceTooLarge is returned when width*height would overflow the
	// pixel buffer's addressable size.
	ErrSurfaceTooLarge = errors.New("canvas2d: surface dimensions too large")

	// ErrNonInvertible is returned by Matrix.Invert when the matrix has no
	// inverse (zero or near-zero determinant).
	ErrNonInvertible = errors.New("canvas2d: matrix is not invertible")

	// ErrInvalidDash is returned when a dash array contains a negative
	// value.
	ErrInvalidDash = errors.New("canvas2d: invalid dash pattern")

	// ErrInvalidStop describes a gradient color stop offset outside [0, 1].
	// The gradient constructors in this package do not validate stop
	// offsets and never return it.
	ErrInvalidStop = errors.New("canvas2d: invalid gradient stop offset")
)
