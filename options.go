package canvas2d

import "log/slog"

// ContextOption configures a Context at construction time, following
// the teacher's functional-options pattern (gogpu-gg's ContextOption/
// WithRenderer family in options.go).
type ContextOption func(*contextOptions)

type contextOptions struct {
	flattenTolerance float64
	logger           *slog.Logger
}

func defaultContextOptions() contextOptions {
	return contextOptions{flattenTolerance: 0}
}

// WithFlattenTolerance overrides the default curve-flattening tolerance
// (device units) used by Fill/Stroke operations on this Context.
func WithFlattenTolerance(tolerance float64) ContextOption {
	return func(o *contextOptions) { o.flattenTolerance = tolerance }
}

// WithLogger attaches a logger to this Context, overriding the package
// default (see logger.go).
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) { o.logger = l }
}
