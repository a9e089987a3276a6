package wordml

import "log/slog"

// convertOptions holds configuration for a Conversion.
type convertOptions struct {
	bulletFallback string
	maxDepth       int
	logger         *slog.Logger
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() convertOptions {
	return convertOptions{
		bulletFallback: "•",
		maxDepth:       0,   // 0 means the styles package default
		logger:         nil, // warnings are accumulated, not logged
	}
}

// Option configures a Conversion.
type Option func(*convertOptions)

// WithLogger sets a logger that receives every warning at Warn level as
// it is recorded, in addition to warning accumulation.
func WithLogger(logger *slog.Logger) Option {
	return func(o *convertOptions) {
		o.logger = logger
	}
}

// WithBulletFallback replaces the glyph returned for list paragraphs
// whose numbering definition cannot be found (default: "•").
func WithBulletFallback(glyph string) Option {
	return func(o *convertOptions) {
		if glyph != "" {
			o.bulletFallback = glyph
		}
	}
}

// WithMaxInheritanceDepth bounds the style inheritance chain length
// (default: 9).
func WithMaxInheritanceDepth(depth int) Option {
	return func(o *convertOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
