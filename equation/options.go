// Package equation: functional options for Normalize.
package equation

import "log/slog"

// DefaultStrict keeps Normalize lenient: unclassifiable terms are dropped
// and reported as warnings instead of failing the parse.
const DefaultStrict = false

// Option configures Normalize.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	strict bool         // DefaultStrict
	logger *slog.Logger // receives one WARN record per dropped term
}

// WithStrict turns every soft failure into a *ParseError wrapping ErrAmbiguousTerm.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

// WithLogger routes warnings about dropped terms to l.
// Passing nil keeps the default discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		strict: DefaultStrict,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
