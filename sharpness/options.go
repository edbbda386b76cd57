// SPDX-License-Identifier: MIT

package sharpness

import "github.com/rs/zerolog"

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultKind is the backend used when none is configured.
	DefaultKind = KindScalar

	// DefaultMaxDimension disables downscaling.
	DefaultMaxDimension uint = 0
)

const panicNilBackend = "sharpness: WithBackend: backend must not be nil"

// Option configures an Analyzer.
type Option func(*options)

type options struct {
	backend Backend
	maxDim  uint
	logger  zerolog.Logger
}

func defaultOptions() options {
	return options{
		backend: BackendFor(DefaultKind),
		maxDim:  DefaultMaxDimension,
		logger:  zerolog.Nop(),
	}
}

// WithBackend installs a custom Backend. It panics on nil (programmer error).
func WithBackend(b Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}
	return func(o *options) { o.backend = b }
}

// WithKind selects one of the built-in backends.
func WithKind(k Kind) Option {
	return func(o *options) { o.backend = BackendFor(k) }
}

// WithMaxDimension downscales frames whose width or height exceeds n before
// convolution. Zero disables downscaling.
func WithMaxDimension(n uint) Option {
	return func(o *options) { o.maxDim = n }
}

// WithLogger attaches a logger; debug events carry one line per frame.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
