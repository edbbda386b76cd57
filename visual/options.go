// SPDX-License-Identifier: MIT

package visual

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
)

// Defaults (single source of truth).
const (
	DefaultRows               = 4
	DefaultCols               = 4
	DefaultRegionThreshold    = 25.0
	DefaultDisappearanceRatio = 0.35
	DefaultMinTexture         = 8.0
	DefaultMaxFlaggedFraction = 0.5
	DefaultFPS                = 24.0
)

// Sentinel errors returned by New.
var (
	ErrBadGrid      = errors.New("visual: grid rows and cols must be >= 1")
	ErrBadThreshold = errors.New("visual: thresholds must be finite and > 0")
	ErrBadRatio     = errors.New("visual: ratio must be in (0,1]")
	ErrBadFPS       = errors.New("visual: fps must be finite and > 0")
)

// Option configures a Detector.
type Option func(*options)

type options struct {
	rows, cols         int
	regionThreshold    float64
	disappearanceRatio float64
	minTexture         float64
	maxFlaggedFraction float64
	fps                float64
	logger             zerolog.Logger
}

func defaultOptions() options {
	return options{
		rows:               DefaultRows,
		cols:               DefaultCols,
		regionThreshold:    DefaultRegionThreshold,
		disappearanceRatio: DefaultDisappearanceRatio,
		minTexture:         DefaultMinTexture,
		maxFlaggedFraction: DefaultMaxFlaggedFraction,
		fps:                DefaultFPS,
		logger:             zerolog.Nop(),
	}
}

func (o options) validate() error {
	if o.rows < 1 || o.cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadGrid, o.rows, o.cols)
	}
	if !positive(o.regionThreshold) {
		return fmt.Errorf("%w: region threshold %v", ErrBadThreshold, o.regionThreshold)
	}
	if !positive(o.minTexture) {
		return fmt.Errorf("%w: min texture %v", ErrBadThreshold, o.minTexture)
	}
	if !unitRatio(o.disappearanceRatio) {
		return fmt.Errorf("%w: disappearance ratio %v", ErrBadRatio, o.disappearanceRatio)
	}
	if !unitRatio(o.maxFlaggedFraction) {
		return fmt.Errorf("%w: max flagged fraction %v", ErrBadRatio, o.maxFlaggedFraction)
	}
	if !positive(o.fps) {
		return fmt.Errorf("%w: %v", ErrBadFPS, o.fps)
	}
	return nil
}

func positive(v float64) bool  { return core.IsFinite(v) && v > 0 }
func unitRatio(v float64) bool { return core.IsFinite(v) && v > 0 && v <= 1 }

// WithGrid sets the analysis grid. Frames smaller than the grid use one
// region per pixel along the short side.
func WithGrid(rows, cols int) Option {
	return func(o *options) { o.rows, o.cols = rows, cols }
}

// WithRegionThreshold sets the residual (0–255 scale) a region must reach.
func WithRegionThreshold(v float64) Option { return func(o *options) { o.regionThreshold = v } }

// WithDisappearanceRatio sets how far a region's std must fall to count as vanished.
func WithDisappearanceRatio(v float64) Option {
	return func(o *options) { o.disappearanceRatio = v }
}

// WithMinTexture sets the std a region needs before it can disappear.
func WithMinTexture(v float64) Option { return func(o *options) { o.minTexture = v } }

// WithMaxFlaggedFraction sets the share of regions above which a pair is
// treated as global motion.
func WithMaxFlaggedFraction(v float64) Option {
	return func(o *options) { o.maxFlaggedFraction = v }
}

// WithFPS sets the frame rate used to timestamp anomalies.
func WithFPS(fps float64) Option { return func(o *options) { o.fps = fps } }

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }
