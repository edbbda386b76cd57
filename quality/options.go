// SPDX-License-Identifier: MIT

package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/motion"
	"github.com/katalvlaran/shotqa/sharpness"
	"github.com/katalvlaran/shotqa/visual"
)

// Defaults.
const (
	DefaultSharpnessScale = 100.0
	DefaultMotionScale    = 40.0

	// WeightTolerance bounds |Σweights − 1|.
	WeightTolerance = 1e-9
)

// Sentinel errors returned by New.
var (
	ErrBadWeights = errors.New("quality: weights must be finite, >= 0 and sum to 1")
	ErrBadScale   = errors.New("quality: scale must be finite and > 0")
	ErrBadPenalty = errors.New("quality: penalties must be finite and >= 0")
)

// Weights are the coefficients of the overall score.
type Weights struct {
	Sharpness  float64 `yaml:"sharpness" json:"sharpness"`
	Motion     float64 `yaml:"motion" json:"motion"`
	Audio      float64 `yaml:"audio" json:"audio"`
	Continuity float64 `yaml:"continuity" json:"continuity"`
}

// DefaultWeights returns 0.3 / 0.25 / 0.25 / 0.2.
func DefaultWeights() Weights {
	return Weights{Sharpness: 0.3, Motion: 0.25, Audio: 0.25, Continuity: 0.2}
}

// Validate reports ErrBadWeights unless every weight is finite and
// non-negative and the sum is 1 within WeightTolerance.
func (w Weights) Validate() error {
	sum := 0.0
	for _, v := range [...]float64{w.Sharpness, w.Motion, w.Audio, w.Continuity} {
		if !core.IsFinite(v) || v < 0 {
			return fmt.Errorf("%w: %+v", ErrBadWeights, w)
		}
		sum += v
	}
	if math.Abs(sum-1) > WeightTolerance {
		return fmt.Errorf("%w: sum %v", ErrBadWeights, sum)
	}
	return nil
}

// Combine returns the weighted sum of the four sub-scores.
func (w Weights) Combine(sharp, mot, audio, cont float64) float64 {
	return w.Sharpness*sharp + w.Motion*mot + w.Audio*audio + w.Continuity*cont
}

// Penalties are subtracted from the motion sub-score per motion anomaly.
type Penalties struct {
	Low      float64 `yaml:"low" json:"low"`
	Medium   float64 `yaml:"medium" json:"medium"`
	High     float64 `yaml:"high" json:"high"`
	Critical float64 `yaml:"critical" json:"critical"`
}

// DefaultPenalties returns 5 / 10 / 20 / 30.
func DefaultPenalties() Penalties {
	return Penalties{Low: 5, Medium: 10, High: 20, Critical: 30}
}

// For returns the penalty of one anomaly of severity s.
func (p Penalties) For(s core.Severity) float64 {
	switch s {
	case core.SeverityLow:
		return p.Low
	case core.SeverityMedium:
		return p.Medium
	case core.SeverityHigh:
		return p.High
	case core.SeverityCritical:
		return p.Critical
	}
	return 0
}

// Validate reports ErrBadPenalty for negative or non-finite entries.
func (p Penalties) Validate() error {
	for _, v := range [...]float64{p.Low, p.Medium, p.High, p.Critical} {
		if !core.IsFinite(v) || v < 0 {
			return fmt.Errorf("%w: %+v", ErrBadPenalty, p)
		}
	}
	return nil
}

// Option configures an Aggregator.
type Option func(*options)

type options struct {
	weights        Weights
	penalties      Penalties
	sharpnessScale float64
	motionScale    float64
	sharpness      *sharpness.Analyzer
	motion         *motion.Detector
	visual         *visual.Detector
	logger         zerolog.Logger
}

func defaultOptions() options {
	return options{
		weights:        DefaultWeights(),
		penalties:      DefaultPenalties(),
		sharpnessScale: DefaultSharpnessScale,
		motionScale:    DefaultMotionScale,
		logger:         zerolog.Nop(),
	}
}

// WithWeights replaces the overall-score weights; New validates them.
func WithWeights(w Weights) Option { return func(o *options) { o.weights = w } }

// WithPenalties replaces the per-severity motion penalties.
func WithPenalties(p Penalties) Option { return func(o *options) { o.penalties = p } }

// WithSharpnessScale sets the Laplacian variance at which the sharpness
// sub-score reaches 100·(1−1/e).
func WithSharpnessScale(v float64) Option { return func(o *options) { o.sharpnessScale = v } }

// WithMotionScale sets the mean frame delta at which the unpenalized motion
// sub-score falls to 100/e.
func WithMotionScale(v float64) Option { return func(o *options) { o.motionScale = v } }

// WithSharpness supplies a configured sharpness analyzer. Nil keeps the default.
func WithSharpness(a *sharpness.Analyzer) Option { return func(o *options) { o.sharpness = a } }

// WithMotion supplies a configured motion detector. Nil keeps the default.
func WithMotion(d *motion.Detector) Option { return func(o *options) { o.motion = d } }

// WithVisual supplies a configured visual detector. Nil keeps the default.
func WithVisual(d *visual.Detector) Option { return func(o *options) { o.visual = d } }

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }
