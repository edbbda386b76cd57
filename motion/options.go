// SPDX-License-Identifier: MIT

package motion

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
)

// Defaults (single source of truth).
const (
	DefaultLow          = 15.0
	DefaultMedium       = 30.0
	DefaultHigh         = 50.0
	DefaultFPS          = 24.0
	DefaultFlickerRatio = 0.9
)

// Sentinel errors returned by New.
var (
	ErrBadThresholds   = errors.New("motion: thresholds must be finite and 0 < low < medium < high")
	ErrBadFPS          = errors.New("motion: fps must be finite and > 0")
	ErrBadFlickerRatio = errors.New("motion: flicker ratio must be in (0,1]")
)

// Thresholds is the severity ladder on mean absolute delta (0–255 scale).
type Thresholds struct {
	Low    float64 `yaml:"low" json:"low"`
	Medium float64 `yaml:"medium" json:"medium"`
	High   float64 `yaml:"high" json:"high"`
}

// DefaultThresholds returns the documented ladder 15 / 30 / 50.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: DefaultLow, Medium: DefaultMedium, High: DefaultHigh}
}

// Validate reports ErrBadThresholds unless 0 < Low < Medium < High.
func (t Thresholds) Validate() error {
	if !core.IsFinite(t.Low) || !core.IsFinite(t.Medium) || !core.IsFinite(t.High) ||
		t.Low <= 0 || t.Medium <= t.Low || t.High <= t.Medium {
		return fmt.Errorf("%w: %+v", ErrBadThresholds, t)
	}
	return nil
}

// Classify returns the highest tier v reaches and that tier's threshold.
// ok is false when v is below Low.
func (t Thresholds) Classify(v float64) (sev core.Severity, threshold float64, ok bool) {
	switch {
	case v >= t.High:
		return core.SeverityHigh, t.High, true
	case v >= t.Medium:
		return core.SeverityMedium, t.Medium, true
	case v >= t.Low:
		return core.SeverityLow, t.Low, true
	default:
		return 0, 0, false
	}
}

// Option configures a Detector.
type Option func(*options)

type options struct {
	thresholds   Thresholds
	fps          float64
	flickerRatio float64
	logger       zerolog.Logger
}

func defaultOptions() options {
	return options{
		thresholds:   DefaultThresholds(),
		fps:          DefaultFPS,
		flickerRatio: DefaultFlickerRatio,
		logger:       zerolog.Nop(),
	}
}

// WithThresholds replaces the severity ladder; New validates it.
func WithThresholds(t Thresholds) Option { return func(o *options) { o.thresholds = t } }

// WithFPS sets the frame rate used to timestamp anomalies.
func WithFPS(fps float64) Option { return func(o *options) { o.fps = fps } }

// WithFlickerRatio sets the share of the delta a global brightness shift must
// explain for the pair to be typed lighting_flicker.
func WithFlickerRatio(r float64) Option { return func(o *options) { o.flickerRatio = r } }

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }
