// SPDX-License-Identifier: MIT

package continuity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
)

// Defaults.
const (
	DefaultJumpCutMaxDelta  = 30.0
	DefaultAxisFlipMinDelta = 135.0
	DefaultMaxDisplacement  = 0.4
)

// DefaultMovementKeywords returns the verbs that justify a large character
// displacement between shots. Matching is by word prefix, so "walk" covers
// "walks" and "walking".
func DefaultMovementKeywords() []string {
	return []string{"walk", "run", "move", "enter", "exit", "jump", "drive", "fly", "chase", "fall", "turn", "cross"}
}

// Sentinel errors.
var (
	ErrNoShots         = errors.New("continuity: at least one shot is required")
	ErrBadAngle        = errors.New("continuity: angle threshold must be finite and in [0,180]")
	ErrBadDisplacement = errors.New("continuity: max displacement must be finite and > 0")
	ErrBadKeyword      = errors.New("continuity: movement keyword is empty")
)

// Option configures the validators and the report builder. Options a
// component does not use are ignored.
type Option func(*options)

type options struct {
	jumpCutMaxDelta  float64
	axisFlipMinDelta float64
	maxDisplacement  float64
	keywords         []string
	logger           zerolog.Logger
}

func defaultOptions() options {
	return options{
		jumpCutMaxDelta:  DefaultJumpCutMaxDelta,
		axisFlipMinDelta: DefaultAxisFlipMinDelta,
		maxDisplacement:  DefaultMaxDisplacement,
		keywords:         DefaultMovementKeywords(),
		logger:           zerolog.Nop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) validate() error {
	for _, v := range [...]float64{o.jumpCutMaxDelta, o.axisFlipMinDelta} {
		if !core.IsFinite(v) || v < 0 || v > 180 {
			return fmt.Errorf("%w: %v", ErrBadAngle, v)
		}
	}
	if !core.IsFinite(o.maxDisplacement) || o.maxDisplacement <= 0 {
		return fmt.Errorf("%w: %v", ErrBadDisplacement, o.maxDisplacement)
	}
	kw := make([]string, len(o.keywords))
	for i, k := range o.keywords {
		kw[i] = normalize(k)
		if kw[i] == "" {
			return fmt.Errorf("%w: index %d", ErrBadKeyword, i)
		}
	}
	o.keywords = kw
	return nil
}

// WithJumpCutMaxDelta sets the angle change below which a cut is a jump cut.
func WithJumpCutMaxDelta(deg float64) Option { return func(o *options) { o.jumpCutMaxDelta = deg } }

// WithAxisFlipMinDelta sets the angle change above which character order is
// checked for a 180-degree rule break.
func WithAxisFlipMinDelta(deg float64) Option { return func(o *options) { o.axisFlipMinDelta = deg } }

// WithMaxDisplacement sets the largest unexplained character move.
func WithMaxDisplacement(d float64) Option { return func(o *options) { o.maxDisplacement = d } }

// WithMovementKeywords replaces the verbs that justify character movement.
func WithMovementKeywords(words ...string) Option {
	return func(o *options) { o.keywords = append([]string(nil), words...) }
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// normalize trims and case-folds s for comparison.
func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
