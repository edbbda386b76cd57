// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/continuity"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/motion"
	"github.com/katalvlaran/shotqa/quality"
	"github.com/katalvlaran/shotqa/sharpness"
	"github.com/katalvlaran/shotqa/visual"
)

// Validate constructs every component from c and reports the first failure,
// prefixed with its section name.
func (c *Config) Validate() error {
	log := zerolog.Nop()
	if _, err := c.SharpnessOptions(log); err != nil {
		return fmt.Errorf("config: sharpness: %w", err)
	}
	if _, err := motion.New(c.MotionOptions(log)...); err != nil {
		return fmt.Errorf("config: motion: %w", err)
	}
	if _, err := visual.New(c.VisualOptions(log)...); err != nil {
		return fmt.Errorf("config: visual: %w", err)
	}
	if _, err := c.Aggregator(log); err != nil {
		return fmt.Errorf("config: quality: %w", err)
	}
	if _, err := continuity.NewReportBuilder(c.ContinuityOptions(log)...); err != nil {
		return fmt.Errorf("config: continuity: %w", err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Batch.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log: %w", err)
	}
	return nil
}

// Logger builds the configured logger; see logging.New for writers.
func (c *Config) Logger(writers ...io.Writer) (zerolog.Logger, error) {
	return logging.New(c.Log.Level, writers...)
}

// SharpnessOptions converts the sharpness section.
func (c *Config) SharpnessOptions(log zerolog.Logger) ([]sharpness.Option, error) {
	kind, err := sharpness.ParseKind(c.Sharpness.Backend)
	if err != nil {
		return nil, err
	}
	return []sharpness.Option{
		sharpness.WithKind(kind),
		sharpness.WithMaxDimension(c.Sharpness.MaxDimension),
		sharpness.WithLogger(log),
	}, nil
}

// MotionOptions converts the motion section.
func (c *Config) MotionOptions(log zerolog.Logger) []motion.Option {
	return []motion.Option{
		motion.WithThresholds(c.Motion.Thresholds),
		motion.WithFPS(c.Motion.FPS),
		motion.WithFlickerRatio(c.Motion.FlickerRatio),
		motion.WithLogger(log),
	}
}

// VisualOptions converts the visual section.
func (c *Config) VisualOptions(log zerolog.Logger) []visual.Option {
	v := c.Visual
	return []visual.Option{
		visual.WithGrid(v.Rows, v.Cols),
		visual.WithRegionThreshold(v.RegionThreshold),
		visual.WithDisappearanceRatio(v.DisappearanceRatio),
		visual.WithMinTexture(v.MinTexture),
		visual.WithMaxFlaggedFraction(v.MaxFlaggedFraction),
		visual.WithFPS(v.FPS),
		visual.WithLogger(log),
	}
}

// ContinuityOptions converts the continuity section.
func (c *Config) ContinuityOptions(log zerolog.Logger) []continuity.Option {
	k := c.Continuity
	return []continuity.Option{
		continuity.WithJumpCutMaxDelta(k.JumpCutMaxDelta),
		continuity.WithAxisFlipMinDelta(k.AxisFlipMinDelta),
		continuity.WithMaxDisplacement(k.MaxDisplacement),
		continuity.WithMovementKeywords(k.MovementKeywords...),
		continuity.WithLogger(log),
	}
}

// Aggregator builds a quality.Aggregator wired to analyzers configured from
// the sharpness, motion and visual sections.
func (c *Config) Aggregator(log zerolog.Logger) (*quality.Aggregator, error) {
	sOpts, err := c.SharpnessOptions(log)
	if err != nil {
		return nil, err
	}
	md, err := motion.New(c.MotionOptions(log)...)
	if err != nil {
		return nil, err
	}
	vd, err := visual.New(c.VisualOptions(log)...)
	if err != nil {
		return nil, err
	}
	q := c.Quality
	return quality.New(
		quality.WithWeights(q.Weights),
		quality.WithPenalties(q.Penalties),
		quality.WithSharpnessScale(q.SharpnessScale),
		quality.WithMotionScale(q.MotionScale),
		quality.WithSharpness(sharpness.NewAnalyzer(sOpts...)),
		quality.WithMotion(md),
		quality.WithVisual(vd),
		quality.WithLogger(log),
	)
}

// ReportBuilder builds a continuity.ReportBuilder from the continuity section.
func (c *Config) ReportBuilder(log zerolog.Logger) (*continuity.ReportBuilder, error) {
	return continuity.NewReportBuilder(c.ContinuityOptions(log)...)
}
