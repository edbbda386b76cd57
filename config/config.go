// SPDX-License-Identifier: MIT

// Package config loads every shotqa threshold, weight and limit from YAML and
// converts them into component options.
//
// Load and Parse start from Default, so a file only lists what it changes.
// Unknown keys are rejected. Validate builds each component once, so a
// Config that validates is guaranteed to construct.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shotqa/continuity"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/motion"
	"github.com/katalvlaran/shotqa/quality"
	"github.com/katalvlaran/shotqa/sharpness"
	"github.com/katalvlaran/shotqa/visual"
)

// DefaultWorkers is the default batch pool size.
const DefaultWorkers = 4

// ErrBadWorkers indicates a batch pool size below 1.
var ErrBadWorkers = errors.New("config: batch workers must be >= 1")

// Config holds every tunable of the library.
type Config struct {
	Sharpness  SharpnessConfig  `yaml:"sharpness"`
	Motion     MotionConfig     `yaml:"motion"`
	Visual     VisualConfig     `yaml:"visual"`
	Quality    QualityConfig    `yaml:"quality"`
	Continuity ContinuityConfig `yaml:"continuity"`
	Batch      BatchConfig      `yaml:"batch"`
	Log        LogConfig        `yaml:"log"`
}

// SharpnessConfig selects the Laplacian backend and optional downscale bound.
type SharpnessConfig struct {
	Backend      string `yaml:"backend"`
	MaxDimension uint   `yaml:"max_dimension"`
}

// MotionConfig is the frame-difference ladder.
type MotionConfig struct {
	motion.Thresholds `yaml:",inline"`
	FPS               float64 `yaml:"fps"`
	FlickerRatio      float64 `yaml:"flicker_ratio"`
}

// VisualConfig is the regional anomaly grid and its thresholds.
type VisualConfig struct {
	Rows               int     `yaml:"rows"`
	Cols               int     `yaml:"cols"`
	RegionThreshold    float64 `yaml:"region_threshold"`
	DisappearanceRatio float64 `yaml:"disappearance_ratio"`
	MinTexture         float64 `yaml:"min_texture"`
	MaxFlaggedFraction float64 `yaml:"max_flagged_fraction"`
	FPS                float64 `yaml:"fps"`
}

// QualityConfig is the score aggregation.
type QualityConfig struct {
	Weights        quality.Weights   `yaml:"weights"`
	Penalties      quality.Penalties `yaml:"penalties"`
	SharpnessScale float64           `yaml:"sharpness_scale"`
	MotionScale    float64           `yaml:"motion_scale"`
}

// ContinuityConfig is the spatial rule set.
type ContinuityConfig struct {
	JumpCutMaxDelta  float64  `yaml:"jump_cut_max_delta"`
	AxisFlipMinDelta float64  `yaml:"axis_flip_min_delta"`
	MaxDisplacement  float64  `yaml:"max_displacement"`
	MovementKeywords []string `yaml:"movement_keywords"`
}

// BatchConfig sizes the worker pool.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LogConfig sets the log level ("debug", "info", ...).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the documented defaults of every component.
func Default() *Config {
	return &Config{
		Sharpness: SharpnessConfig{Backend: sharpness.DefaultKind.String()},
		Motion: MotionConfig{
			Thresholds:   motion.DefaultThresholds(),
			FPS:          motion.DefaultFPS,
			FlickerRatio: motion.DefaultFlickerRatio,
		},
		Visual: VisualConfig{
			Rows:               visual.DefaultRows,
			Cols:               visual.DefaultCols,
			RegionThreshold:    visual.DefaultRegionThreshold,
			DisappearanceRatio: visual.DefaultDisappearanceRatio,
			MinTexture:         visual.DefaultMinTexture,
			MaxFlaggedFraction: visual.DefaultMaxFlaggedFraction,
			FPS:                visual.DefaultFPS,
		},
		Quality: QualityConfig{
			Weights:        quality.DefaultWeights(),
			Penalties:      quality.DefaultPenalties(),
			SharpnessScale: quality.DefaultSharpnessScale,
			MotionScale:    quality.DefaultMotionScale,
		},
		Continuity: ContinuityConfig{
			JumpCutMaxDelta:  continuity.DefaultJumpCutMaxDelta,
			AxisFlipMinDelta: continuity.DefaultAxisFlipMinDelta,
			MaxDisplacement:  continuity.DefaultMaxDisplacement,
			MovementKeywords: continuity.DefaultMovementKeywords(),
		},
		Batch: BatchConfig{Workers: DefaultWorkers},
		Log:   LogConfig{Level: logging.DefaultLevel},
	}
}

// Load reads and validates the YAML file at path. An empty path or a missing
// file yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
