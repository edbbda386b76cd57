// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/motion"
	"github.com/katalvlaran/shotqa/sharpness"
	"github.com/katalvlaran/shotqa/shot"
	"github.com/katalvlaran/shotqa/visual"
)

// Bundle is the input of Score: the frames of one shot plus the two scores
// supplied by collaborators.
type Bundle struct {
	Frames          []*frame.Frame
	AudioScore      float64
	ContinuityScore float64
}

// Assessment is the full per-shot verdict produced by Assess.
type Assessment struct {
	ShotID    string            `json:"shot_id"`
	Score     core.QualityScore `json:"quality_score"`
	Anomalies []core.Anomaly    `json:"anomalies"`
}

// Aggregator combines the frame analyzers into a QualityScore. It holds only
// configuration and is safe for concurrent use.
type Aggregator struct {
	weights        Weights
	penalties      Penalties
	sharpnessScale float64
	motionScale    float64
	sharpness      *sharpness.Analyzer
	motion         *motion.Detector
	visual         *visual.Detector
	logger         zerolog.Logger
}

// New validates opts and builds an Aggregator. Analyzers not supplied through
// options are built with their defaults.
func New(opts ...Option) (*Aggregator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.weights.Validate(); err != nil {
		return nil, err
	}
	if err := o.penalties.Validate(); err != nil {
		return nil, err
	}
	if !core.IsFinite(o.sharpnessScale) || o.sharpnessScale <= 0 {
		return nil, fmt.Errorf("%w: sharpness scale %v", ErrBadScale, o.sharpnessScale)
	}
	if !core.IsFinite(o.motionScale) || o.motionScale <= 0 {
		return nil, fmt.Errorf("%w: motion scale %v", ErrBadScale, o.motionScale)
	}

	var err error
	if o.sharpness == nil {
		o.sharpness = sharpness.NewAnalyzer(sharpness.WithLogger(o.logger))
	}
	if o.motion == nil {
		if o.motion, err = motion.New(motion.WithLogger(o.logger)); err != nil {
			return nil, err
		}
	}
	if o.visual == nil {
		if o.visual, err = visual.New(visual.WithLogger(o.logger)); err != nil {
			return nil, err
		}
	}

	return &Aggregator{
		weights:        o.weights,
		penalties:      o.penalties,
		sharpnessScale: o.sharpnessScale,
		motionScale:    o.motionScale,
		sharpness:      o.sharpness,
		motion:         o.motion,
		visual:         o.visual,
		logger:         logging.WithComponent(o.logger, "quality"),
	}, nil
}

// Weights returns the configured weights.
func (a *Aggregator) Weights() Weights { return a.weights }

// Score computes the QualityScore of one bundle.
// Stage 1 (Validate): supplied scores in [0,100], frame sequence well formed.
// Stage 2 (Measure): mean sharpness, frame-delta profile, motion anomalies.
// Stage 3 (Combine): saturate, penalize, weight and clamp.
func (a *Aggregator) Score(b Bundle) (core.QualityScore, error) {
	if err := core.ValidateScore("audio_score", b.AudioScore); err != nil {
		return core.QualityScore{}, err
	}
	if err := core.ValidateScore("continuity_score", b.ContinuityScore); err != nil {
		return core.QualityScore{}, err
	}
	score, _, _, err := a.evaluate(b.Frames, b.AudioScore, b.ContinuityScore, 0)
	return score, err
}

// Assess scores a shot and reports every motion and visual anomaly found in
// its frames, ordered by frame number.
func (a *Aggregator) Assess(s *shot.Shot) (Assessment, error) {
	if s == nil {
		return Assessment{}, core.Invalid("shot", shot.ErrNilShot)
	}
	score, anomalies, planes, err := a.evaluate(s.Frames(), s.AudioScore(), s.ContinuityScore(), s.Timestamp())
	if err != nil {
		return Assessment{}, err
	}
	visualFound, err := a.visual.DetectPlanes(planes, s.Timestamp())
	if err != nil {
		return Assessment{}, err
	}
	anomalies = append(anomalies, visualFound...)
	sort.SliceStable(anomalies, func(i, j int) bool { return anomalies[i].FrameNumber < anomalies[j].FrameNumber })

	a.logger.Debug().
		Str("shot", s.ID()).
		Float64("overall", score.Overall).
		Int("anomalies", len(anomalies)).
		Msg("shot assessed")

	return Assessment{ShotID: s.ID(), Score: score, Anomalies: anomalies}, nil
}

// evaluate returns the score, the motion anomalies behind its penalty and
// the luminance planes it measured, each computed once per frame.
func (a *Aggregator) evaluate(frames []*frame.Frame, audio, cont, base float64) (core.QualityScore, []core.Anomaly, []*frame.Plane, error) {
	planes, err := frame.Lumas("frames", frames)
	if err != nil {
		return core.QualityScore{}, nil, nil, err
	}
	meanSharp, err := a.sharpness.Mean(frames)
	if err != nil {
		return core.QualityScore{}, nil, nil, err
	}
	m, err := a.motion.Measure(planes, base)
	if err != nil {
		return core.QualityScore{}, nil, nil, err
	}

	q := core.QualityScore{Audio: audio, Continuity: cont}
	if len(frames) > 0 {
		q.Sharpness = a.SharpnessScore(meanSharp)
	}
	if len(m.Profile) > 0 {
		q.Motion = a.MotionScore(stat.Mean(m.Profile, nil), m.Anomalies)
	}
	q.Overall = core.ClampScore(a.weights.Combine(q.Sharpness, q.Motion, q.Audio, q.Continuity))

	return q, m.Anomalies, planes, nil
}

// SharpnessScore maps a mean Laplacian variance onto [0,100].
func (a *Aggregator) SharpnessScore(meanVariance float64) float64 {
	return core.ClampScore(100 * (1 - math.Exp(-meanVariance/a.sharpnessScale)))
}

// MotionScore maps a mean frame delta onto [0,100] and subtracts one penalty
// per anomaly.
func (a *Aggregator) MotionScore(meanDelta float64, anomalies []core.Anomaly) float64 {
	v := 100 * math.Exp(-meanDelta/a.motionScale)
	for _, an := range anomalies {
		v -= a.penalties.For(an.Severity)
	}
	return core.ClampScore(v)
}
