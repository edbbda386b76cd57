// SPDX-License-Identifier: MIT

package motion

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/shot"
)

// Detector scans consecutive frames for abrupt changes. It is immutable after
// New and safe for concurrent use.
type Detector struct {
	thresholds   Thresholds
	fps          float64
	flickerRatio float64
	logger       zerolog.Logger
}

// New validates opts and builds a Detector.
func New(opts ...Option) (*Detector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.thresholds.Validate(); err != nil {
		return nil, err
	}
	if !core.IsFinite(o.fps) || o.fps <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadFPS, o.fps)
	}
	if !core.IsFinite(o.flickerRatio) || o.flickerRatio <= 0 || o.flickerRatio > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadFlickerRatio, o.flickerRatio)
	}

	return &Detector{
		thresholds:   o.thresholds,
		fps:          o.fps,
		flickerRatio: o.flickerRatio,
		logger:       logging.WithComponent(o.logger, "motion"),
	}, nil
}

// Thresholds returns the configured ladder.
func (d *Detector) Thresholds() Thresholds { return d.thresholds }

// Measurement is the outcome of one pass over a sequence of luminance planes.
type Measurement struct {
	// Profile holds the mean absolute delta of every consecutive pair;
	// element k describes frames k and k+1.
	Profile []float64
	// Anomalies lists the pairs that reached a threshold, in frame order.
	Anomalies []core.Anomaly
}

// Measure computes the motion profile and the anomalies of planes in a single
// pass; anomaly timestamps are base + frame_number/fps.
// Stage 1 (Validate): base finite and >= 0, planes non-nil and equally shaped.
// Stage 2 (Scan): one delta and one mean shift per consecutive pair.
// Stage 3 (Classify): grade each delta against the threshold ladder.
func (d *Detector) Measure(planes []*frame.Plane, base float64) (Measurement, error) {
	if !core.IsFinite(base) || base < 0 {
		return Measurement{}, core.Invalidf("base", "%w: %v", shot.ErrBadTimestamp, base)
	}
	if err := frame.ValidatePlanes("frames", planes); err != nil {
		return Measurement{}, err
	}

	m := Measurement{Profile: []float64{}, Anomalies: []core.Anomaly{}}
	for n := 1; n < len(planes); n++ {
		prev, cur := planes[n-1], planes[n]
		delta, err := frame.MeanAbsDiff(prev, cur)
		if err != nil {
			return Measurement{}, err
		}
		m.Profile = append(m.Profile, delta)

		sev, threshold, ok := d.thresholds.Classify(delta)
		if !ok {
			continue
		}
		typ := core.AnomalyAbruptMotion
		if math.Abs(cur.Mean()-prev.Mean()) >= d.flickerRatio*delta {
			typ = core.AnomalyLightingFlicker
		}
		m.Anomalies = append(m.Anomalies, core.Anomaly{
			Type:     typ,
			Severity: sev,
			Description: fmt.Sprintf("mean luminance delta %.2f between frames %d and %d reaches %s threshold %.2f",
				delta, n-1, n, sev, threshold),
			Timestamp:      base + float64(n)/d.fps,
			FrameNumber:    n,
			MetricValue:    delta,
			ThresholdValue: threshold,
		})
		d.logger.Debug().
			Int("frame", n).
			Str("type", typ.String()).
			Str("severity", sev.String()).
			Float64("delta", delta).
			Msg("motion anomaly")
	}

	return m, nil
}

// Profile returns the mean absolute luminance delta of every consecutive pair;
// element k describes frames k and k+1.
func (d *Detector) Profile(frames []*frame.Frame) ([]float64, error) {
	planes, err := frame.Lumas("frames", frames)
	if err != nil {
		return nil, err
	}
	m, err := d.Measure(planes, 0)
	if err != nil {
		return nil, err
	}

	return m.Profile, nil
}

// Detect scans frames with timestamps starting at 0.
func (d *Detector) Detect(frames []*frame.Frame) ([]core.Anomaly, error) {
	return d.DetectAt(frames, 0)
}

// DetectShot scans a shot's frames using the shot timestamp as base.
func (d *Detector) DetectShot(s *shot.Shot) ([]core.Anomaly, error) {
	if s == nil {
		return nil, core.Invalid("shot", shot.ErrNilShot)
	}
	return d.DetectAt(s.Frames(), s.Timestamp())
}

// DetectAt scans frames; anomaly timestamps are base + frame_number/fps.
// base must be finite and >= 0.
func (d *Detector) DetectAt(frames []*frame.Frame, base float64) ([]core.Anomaly, error) {
	planes, err := frame.Lumas("frames", frames)
	if err != nil {
		return nil, err
	}
	m, err := d.Measure(planes, base)
	if err != nil {
		return nil, err
	}

	return m.Anomalies, nil
}
