// SPDX-License-Identifier: MIT

package motion_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/motion"
	"github.com/katalvlaran/shotqa/shot"
)

// flat builds a w×h gray frame of a single intensity.
func flat(t *testing.T, w, h, v int) *frame.Frame {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	f, err := frame.FromGray(rows)
	require.NoError(t, err)
	return f
}

// split builds a w×h gray frame with left and right halves at two intensities.
func split(t *testing.T, w, h, left, right int) *frame.Frame {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			if x < w/2 {
				rows[y][x] = left
			} else {
				rows[y][x] = right
			}
		}
	}
	f, err := frame.FromGray(rows)
	require.NoError(t, err)
	return f
}

func newDetector(t *testing.T, opts ...motion.Option) *motion.Detector {
	t.Helper()
	d, err := motion.New(opts...)
	require.NoError(t, err)
	return d
}

func TestDetect_Degenerate(t *testing.T) {
	d := newDetector(t)

	got, err := d.Detect(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = d.Detect([]*frame.Frame{flat(t, 4, 4, 10)})
	require.NoError(t, err)
	assert.Empty(t, got, "single frame yields no pairs")

	a := flat(t, 8, 8, 120)
	got, err = d.Detect([]*frame.Frame{a, a, a})
	require.NoError(t, err)
	assert.Empty(t, got, "identical frames yield no anomaly")

	e, _ := frame.FromGray(nil)
	got, err = d.Detect([]*frame.Frame{e, e})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDetect_AbruptMotion(t *testing.T) {
	d := newDetector(t)
	a := split(t, 8, 4, 0, 100)
	b := split(t, 8, 4, 100, 0)

	got, err := d.Detect([]*frame.Frame{a, a, b})
	require.NoError(t, err)
	require.Len(t, got, 1)

	an := got[0]
	assert.Equal(t, core.AnomalyAbruptMotion, an.Type)
	assert.Equal(t, core.SeverityHigh, an.Severity)
	assert.Equal(t, 2, an.FrameNumber, "frame number is the second frame of the pair")
	assert.InDelta(t, 100.0, an.MetricValue, 1e-9)
	assert.Equal(t, motion.DefaultHigh, an.ThresholdValue)
	assert.InDelta(t, 2.0/motion.DefaultFPS, an.Timestamp, 1e-12)
}

func TestDetect_LightingFlicker(t *testing.T) {
	d := newDetector(t)
	got, err := d.Detect([]*frame.Frame{flat(t, 6, 6, 40), flat(t, 6, 6, 75)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.AnomalyLightingFlicker, got[0].Type)
	assert.Equal(t, core.SeverityMedium, got[0].Severity)
	assert.Equal(t, motion.DefaultMedium, got[0].ThresholdValue)
}

// TestDetect_Ladder checks each tier, inclusive at the threshold.
func TestDetect_Ladder(t *testing.T) {
	d := newDetector(t)
	cases := []struct {
		delta int
		want  core.Severity
		hit   bool
	}{
		{14, 0, false},
		{15, core.SeverityLow, true},
		{29, core.SeverityLow, true},
		{30, core.SeverityMedium, true},
		{50, core.SeverityHigh, true},
		{200, core.SeverityHigh, true},
	}
	for _, tc := range cases {
		got, err := d.Detect([]*frame.Frame{flat(t, 4, 4, 0), flat(t, 4, 4, tc.delta)})
		require.NoError(t, err)
		if !tc.hit {
			assert.Empty(t, got, "delta %d", tc.delta)
			continue
		}
		require.Len(t, got, 1, "delta %d", tc.delta)
		assert.Equal(t, tc.want, got[0].Severity, "delta %d", tc.delta)
		assert.GreaterOrEqual(t, got[0].MetricValue, got[0].ThresholdValue)
	}
}

func TestProfile(t *testing.T) {
	d := newDetector(t)
	p, err := d.Profile([]*frame.Frame{flat(t, 2, 2, 0), flat(t, 2, 2, 10), flat(t, 2, 2, 4)})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{10, 6}, p, 1e-12)
}

func TestDetectShot_UsesShotTimestamp(t *testing.T) {
	d := newDetector(t, motion.WithFPS(10))
	s, err := shot.New(shot.Spec{
		ID:        "s7",
		Timestamp: 3,
		Frames:    []*frame.Frame{split(t, 4, 2, 0, 200), split(t, 4, 2, 200, 0)},
	})
	require.NoError(t, err)

	got, err := d.DetectShot(s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 3.1, got[0].Timestamp, 1e-12)

	_, err = d.DetectShot(nil)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDetect_ShapeMismatch(t *testing.T) {
	d := newDetector(t)
	_, err := d.Detect([]*frame.Frame{flat(t, 4, 4, 0), flat(t, 5, 4, 0)})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.ErrorIs(t, err, frame.ErrShapeMismatch)
}

func TestMeasure_MatchesFrameAPIs(t *testing.T) {
	d := newDetector(t, motion.WithFPS(10))
	frames := []*frame.Frame{split(t, 4, 2, 0, 200), split(t, 4, 2, 200, 0), flat(t, 4, 2, 90), flat(t, 4, 2, 90)}

	planes, err := frame.Lumas("frames", frames)
	require.NoError(t, err)
	m, err := d.Measure(planes, 1.5)
	require.NoError(t, err)

	profile, err := d.Profile(frames)
	require.NoError(t, err)
	anomalies, err := d.DetectAt(frames, 1.5)
	require.NoError(t, err)

	assert.Equal(t, profile, m.Profile)
	assert.Equal(t, anomalies, m.Anomalies)
	require.Len(t, m.Profile, 3)
	require.NotEmpty(t, m.Anomalies)
	assert.InDelta(t, 1.6, m.Anomalies[0].Timestamp, 1e-12)

	_, err = d.Measure([]*frame.Plane{planes[0], nil}, 0)
	assert.ErrorIs(t, err, frame.ErrNilPlane)
}

func TestDetectAt_RejectsBadBase(t *testing.T) {
	d := newDetector(t)
	frames := []*frame.Frame{split(t, 4, 2, 0, 200), split(t, 4, 2, 200, 0)}

	for _, base := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := d.DetectAt(frames, base)
		assert.ErrorIs(t, err, core.ErrInvalidInput, "%v", base)
		assert.ErrorIs(t, err, shot.ErrBadTimestamp, "%v", base)
	}
}

func TestDetect_LogsComponent(t *testing.T) {
	var buf bytes.Buffer
	d := newDetector(t, motion.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := d.Detect([]*frame.Frame{split(t, 4, 2, 0, 200), split(t, 4, 2, 200, 0)})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &line))
	assert.Equal(t, "motion", line["component"])
	assert.Equal(t, "motion anomaly", line["message"])
}

func TestNew_Validation(t *testing.T) {
	_, err := motion.New(motion.WithThresholds(motion.Thresholds{Low: 30, Medium: 20, High: 50}))
	assert.ErrorIs(t, err, motion.ErrBadThresholds)

	_, err = motion.New(motion.WithThresholds(motion.Thresholds{Low: 0, Medium: 20, High: 50}))
	assert.ErrorIs(t, err, motion.ErrBadThresholds)

	_, err = motion.New(motion.WithFPS(0))
	assert.ErrorIs(t, err, motion.ErrBadFPS)

	_, err = motion.New(motion.WithFlickerRatio(1.5))
	assert.ErrorIs(t, err, motion.ErrBadFlickerRatio)

	d := newDetector(t, motion.WithThresholds(motion.Thresholds{Low: 1, Medium: 2, High: 3}))
	assert.Equal(t, 3.0, d.Thresholds().High)
}
