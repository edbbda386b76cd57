// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shotqa/batch"
	"github.com/katalvlaran/shotqa/config"
	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/shot"
)

func flat(t *testing.T, v int) *frame.Frame {
	t.Helper()
	rows := make([][]int, 8)
	for y := range rows {
		rows[y] = make([]int, 8)
		for x := range rows[y] {
			rows[y][x] = (v + 37*((x+y)%2)) % 256
		}
	}
	f, err := frame.FromGray(rows)
	require.NoError(t, err)
	return f
}

// sequence builds n shots whose angles, objects and frames vary enough to
// produce a mix of scores and violations.
func sequence(t *testing.T, n int) []*shot.Shot {
	t.Helper()
	shots := make([]*shot.Shot, n)
	for i := range shots {
		spec := shot.Spec{
			ID:              fmt.Sprintf("s%02d", i),
			Timestamp:       float64(i) * 2,
			CameraAngle:     float64((i * 50) % 360),
			Lighting:        []string{"day", "day", "night"}[i%3],
			AudioScore:      float64(50 + i%50),
			ContinuityScore: 80,
			Frames:          []*frame.Frame{flat(t, 10*i), flat(t, 10*i+5*(i%4)), flat(t, 10*i+60*(i%2))},
		}
		if i%4 != 3 {
			spec.Objects = []string{"lamp", "cup"}
		}
		shots[i] = shot.MustNew(spec)
	}
	return shots
}

func newRunner(t *testing.T, workers int) *batch.Runner {
	t.Helper()
	cfg := config.Default()
	cfg.Batch.Workers = workers
	r, err := batch.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func TestScoreShots_MatchesSequential(t *testing.T) {
	shots := sequence(t, 23)
	cfg := config.Default()
	agg, err := cfg.Aggregator(zerolog.Nop())
	require.NoError(t, err)

	for _, workers := range []int{1, 3, 16} {
		r := newRunner(t, workers)
		got, err := r.ScoreShots(context.Background(), shots)
		require.NoError(t, err)
		require.Len(t, got, len(shots))
		for i, s := range shots {
			want, err := agg.Assess(s)
			require.NoError(t, err)
			assert.Equal(t, want, got[i], "workers=%d shot=%d", workers, i)
		}
	}
}

func TestBuildReport_MatchesSequential(t *testing.T) {
	shots := sequence(t, 17)
	rb, err := config.Default().ReportBuilder(zerolog.Nop())
	require.NoError(t, err)
	want, err := rb.Build(shots)
	require.NoError(t, err)
	require.NotZero(t, want.TotalViolations)

	for _, workers := range []int{1, 4} {
		got, err := newRunner(t, workers).BuildReport(context.Background(), shots)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestRun(t *testing.T) {
	shots := sequence(t, 5)
	res, err := newRunner(t, 2).Run(context.Background(), shots)
	require.NoError(t, err)
	assert.Len(t, res.Assessments, 5)
	assert.Equal(t, "s03", res.Assessments[3].ShotID)
	assert.Equal(t, 4, res.Report.TotalShotPairs)
}

func TestRunner_Degenerate(t *testing.T) {
	r := newRunner(t, 2)

	got, err := r.ScoreShots(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.BuildReport(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	report, err := r.BuildReport(context.Background(), sequence(t, 1))
	require.NoError(t, err)
	assert.Zero(t, report.TotalShotPairs)

	_, err = r.ScoreShots(context.Background(), []*shot.Shot{nil})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newRunner(t, 2)

	_, err := r.ScoreShots(ctx, sequence(t, 6))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = r.BuildReport(ctx, sequence(t, 6))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	r, err := batch.New(nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWorkers, r.Workers())

	cfg := config.Default()
	cfg.Batch.Workers = 0
	_, err = batch.New(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrBadWorkers)
}
