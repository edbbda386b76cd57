// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shotqa/config"
	"github.com/katalvlaran/shotqa/continuity"
	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/quality"
	"github.com/katalvlaran/shotqa/shot"
)

// Result bundles the outputs of Run.
type Result struct {
	Assessments []quality.Assessment   `json:"assessments"`
	Report      *core.ContinuityReport `json:"continuity_report"`
}

// Runner schedules per-shot and per-pair work on a bounded pool.
type Runner struct {
	workers    int
	aggregator *quality.Aggregator
	builder    *continuity.ReportBuilder
	logger     zerolog.Logger
}

// New builds a Runner and its components from cfg; nil means config.Default.
func New(cfg *config.Config, logger zerolog.Logger) (*Runner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agg, err := cfg.Aggregator(logger)
	if err != nil {
		return nil, err
	}
	rb, err := cfg.ReportBuilder(logger)
	if err != nil {
		return nil, err
	}
	return &Runner{
		workers:    cfg.Batch.Workers,
		aggregator: agg,
		builder:    rb,
		logger:     logging.WithComponent(logger, "batch"),
	}, nil
}

// Workers returns the pool size.
func (r *Runner) Workers() int { return r.workers }

// ScoreShots assesses every shot; element i describes shots[i].
func (r *Runner) ScoreShots(ctx context.Context, shots []*shot.Shot) ([]quality.Assessment, error) {
	if err := shot.Validate(shots); err != nil {
		return nil, err
	}
	out := make([]quality.Assessment, len(shots))
	err := r.run(ctx, len(shots), "shots", func(i int) error {
		a, err := r.aggregator.Assess(shots[i])
		if err != nil {
			return fmt.Errorf("batch: shot %d (%s): %w", i, shots[i].ID(), err)
		}
		out[i] = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BuildReport validates every adjacent pair concurrently and aggregates the
// results in sequence order. It accepts the same input as
// continuity.ReportBuilder.Build and returns the same report.
func (r *Runner) BuildReport(ctx context.Context, shots []*shot.Shot) (*core.ContinuityReport, error) {
	if len(shots) == 0 {
		return nil, core.Invalid("shots", continuity.ErrNoShots)
	}
	if err := shot.Validate(shots); err != nil {
		return nil, err
	}
	pairs := make([]core.PairResult, len(shots)-1)
	err := r.run(ctx, len(pairs), "pairs", func(i int) error {
		pairs[i] = r.builder.CheckPair(i, shots[i], shots[i+1])
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := core.NewContinuityReport(len(shots))
	for _, p := range pairs {
		report.AddPair(p)
	}
	r.builder.LogSummary(report)

	return report, nil
}

// Run scores every shot and builds the continuity report.
func (r *Runner) Run(ctx context.Context, shots []*shot.Shot) (Result, error) {
	assessments, err := r.ScoreShots(ctx, shots)
	if err != nil {
		return Result{}, err
	}
	report, err := r.BuildReport(ctx, shots)
	if err != nil {
		return Result{}, err
	}
	return Result{Assessments: assessments, Report: report}, nil
}

// run executes job(0..n-1) on at most r.workers goroutines.
func (r *Runner) run(parent context.Context, n int, what string, job func(i int) error) error {
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(r.workers)

	var remaining atomic.Int64
	remaining.Store(int64(n))
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := job(i); err != nil {
				return err
			}
			r.logger.Debug().Str("kind", what).Int("index", i).Int64("remaining", remaining.Add(-1)).Msg("job done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return parent.Err()
}
