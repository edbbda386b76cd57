// SPDX-License-Identifier: MIT

package continuity

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/shot"
)

// ReportBuilder runs the spatial and temporal validators over a shot
// sequence. It holds only configuration and is safe for concurrent use.
type ReportBuilder struct {
	spatial  *SpatialValidator
	temporal *TemporalValidator
	logger   zerolog.Logger
}

// NewReportBuilder builds both validators from opts.
func NewReportBuilder(opts ...Option) (*ReportBuilder, error) {
	sp, err := NewSpatialValidator(opts...)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return &ReportBuilder{
		spatial:  sp,
		temporal: NewTemporalValidator(opts...),
		logger:   logging.WithComponent(o.logger, "continuity"),
	}, nil
}

// Build validates every adjacent pair of shots in order.
// Stage 1 (Validate): at least one shot, no nil entries.
// Stage 2 (Check): CheckPair for i = 0..N−2.
// Stage 3 (Aggregate): fold pair results into a report with zero-filled counters.
//
// A single shot yields a report with zero pairs.
func (rb *ReportBuilder) Build(shots []*shot.Shot) (*core.ContinuityReport, error) {
	if len(shots) == 0 {
		return nil, core.Invalid("shots", ErrNoShots)
	}
	if err := shot.Validate(shots); err != nil {
		return nil, err
	}

	report := core.NewContinuityReport(len(shots))
	for i := 0; i+1 < len(shots); i++ {
		report.AddPair(rb.CheckPair(i, shots[i], shots[i+1]))
	}
	rb.LogSummary(report)

	return report, nil
}

// CheckPair runs both validators on the cut from a to b and deduplicates the
// violations within each category (spatial, temporal actions, temporal
// objects, lighting) by (type, subject), keeping the first. An action and an
// object that share a name are distinct findings. Both shots must be non-nil.
func (rb *ReportBuilder) CheckPair(index int, a, b *shot.Shot) core.PairResult {
	groups := append([][]core.ContinuityViolation{rb.spatial.Validate(a, b).Violations}, rb.temporal.groups(a, b)...)

	type key struct {
		group   int
		t       core.ViolationType
		subject string
	}
	seen := make(map[key]struct{})
	var violations []core.ContinuityViolation
	for g, vs := range groups {
		for _, v := range vs {
			k := key{g, v.Type, normalize(v.Subject)}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			violations = append(violations, v)
		}
	}
	if violations == nil {
		violations = []core.ContinuityViolation{}
	}

	return core.PairResult{
		Index:      index,
		ShotA:      a.ID(),
		ShotB:      b.ID(),
		Passed:     len(violations) == 0,
		Violations: violations,
	}
}

// LogSummary writes one info line describing report.
func (rb *ReportBuilder) LogSummary(report *core.ContinuityReport) {
	ev := rb.logger.Info().
		Int("shots", report.TotalShots).
		Int("pairs", report.TotalShotPairs).
		Int("violations", report.TotalViolations)
	for _, t := range core.ViolationTypes {
		ev = ev.Int(t.String(), report.ViolationByType[t])
	}
	ev.Msg("continuity report built")
}
