// SPDX-License-Identifier: MIT

package continuity

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/shot"
)

// LightingSubject is the Subject of lighting violations.
const LightingSubject = "lighting"

// TemporalValidator checks that actions, objects and lighting carry across a
// cut. It is stateless apart from its logger.
type TemporalValidator struct {
	logger zerolog.Logger
}

// NewTemporalValidator builds a TemporalValidator. Only WithLogger applies.
func NewTemporalValidator(opts ...Option) *TemporalValidator {
	o := buildOptions(opts)
	return &TemporalValidator{logger: logging.WithComponent(o.logger, "temporal")}
}

// Validate checks the cut from a to b. Both shots must be non-nil.
// Violations come in order: missing actions, missing objects, lighting.
func (v *TemporalValidator) Validate(a, b *shot.Shot) core.ValidationResult {
	var out []core.ContinuityViolation
	for _, g := range v.groups(a, b) {
		out = append(out, g...)
	}
	if len(out) > 0 {
		v.logger.Debug().Str("shot_a", a.ID()).Str("shot_b", b.ID()).Int("violations", len(out)).Msg("temporal violations")
	}

	return core.NewValidationResult(out)
}

// groups returns the violations of the cut from a to b split by category:
// actions, objects, lighting. Subjects are only comparable within a category.
func (v *TemporalValidator) groups(a, b *shot.Shot) [][]core.ContinuityViolation {
	var actions []core.ContinuityViolation
	for _, act := range missing(a.Actions(), b.Actions()) {
		actions = append(actions, core.ContinuityViolation{
			Type:        core.ViolationTemporalBreak,
			Severity:    core.SeverityMedium,
			ShotA:       a.ID(),
			ShotB:       b.ID(),
			Subject:     act,
			Description: fmt.Sprintf("action %q in shot %s does not continue in shot %s", act, a.ID(), b.ID()),
		})
	}

	var objects []core.ContinuityViolation
	gone := missing(a.Objects(), b.Objects())
	sev := objectSeverity(len(gone))
	for _, obj := range gone {
		objects = append(objects, core.ContinuityViolation{
			Type:     core.ViolationTemporalBreak,
			Severity: sev,
			ShotA:    a.ID(),
			ShotB:    b.ID(),
			Subject:  obj,
			Description: fmt.Sprintf("object %q visible in shot %s is missing from shot %s (%d missing)",
				obj, a.ID(), b.ID(), len(gone)),
		})
	}

	var lighting []core.ContinuityViolation
	la, lb := normalize(a.Lighting()), normalize(b.Lighting())
	if la != "" && lb != "" && la != lb {
		lighting = append(lighting, core.ContinuityViolation{
			Type:        core.ViolationTemporalBreak,
			Severity:    core.SeverityHigh,
			ShotA:       a.ID(),
			ShotB:       b.ID(),
			Subject:     LightingSubject,
			Description: fmt.Sprintf("lighting changes from %q to %q", a.Lighting(), b.Lighting()),
		})
	}

	return [][]core.ContinuityViolation{actions, objects, lighting}
}

// objectSeverity grades a pair by how many objects vanished:
// 1 low, 2–3 medium, 4 or more high.
func objectSeverity(n int) core.Severity {
	switch {
	case n >= 4:
		return core.SeverityHigh
	case n >= 2:
		return core.SeverityMedium
	}
	return core.SeverityLow
}

// missing returns the trimmed entries of from whose normalized form is absent
// from to, in order, each at most once. Blank entries are skipped.
func missing(from, to []string) []string {
	present := make(map[string]struct{}, len(to))
	for _, s := range to {
		present[normalize(s)] = struct{}{}
	}
	var out []string
	reported := make(map[string]struct{})
	for _, s := range from {
		key := normalize(s)
		if key == "" {
			continue
		}
		if _, ok := present[key]; ok {
			continue
		}
		if _, ok := reported[key]; ok {
			continue
		}
		reported[key] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
