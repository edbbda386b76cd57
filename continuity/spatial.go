// SPDX-License-Identifier: MIT

package continuity

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/shot"
)

// SpatialValidator checks camera and character geometry across a cut.
// It holds only configuration and is safe for concurrent use.
type SpatialValidator struct {
	jumpCutMaxDelta  float64
	axisFlipMinDelta float64
	maxDisplacement  float64
	keywords         []string
	logger           zerolog.Logger
}

// NewSpatialValidator validates opts and builds a SpatialValidator.
func NewSpatialValidator(opts ...Option) (*SpatialValidator, error) {
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &SpatialValidator{
		jumpCutMaxDelta:  o.jumpCutMaxDelta,
		axisFlipMinDelta: o.axisFlipMinDelta,
		maxDisplacement:  o.maxDisplacement,
		keywords:         o.keywords,
		logger:           logging.WithComponent(o.logger, "spatial"),
	}, nil
}

// sharedPair is one character present in both shots.
type sharedPair struct {
	name string
	a, b core.Character
}

// Validate checks the cut from a to b. Both shots must be non-nil.
// Violations come in rule order: jump cut, 180-degree rule, then one
// spatial inconsistency per character in name order.
func (v *SpatialValidator) Validate(a, b *shot.Shot) core.ValidationResult {
	var out []core.ContinuityViolation
	delta := AngleDelta(a.CameraAngle(), b.CameraAngle())

	if delta < v.jumpCutMaxDelta {
		out = append(out, core.ContinuityViolation{
			Type:     core.ViolationJumpCut,
			Severity: core.SeverityHigh,
			ShotA:    a.ID(),
			ShotB:    b.ID(),
			Description: fmt.Sprintf("camera angle changes by %.1f° (%.1f° → %.1f°), less than %.1f°",
				delta, a.CameraAngle(), b.CameraAngle(), v.jumpCutMaxDelta),
		})
	}

	shared := sharedCharacters(a, b)
	if delta > v.axisFlipMinDelta {
		if flipped := flippedPairs(shared); len(flipped) > 0 {
			out = append(out, core.ContinuityViolation{
				Type:     core.ViolationAxisCrossing,
				Severity: core.SeverityCritical,
				ShotA:    a.ID(),
				ShotB:    b.ID(),
				Subject:  strings.Join(flipped, ", "),
				Description: fmt.Sprintf("camera crosses the action line (%.1f°) and screen order flips for %s",
					delta, strings.Join(flipped, ", ")),
			})
		}
	}

	actions := append(a.Actions(), b.Actions()...)
	for _, p := range shared {
		d := p.a.Position.Distance(p.b.Position)
		if d <= v.maxDisplacement || v.justified(p.name, actions, shared) {
			continue
		}
		out = append(out, core.ContinuityViolation{
			Type:     core.ViolationSpatialInconsistency,
			Severity: core.SeverityMedium,
			ShotA:    a.ID(),
			ShotB:    b.ID(),
			Subject:  p.name,
			Description: fmt.Sprintf("%s moves %.2f across the frame (%.2f,%.2f → %.2f,%.2f) with no movement action",
				p.name, d, p.a.Position.X, p.a.Position.Y, p.b.Position.X, p.b.Position.Y),
		})
	}

	if len(out) > 0 {
		v.logger.Debug().Str("shot_a", a.ID()).Str("shot_b", b.ID()).Int("violations", len(out)).Msg("spatial violations")
	}

	return core.NewValidationResult(out)
}

// sharedCharacters returns the characters present in both shots, sorted by name.
func sharedCharacters(a, b *shot.Shot) []sharedPair {
	var out []sharedPair
	for _, ca := range a.Characters() {
		if cb, ok := b.Character(ca.Name); ok {
			out = append(out, sharedPair{name: ca.Name, a: ca, b: cb})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// flippedPairs lists "x/y" for every pair of shared characters whose
// left/right order differs between the shots. Ties on either side are ignored.
func flippedPairs(shared []sharedPair) []string {
	var out []string
	for i := 0; i < len(shared); i++ {
		for j := i + 1; j < len(shared); j++ {
			before := sign(shared[i].a.Position.X - shared[j].a.Position.X)
			after := sign(shared[i].b.Position.X - shared[j].b.Position.X)
			if before != 0 && after != 0 && before != after {
				out = append(out, shared[i].name+"/"+shared[j].name)
			}
		}
	}
	return out
}

// justified reports whether some action explains name's movement: the action
// holds a movement keyword and either mentions name or mentions no shared
// character at all. A name is mentioned only as whole words, so "Al" does
// not match "walks".
func (v *SpatialValidator) justified(name string, actions []string, shared []sharedPair) bool {
	for _, act := range actions {
		words := strings.FieldsFunc(normalize(act), notLetter)
		if !v.hasMovement(words) {
			continue
		}
		if mentions(words, name) {
			return true
		}
		named := false
		for _, p := range shared {
			if mentions(words, p.name) {
				named = true
				break
			}
		}
		if !named {
			return true
		}
	}
	return false
}

// mentions reports whether the words of name occur as a contiguous run in words.
func mentions(words []string, name string) bool {
	want := strings.FieldsFunc(normalize(name), notLetter)
	if len(want) == 0 {
		return false
	}
	for i := 0; i+len(want) <= len(words); i++ {
		if slices.Equal(words[i:i+len(want)], want) {
			return true
		}
	}
	return false
}

func (v *SpatialValidator) hasMovement(words []string) bool {
	for _, word := range words {
		for _, k := range v.keywords {
			if strings.HasPrefix(word, k) {
				return true
			}
		}
	}
	return false
}

func notLetter(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
