// SPDX-License-Identifier: MIT

package core

import "math"

// Score bounds shared by every score in the library.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Position is a normalized screen coordinate; both axes lie in [0,1]
// with x growing to screen-right.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Character is a named subject placed on screen in a shot.
type Character struct {
	Name     string   `json:"name" yaml:"name"`
	Position Position `json:"position" yaml:"position"`
}

// Anomaly is one finding of a frame-pair scan.
//
// FrameNumber is the index of the second frame of the offending pair.
// MetricValue is the measured magnitude, ThresholdValue the threshold it crossed.
type Anomaly struct {
	Type           AnomalyType `json:"type"`
	Severity       Severity    `json:"severity"`
	Description    string      `json:"description"`
	Timestamp      float64     `json:"timestamp"`
	FrameNumber    int         `json:"frame_number"`
	MetricValue    float64     `json:"metric_value"`
	ThresholdValue float64     `json:"threshold_value"`
}

// ContinuityViolation is one broken rule between adjacent shots A (earlier) and B.
// Subject names the character, object, action or character pair involved and
// is empty for shot-level rules such as jump cuts.
type ContinuityViolation struct {
	Type        ViolationType `json:"violation_type"`
	Severity    Severity      `json:"severity"`
	ShotA       string        `json:"shot_a_id"`
	ShotB       string        `json:"shot_b_id"`
	Subject     string        `json:"subject,omitempty"`
	Description string        `json:"description"`
}

// ValidationResult is the outcome of one validator on one shot pair.
type ValidationResult struct {
	Passed     bool                  `json:"passed"`
	Violations []ContinuityViolation `json:"violations"`
}

// NewValidationResult derives Passed from the violation list.
// A nil list is normalized to an empty one.
func NewValidationResult(violations []ContinuityViolation) ValidationResult {
	if violations == nil {
		violations = []ContinuityViolation{}
	}
	return ValidationResult{Passed: len(violations) == 0, Violations: violations}
}

// QualityScore is the per-shot verdict; every field lies in [0,100].
type QualityScore struct {
	Overall    float64 `json:"overall_score"`
	Sharpness  float64 `json:"sharpness_score"`
	Motion     float64 `json:"motion_score"`
	Audio      float64 `json:"audio_score"`
	Continuity float64 `json:"continuity_score"`
}

// PairResult holds the continuity checks of one adjacent shot pair.
type PairResult struct {
	Index      int                   `json:"index"`
	ShotA      string                `json:"shot_a_id"`
	ShotB      string                `json:"shot_b_id"`
	Passed     bool                  `json:"passed"`
	Violations []ContinuityViolation `json:"violations"`
}

// ContinuityReport aggregates every adjacent-pair result of a project.
type ContinuityReport struct {
	TotalShots          int                   `json:"total_shots"`
	TotalShotPairs      int                   `json:"total_shot_pairs"`
	TotalViolations     int                   `json:"total_violations"`
	Violations          []ContinuityViolation `json:"violations"`
	ViolationByType     map[ViolationType]int `json:"violation_by_type"`
	ViolationBySeverity map[Severity]int      `json:"violation_by_severity"`
	Pairs               []PairResult          `json:"pairs"`
}

// NewContinuityReport returns an empty report for totalShots shots with
// zero-filled counters for every type and severity.
func NewContinuityReport(totalShots int) *ContinuityReport {
	r := &ContinuityReport{
		TotalShots:          totalShots,
		Violations:          []ContinuityViolation{},
		ViolationByType:     make(map[ViolationType]int, len(ViolationTypes)),
		ViolationBySeverity: make(map[Severity]int, len(Severities)),
		Pairs:               []PairResult{},
	}
	for _, t := range ViolationTypes {
		r.ViolationByType[t] = 0
	}
	for _, s := range Severities {
		r.ViolationBySeverity[s] = 0
	}
	return r
}

// AddPair appends one pair result and updates every counter.
func (r *ContinuityReport) AddPair(p PairResult) {
	r.Pairs = append(r.Pairs, p)
	r.TotalShotPairs++
	for _, v := range p.Violations {
		r.Violations = append(r.Violations, v)
		r.ViolationByType[v.Type]++
		r.ViolationBySeverity[v.Severity]++
		r.TotalViolations++
	}
}

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScore limits v to [MinScore, MaxScore].
func ClampScore(v float64) float64 { return Clamp(v, MinScore, MaxScore) }

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
