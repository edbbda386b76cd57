// SPDX-License-Identifier: MIT

package core

import "fmt"

// Severity is an ordinal classification attached to anomalies and violations.
// The zero value is SeverityLow; greater values are more severe.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Severities lists every Severity in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

var severityNames = [...]string{"low", "medium", "high", "critical"}

// String returns the boundary name ("low", "medium", "high", "critical").
func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityLow || s > SeverityCritical {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(severityNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSeverity maps a boundary name back to a Severity.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}

// AnomalyType tags what a frame-pair scan found.
type AnomalyType int

const (
	// AnomalyAbruptMotion is an implausibly large frame-to-frame change.
	AnomalyAbruptMotion AnomalyType = iota
	// AnomalyLightingFlicker is an abrupt change explained almost entirely by a
	// global brightness shift.
	AnomalyLightingFlicker
	// AnomalyObjectDisappearance is a textured region that collapsed to flat.
	AnomalyObjectDisappearance
	// AnomalyPhysicsViolation is a region changing far more than global motion allows.
	AnomalyPhysicsViolation
)

// AnomalyTypes lists every AnomalyType.
var AnomalyTypes = []AnomalyType{
	AnomalyAbruptMotion, AnomalyLightingFlicker, AnomalyObjectDisappearance, AnomalyPhysicsViolation,
}

var anomalyNames = [...]string{"abrupt_motion", "lighting_flicker", "object_disappearance", "physics_violation"}

func (t AnomalyType) valid() bool { return t >= AnomalyAbruptMotion && t <= AnomalyPhysicsViolation }

// String returns the boundary name of t.
func (t AnomalyType) String() string {
	if !t.valid() {
		return fmt.Sprintf("AnomalyType(%d)", int(t))
	}
	return anomalyNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t AnomalyType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAnomaly, int(t))
	}
	return []byte(anomalyNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AnomalyType) UnmarshalText(text []byte) error {
	for i, n := range anomalyNames {
		if n == string(text) {
			*t = AnomalyType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAnomaly, string(text))
}

// ViolationType tags a continuity rule broken between two adjacent shots.
type ViolationType int

const (
	ViolationJumpCut ViolationType = iota
	ViolationAxisCrossing
	ViolationSpatialInconsistency
	ViolationTemporalBreak
)

// ViolationTypes lists every ViolationType.
var ViolationTypes = []ViolationType{
	ViolationJumpCut, ViolationAxisCrossing, ViolationSpatialInconsistency, ViolationTemporalBreak,
}

var violationNames = [...]string{"jump_cut", "180_rule", "spatial_inconsistency", "temporal_break"}

func (t ViolationType) valid() bool { return t >= ViolationJumpCut && t <= ViolationTemporalBreak }

// String returns the boundary name of t.
func (t ViolationType) String() string {
	if !t.valid() {
		return fmt.Sprintf("ViolationType(%d)", int(t))
	}
	return violationNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ViolationType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownViolation, int(t))
	}
	return []byte(violationNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ViolationType) UnmarshalText(text []byte) error {
	for i, n := range violationNames {
		if n == string(text) {
			*t = ViolationType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownViolation, string(text))
}
