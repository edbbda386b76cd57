// SPDX-License-Identifier: MIT

// Package core defines the value types shared by every shotqa analyzer and
// validator: severities, anomaly and violation tags, quality scores and the
// continuity report.
//
// What:
//
//   - Severity, AnomalyType and ViolationType are closed enumerations. They
//     marshal to the string vocabulary used at the library boundary
//     ("low", "jump_cut", "180_rule", ...) and reject unknown strings.
//   - Anomaly, ContinuityViolation, ValidationResult, QualityScore and
//     ContinuityReport are plain values, created fresh per call.
//   - InvalidInputError carries the field that failed validation and
//     always matches ErrInvalidInput via errors.Is.
//
// Errors:
//
//   - ErrInvalidInput:      umbrella sentinel for malformed shots and frames.
//   - ErrUnknownSeverity:   text did not name a severity.
//   - ErrUnknownAnomaly:    text did not name an anomaly type.
//   - ErrUnknownViolation:  text did not name a violation type.
//   - ErrScoreOutOfRange:   a score fell outside [0,100].
//
// Determinism:
//
//   - All helpers are pure. Map-valued counters are zero-filled with every
//     known key so serialized reports are stable.
package core
