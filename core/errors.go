// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core value handling.
//
// Every message is prefixed with "core:" so errors from this package are
// easy to grep in logs. Callers match them with errors.Is.
var (
	// ErrInvalidInput marks any malformed Shot or Frame. Every
	// *InvalidInputError matches it.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrUnknownSeverity indicates text that does not name a Severity.
	ErrUnknownSeverity = errors.New("core: unknown severity")

	// ErrUnknownAnomaly indicates text that does not name an AnomalyType.
	ErrUnknownAnomaly = errors.New("core: unknown anomaly type")

	// ErrUnknownViolation indicates text that does not name a ViolationType.
	ErrUnknownViolation = errors.New("core: unknown violation type")

	// ErrScoreOutOfRange indicates a score outside [0,100] or not finite.
	ErrScoreOutOfRange = errors.New("core: score out of range [0,100]")
)

// InvalidInputError reports which field of an input failed validation.
// Err holds the specific sentinel (for example frame.ErrRaggedRows).
type InvalidInputError struct {
	Field string
	Err   error
}

// Invalid wraps err as an *InvalidInputError for field.
func Invalid(field string, err error) error {
	return &InvalidInputError{Field: field, Err: err}
}

// Invalidf builds an *InvalidInputError from a formatted reason that wraps a sentinel.
func Invalidf(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Err: fmt.Errorf(format, args...)}
}

// Error implements error.
func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %v", ErrInvalidInput, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrInvalidInput, e.Field, e.Err)
}

// Unwrap exposes the specific sentinel.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is reports true for ErrInvalidInput so callers need only one check.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// ValidateScore returns an *InvalidInputError when v is not a finite value in [0,100].
func ValidateScore(field string, v float64) error {
	if !IsFinite(v) || v < MinScore || v > MaxScore {
		return Invalidf(field, "%w: %v", ErrScoreOutOfRange, v)
	}
	return nil
}
