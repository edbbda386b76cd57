// SPDX-License-Identifier: MIT

// Package continuity checks adjacent shots for narrative continuity breaks
// and aggregates the findings of a whole sequence into a report.
//
// What:
//
//   - AngleDelta: smallest difference between two camera angles, in [0,180].
//   - SpatialValidator: jump cuts (delta < 30°), 180-degree rule breaks
//     (delta > 135° with two shared characters swapping left/right order)
//     and unexplained character displacement (> 0.4 in normalized screen
//     units with no movement action covering it).
//   - TemporalValidator: actions and objects of shot A missing from shot B,
//     and lighting changes. Text is compared trimmed and case-folded; an empty
//     lighting label means unspecified and is never compared.
//   - ReportBuilder: runs both validators over every adjacent pair and
//     aggregates counts per violation type and severity, every key present.
//
// Violations within one pair are deduplicated by (type, subject), keeping the
// first occurrence.
//
// Errors:
//
//   - ErrNoShots: Build was handed an empty sequence.
//   - ErrBadAngle, ErrBadDisplacement, ErrBadKeyword: rejected options.
//   - *core.InvalidInputError for nil shots.
//
// Complexity: O(C² + A + O) per pair for C shared characters, A actions and
// O objects; Build is linear in the number of pairs.
package continuity
