// SPDX-License-Identifier: MIT

// Package visual flags localized changes between consecutive frames that
// global camera or subject motion cannot explain.
//
// What:
//
//   - Each luminance plane is split into a Rows×Cols grid (default 4×4,
//     shrunk so every region holds at least one pixel).
//   - For every consecutive pair the detector measures per-region mean
//     absolute delta and per-region standard deviation in both frames.
//   - Global motion is the median region delta; a region's residual is its
//     delta minus that median.
//   - A textured region (std ≥ MinTexture) that goes flat
//     (std_b ≤ DisappearanceRatio·std_a) with residual ≥ RegionThreshold is an
//     object_disappearance. Any other region whose residual reaches the
//     threshold is a physics_violation.
//   - If more than MaxFlaggedFraction of the regions flag, the pair is read as
//     plausible global motion and nothing is reported.
//   - Touching flagged regions of the same kind merge into one anomaly
//     (8-connected, see package gridgraph) carrying the largest residual.
//
// Severity is chosen from residual/RegionThreshold: below 1.5 low, below 2
// medium, below 3 high, otherwise critical.
//
// Errors:
//
//   - New rejects bad options with ErrBadGrid, ErrBadThreshold, ErrBadRatio
//     or ErrBadFPS.
//   - Detect returns a *core.InvalidInputError for nil or mismatched frames.
//
// Complexity: O(N·W·H) per call for N frames; the component merge is
// O(Rows·Cols) per pair.
package visual
