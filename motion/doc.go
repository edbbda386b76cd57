// SPDX-License-Identifier: MIT

// Package motion flags abrupt, implausible intensity changes between
// consecutive frames.
//
// For every consecutive pair (i−1, i) the detector measures the mean absolute
// luminance delta on the 0–255 scale and compares it against a severity
// ladder (Low < Medium < High, inclusive). The highest crossed tier becomes
// the anomaly severity; FrameNumber is i.
//
// When the pair's global brightness shift explains at least FlickerRatio of
// the delta, the anomaly is typed lighting_flicker; otherwise abrupt_motion.
//
// Degenerate input: fewer than two frames yields an empty list, identical
// frames never cross a positive threshold, and empty frames measure 0.
package motion
