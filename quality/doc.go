// SPDX-License-Identifier: MIT

// Package quality folds frame analysis and externally supplied scores into a
// single per-shot QualityScore.
//
// Sub-scores, all on [0,100]:
//
//	sharpness  = 100·(1 − e^(−meanLaplacianVariance/SharpnessScale))
//	motion     = 100·e^(−meanFrameDelta/MotionScale) − Σ penalty(anomaly.Severity)
//	audio      = supplied
//	continuity = supplied
//	overall    = Σ weight·sub-score
//
// with SharpnessScale 100, MotionScale 40, penalties low 5, medium 10, high 20,
// critical 30 and weights 0.3 / 0.25 / 0.25 / 0.2. Motion penalties come from
// the motion detector's anomalies; visual anomalies are reported by Assess but
// do not change the score.
//
// With no frames both frame-derived sub-scores are 0; with one frame the
// sharpness sub-score is computed and motion stays 0.
//
// Errors: ErrBadWeights, ErrBadScale and ErrBadPenalty from New;
// *core.InvalidInputError from Score and Assess.
package quality
