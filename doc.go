// SPDX-License-Identifier: MIT

// Package shotqa scores generated film shots and checks the narrative
// continuity between them.
//
// What is in the box:
//
//	core/        severities, anomaly and violation types, report shapes, errors
//	frame/       immutable gray/RGB frames, luminance planes, statistics, downscale
//	shot/        validated, read-only Shot built from a Spec
//	sharpness/   Laplacian-variance focus measure (scalar and gonum backends)
//	motion/      frame-difference anomaly ladder (abrupt motion, flicker)
//	visual/      regional anomalies: vanished objects, local physics breaks
//	gridgraph/   connected components over labelled grids
//	quality/     per-shot QualityScore and Assessment
//	continuity/  angle arithmetic, spatial and temporal validators, reports
//	batch/       bounded worker pool over shots and shot pairs
//	config/      YAML configuration converted into component options
//	logging/     zerolog construction without globals
//
// Every analyzer and validator holds only the configuration it was built
// with, so one instance can serve many goroutines. Malformed input is
// reported as a *core.InvalidInputError; degenerate but valid input (no
// frames, one frame, one shot) yields documented neutral results.
//
// Quick start:
//
//	cfg, _ := config.Load("shotqa.yaml")
//	runner, _ := batch.New(cfg, zerolog.Nop())
//	res, _ := runner.Run(ctx, shots)
//	fmt.Println(res.Assessments[0].Score.Overall, res.Report.TotalViolations)
package shotqa
