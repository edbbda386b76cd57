// SPDX-License-Identifier: MIT

package sharpness

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/logging"
)

// Analyzer computes per-frame sharpness. It holds only configuration and is
// safe for concurrent use.
type Analyzer struct {
	backend Backend
	maxDim  uint
	logger  zerolog.Logger
}

// NewAnalyzer builds an Analyzer; with no options it uses the scalar backend
// at full resolution.
func NewAnalyzer(opts ...Option) *Analyzer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Analyzer{
		backend: o.backend,
		maxDim:  o.maxDim,
		logger:  logging.WithComponent(o.logger, "sharpness").With().Str("backend", o.backend.Name()).Logger(),
	}
}

// Backend returns the configured backend.
func (a *Analyzer) Backend() Backend { return a.backend }

// Analyze returns the Laplacian variance of f (>= 0). A nil, empty, smaller
// than 3×3 or uniform frame yields 0.
func (a *Analyzer) Analyze(f *frame.Frame) float64 {
	if f == nil || f.Empty() {
		return 0
	}
	src := f.Downscale(a.maxDim)
	v := a.backend.LaplacianVariance(src.Luma())

	a.logger.Debug().
		Int("width", src.Width()).
		Int("height", src.Height()).
		Float64("laplacian_variance", v).
		Msg("frame sharpness")

	return v
}

// AnalyzeAll returns one sharpness value per frame after checking the
// sequence for nil entries and mismatched shapes.
func (a *Analyzer) AnalyzeAll(frames []*frame.Frame) ([]float64, error) {
	if err := frame.ValidateSequence("frames", frames); err != nil {
		return nil, err
	}
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = a.Analyze(f)
	}

	return out, nil
}

// Mean returns the average sharpness of frames, or 0 for an empty list.
func (a *Analyzer) Mean(frames []*frame.Frame) (float64, error) {
	vals, err := a.AnalyzeAll(frames)
	if err != nil || len(vals) == 0 {
		return 0, err
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals)), nil
}
