// SPDX-License-Identifier: MIT

package sharpness

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/shotqa/frame"
)

// ErrUnknownBackend indicates a backend name ParseKind does not recognize.
var ErrUnknownBackend = errors.New("sharpness: unknown backend")

// Backend computes the Laplacian variance of one luminance plane.
type Backend interface {
	Name() string
	LaplacianVariance(p *frame.Plane) float64
}

// Kind selects a built-in Backend.
type Kind int

const (
	KindScalar Kind = iota
	KindVectorized
)

// String returns the configuration name of k.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name ("scalar", "vectorized") to a Kind.
// The empty string selects the default scalar backend.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "scalar":
		return KindScalar, nil
	case "vectorized":
		return KindVectorized, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// BackendFor returns the built-in Backend for k.
func BackendFor(k Kind) Backend {
	if k == KindVectorized {
		return Vectorized{}
	}
	return Scalar{}
}

// Scalar walks the flat buffer directly.
type Scalar struct{}

// Name implements Backend.
func (Scalar) Name() string { return KindScalar.String() }

// LaplacianVariance implements Backend.
// Stage 1 (Validate): <3×3 or uniform planes short-circuit to 0.
// Stage 2 (Mean): first pass sums the responses.
// Stage 3 (Variance): second pass sums squared deviations from the mean.
func (Scalar) LaplacianVariance(p *frame.Plane) float64 {
	w, h := p.Width(), p.Height()
	if w < 3 || h < 3 || p.IsUniform() {
		return 0
	}
	d := p.Raw()
	n := float64((w - 2) * (h - 2))

	var sum float64
	for y := 1; y < h-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			sum += response(d, row+x, w)
		}
	}
	mean := sum / n

	var ss, comp float64
	for y := 1; y < h-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			dev := response(d, row+x, w) - mean
			ss += dev * dev
			comp += dev
		}
	}

	// corrected two-pass, same formulation gonum/stat uses
	return max(0, (ss-comp*comp/n)/n)
}

// response is the Laplacian at flat index i of a row-major plane of width w.
func response(d []float64, i, w int) float64 {
	return 4*d[i] - d[i-w] - d[i+w] - d[i-1] - d[i+1]
}

// Vectorized expresses the kernel as whole-matrix operations on shifted views.
type Vectorized struct{}

// Name implements Backend.
func (Vectorized) Name() string { return KindVectorized.String() }

// LaplacianVariance implements Backend.
// The response matrix is 4·C − N − S − W − E where C is the interior view and
// N/S/W/E are the interior shifted by one pixel in each direction.
func (Vectorized) LaplacianVariance(p *frame.Plane) float64 {
	w, h := p.Width(), p.Height()
	if w < 3 || h < 3 || p.IsUniform() {
		return 0
	}
	m := mat.NewDense(h, w, p.Data())

	var resp mat.Dense
	resp.Scale(4, m.Slice(1, h-1, 1, w-1))
	resp.Sub(&resp, m.Slice(0, h-2, 1, w-1))
	resp.Sub(&resp, m.Slice(2, h, 1, w-1))
	resp.Sub(&resp, m.Slice(1, h-1, 0, w-2))
	resp.Sub(&resp, m.Slice(1, h-1, 2, w))

	_, variance := stat.PopMeanVariance(resp.RawMatrix().Data, nil)

	return max(0, variance)
}
