// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/shotqa/core"
)

// Plane is a row-major float64 luminance grid. Planes are built by Frame.Luma.
type Plane struct {
	w, h int
	data []float64 // len == w*h
}

// Width returns the number of columns.
func (p *Plane) Width() int { return p.w }

// Height returns the number of rows.
func (p *Plane) Height() int { return p.h }

// Len returns the number of samples.
func (p *Plane) Len() int { return len(p.data) }

// At returns the sample at (x,y), or ErrOutOfRange.
func (p *Plane) At(x, y int) (float64, error) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, p.w, p.h)
	}
	return p.data[y*p.w+x], nil
}

// Data returns a copy of the row-major samples.
func (p *Plane) Data() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)
	return out
}

// Raw exposes the backing row-major slice for read-only numeric kernels.
// Callers must not modify it.
func (p *Plane) Raw() []float64 { return p.data }

// IsUniform reports whether every sample is identical. Empty planes are uniform.
func (p *Plane) IsUniform() bool {
	for _, v := range p.data {
		if v != p.data[0] {
			return false
		}
	}
	return true
}

// MeanVariance returns the population mean and variance of all samples.
// An empty plane yields (0, 0).
func (p *Plane) MeanVariance() (mean, variance float64) {
	if len(p.data) == 0 {
		return 0, 0
	}
	if p.IsUniform() {
		return p.data[0], 0
	}
	return stat.PopMeanVariance(p.data, nil)
}

// Mean returns the mean sample value, or 0 for an empty plane.
func (p *Plane) Mean() float64 {
	if len(p.data) == 0 {
		return 0
	}
	return stat.Mean(p.data, nil)
}

// RegionStats returns the population mean and standard deviation of the
// samples inside r, clipped to the plane. An empty intersection yields (0, 0).
func (p *Plane) RegionStats(r image.Rectangle) (mean, std float64) {
	r = r.Intersect(image.Rect(0, 0, p.w, p.h))
	if r.Empty() {
		return 0, 0
	}
	vals := make([]float64, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := y * p.w
		vals = append(vals, p.data[base+r.Min.X:base+r.Max.X]...)
	}
	m, v := stat.PopMeanVariance(vals, nil)

	return m, math.Sqrt(math.Max(v, 0))
}

// MeanAbsDiff returns mean |a−b| over all samples of two equally shaped planes.
// Empty planes yield 0.
func MeanAbsDiff(a, b *Plane) (float64, error) {
	if a.w != b.w || a.h != b.h {
		return 0, core.Invalidf("plane", "%w: %dx%d vs %dx%d", ErrShapeMismatch, a.w, a.h, b.w, b.h)
	}
	return RegionMeanAbsDiff(a, b, image.Rect(0, 0, a.w, a.h)), nil
}

// RegionMeanAbsDiff returns mean |a−b| inside r (clipped). The planes must share
// a shape; callers check that once per pair via MeanAbsDiff or SameShape.
func RegionMeanAbsDiff(a, b *Plane, r image.Rectangle) float64 {
	r = r.Intersect(image.Rect(0, 0, a.w, a.h))
	if r.Empty() {
		return 0
	}
	var sum float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := y * a.w
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += math.Abs(a.data[base+x] - b.data[base+x])
		}
	}

	return sum / float64(r.Dx()*r.Dy())
}

// ValidatePlanes checks that planes holds no nil entries and that every plane
// shares the shape of the first one.
func ValidatePlanes(field string, planes []*Plane) error {
	for i, p := range planes {
		if p == nil {
			return core.Invalid(fmt.Sprintf("%s[%d]", field, i), ErrNilPlane)
		}
		if p.w != planes[0].w || p.h != planes[0].h {
			return core.Invalidf(fmt.Sprintf("%s[%d]", field, i), "%w: %dx%d vs %dx%d",
				ErrShapeMismatch, p.w, p.h, planes[0].w, planes[0].h)
		}
	}

	return nil
}
