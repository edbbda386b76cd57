// SPDX-License-Identifier: MIT

package frame_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
)

func TestFromGray_Validation(t *testing.T) {
	_, err := frame.FromGray([][]int{{1, 2, 3}, {4, 5}})
	assert.ErrorIs(t, err, frame.ErrRaggedRows)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = frame.FromGray([][]int{{0, 256}})
	assert.ErrorIs(t, err, frame.ErrPixelRange)

	_, err = frame.FromGray([][]int{{-1}})
	assert.ErrorIs(t, err, frame.ErrPixelRange)

	f, err := frame.FromGray(nil)
	require.NoError(t, err, "empty grid is a valid 0x0 frame")
	assert.True(t, f.Empty())
	assert.Equal(t, 0, f.Luma().Len())
}

func TestFromRGB_Validation(t *testing.T) {
	_, err := frame.FromRGB([][][]int{{{1, 2}}})
	assert.ErrorIs(t, err, frame.ErrBadChannels)

	_, err = frame.FromRGB([][][]int{{{1, 2, 300}}})
	assert.ErrorIs(t, err, frame.ErrPixelRange)

	_, err = frame.FromRGB([][][]int{{{1, 2, 3}}, {}})
	assert.ErrorIs(t, err, frame.ErrRaggedRows)
}

func TestNew_Validation(t *testing.T) {
	_, err := frame.New(-1, 2, frame.Gray, nil)
	assert.ErrorIs(t, err, frame.ErrBadShape)

	_, err = frame.New(2, 2, 4, make([]uint8, 16))
	assert.ErrorIs(t, err, frame.ErrBadChannels)

	_, err = frame.New(2, 2, frame.RGB, make([]uint8, 11))
	assert.ErrorIs(t, err, frame.ErrShortBuffer)

	pix := []uint8{1, 2, 3, 4}
	f, err := frame.New(2, 2, frame.Gray, pix)
	require.NoError(t, err)
	pix[0] = 99
	v, err := f.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v, "frame must not alias caller memory")

	for _, c := range [][3]int{{-1, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 1}} {
		_, err = f.At(c[0], c[1], c[2])
		assert.ErrorIs(t, err, frame.ErrOutOfRange, "%v", c)
	}
}

// TestLuma_Rec601 pins the documented luminance weights.
func TestLuma_Rec601(t *testing.T) {
	f, err := frame.FromRGB([][][]int{{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {10, 10, 10}}})
	require.NoError(t, err)

	p := f.Luma()
	for x, want := range []float64{0.299 * 255, 0.587 * 255, 0.114 * 255, 10} {
		got, err := p.At(x, 0)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "x=%d", x)
	}
	_, err = p.At(4, 0)
	assert.ErrorIs(t, err, frame.ErrOutOfRange)
	_, err = p.At(0, -1)
	assert.ErrorIs(t, err, frame.ErrOutOfRange)

	g, err := frame.FromGray([][]int{{7, 8}})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, g.Luma().Data())
}

func plane(t *testing.T, rows [][]int) *frame.Plane {
	t.Helper()
	f, err := frame.FromGray(rows)
	require.NoError(t, err)
	return f.Luma()
}

func TestPlane_Statistics(t *testing.T) {
	p := plane(t, [][]int{{1, 2}, {3, 4}})

	mean, variance := p.MeanVariance()
	assert.InDelta(t, 2.5, mean, 1e-12)
	assert.InDelta(t, 1.25, variance, 1e-12, "population variance")

	m, s := p.RegionStats(image.Rect(0, 0, 1, 2))
	assert.InDelta(t, 2, m, 1e-12)
	assert.InDelta(t, 1, s, 1e-12)

	m, s = p.RegionStats(image.Rect(5, 5, 9, 9))
	assert.Zero(t, m)
	assert.Zero(t, s)

	assert.False(t, p.IsUniform())
	assert.True(t, plane(t, [][]int{{9, 9}, {9, 9}}).IsUniform())
}

func TestMeanAbsDiff(t *testing.T) {
	a := plane(t, [][]int{{0, 10}})
	b := plane(t, [][]int{{4, 4}})
	d, err := frame.MeanAbsDiff(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5, d, 1e-12)

	c := plane(t, [][]int{{0}, {0}})
	_, err = frame.MeanAbsDiff(a, c)
	assert.ErrorIs(t, err, frame.ErrShapeMismatch)
}

func TestValidatePlanes(t *testing.T) {
	a := plane(t, [][]int{{1, 2}})
	b := plane(t, [][]int{{1}, {2}})

	assert.NoError(t, frame.ValidatePlanes("planes", []*frame.Plane{a, a}))
	assert.NoError(t, frame.ValidatePlanes("planes", nil))

	err := frame.ValidatePlanes("planes", []*frame.Plane{a, b})
	assert.ErrorIs(t, err, frame.ErrShapeMismatch)

	err = frame.ValidatePlanes("planes", []*frame.Plane{a, nil})
	assert.ErrorIs(t, err, frame.ErrNilPlane)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestLumas(t *testing.T) {
	a, _ := frame.FromGray([][]int{{1, 2}})
	b, _ := frame.FromGray([][]int{{3, 4}})

	planes, err := frame.Lumas("frames", []*frame.Frame{a, b})
	require.NoError(t, err)
	require.Len(t, planes, 2)
	assert.Equal(t, []float64{3, 4}, planes[1].Data())

	_, err = frame.Lumas("frames", []*frame.Frame{a, nil})
	assert.ErrorIs(t, err, frame.ErrNilFrame)
}

func TestValidateSequence(t *testing.T) {
	a, _ := frame.FromGray([][]int{{1, 2}})
	b, _ := frame.FromGray([][]int{{1}, {2}})

	assert.NoError(t, frame.ValidateSequence("frames", []*frame.Frame{a, a}))
	assert.NoError(t, frame.ValidateSequence("frames", nil))

	err := frame.ValidateSequence("frames", []*frame.Frame{a, b})
	assert.ErrorIs(t, err, frame.ErrShapeMismatch)

	err = frame.ValidateSequence("frames", []*frame.Frame{a, nil})
	assert.ErrorIs(t, err, frame.ErrNilFrame)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	f := frame.FromImage(src)
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, frame.RGB, f.Channels())
	g, err := f.At(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(100), g)

	back := frame.FromImage(f.Image())
	assert.Equal(t, f.Luma().Data(), back.Luma().Data())

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 0, color.Gray{Y: 77})
	gf := frame.FromImage(gray)
	assert.Equal(t, frame.Gray, gf.Channels())
	v, err := gf.At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(77), v)
}

func TestDownscale(t *testing.T) {
	f, err := frame.New(64, 32, frame.Gray, make([]uint8, 64*32))
	require.NoError(t, err)

	assert.Same(t, f, f.Downscale(0))
	assert.Same(t, f, f.Downscale(64))

	small := f.Downscale(16)
	assert.Equal(t, 16, small.Width())
	assert.Equal(t, 8, small.Height())
	assert.Equal(t, frame.Gray, small.Channels())
}
