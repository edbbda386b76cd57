// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/shotqa/core"
)

// Channel counts accepted by New.
const (
	Gray = 1
	RGB  = 3
)

// Rec.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Frame is an immutable width×height image with Gray or RGB interleaved channels.
type Frame struct {
	w, h, ch int
	pix      []uint8 // row-major, len == w*h*ch
}

// New copies pix into a new Frame after validating the shape.
// Stage 1 (Validate): non-negative shape, channels in {1,3}, exact buffer length.
// Stage 2 (Finalize): copy pix so the frame owns its memory.
func New(width, height, channels int, pix []uint8) (*Frame, error) {
	if width < 0 || height < 0 {
		return nil, core.Invalidf("frame", "%w: %dx%d", ErrBadShape, width, height)
	}
	if channels != Gray && channels != RGB {
		return nil, core.Invalidf("frame", "%w: %d", ErrBadChannels, channels)
	}
	if len(pix) != width*height*channels {
		return nil, core.Invalidf("frame", "%w: have %d, want %d", ErrShortBuffer, len(pix), width*height*channels)
	}
	buf := make([]uint8, len(pix))
	copy(buf, pix)

	return &Frame{w: width, h: height, ch: channels, pix: buf}, nil
}

// FromGray builds a single-channel frame from rows of intensities in [0,255].
// An empty grid yields a valid 0×0 frame.
func FromGray(rows [][]int) (*Frame, error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	pix := make([]uint8, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, core.Invalidf(fmt.Sprintf("frame.rows[%d]", y), "%w: have %d, want %d", ErrRaggedRows, len(row), w)
		}
		for x, v := range row {
			if v < 0 || v > 255 {
				return nil, core.Invalidf(fmt.Sprintf("frame[%d][%d]", y, x), "%w: %d", ErrPixelRange, v)
			}
			pix = append(pix, uint8(v))
		}
	}

	return &Frame{w: w, h: h, ch: Gray, pix: pix}, nil
}

// FromRGB builds a three-channel frame from rows of [R,G,B] triples in [0,255].
func FromRGB(rows [][][]int) (*Frame, error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	pix := make([]uint8, 0, w*h*RGB)
	for y, row := range rows {
		if len(row) != w {
			return nil, core.Invalidf(fmt.Sprintf("frame.rows[%d]", y), "%w: have %d, want %d", ErrRaggedRows, len(row), w)
		}
		for x, px := range row {
			if len(px) != RGB {
				return nil, core.Invalidf(fmt.Sprintf("frame[%d][%d]", y, x), "%w: %d channels", ErrBadChannels, len(px))
			}
			for _, v := range px {
				if v < 0 || v > 255 {
					return nil, core.Invalidf(fmt.Sprintf("frame[%d][%d]", y, x), "%w: %d", ErrPixelRange, v)
				}
				pix = append(pix, uint8(v))
			}
		}
	}

	return &Frame{w: w, h: h, ch: RGB, pix: pix}, nil
}

// FromImage converts any image.Image. *image.Gray keeps one channel; every other
// model is sampled as 8-bit RGB with alpha dropped.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if g, ok := img.(*image.Gray); ok {
		pix := make([]uint8, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := g.PixOffset(b.Min.X, y)
			pix = append(pix, g.Pix[off:off+w]...)
		}
		return &Frame{w: w, h: h, ch: Gray, pix: pix}
	}

	pix := make([]uint8, 0, w*h*RGB)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}

	return &Frame{w: w, h: h, ch: RGB, pix: pix}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.w }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.h }

// Channels returns 1 for gray frames and 3 for RGB frames.
func (f *Frame) Channels() int { return f.ch }

// Empty reports whether the frame has no pixels.
func (f *Frame) Empty() bool { return f.w == 0 || f.h == 0 }

// At returns channel c of pixel (x,y), or ErrOutOfRange.
func (f *Frame) At(x, y, c int) (uint8, error) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h || c < 0 || c >= f.ch {
		return 0, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfRange, x, y, c, f.w, f.h, f.ch)
	}
	return f.pix[(y*f.w+x)*f.ch+c], nil
}

// SameShape reports whether f and o have equal width, height and channels.
func (f *Frame) SameShape(o *Frame) bool {
	return f.w == o.w && f.h == o.h && f.ch == o.ch
}

// Luma returns the luminance plane of f.
// Gray frames copy through; RGB frames use Rec.601 weights.
// Complexity: O(W·H).
func (f *Frame) Luma() *Plane {
	n := f.w * f.h
	data := make([]float64, n)
	if f.ch == Gray {
		for i, v := range f.pix {
			data[i] = float64(v)
		}
	} else {
		for i, j := 0, 0; i < n; i, j = i+1, j+RGB {
			data[i] = lumaR*float64(f.pix[j]) + lumaG*float64(f.pix[j+1]) + lumaB*float64(f.pix[j+2])
		}
	}

	return &Plane{w: f.w, h: f.h, data: data}
}

// Image returns a copy of f as *image.Gray or *image.RGBA (opaque).
func (f *Frame) Image() image.Image {
	rect := image.Rect(0, 0, f.w, f.h)
	if f.ch == Gray {
		g := image.NewGray(rect)
		copy(g.Pix, f.pix)
		return g
	}
	img := image.NewRGBA(rect)
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			i := (y*f.w + x) * RGB
			img.SetRGBA(x, y, color.RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: 0xff})
		}
	}

	return img
}

// ValidateSequence checks that frames holds no nil entries and that every
// frame shares the shape of the first one.
func ValidateSequence(field string, frames []*Frame) error {
	for i, f := range frames {
		if f == nil {
			return core.Invalid(fmt.Sprintf("%s[%d]", field, i), ErrNilFrame)
		}
		if !f.SameShape(frames[0]) {
			return core.Invalidf(fmt.Sprintf("%s[%d]", field, i), "%w: %dx%dx%d vs %dx%dx%d",
				ErrShapeMismatch, f.w, f.h, f.ch, frames[0].w, frames[0].h, frames[0].ch)
		}
	}

	return nil
}

// Lumas validates frames as a sequence and returns the luminance plane of
// each, computed once.
func Lumas(field string, frames []*Frame) ([]*Plane, error) {
	if err := ValidateSequence(field, frames); err != nil {
		return nil, err
	}
	out := make([]*Plane, len(frames))
	for i, f := range frames {
		out[i] = f.Luma()
	}

	return out, nil
}
