// SPDX-License-Identifier: MIT

package frame

import "github.com/nfnt/resize"

// Downscale returns f shrunk with bilinear interpolation so that neither side
// exceeds maxDim, preserving aspect ratio. maxDim == 0, an empty frame or a
// frame already within bounds returns f itself.
// Complexity: O(W·H) for the resample.
func (f *Frame) Downscale(maxDim uint) *Frame {
	if maxDim == 0 || f.Empty() || (uint(f.w) <= maxDim && uint(f.h) <= maxDim) {
		return f
	}
	return FromImage(resize.Thumbnail(maxDim, maxDim, f.Image(), resize.Bilinear))
}
