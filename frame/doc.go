// SPDX-License-Identifier: MIT

// Package frame provides the immutable image frame consumed by every shotqa
// analyzer, plus the single-channel luminance Plane the numeric kernels run on.
//
// What:
//
//   - Frame is a width×height grid of 8-bit intensities with 1 (gray) or
//     3 (RGB) interleaved channels, stored row-major in one flat slice.
//   - Plane is the float64 luminance view of a Frame. RGB frames convert with
//     the Rec.601 luma weights 0.299·R + 0.587·G + 0.114·B; gray frames map
//     through unchanged.
//   - Constructors copy their input, so a Frame never aliases caller memory.
//
// Degenerate frames:
//
//   - Zero-width or zero-height frames are valid. Their Plane is empty and
//     every statistic over it is 0.
//
// Errors (all returned wrapped in *core.InvalidInputError):
//
//   - ErrBadShape:      negative width or height.
//   - ErrBadChannels:   channel count other than 1 or 3.
//   - ErrShortBuffer:   pixel buffer length differs from width·height·channels.
//   - ErrRaggedRows:    grid rows (or pixels) of differing lengths.
//   - ErrPixelRange:    grid intensity outside [0,255].
//   - ErrNilFrame:      nil frame in a sequence.
//   - ErrShapeMismatch: frames of one sequence differ in size or channels.
//
// Complexity:
//
//   - Construction and Luma are O(W·H·C) time and memory.
package frame
