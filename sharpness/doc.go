// SPDX-License-Identifier: MIT

// Package sharpness measures frame sharpness as the variance of a discrete
// Laplacian response.
//
// Algorithm:
//
//  1. Convert the frame to its luminance Plane (Rec.601 for RGB).
//  2. Convolve interior pixels (1-pixel border excluded) with
//     [[0,-1,0],[-1,4,-1],[0,-1,0]].
//  3. Return the population variance of the (W−2)·(H−2) responses.
//
// Backends:
//
//   - Scalar: explicit loops over the flat row-major buffer.
//   - Vectorized: gonum mat.Dense arithmetic over four shifted views.
//
// Both backends produce the same value within floating tolerance; the choice
// is configuration, not behavior. Frames smaller than 3×3 and uniform frames
// yield 0.
//
// Complexity:
//
//   - O(W·H) time per frame. WithMaxDimension bounds W and H by resampling
//     large frames first, trading exactness for a fixed cost.
package sharpness
