// SPDX-License-Identifier: MIT

// Package gridgraph treats a small 2D grid of labelled cells as a graph and
// finds connected components of equally labelled cells.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; label 0 is background.
//   - ConnectedComponents groups neighbouring cells that share a label ≥ 1.
//   - Conn4 joins N/E/S/W neighbours, Conn8 adds the diagonals.
//
// The visual detector labels each region of its analysis grid with the kind of
// anomaly found there and merges touching regions of one kind into a single
// finding with this package.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeLabel: a cell holds a label below 0.
package gridgraph
