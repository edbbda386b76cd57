// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeLabel indicates a cell label below zero.
	ErrNegativeLabel = errors.New("gridgraph: cell labels must be >= 0")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("gridgraph: coordinate out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Background is the label of cells that belong to no component.
const Background = 0

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Component is one connected set of cells sharing Label.
// Cells holds row-major indices in breadth-first discovery order; Cells[0]
// is the component's first cell in row-major order.
type Component struct {
	Label int
	Cells []int
}

// GridGraph is an immutable labelled grid.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	cells         []int // row-major labels
	offsets       [][2]int
}
