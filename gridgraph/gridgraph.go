// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of labels indexed [y][x]. The input is copied.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < Background {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeLabel, x, y, v)
			}
		}
		cells = append(cells, row...)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{Width: w, Height: h, Conn: opts.Conn, cells: cells, offsets: offsets}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Label returns the label of cell (x,y), or ErrOutOfRange.
func (gg *GridGraph) Label(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, gg.Width, gg.Height)
	}
	return gg.cells[gg.index(x, y)], nil
}

// NeighborOffsets returns the (dx,dy) steps used for adjacency.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return append([][2]int(nil), gg.offsets...)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
