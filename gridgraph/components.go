// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds every maximal set of neighbouring cells that share
// a non-background label, according to gg.Conn. Cells with different labels
// never join, even when adjacent.
//
// Components are returned in row-major order of their first cell, so the
// result is deterministic for a given grid.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() []Component {
	seen := make([]bool, len(gg.cells))
	comps := []Component{}

	for i0, label := range gg.cells {
		if label == Background || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if seen[vi] || gg.cells[vi] != label {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, Component{Label: label, Cells: queue})
	}

	return comps
}
