package frontier

import (
	"github.com/velkorn/frontis/occgrid"
)

// Detect finds all contiguous frontier regions of the grid, grouping
// frontier cells (free cells adjacent to unknown space) under g.Conn
// connectivity. Regions are returned in row-major discovery order, and
// each region's cells in BFS visit order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Detect(g *occgrid.Grid) []Frontier {
	total := g.Width * g.Height
	seen := make([]bool, total)
	var regions []Frontier
	offsets := g.NeighborOffsets()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsFrontierAt(x, y) {
				continue
			}
			i0 := g.Index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var cells []occgrid.Cell

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := g.Coordinate(u)
				cells = append(cells, occgrid.Cell{X: ux, Y: uy, Value: g.CellValues[uy][ux]})
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.IsFrontierAt(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, Frontier{cells: cells})
		}
	}

	return regions
}
