package occgrid

// IsFrontierAt reports whether the cell at (x,y) is a frontier cell:
// a Free cell with at least one Unknown neighbor under g.Conn.
// Out-of-bounds coordinates are never frontier cells.
// Complexity: O(d), where d = 4 or 8.
func (g *Grid) IsFrontierAt(x, y int) bool {
	if g.StateAt(x, y) != Free {
		return false
	}
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue // the map edge is not observed space
		}
		if g.StateAt(nx, ny) == Unknown {
			return true
		}
	}

	return false
}

// IsFrontier reports whether the cell at row-major index idx is a
// frontier cell. Out-of-range indices are never frontier cells.
// Complexity: O(d).
func (g *Grid) IsFrontier(idx int) bool {
	if idx < 0 || idx >= g.Width*g.Height {
		return false
	}
	x, y := g.Coordinate(idx)

	return g.IsFrontierAt(x, y)
}

// FrontierCells returns the row-major indices of every frontier cell,
// in row-major scan order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(F) for the output, F = number of frontier cells.
func (g *Grid) FrontierCells() []int {
	var cells []int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsFrontierAt(x, y) {
				cells = append(cells, g.Index(x, y))
			}
		}
	}

	return cells
}
