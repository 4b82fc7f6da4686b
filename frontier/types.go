package frontier

import (
	"github.com/velkorn/frontis/occgrid"
)

// Frontier is one contiguous unexplored-boundary region. It is a value
// type: copies share no mutable state with the original, and the engine
// compares frontiers only through Size and the scores derived from them.
type Frontier struct {
	cells []occgrid.Cell
}

// New builds a Frontier from the given cells. The input is copied, so the
// caller may reuse or mutate its slice afterwards.
func New(cells []occgrid.Cell) Frontier {
	cp := make([]occgrid.Cell, len(cells))
	copy(cp, cells)

	return Frontier{cells: cp}
}

// Size returns the number of cells in the region.
func (f Frontier) Size() int {
	return len(f.cells)
}

// Cells returns a copy of the region's cells in discovery order.
func (f Frontier) Cells() []occgrid.Cell {
	cp := make([]occgrid.Cell, len(f.cells))
	copy(cp, f.cells)

	return cp
}

// Centroid returns the arithmetic mean of the region's cell coordinates.
// The centroid of an empty frontier is (0,0).
func (f Frontier) Centroid() (x, y float64) {
	if len(f.cells) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, c := range f.cells {
		sx += float64(c.X)
		sy += float64(c.Y)
	}
	n := float64(len(f.cells))

	return sx / n, sy / n
}
