package occgrid

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// occupancy values. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	g := &Grid{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		OccupiedThreshold: opts.OccupiedThreshold,
		neighborOffsets:   offsets,
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// StateAt classifies the cell at (x,y): negative values are Unknown,
// values ≥ OccupiedThreshold are Occupied, everything else is Free.
// Out-of-bounds coordinates classify as Unknown.
// Complexity: O(1).
func (g *Grid) StateAt(x, y int) CellState {
	if !g.InBounds(x, y) {
		return Unknown
	}
	v := g.CellValues[y][x]
	switch {
	case v < 0:
		return Unknown
	case v >= g.OccupiedThreshold:
		return Occupied
	default:
		return Free
	}
}

// State classifies the cell at row-major index idx.
// Out-of-range indices classify as Unknown.
// Complexity: O(1).
func (g *Grid) State(idx int) CellState {
	if idx < 0 || idx >= g.Width*g.Height {
		return Unknown
	}
	x, y := g.Coordinate(idx)

	return g.StateAt(x, y)
}

// CellAt returns the Cell at row-major index idx.
// Returns ErrCellIndex if idx is out of range.
func (g *Grid) CellAt(idx int) (Cell, error) {
	if idx < 0 || idx >= g.Width*g.Height {
		return Cell{}, ErrCellIndex
	}
	x, y := g.Coordinate(idx)

	return Cell{X: x, Y: y, Value: g.CellValues[y][x]}, nil
}
