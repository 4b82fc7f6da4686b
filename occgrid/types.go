// Package occgrid defines core types, options, and sentinel errors
// for occupancy-grid analysis.
package occgrid

import (
	"errors"
	"math"
)

// Sentinel errors for occgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("occgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("occgrid: all rows must have the same length")
	// ErrCellIndex indicates a requested cell index or coordinate is out of range.
	ErrCellIndex = errors.New("occgrid: cell index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// CellState classifies one occupancy cell.
type CellState int

const (
	// Free marks a cell known to be traversable.
	Free CellState = iota
	// Occupied marks a cell known to contain an obstacle.
	Occupied
	// Unknown marks a cell with no observation yet.
	Unknown
)

// String returns the lowercase name of the state.
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Occupied:
		return "occupied"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original occupancy value at (X, Y)
}

// Pose is a robot pose in cell coordinates: position (X, Y) plus heading
// Theta in radians, measured counter-clockwise from the +X axis.
type Pose struct {
	X, Y  float64
	Theta float64
}

// Cell rounds the pose position to the nearest grid coordinates.
func (p Pose) Cell() (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// DefaultOccupiedThreshold is the minimum occupancy value treated as an
// obstacle; values follow the 0..100 occupancy-probability convention,
// with any negative value meaning Unknown.
const DefaultOccupiedThreshold = 65

// GridOptions contains tunable parameters for grid classification.
type GridOptions struct {
	// OccupiedThreshold specifies the minimum cell value considered Occupied.
	OccupiedThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OccupiedThreshold=DefaultOccupiedThreshold, Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OccupiedThreshold: DefaultOccupiedThreshold,
		Conn:              Conn4,
	}
}

// Grid is an immutable occupancy snapshot. Width and Height define
// dimensions; CellValues[y][x] holds the original input value.
// Conn and OccupiedThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	OccupiedThreshold int
	neighborOffsets   [][2]int
}
