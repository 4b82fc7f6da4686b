package occgrid_test

import (
	"errors"
	"testing"

	"github.com/velkorn/frontis/occgrid"
)

// U, F and O keep the grid literals in these tests readable.
const (
	U = -1  // unknown
	F = 0   // free
	O = 100 // occupied
)

//----------------------------------------------------------------------------//
// IsFrontier Tests
//----------------------------------------------------------------------------//

// TestIsFrontierAt_Conn4 verifies the frontier condition under orthogonal
// adjacency: Free with at least one Unknown orthogonal neighbor.
func TestIsFrontierAt_Conn4(t *testing.T) {
	grid := [][]int{
		{U, U, U},
		{F, F, F},
		{O, F, F},
	}
	opts := occgrid.DefaultGridOptions()
	opts.Conn = occgrid.Conn4
	g, err := occgrid.NewGrid(grid, opts)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"FreeBelowUnknown", 0, 1, true},
		{"FreeBelowUnknownMid", 1, 1, true},
		{"FreeBelowUnknownRight", 2, 1, true},
		{"UnknownItself", 1, 0, false},
		{"OccupiedNextToFree", 0, 2, false},
		{"InteriorFree", 1, 2, false},
		{"CornerFree", 2, 2, false},
		{"OutOfBounds", 5, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsFrontierAt(tc.x, tc.y); got != tc.want {
				t.Errorf("IsFrontierAt(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

// TestIsFrontierAt_Conn8 verifies that a diagonal Unknown neighbor is
// sufficient under Conn8.
func TestIsFrontierAt_Conn8(t *testing.T) {
	grid := [][]int{
		{U, F, F},
		{F, F, F},
		{F, F, F},
	}
	opts := occgrid.DefaultGridOptions()
	opts.Conn = occgrid.Conn8
	g, err := occgrid.NewGrid(grid, opts)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	if !g.IsFrontierAt(1, 1) {
		t.Error("IsFrontierAt(1,1) = false under Conn8; want true (diagonal unknown)")
	}
	if g.IsFrontierAt(2, 2) {
		t.Error("IsFrontierAt(2,2) = true; want false (no unknown in reach)")
	}
}

// TestIsFrontier_MapEdge ensures the map border alone does not make a
// frontier: only observed Unknown cells do.
func TestIsFrontier_MapEdge(t *testing.T) {
	grid := [][]int{
		{F, F},
		{F, F},
	}
	g, err := occgrid.NewGrid(grid, occgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for idx := 0; idx < 4; idx++ {
		if g.IsFrontier(idx) {
			t.Errorf("IsFrontier(%d) = true on a fully-known map; want false", idx)
		}
	}
}

// TestFrontierCells checks enumeration order and content.
func TestFrontierCells(t *testing.T) {
	grid := [][]int{
		{U, U, U},
		{F, O, F},
		{F, F, F},
	}
	g, err := occgrid.NewGrid(grid, occgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	got := g.FrontierCells()
	want := []int{g.Index(0, 1), g.Index(2, 1)}
	if len(got) != len(want) {
		t.Fatalf("FrontierCells() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FrontierCells()[%d] = %d; want %d", i, got[i], want[i])
		}
	}
}

//----------------------------------------------------------------------------//
// DistanceField Tests
//----------------------------------------------------------------------------//

// TestDistanceField verifies BFS distances around an obstacle.
func TestDistanceField(t *testing.T) {
	grid := [][]int{
		{F, O, F},
		{F, O, F},
		{F, F, F},
	}
	g, err := occgrid.NewGrid(grid, occgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	dist, err := g.DistanceField(0, 0)
	if err != nil {
		t.Fatalf("DistanceField error: %v", err)
	}
	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{1, 2, 3},
		{2, 2, 4},
		{2, 0, 6}, // around the wall
		{1, 0, -1},
		{1, 1, -1},
	}
	for _, tc := range cases {
		if got := dist[g.Index(tc.x, tc.y)]; got != tc.want {
			t.Errorf("dist(%d,%d) = %d; want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

// TestDistanceField_NonFreeSeed yields an all-unreachable field.
func TestDistanceField_NonFreeSeed(t *testing.T) {
	grid := [][]int{{O, F}, {F, F}}
	g, err := occgrid.NewGrid(grid, occgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	dist, err := g.DistanceField(0, 0)
	if err != nil {
		t.Fatalf("DistanceField error: %v", err)
	}
	for i, d := range dist {
		if d != -1 {
			t.Errorf("dist[%d] = %d from occupied seed; want -1", i, d)
		}
	}
}

// TestDistanceField_SeedOutOfBounds reports ErrCellIndex.
func TestDistanceField_SeedOutOfBounds(t *testing.T) {
	grid := [][]int{{F}}
	g, err := occgrid.NewGrid(grid, occgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if _, err = g.DistanceField(1, 0); !errors.Is(err, occgrid.ErrCellIndex) {
		t.Errorf("DistanceField(1,0) error = %v; want ErrCellIndex", err)
	}
}
