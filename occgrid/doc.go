// Package occgrid treats a 2D occupancy grid as the substrate for
// frontier-based exploration, classifying cells and answering the
// adjacency queries the scoring pipeline needs.
//
// What:
//
//   - Grid wraps a rectangular [][]int occupancy snapshot with a tunable
//     OccupiedThreshold: negative values are Unknown, values ≥ threshold
//     are Occupied, everything else is Free.
//   - IsFrontier reports whether a cell lies on the boundary between
//     known-free and unknown space (a Free cell with ≥1 Unknown neighbor).
//   - FrontierCells enumerates all frontier cells in row-major order.
//   - DistanceField computes BFS geodesic distances over free space,
//     for path-aware frontier valuations.
//
// Why:
//
//   - Exploration: frontier cells are the seeds of candidate goal regions.
//   - Goal ranking: geodesic (not straight-line) distance reflects what a
//     robot actually has to traverse.
//   - Map analysis: count and locate the reachable unknown boundary.
//
// Complexity:
//
//   - IsFrontier:     O(d)          (d = number of neighbors, 4 or 8).
//   - FrontierCells:  O(W×H×d),  Memory: O(F)   (F = frontier cells found).
//   - DistanceField:  O(W×H×d),  Memory: O(W×H).
//
// Options:
//
//   - GridOptions.OccupiedThreshold: minimum value considered Occupied.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellIndex: a cell index or coordinate is out of range.
package occgrid
