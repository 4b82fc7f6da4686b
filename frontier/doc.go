// Package frontier defines the Frontier entity — one contiguous boundary
// region between known-free and unknown space — and detects all such
// regions in an occupancy grid.
//
// What:
//
//   - Frontier is a compact value type over a set of grid cells, exposing
//     its cell count and centroid. It is safe to copy and store; the cells
//     themselves remain owned by the grid snapshot they came from.
//   - Detect groups the frontier cells of an occgrid.Grid into contiguous
//     regions under the grid's connectivity, in deterministic row-major
//     discovery order.
//
// Why:
//
//   - Exploration planners rank whole boundary regions, not single cells.
//   - Deterministic detection order gives scoring a stable tie-break.
//
// Complexity:
//
//   - Detect: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Size/Centroid: O(1) / O(n) over the region's cells.
package frontier
