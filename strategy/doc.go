// Package strategy defines the pluggable scoring functions that rank
// exploration frontiers, plus the name-indexed registry they are
// constructed from.
//
// What:
//
//   - Strategy scores one frontier against an explicit Context (grid
//     snapshot + robot pose); higher scores mean more desirable targets.
//   - Params is the string-keyed parameter map every strategy is built
//     from; all built-ins accept a "weight" multiplier (default 1).
//   - New constructs a registered strategy by name; Register adds
//     host-defined strategies alongside the built-ins.
//
// Built-in strategies:
//
//   - max_size               — weight × frontier cell count.
//   - min_euclidean_distance — −weight × straight-line distance from the
//     robot to the frontier centroid.
//   - min_path_distance      — −weight × free-space BFS distance from the
//     robot to the nearest frontier cell; unreachable frontiers cost the
//     full grid area.
//   - orientation            — weight × cos(bearing to centroid − robot
//     heading); rewards frontiers ahead of the robot.
//
// Contract:
//
//   - Scores are always finite; higher is more desirable.
//   - Strategies are deterministic and immutable after construction, so a
//     comparison batch over a fixed grid snapshot sees a total, stable
//     scoring function.
//
// Complexity:
//
//   - max_size, min_euclidean_distance, orientation: O(n) over the
//     frontier's cells (centroid), Memory: O(1).
//   - min_path_distance: O(W×H×d) per call (BFS field), Memory: O(W×H).
//
// Errors:
//
//   - ErrUnknownStrategy: New was given a name with no registered factory.
//   - ErrBadParam: a parameter value could not be parsed.
package strategy
