// Package frontiersmap is the exploration engine's root container: it
// owns the current candidate frontiers and the active scoring strategies,
// filters candidates by minimum size, and selects the next best
// exploration goal.
//
// What:
//
//   - Map stores frontiers in insertion order and strategies append-only.
//   - SetFrontiers is the bulk-update path used after each grid
//     re-classification: it replaces the stored sequence, dropping
//     candidates below the configured minimum size.
//   - Add appends a single frontier unconditionally — no size filtering.
//     This asymmetry is deliberate and documented: callers on the single
//     insertion path either pre-filter or accept small frontiers.
//   - The aggregate score of a frontier is the sum of all active
//     strategies' scores; per-strategy weighting is configured on each
//     strategy (its "weight" parameter). The combination rule is fixed.
//   - MostValuable / LeastValuable scan the stored order and return the
//     first frontier achieving the extreme score (stable tie-break:
//     first in stored order wins). Neither mutates the sequence.
//   - SortAscending explicitly re-orders the stored sequence in place,
//     least valuable first, with a stable sort.
//   - Configure pulls the minimum size, strategy list with per-strategy
//     parameters, and verbosity from a params.Provider and fails loudly
//     on anything absent or malformed.
//
// Why:
//
//   - One exploration-control loop owns the Map exclusively; the design
//     is single-threaded and synchronous, with selection bounded by
//     (frontier count × strategy count) score evaluations.
//
// Errors:
//
//   - ErrNoFrontiers: selection or sorting on an empty map.
//   - ErrNoStrategies: scoring attempted with zero registered strategies.
//   - ErrBadMinSize: a negative minimum-size threshold.
//   - Configure wraps params.ErrMissingKey / params.ErrBadValue and
//     strategy.ErrUnknownStrategy / strategy.ErrBadParam unchanged, so
//     callers can errors.Is against the underlying kind.
//
// Configuration keys (relative to the provider's namespace):
//
//	min_frontier_size: 5                # required, ≥ 0
//	strategies: [max_size, orientation] # required, ordered
//	verbosity: 1                        # optional, default 0
//	strategy:                           # optional per-strategy parameters
//	  orientation: {weight: "2"}
package frontiersmap
