// Package frontis is a frontier-scoring and selection engine for
// frontier-based exploration of occupancy grids.
//
// 🚀 What is frontis?
//
//	A small, dependency-light library that ranks candidate exploration
//	targets ("frontiers": boundaries between known-free and unknown space)
//	and picks the next best goal for an autonomous robot:
//		• Occupancy grids: tri-state cells, 4/8-connectivity, frontier-cell classification
//		• Frontier detection: contiguous boundary regions via BFS grouping
//		• Pluggable scoring: named strategies built from string parameter maps
//		• Selection: weighted-sum aggregation, stable most/least-valuable picks
//		• Configuration: namespaced key-value providers, YAML-backed if needed
//
// ✨ Why choose frontis?
//
//   - Deterministic – stable tie-breaks, explicit scoring context, no hidden state
//   - Predictable failures – sentinel errors for every misconfiguration
//   - Pure Go – no cgo, host-framework and transport agnostic
//   - Extensible – register your own strategies by name alongside the built-ins
//
// Everything is organized under five subpackages:
//
//	occgrid/      — occupancy-grid snapshot, connectivity, frontier-cell tests, distance fields
//	frontier/     — the Frontier entity and contiguous-region detection
//	strategy/     — scoring strategy interface, registry and built-in valuations
//	params/       — namespaced parameter providers (map- and YAML-backed)
//	frontiersmap/ — the container: filtered ingestion, aggregation, selection, ordering
//
// Quick ASCII example:
//
//	    ?????
//	    ?···?        · known-free    # occupied
//	    ?·R·?        ? unknown       R robot
//	    ?#··?
//	    ?????
//
//	the ring of free cells touching '?' forms the frontiers to be ranked.
//
// Dive into the per-package doc.go files for options, errors and worked
// examples of the full detect → filter → score → select pipeline.
//
//	go get github.com/velkorn/frontis
package frontis
