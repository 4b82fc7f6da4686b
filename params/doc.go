// Package params provides the namespaced key-value parameter store the
// exploration engine is configured from.
//
// What:
//
//   - Provider is the read interface: typed getters (String, Int, Strings,
//     StringMap) over "/"-separated namespaced keys, plus Sub to re-root a
//     provider inside a namespace.
//   - MapProvider implements Provider over nested in-memory maps, the shape
//     produced by unmarshaling YAML or JSON configuration.
//   - ParseYAML / LoadYAML build a MapProvider directly from YAML bytes or
//     a file, via gopkg.in/yaml.v3.
//
// Why:
//
//   - The engine must fail loudly on absent or malformed configuration
//     instead of proceeding with undefined thresholds; every getter
//     returns a sentinel-wrapped error naming the offending key.
//   - Hosts embed the engine under different configuration systems; any of
//     them can satisfy Provider.
//
// Errors:
//
//   - ErrMissingKey: the requested key (or namespace) is absent.
//   - ErrBadValue: the stored value cannot be converted to the requested type.
//
// Example keys for the frontiers map:
//
//	min_frontier_size: 5
//	verbosity: 1
//	strategies: [max_size, min_euclidean_distance]
//	strategy:
//	  min_euclidean_distance:
//	    weight: "2.5"
package params
