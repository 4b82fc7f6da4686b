package frontiersmap

import (
	"fmt"

	"github.com/velkorn/frontis/frontier"
	"github.com/velkorn/frontis/occgrid"
	"github.com/velkorn/frontis/params"
	"github.com/velkorn/frontis/strategy"
)

// HasMinimumSize reports whether the frontier's cell count reaches the
// given threshold. Pure predicate; SetFrontiers applies it to every
// candidate.
func HasMinimumSize(f frontier.Frontier, size int) bool {
	return f.Size() >= size
}

// Add appends one frontier unconditionally: no size filtering happens on
// this path, in contrast to SetFrontiers. The stored count grows by
// exactly one regardless of f's size.
func (m *Map) Add(f frontier.Frontier) {
	m.frontiers = append(m.frontiers, f)
}

// SetFrontiers clears the stored sequence and repopulates it with every
// input frontier whose size is ≥ the configured minimum, preserving the
// input's relative order among survivors. This is the supported bulk
// path after each grid re-classification cycle; undersized candidates
// are silently dropped. A later re-configuration never re-filters the
// frontiers already stored here.
func (m *Map) SetFrontiers(fs []frontier.Frontier) {
	m.frontiers = m.frontiers[:0]
	for _, f := range fs {
		if HasMinimumSize(f, m.minSize) {
			m.frontiers = append(m.frontiers, f)
		}
	}
}

// Len returns the number of stored frontiers.
func (m *Map) Len() int {
	return len(m.frontiers)
}

// Frontiers returns a copy of the stored sequence in its current order
// (insertion order, or ascending score after SortAscending).
func (m *Map) Frontiers() []frontier.Frontier {
	out := make([]frontier.Frontier, len(m.frontiers))
	copy(out, m.frontiers)

	return out
}

// MinSize returns the active minimum-size threshold.
func (m *Map) MinSize() int {
	return m.minSize
}

// Configured reports whether Configure has completed successfully.
func (m *Map) Configured() bool {
	return m.configured
}

// Verbosity returns the diagnostic verbosity level.
func (m *Map) Verbosity() int {
	return m.verbosity
}

// AddStrategy appends a scoring strategy to the active list. The list is
// append-only: there is no removal operation, and the Map owns the value
// for its remaining lifetime. Nil strategies are ignored.
func (m *Map) AddStrategy(s strategy.Strategy) {
	if s != nil {
		m.strategies = append(m.strategies, s)
	}
}

// AddNamedStrategy constructs the strategy registered under name with no
// parameters and appends it. Unknown names fail with
// strategy.ErrUnknownStrategy and leave the strategy list unchanged.
func (m *Map) AddNamedStrategy(name string) error {
	return m.AddNamedStrategyParams(name, nil)
}

// AddNamedStrategyParams constructs the strategy registered under name
// with the given parameters and appends it. Unknown names fail with
// strategy.ErrUnknownStrategy, malformed parameters with
// strategy.ErrBadParam; either way the strategy list is unchanged.
func (m *Map) AddNamedStrategyParams(name string, p strategy.Params) error {
	s, err := strategy.New(name, p)
	if err != nil {
		return err
	}
	m.strategies = append(m.strategies, s)

	return nil
}

// StrategyNames returns the names of the active strategies in
// registration order.
func (m *Map) StrategyNames() []string {
	names := make([]string, len(m.strategies))
	for i, s := range m.strategies {
		names[i] = s.Name()
	}

	return names
}

// IsFrontier reports whether the grid cell at row-major index idx lies on
// the boundary between known-free and unknown space. The stored frontier
// sequence is not consulted; this is the standalone classification
// primitive the pipeline uses before building Frontier values.
func (m *Map) IsFrontier(g *occgrid.Grid, idx int) bool {
	if g == nil {
		return false
	}

	return g.IsFrontier(idx)
}

// Configure pulls the minimum frontier size, the strategy list with
// per-strategy parameters, and the verbosity level from the provider,
// then marks the map configured. Registration is all-or-nothing: any
// missing key, malformed value, or unknown strategy name aborts with a
// wrapped error and leaves the map untouched. The new threshold applies
// to subsequent SetFrontiers calls only; already-stored frontiers are
// never re-filtered.
func (m *Map) Configure(p params.Provider) error {
	minSize, err := p.Int(KeyMinFrontierSize)
	if err != nil {
		return fmt.Errorf("frontiersmap: configure: %w", err)
	}
	if minSize < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMinSize, minSize)
	}

	names, err := p.Strings(KeyStrategies)
	if err != nil {
		return fmt.Errorf("frontiersmap: configure: %w", err)
	}

	verbosity := 0
	if p.Has(KeyVerbosity) {
		if verbosity, err = p.Int(KeyVerbosity); err != nil {
			return fmt.Errorf("frontiersmap: configure: %w", err)
		}
	}

	// Build every strategy before committing anything.
	built := make([]strategy.Strategy, 0, len(names))
	for _, name := range names {
		var sp strategy.Params
		nsKey := StrategyNamespace + params.Sep + name
		if p.Has(nsKey) {
			raw, err := p.StringMap(nsKey)
			if err != nil {
				return fmt.Errorf("frontiersmap: configure: %w", err)
			}
			sp = strategy.Params(raw)
		}
		s, err := strategy.New(name, sp)
		if err != nil {
			return fmt.Errorf("frontiersmap: configure: %w", err)
		}
		built = append(built, s)
	}

	m.minSize = minSize
	m.verbosity = verbosity
	m.strategies = append(m.strategies, built...)
	m.configured = true

	return nil
}
