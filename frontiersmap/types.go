package frontiersmap

import (
	"errors"
	"io"

	"github.com/velkorn/frontis/frontier"
	"github.com/velkorn/frontis/strategy"
)

// Sentinel errors returned by the frontiers map.
var (
	// ErrNoFrontiers indicates selection or sorting on an empty map.
	ErrNoFrontiers = errors.New("frontiersmap: no frontiers available")

	// ErrNoStrategies indicates scoring was attempted with zero
	// registered strategies; an aggregate score would be meaningless.
	ErrNoStrategies = errors.New("frontiersmap: no scoring strategies registered")

	// ErrBadMinSize indicates a negative minimum-size threshold.
	ErrBadMinSize = errors.New("frontiersmap: minimum frontier size must be non-negative")
)

// Configuration keys read by Configure, relative to the provider's namespace.
const (
	// KeyMinFrontierSize holds the minimum cell count a frontier needs to
	// survive SetFrontiers. Required, non-negative integer.
	KeyMinFrontierSize = "min_frontier_size"
	// KeyStrategies holds the ordered list of strategy names to register.
	// Required.
	KeyStrategies = "strategies"
	// KeyVerbosity holds the diagnostic verbosity level. Optional, default 0.
	KeyVerbosity = "verbosity"
	// StrategyNamespace is the namespace holding per-strategy parameter
	// maps, one child namespace per strategy name.
	StrategyNamespace = "strategy"
)

// Map owns the current frontier candidates and the active strategy list.
// It is created empty and unconfigured; it is not internally synchronized,
// so a single exploration-control loop must own it exclusively.
type Map struct {
	frontiers  []frontier.Frontier
	strategies []strategy.Strategy

	minSize    int
	configured bool
	verbosity  int
	logw       io.Writer
}

// Option configures a Map via functional arguments.
type Option func(*Map)

// WithMinSize sets the minimum cell count for SetFrontiers filtering.
// Must pass a non-negative value; negative values cause ErrBadMinSize.
func WithMinSize(n int) Option {
	return func(m *Map) {
		if n < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMinSize.Error())
		}
		m.minSize = n
	}
}

// WithVerbosity sets the diagnostic verbosity level; PrintAll emits
// nothing below level 1.
func WithVerbosity(v int) Option {
	return func(m *Map) {
		m.verbosity = v
	}
}

// WithLogWriter directs diagnostic output to w. The default is io.Discard.
func WithLogWriter(w io.Writer) Option {
	return func(m *Map) {
		if w != nil {
			m.logw = w
		}
	}
}

// WithStrategy registers a scoring strategy at construction time,
// equivalent to calling AddStrategy afterwards.
func WithStrategy(s strategy.Strategy) Option {
	return func(m *Map) {
		if s != nil {
			m.strategies = append(m.strategies, s)
		}
	}
}

// New returns an empty, unconfigured Map with the given options applied.
func New(opts ...Option) *Map {
	m := &Map{logw: io.Discard}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
