package strategy

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/velkorn/frontis/frontier"
	"github.com/velkorn/frontis/occgrid"
)

// Sentinel errors for strategy construction.
var (
	// ErrUnknownStrategy indicates a name with no registered factory.
	ErrUnknownStrategy = errors.New("strategy: unknown strategy name")
	// ErrBadParam indicates a parameter value that could not be parsed.
	ErrBadParam = errors.New("strategy: invalid strategy parameter")
)

// Names of the built-in strategies.
const (
	MaxSize              = "max_size"
	MinEuclideanDistance = "min_euclidean_distance"
	MinPathDistance      = "min_path_distance"
	Orientation          = "orientation"
)

// Context carries the exploration state a strategy may consult while
// scoring. It is passed explicitly on every call; strategies hold no
// ambient state of their own.
type Context struct {
	// Grid is the current occupancy snapshot. May be nil for strategies
	// that only use the frontier itself (e.g. max_size).
	Grid *occgrid.Grid
	// Robot is the robot pose in cell coordinates.
	Robot occgrid.Pose
}

// Strategy is one named frontier valuation. Implementations must be
// deterministic functions of (ctx, f), return only finite values, and be
// immutable once constructed.
type Strategy interface {
	// Name returns the registry name the strategy was built under.
	Name() string
	// Score returns the frontier's desirability; higher is better.
	Score(ctx Context, f frontier.Frontier) float64
}

// Params is the string-keyed configuration map a strategy is built from.
type Params map[string]string

// Float parses the parameter at key as a float64, returning def when the
// key is absent. Malformed values yield ErrBadParam.
func (p Params) Float(key string, def float64) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q=%q", ErrBadParam, key, raw)
	}

	return v, nil
}

// Factory builds a Strategy from its parameter map.
type Factory func(p Params) (Strategy, error)

// registry maps strategy names to factories. Guarded for hosts that
// register strategies from init code in several packages.
var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		MaxSize:              newMaxSize,
		MinEuclideanDistance: newMinEuclideanDistance,
		MinPathDistance:      newMinPathDistance,
		Orientation:          newOrientation,
	}
)

// Register makes a host-defined strategy constructible by New under the
// given name, replacing any previous factory registered under it.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// Known returns the sorted names of all registered strategies.
func Known() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// New constructs the strategy registered under name with the given
// parameters. Returns ErrUnknownStrategy for unregistered names and
// ErrBadParam for malformed parameter values.
func New(name string, p Params) (Strategy, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return f(p)
}
