package frontiersmap

import (
	"fmt"
	"sort"

	"github.com/velkorn/frontis/frontier"
	"github.com/velkorn/frontis/strategy"
)

// Score returns the frontier's aggregate score under the active strategy
// list: the sum of every strategy's score for f. Per-strategy weighting
// belongs to the strategies themselves (their "weight" parameter); the
// summation rule is fixed. Fails with ErrNoStrategies when the list is
// empty, since a sum over nothing would silently rank all frontiers equal.
func (m *Map) Score(ctx strategy.Context, f frontier.Frontier) (float64, error) {
	if len(m.strategies) == 0 {
		return 0, ErrNoStrategies
	}
	var total float64
	for _, s := range m.strategies {
		total += s.Score(ctx, f)
	}

	return total, nil
}

// Less reports whether f1 is strictly less valuable than f2 under the
// aggregate score. With deterministic strategies over a fixed context
// this is a strict weak ordering, suitable for sorting.
func (m *Map) Less(ctx strategy.Context, f1, f2 frontier.Frontier) (bool, error) {
	s1, err := m.Score(ctx, f1)
	if err != nil {
		return false, err
	}
	s2, err := m.Score(ctx, f2)
	if err != nil {
		return false, err
	}

	return s1 < s2, nil
}

// scoreAll evaluates every stored frontier exactly once, so selection and
// sorting cost (frontier count × strategy count) score calls.
func (m *Map) scoreAll(ctx strategy.Context) ([]float64, error) {
	if len(m.frontiers) == 0 {
		return nil, ErrNoFrontiers
	}
	if len(m.strategies) == 0 {
		return nil, ErrNoStrategies
	}
	scores := make([]float64, len(m.frontiers))
	for i, f := range m.frontiers {
		var total float64
		for _, s := range m.strategies {
			total += s.Score(ctx, f)
		}
		scores[i] = total
	}

	return scores, nil
}

// MostValuable returns the frontier with the greatest aggregate score.
// Ties break stably: the first frontier in stored order achieving the
// maximum wins. The stored sequence is not mutated.
func (m *Map) MostValuable(ctx strategy.Context) (frontier.Frontier, error) {
	scores, err := m.scoreAll(ctx)
	if err != nil {
		return frontier.Frontier{}, err
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return m.frontiers[best], nil
}

// LeastValuable returns the frontier with the smallest aggregate score,
// with the same stable first-wins tie-break as MostValuable. The stored
// sequence is not mutated.
func (m *Map) LeastValuable(ctx strategy.Context) (frontier.Frontier, error) {
	scores, err := m.scoreAll(ctx)
	if err != nil {
		return frontier.Frontier{}, err
	}
	worst := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[worst] {
			worst = i
		}
	}

	return m.frontiers[worst], nil
}

// SortAscending re-orders the stored sequence in place by ascending
// aggregate score, least valuable first. The sort is stable, so frontiers
// with equal scores keep their relative stored order and sorting twice
// yields the same sequence. This is the one read path that mutates
// iteration order; MostValuable and LeastValuable do not.
func (m *Map) SortAscending(ctx strategy.Context) error {
	scores, err := m.scoreAll(ctx)
	if err != nil {
		return err
	}
	idx := make([]int, len(m.frontiers))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	sorted := make([]frontier.Frontier, len(m.frontiers))
	for i, j := range idx {
		sorted[i] = m.frontiers[j]
	}
	m.frontiers = sorted

	return nil
}

// PrintAll emits one diagnostic line per stored frontier with its
// per-strategy and aggregate scores, when verbosity is at least 1.
// Purely observational; never fails.
func (m *Map) PrintAll(ctx strategy.Context) {
	if m.verbosity < 1 {
		return
	}
	for i, f := range m.frontiers {
		var total float64
		line := fmt.Sprintf("frontier %d: size=%d", i, f.Size())
		for _, s := range m.strategies {
			v := s.Score(ctx, f)
			total += v
			line += fmt.Sprintf(" %s=%.3f", s.Name(), v)
		}
		fmt.Fprintf(m.logw, "%s aggregate=%.3f\n", line, total)
	}
}
