package frontiersmap_test

import (
	"math/rand"
	"testing"

	"github.com/velkorn/frontis/frontier"
	"github.com/velkorn/frontis/frontiersmap"
	"github.com/velkorn/frontis/occgrid"
	"github.com/velkorn/frontis/strategy"
)

// benchMap builds a map holding n random-size frontiers and the two cheap
// built-in strategies.
func benchMap(b *testing.B, n int) (*frontiersmap.Map, strategy.Context) {
	rng := rand.New(rand.NewSource(42))
	fs := make([]frontier.Frontier, n)
	for i := range fs {
		size := 1 + rng.Intn(40)
		cells := make([]occgrid.Cell, size)
		for j := range cells {
			cells[j] = occgrid.Cell{X: rng.Intn(500), Y: rng.Intn(500)}
		}
		fs[i] = frontier.New(cells)
	}

	m := frontiersmap.New()
	if err := m.AddNamedStrategy(strategy.MaxSize); err != nil {
		b.Fatalf("setup AddNamedStrategy failed: %v", err)
	}
	if err := m.AddNamedStrategy(strategy.MinEuclideanDistance); err != nil {
		b.Fatalf("setup AddNamedStrategy failed: %v", err)
	}
	m.SetFrontiers(fs)

	return m, strategy.Context{Robot: occgrid.Pose{X: 250, Y: 250}}
}

// BenchmarkMostValuable measures selection over 1000 frontiers.
// Complexity: O(F × strategies)
func BenchmarkMostValuable(b *testing.B) {
	m, ctx := benchMap(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.MostValuable(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSortAscending measures the in-place stable ordering of 1000
// frontiers. Complexity: O(F log F + F × strategies)
func BenchmarkSortAscending(b *testing.B) {
	m, ctx := benchMap(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.SortAscending(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
