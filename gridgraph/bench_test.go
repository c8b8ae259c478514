package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// BenchmarkHopDistances measures HopDistances on a 500×500 board
// with roughly 20% random walls.
// Complexity: O(W×H)
func BenchmarkHopDistances(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	gg, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < n*n/5; i++ {
		_ = gg.AddWall(gridgraph.Coord{Row: rng.Intn(n), Col: rng.Intn(n)})
	}
	_ = gg.RemoveWall(gridgraph.Coord{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.HopDistances(gridgraph.Coord{})
	}
}

// BenchmarkNeighbors measures adjacency lookups across every cell.
func BenchmarkNeighbors(b *testing.B) {
	gg, err := gridgraph.New(64, 64)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < gg.Len(); idx++ {
			_ = gg.Neighbors(gg.Coordinate(idx))
		}
	}
}
