package planarity_test

import (
	"fmt"
	"testing"

	"github.com/josephcbradley/filteredgraphs/core"
	"github.com/josephcbradley/filteredgraphs/planarity"
)

// gridForBench builds a size×size grid graph, the classic planar stress case.
func gridForBench(size int) *core.Graph {
	g := core.NewGraph()
	at := func(r, c int) string { return fmt.Sprintf("%d:%d", r, c) }
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if c < size-1 {
				_, _ = g.AddEdge(at(r, c), at(r, c+1), 0)
			}
			if r < size-1 {
				_, _ = g.AddEdge(at(r, c), at(r+1, c), 0)
			}
		}
	}

	return g
}

func BenchmarkIsPlanar_Grid10(b *testing.B) {
	g := gridForBench(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := planarity.IsPlanar(g); err != nil || !ok {
			b.Fatalf("unexpected verdict: %v %v", ok, err)
		}
	}
}

func BenchmarkIsPlanar_Grid30(b *testing.B) {
	g := gridForBench(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := planarity.IsPlanar(g); err != nil || !ok {
			b.Fatalf("unexpected verdict: %v %v", ok, err)
		}
	}
}
