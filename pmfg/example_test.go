package pmfg_test

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/builder"
	"github.com/josephcbradley/filteredgraphs/matrix"
	"github.com/josephcbradley/filteredgraphs/pmfg"
)

// ExampleBuild filters K5 down to its planar maximally filtered graph.
// The pair {3,4} carries the largest distance, so it is the one edge dropped.
func ExampleBuild() {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	dist, err := matrix.NewDense(5, 5)
	if err != nil {
		fmt.Println("matrix:", err)

		return
	}
	w := 1.0
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			_ = dist.Set(i, j, w)
			_ = dist.Set(j, i, w)
			w++
		}
	}

	out, err := pmfg.Build(g, dist)
	if err != nil {
		fmt.Println("pmfg:", err)

		return
	}

	fmt.Println("edges kept:", out.EdgeCount())
	fmt.Println("heaviest pair kept:", out.HasEdge("3", "4"))
	// Output:
	// edges kept: 9
	// heaviest pair kept: false
}
