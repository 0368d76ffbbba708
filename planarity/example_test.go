package planarity_test

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/builder"
	"github.com/josephcbradley/filteredgraphs/planarity"
)

// ExampleIsPlanar contrasts K4 (planar) with K5 (not planar).
func ExampleIsPlanar() {
	k4, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	k5, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	ok4, _ := planarity.IsPlanar(k4)
	ok5, _ := planarity.IsPlanar(k5)
	fmt.Println("K4 planar:", ok4)
	fmt.Println("K5 planar:", ok5)
	// Output:
	// K4 planar: true
	// K5 planar: false
}

// ExampleCheck shows the diagnostics: K5 is rejected by the edge-count bound
// alone, while K3,3 needs the full left-right test.
func ExampleCheck() {
	k5, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	k33, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(3, 3))
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	r5, _ := planarity.Check(k5)
	r33, _ := planarity.Check(k33)
	fmt.Println("K5:", r5.Planar, "bound-only:", r5.EdgeBoundSkip)
	fmt.Println("K3,3:", r33.Planar, "bound-only:", r33.EdgeBoundSkip)
	// Output:
	// K5: false bound-only: true
	// K3,3: false bound-only: false
}
