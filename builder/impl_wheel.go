// File: impl_wheel.go — implementation of Wheel(n).
//
// Contract:
//   - n ≥ 4 (the outer cycle has size n-1, which must be ≥ 3).
//   - Builds the base cycle C_{n-1} via Cycle, then connects the fixed hub
//     "Center" to each rim vertex in ascending ring index order.
//
// Complexity: O(n) vertices + O(2n-2) edges; O(1) extra.

package builder

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		// Cycle uses cfg.idFn(i) for i=0..n-2, matching the spoke loop below.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}

		useWeight := g.Weighted()

		for i := 0; i < n-1; i++ {
			rimID := cfg.idFn(i)

			var w int64
			if useWeight {
				w = cfg.weightFn(cfg.rng)
			}

			if _, err := g.AddEdge(centerVertexID, rimID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodWheel, centerVertexID, rimID, w, err)
			}
		}

		return nil
	}
}
