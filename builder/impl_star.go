// File: impl_star.go — implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n counts the hub plus n-1 leaves.
//   - Hub has the fixed ID "Center"; leaves use cfg.idFn(0..n-2).
//   - Emits spokes Center → leaf in ascending leaf index order.
//
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra.

package builder

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center "Center" and
// n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}

		useWeight := g.Weighted()

		for i := 0; i < n-1; i++ {
			leafID := cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}

			var w int64
			if useWeight {
				w = cfg.weightFn(cfg.rng)
			}

			if _, err := g.AddEdge(centerVertexID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, centerVertexID, leafID, w, err)
			}
		}

		return nil
	}
}
