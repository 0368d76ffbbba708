// File: impl_complete.go — implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once, and mirrors to
//     j→i only if g.Directed() is true.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity: O(n) vertices + O(n²) edges; O(n) extra for the ID slice.
// Determinism: pair order lexicographic by (i,j), i<j; weights fixed per rng.

package builder

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Precompute IDs once in deterministic index order.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		useWeight := g.Weighted()

		// Emit each unordered pair {i,j} with i<j in stable order.
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]

				var w int64
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}

				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
