// File: impl_bipartite.go — implementation of CompleteBipartite(n1,n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left partition IDs "{leftPrefix}{i}", right "{rightPrefix}{j}".
//   - Emits every cross-pair L_i → R_j; mirrors only if g.Directed().
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
// Determinism: i asc over left, inner j asc over right.

package builder

import (
	"fmt"

	"github.com/josephcbradley/filteredgraphs/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		lp, rp := cfg.leftPrefix, cfg.rightPrefix

		leftIDs := make([]string, n1)
		for i := 0; i < n1; i++ {
			id := fmt.Sprintf("%s%d", lp, i)
			leftIDs[i] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}

		rightIDs := make([]string, n2)
		for j := 0; j < n2; j++ {
			id := fmt.Sprintf("%s%d", rp, j)
			rightIDs[j] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}

		useWeight := g.Weighted()

		// Emit all cross edges in stable (i over left, j over right) order.
		for i := 0; i < n1; i++ {
			u := leftIDs[i]
			for j := 0; j < n2; j++ {
				v := rightIDs[j]

				var w int64
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}

				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCompleteBipartite, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCompleteBipartite, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
