// File: pmfg.go — greedy PMFG construction under the planarity oracle.

package pmfg

import (
	"fmt"
	"sort"

	"github.com/josephcbradley/filteredgraphs/core"
	"github.com/josephcbradley/filteredgraphs/dfs"
	"github.com/josephcbradley/filteredgraphs/matrix"
	"github.com/josephcbradley/filteredgraphs/planarity"
)

// Build constructs the Planar Maximally Filtered Graph of g under the
// distance matrix dist. Matrix row/column i corresponds to the i-th entry of
// g.Vertices() (sorted vertex IDs).
//
// Stages:
//  1. Validate: non-nil graph, connected, complete (N(N−1)/2 skeleton
//     edges), dist square of order N, finite, non-negative, symmetric.
//  2. N ≤ 4: every graph on at most four vertices is planar; return a clone.
//  3. Enumerate candidate pairs over sorted IDs and stable-sort them by
//     ascending distance.
//  4. Greedy filter: insert, test planarity, revert on conflict; stop once
//     3(N−2) edges are kept.
//
// The input graph and matrix are never mutated.
//
// Complexity: O(E log E) for the sort plus O(E) oracle calls of O(V+E) each.
func Build(g *core.Graph, dist matrix.Matrix) (*core.Graph, error) {
	// 1. Validate graph shape
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)

	skeleton := core.SimpleUndirectedView(g)
	if n > 1 {
		res, err := dfs.DFS(skeleton, ids[0])
		if err != nil {
			return nil, fmt.Errorf("pmfg: Build: connectivity sweep: %w", err)
		}
		if len(res.Visited) != n {
			return nil, fmt.Errorf("pmfg: Build: reached %d of %d vertices: %w",
				len(res.Visited), n, ErrDisconnected)
		}
	}
	expected := n * (n - 1) / 2
	if actual := skeleton.EdgeCount(); actual != expected {
		return nil, fmt.Errorf("pmfg: Build: %d edges, want %d for %d vertices: %w",
			actual, expected, n, ErrNotComplete)
	}

	// 2. Validate the distance matrix against the vertex order
	if err := matrix.ValidateDistances(dist, n, matrix.DefaultSymTol); err != nil {
		return nil, fmt.Errorf("pmfg: Build: %w", err)
	}

	// 3. Small graphs are planar as-is
	if n <= 4 {
		return g.Clone(), nil
	}

	// 4. Candidate pairs in ascending-distance order; generation order is
	// lexicographic over sorted IDs, and SliceStable preserves it on ties.
	cands := make([]candidate, 0, expected)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w, err := dist.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("pmfg: Build: %w", err)
			}
			cands = append(cands, candidate{u: ids[i], v: ids[j], weight: w})
		}
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].weight < cands[b].weight })

	// 5. Greedy insert-test-revert under the planarity oracle
	out := core.NewGraph()
	for _, id := range ids {
		if err := out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("pmfg: Build: %w", err)
		}
	}

	maxEdges := 3 * (n - 2) // maximal planar graph bound
	for _, c := range cands {
		if out.EdgeCount() == maxEdges {
			break
		}
		eid, err := out.AddEdge(c.u, c.v, 0)
		if err != nil {
			return nil, fmt.Errorf("pmfg: Build: insert %s-%s: %w", c.u, c.v, err)
		}
		ok, err := planarity.IsPlanar(out)
		if err != nil {
			return nil, fmt.Errorf("pmfg: Build: oracle: %w", err)
		}
		if !ok {
			if err = out.RemoveEdge(eid); err != nil {
				return nil, fmt.Errorf("pmfg: Build: revert %s: %w", eid, err)
			}
		}
	}

	return out, nil
}
