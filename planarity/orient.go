// File: orient.go
// Role: first DFS pass (edge orientation + lowpoints + nesting depth) and
//       the nesting-depth adjacency ordering consumed by the testing pass.

package planarity

import "sort"

// orientForest runs the orientation pass over every connected component,
// starting a new DFS tree at each still-unvisited vertex. On return every
// skeleton edge has exactly one oriented half-edge carrying lowpt, lowpt2
// and nestingDepth, and every non-root vertex has height and parentEdge set.
//
// Complexity: O(V + E).
func (st *lrState) orientForest() {
	for v := 0; v < st.n; v++ {
		if st.height[v] == heightUnset {
			st.height[v] = 0
			st.roots = append(st.roots, v)
			st.dfsOrient(v)
		}
	}
}

// dfsOrient orients all edges reachable from v and computes their invariants.
//
// For each not-yet-oriented incident edge, the direction v→w is fixed. Tree
// edges (w unvisited) recurse; back edges take lowpt = height(w) directly.
// After the child edge is finished its nesting depth is derived (2·lowpt,
// +1 when chordal, i.e. lowpt2 < height(v)) and its lowpoints are folded
// into the parent edge by a three-way comparison.
func (st *lrState) dfsOrient(v int) {
	e := st.parentEdge[v]

	var w int
	for _, vw := range st.adj[v] {
		// Skip edges already oriented from either endpoint.
		if vw.oriented || vw.twin.oriented {
			continue
		}
		vw.oriented = true
		vw.lowpt = st.height[v]
		vw.lowpt2 = st.height[v]

		w = vw.to
		if st.height[w] == heightUnset { // tree edge
			st.parentEdge[w] = vw
			st.height[w] = st.height[v] + 1
			st.dfsOrient(w)
		} else { // back edge
			vw.lowpt = st.height[w]
		}

		// Nesting depth: even for plain edges, odd for chordal ones.
		vw.nestingDepth = 2 * vw.lowpt
		if vw.lowpt2 < st.height[v] {
			vw.nestingDepth++
		}

		// Fold vw's lowpoints into the parent edge.
		if e != nil {
			switch {
			case vw.lowpt < e.lowpt:
				e.lowpt2 = min(e.lowpt, vw.lowpt2)
				e.lowpt = vw.lowpt
			case vw.lowpt > e.lowpt:
				e.lowpt2 = min(e.lowpt2, vw.lowpt)
			default:
				e.lowpt2 = min(e.lowpt2, vw.lowpt2)
			}
		}
	}
}

// orderAdjacency stable-sorts every vertex's oriented out-edges by ascending
// nesting depth, producing the canonical visiting order of the testing pass.
// Ties (rare degenerate symmetric cases) keep the raw incidence order, which
// is itself deterministic (sorted vertex IDs, sorted edge IDs).
//
// Complexity: O(V + E log E).
func (st *lrState) orderAdjacency() {
	var out []*halfEdge
	for v := 0; v < st.n; v++ {
		out = make([]*halfEdge, 0, len(st.adj[v]))
		for _, he := range st.adj[v] {
			if he.oriented {
				out = append(out, he)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].nestingDepth < out[j].nestingDepth
		})
		st.orderedAdj[v] = out
	}
}
