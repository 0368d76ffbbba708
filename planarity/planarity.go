// File: planarity.go
// Role: public entry points (IsPlanar, Check) and the second DFS pass that
//       drives the conflict-pair stack to the verdict.

package planarity

import "github.com/josephcbradley/filteredgraphs/core"

// IsPlanar reports whether g can be drawn in the plane without edge
// crossings. Directed graphs are judged on their undirected skeleton;
// self-loops are ignored. Returns ErrGraphNil if g is nil.
//
// Complexity: O(V + E). The input graph is never mutated.
func IsPlanar(g *core.Graph) (bool, error) {
	res, err := Check(g)
	if err != nil {
		return false, err
	}

	return res.Planar, nil
}

// Check runs the left-right planarity test and returns the verdict together
// with diagnostics. The edge-count bound |E| ≤ 3|V|−6 (for |V| > 2) is
// checked before any traversal; when it already rules out planarity the
// result carries EdgeBoundSkip = true and no DFS is performed.
//
// Complexity: O(V + E). The input graph is never mutated.
func Check(g *core.Graph) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Index a simple undirected skeleton (fresh state per call)
	st := newLRState(g)
	res := &Result{}

	// 3. Fast path: too many edges for any planar graph
	if st.n > 2 && st.edgeCount > 3*st.n-6 {
		res.EdgeBoundSkip = true

		return res, nil
	}

	// 4. First pass: orientation, lowpoints, nesting depth
	st.orientForest()

	// 5. Canonical adjacency order for the second pass
	st.orderAdjacency()

	// 6. Expose the DFS forest roots
	res.Roots = make([]string, len(st.roots))
	for i, r := range st.roots {
		res.Roots[i] = st.ids[r]
	}

	// 7. Second pass: one independent testing traversal per root
	for _, r := range st.roots {
		if !st.dfsTest(r) {
			return res, nil // conflict: verdict stays non-planar
		}
	}

	res.Planar = true

	return res, nil
}

// dfsTest processes vertex v in the testing pass. It visits v's oriented
// out-edges in canonical (nesting-depth) order, pushing a fresh pair for
// each back edge, recursing through tree edges, and merging each child's
// return-edge constraints against the active tree edge. After all children
// are handled, constraints resolved at v's parent are trimmed away.
//
// A return value of false signals a left-right conflict; it propagates
// immediately through all pending recursion with no further mutation.
func (st *lrState) dfsTest(v int) bool {
	e := st.parentEdge[v]
	ord := st.orderedAdj[v]

	for _, ei := range ord {
		ei.stackBottom = len(st.stack)

		if ei == st.parentEdge[ei.to] { // tree edge: recurse
			if !st.dfsTest(ei.to) {
				return false
			}
		} else { // back edge: push a fresh single-edge pair
			ei.lowptEdge = ei
			st.push(&conflictPair{R: interval{high: ei, low: ei}})
		}

		if ei.lowpt < st.height[v] { // ei returns below v
			if ei == ord[0] {
				// First canonical child: its lowpoint edge becomes the
				// parent edge's return edge.
				e.lowptEdge = ei.lowptEdge
			} else if !st.mergeConstraints(ei, e) {
				return false
			}
		}
	}

	if e != nil { // v is not a root
		u := e.from

		// Constraints ending at u are resolved once v's subtree closes.
		st.trimBackEdges(u)

		if e.lowpt < st.height[u] { // e has a return edge itself
			if p := st.top(); p != nil {
				// Defer side resolution: remember the higher-returning chain.
				hl, hr := p.L.high, p.R.high
				if hl != nil && (hr == nil || hl.lowpt > hr.lowpt) {
					e.ref = hl
				} else {
					e.ref = hr
				}
			}
		}
	}

	return true
}
