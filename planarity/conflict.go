// File: conflict.go
// Role: the conflict-pair stack algebra of the testing pass — merging the
//       return edges of a child edge into a combined pair (mergeConstraints)
//       and discarding constraints resolved when a subtree closes
//       (trimBackEdges).
//
// The ref chains built here encode side information a future embedding
// extension depends on; their exact walking order is deliberate and must not
// be reordered.

package planarity

// mergeConstraints integrates the return edges of child edge ei into the
// stack, against the active tree edge e of the current vertex. It reports
// false the moment a left-right contradiction is found.
//
// Phase 1 (merge-return): pop every pair above ei's recorded stack bottom.
// Each popped pair is normalized so its constraints sit on R (swap if L is
// non-empty; if L is still non-empty the pair is two-sided — conflict).
// Chains returning strictly above lowpt(e) are spliced onto the accumulator's
// R chain; chains that reach lowpt(e) align onto e's lowpoint edge instead.
//
// Phase 2 (merge-conflicting): while the top pair conflicts with ei on either
// side, pop it, normalize the conflict onto R (fail if both sides conflict),
// splice its R chain beneath the accumulator's R chain and its L chain
// beneath the accumulator's L chain.
//
// The combined pair is pushed back unless empty.
func (st *lrState) mergeConstraints(ei, e *halfEdge) bool {
	var p conflictPair // accumulator for the combined constraints
	var q *conflictPair

	// Phase 1: merge return edges of ei into p.R.
	for len(st.stack) > ei.stackBottom {
		q = st.pop()
		if !q.L.empty() {
			q.swap()
		}
		if !q.L.empty() { // constraints on both sides cannot be normalized
			return false
		}
		if q.R.low.lowpt > e.lowpt {
			// Chain returns above lowpt(e): splice below the accumulator.
			if p.R.empty() {
				p.R.high = q.R.high
			} else {
				p.R.low.ref = q.R.high
			}
			p.R.low = q.R.low
		} else {
			// Chain aligns with lowpt(e): redirect onto e's lowpoint edge.
			q.R.low.ref = e.lowptEdge
		}
	}

	// Phase 2: merge conflicting return edges of ei's earlier siblings into p.L.
	for st.top() != nil && (st.top().L.conflictsWith(ei) || st.top().R.conflictsWith(ei)) {
		q = st.pop()
		if q.R.conflictsWith(ei) {
			q.swap()
		}
		if q.R.conflictsWith(ei) { // conflicts on both sides
			return false
		}
		// Splice the interval below lowpt(ei) beneath the accumulator's R chain.
		if p.R.low != nil {
			p.R.low.ref = q.R.high
		}
		if q.R.low != nil {
			p.R.low = q.R.low
		}
		// Splice the popped L chain beneath the accumulator's L chain.
		if p.L.empty() {
			p.L.high = q.L.high
		} else {
			p.L.low.ref = q.L.high
		}
		p.L.low = q.L.low
	}

	if !(p.L.empty() && p.R.empty()) {
		st.push(&p)
	}

	return true
}

// trimBackEdges discards constraints that became resolved when the subtree
// under u's child closed out: back edges ending exactly at u can no longer
// conflict with anything processed later.
//
// First, whole pairs whose minimum lowpoint equals height(u) are popped and
// dropped; the low edge of each dropped L interval is pinned to sideLeft.
// Then the new top pair (if any) has both interval high pointers walked
// forward through ref past edges terminating at u; an interval emptied this
// way pins its remaining low edge to sideLeft and redirects its ref to the
// other side's low edge before clearing.
func (st *lrState) trimBackEdges(u int) {
	var p *conflictPair

	// Drop fully resolved pairs.
	for len(st.stack) > 0 && st.top().lowest() == st.height[u] {
		p = st.pop()
		if p.L.low != nil {
			p.L.low.side = sideLeft
		}
	}

	if len(st.stack) == 0 {
		return
	}

	// One more pair to consider: trim both interval heads past u.
	p = st.pop()

	for p.L.high != nil && p.L.high.to == u {
		p.L.high = p.L.high.ref
	}
	if p.L.high == nil && p.L.low != nil { // interval just emptied
		p.L.low.ref = p.R.low
		p.L.low.side = sideLeft
		p.L.low = nil
	}

	for p.R.high != nil && p.R.high.to == u {
		p.R.high = p.R.high.ref
	}
	if p.R.high == nil && p.R.low != nil { // interval just emptied
		p.R.low.ref = p.L.low
		p.R.low.side = sideLeft
		p.R.low = nil
	}

	st.push(p)
}
