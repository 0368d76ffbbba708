// Package planarity types: sentinel errors, the public Result, and the
// internal half-edge / interval / conflict-pair records driven by the two
// DFS passes. All per-call state lives in lrState; nothing is global.
package planarity

import (
	"errors"

	"github.com/josephcbradley/filteredgraphs/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to IsPlanar or Check.
var ErrGraphNil = errors.New("planarity: graph is nil")

// heightUnset marks a vertex not yet reached by the orientation pass.
const heightUnset = -1

// Side constants for the (deferred) left-right embedding assignment.
// sideRight is the default; trim operations pin resolved edges to sideLeft.
const (
	sideRight int8 = 1
	sideLeft  int8 = -1
)

// Result reports the verdict of a planarity check together with diagnostics.
type Result struct {
	// Planar is the verdict: true iff the graph embeds in the plane.
	Planar bool

	// EdgeBoundSkip is true when the verdict was reached from the edge-count
	// bound alone (|E| > 3|V|−6 for |V| > 2), with no traversal performed.
	EdgeBoundSkip bool

	// Roots lists the DFS forest roots in traversal order, one per connected
	// component reached by the orientation pass. Empty on the fast path.
	Roots []string
}

// halfEdge is one orientation of an undirected skeleton edge. Exactly one of
// a half-edge and its twin is marked oriented by the first pass; only the
// oriented one carries meaningful lowpoint and chain state afterwards.
//
// A nil *halfEdge is the explicit "no edge" value throughout the package;
// there is no sentinel vertex pair standing in for absence.
type halfEdge struct {
	from, to int       // dense vertex indices (source → destination)
	twin     *halfEdge // the opposite orientation of the same edge
	oriented bool      // set once when the first pass picks this direction

	lowpt        int       // height of the lowest ancestor reachable from the subtree
	lowpt2       int       // height of the second-lowest such ancestor
	nestingDepth int       // visiting-order key for the second pass
	side         int8      // embedding side, sideRight until pinned by a trim
	lowptEdge    *halfEdge // the back edge realizing lowpt
	ref          *halfEdge // lazy forward chain over interval endpoints
	stackBottom  int       // stack size when this edge began processing
}

// interval is a chain of back edges, linked high→low through ref.
// The zero value (both ends nil) is the empty interval.
type interval struct {
	high, low *halfEdge
}

// empty reports whether the interval holds no back edges.
func (iv interval) empty() bool {
	return iv.high == nil && iv.low == nil
}

// conflictsWith reports whether the interval constrains b: a non-empty
// interval whose high edge returns strictly lower than b does.
func (iv interval) conflictsWith(b *halfEdge) bool {
	return !iv.empty() && iv.high.lowpt > b.lowpt
}

// conflictPair holds the left and right interval chains of unresolved side
// constraints accumulated while closing out a subtree.
type conflictPair struct {
	L, R interval
}

// swap exchanges the left and right intervals, normalizing conflicts onto R.
func (p *conflictPair) swap() {
	p.L, p.R = p.R, p.L
}

// lowest returns the minimum lowpoint across the pair's non-empty intervals.
// Callers guarantee at least one interval is non-empty (empty pairs are
// never pushed).
func (p *conflictPair) lowest() int {
	if p.L.empty() {
		return p.R.low.lowpt
	}
	if p.R.empty() {
		return p.L.low.lowpt
	}

	return min(p.L.low.lowpt, p.R.low.lowpt)
}

// lrState is the mutable context of one planarity query: the indexed simple
// skeleton, both passes' per-vertex/per-edge data, and the conflict-pair
// stack. It is created fresh per call and discarded with the verdict.
type lrState struct {
	n         int          // vertex count
	edgeCount int          // skeleton edge count (undirected)
	ids       []string     // dense index → vertex ID (sorted ascending)
	adj       [][]*halfEdge // raw incidence order, both orientations present

	height     []int        // DFS height per vertex; heightUnset = unvisited
	parentEdge []*halfEdge  // tree edge into each vertex (nil for roots)
	orderedAdj [][]*halfEdge // oriented out-edges sorted by nesting depth
	roots      []int        // one DFS root per connected component

	stack []*conflictPair // unresolved constraints for the current DFS path
}

// newLRState indexes a simple undirected skeleton of g into dense vertex
// slots and twin half-edge records. Vertex IDs are taken in sorted order and
// edges in sorted Edge.ID order, so the raw incidence order is deterministic.
//
// Complexity: O(V + E log E).
func newLRState(g *core.Graph) *lrState {
	s := core.SimpleUndirectedView(g)

	ids := s.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	st := &lrState{
		n:          n,
		ids:        ids,
		adj:        make([][]*halfEdge, n),
		height:     make([]int, n),
		parentEdge: make([]*halfEdge, n),
		orderedAdj: make([][]*halfEdge, n),
	}
	for i := range st.height {
		st.height[i] = heightUnset
	}

	// Two twinned half-edges per skeleton edge; the orientation pass keeps
	// exactly one of each pair.
	var u, v int
	var a, b *halfEdge
	for _, e := range s.Edges() {
		u, v = index[e.From], index[e.To]
		a = &halfEdge{from: u, to: v, side: sideRight}
		b = &halfEdge{from: v, to: u, side: sideRight}
		a.twin, b.twin = b, a
		st.adj[u] = append(st.adj[u], a)
		st.adj[v] = append(st.adj[v], b)
		st.edgeCount++
	}

	return st
}

// push appends a conflict pair to the stack.
func (st *lrState) push(p *conflictPair) {
	st.stack = append(st.stack, p)
}

// pop removes and returns the top conflict pair.
func (st *lrState) pop() *conflictPair {
	p := st.stack[len(st.stack)-1]
	st.stack = st.stack[:len(st.stack)-1]

	return p
}

// top returns the top conflict pair without removing it, or nil when empty.
func (st *lrState) top() *conflictPair {
	if len(st.stack) == 0 {
		return nil
	}

	return st.stack[len(st.stack)-1]
}
