// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Edges are emitted in sorted Edge.ID order, so view edge IDs are stable.
// Concurrency:
//   - Uses only public read queries on the source; result is a fresh instance.

package core

// SimpleUndirectedView returns a new undirected Graph over the same vertex
// set, reduced to a simple skeleton:
//   - directed edges lose their orientation,
//   - self-loops are dropped silently,
//   - parallel edges between the same endpoints are collapsed to one.
//
// Edge weights are preserved when the source graph is weighted (for collapsed
// parallels the first edge in sorted Edge.ID order wins). The input graph is
// not mutated.
//
// Complexity: O(V + E log E). Concurrency: read queries only on source.
func SimpleUndirectedView(g *Graph) *Graph {
	// Same weight policy, forced undirected simple mode.
	opts := []GraphOption{WithDirected(false)}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	// Copy the full vertex set so isolated vertices survive the reduction.
	var id string
	for _, id = range g.Vertices() {
		_ = out.AddVertex(id) // id is non-empty by construction
	}

	// Re-add edges through the public API; the simple-mode policy of the
	// fresh graph enforces loop and parallel-edge suppression for us, and
	// sorted Edge.ID order makes the first-edge-wins rule deterministic.
	var e *Edge
	for _, e = range g.Edges() {
		if e.From == e.To {
			continue // drop self-loops silently
		}
		if out.HasEdge(e.From, e.To) {
			continue // collapse parallels (first edge in ID order wins)
		}
		w := e.Weight
		if !out.Weighted() {
			w = 0
		}
		_, _ = out.AddEdge(e.From, e.To, w) // constraints already pre-checked
	}

	return out
}
