// File: methods.go
// Role: Vertex and edge lifecycle plus read queries:
//       AddVertex/HasVertex/RemoveVertex/Vertices/VertexCount,
//       AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       Neighbors/NeighborIDs, Clone/CloneEmpty.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under write locks; read queries under read locks.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddVertex inserts a vertex with the given ID if absent.
// Adding an existing ID is a no-op (idempotent).
//
// Complexity: O(1) amortized.
// Concurrency: write locks on muVert then muEdgeAdj (adjacency bucket).
func (g *Graph) AddVertex(id string) error {
	// 1) Validate ID
	if id == "" {
		return ErrEmptyVertexID
	}

	// 2) Insert vertex under muVert
	g.muVert.Lock()
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	}
	g.muVert.Unlock()

	// 3) Ensure adjacency bucket under muEdgeAdj
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge incident to it.
// Returns ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(E) worst case (incident edge scan).
// Concurrency: write locks on muVert and muEdgeAdj.
func (g *Graph) RemoveVertex(id string) error {
	// 1) Remove from vertex catalog
	g.muVert.Lock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.Unlock()

		return ErrVertexNotFound
	}
	delete(g.vertices, id)
	g.muVert.Unlock()

	// 2) Remove incident edges and adjacency rows under muEdgeAdj
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacencyList, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending (stable, deterministic order).
// Complexity: O(V log V). Concurrency: read lock on muVert.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.muVert.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new edge from→to with the given weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, build Edge with the graph default directedness.
//  5. Store in g.edges; link adjacency; mirror for undirected edges.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 { // weight constraint
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops { // loop constraint
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti { // multi-edge existence check
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Generate a new unique textual edge ID in O(1) without fmt allocations.
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	// 5) Store and link adjacency
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 6) Mirror undirected
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its undirected mirror.
// Returns ErrEdgeNotFound if the edge does not exist.
//
// Complexity: O(1). Concurrency: write lock on muEdgeAdj.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Works for undirected graphs as AddEdge mirrors adjacency automatically.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns a pointer to the Edge with the given edgeID if it exists,
// or ErrEdgeNotFound if no such edge is present. The returned *Edge must be
// treated as read-only by callers.
//
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E). Concurrency: read lock on muEdgeAdj.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns all edges incident to the given vertex, sorted by
// (opposite endpoint ID, edge ID) for determinism. Undirected edges appear
// once regardless of stored From/To orientation.
// Returns ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(deg log deg). Concurrency: read locks on muVert and muEdgeAdj.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	var out []*Edge
	var eids map[string]struct{}
	var eid string
	for _, eids = range g.adjacencyList[id] {
		for eid = range eids {
			out = append(out, g.edges[eid])
		}
	}
	g.muEdgeAdj.RUnlock()

	// Deterministic neighbor order: by opposite endpoint, then edge ID.
	sort.Slice(out, func(i, j int) bool {
		oi, oj := opposite(out[i], id), opposite(out[j], id)
		if oi != oj {
			return oi < oj
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

// NeighborIDs returns the distinct IDs adjacent to the given vertex,
// sorted ascending. Returns ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(deg log deg). Concurrency: read locks on muVert and muEdgeAdj.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacencyList[id]))
	var to string
	var eids map[string]struct{}
	for to, eids = range g.adjacencyList[id] {
		if len(eids) > 0 {
			out = append(out, to)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// CloneEmpty returns a new Graph with the same configuration flags but no
// vertices or edges.
// Complexity: O(1).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	g.muVert.RUnlock()

	return NewGraph(opts...)
}

// Clone returns a deep copy of the graph topology. Vertex Metadata maps are
// shared (shallow) by design; edge structs are copied.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()

	// Copy vertices (shallow Metadata share).
	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	// Copy edges preserving IDs and directedness.
	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e, ne *Edge
	for eid, e = range g.edges {
		ne = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	// Carry over the edge ID counter so future AddEdge() calls cannot collide.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// opposite returns the endpoint of e that is not id (id itself for loops).
func opposite(e *Edge, id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// ensureAdjacency guarantees adjacencyList[from][to] bucket exists.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from both adjacency directions.
// Caller must hold muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if inner, ok := g.adjacencyList[e.From][e.To]; ok {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if inner, ok := g.adjacencyList[e.To][e.From]; ok {
			delete(inner, e.ID)
			if len(inner) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// nextEdgeID returns a new unique textual edge ID ("e1","e2",...).
// Uses a monotonic uint64 counter incremented atomically; avoids fmt.Sprintf
// to remove heap churn in hot paths.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
