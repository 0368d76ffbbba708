package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephcbradley/filteredgraphs/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "AddVertex must be idempotent")
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.Equal(t, 0, g.VertexCount())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	// Empty endpoint IDs are rejected.
	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	// Non-zero weight on unweighted graph.
	_, err = g.AddEdge("A", "B", 7)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// Self-loop without WithLoops.
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// First edge succeeds and auto-creates endpoints.
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))

	// Parallel edge without WithMultiEdges.
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// Undirected mirror counts as the same pair.
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestGraph_UndirectedMirrorAndRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "undirected edges are visible both ways")

	assert.ErrorIs(t, g.RemoveEdge("missing"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_DirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"), "directed edge must not mirror")
}

func TestGraph_VerticesAndEdgesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
}

func TestGraph_NeighborsDeterministic(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("M", "Z", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "M", 0)
	require.NoError(t, err)

	nbs, err := g.Neighbors("M")
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	// Sorted by opposite endpoint: A before Z.
	first, second := nbs[0], nbs[1]
	assert.True(t, first.From == "A" || first.To == "A")
	assert.True(t, second.From == "Z" || second.To == "Z")

	ids, err := g.NeighborIDs("M")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z"}, ids)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_CloneIndependence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.Weighted())

	// Mutating the clone must not leak into the original.
	_, err = c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasVertex("C"))
}

func TestSimpleUndirectedView_ReducesToSkeleton(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0) // reverse parallel in the directed sense
	require.NoError(t, err)
	_, err = g.AddEdge("A", "A", 0) // self-loop
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Lonely"))

	s := core.SimpleUndirectedView(g)

	assert.False(t, s.Directed())
	assert.Equal(t, 3, s.VertexCount(), "isolated vertices survive")
	assert.Equal(t, 1, s.EdgeCount(), "loop dropped, parallels collapsed")
	assert.True(t, s.HasEdge("A", "B"))
	assert.True(t, s.HasEdge("B", "A"))
	assert.True(t, s.HasVertex("Lonely"))

	// Source graph untouched.
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.Looped())
}
