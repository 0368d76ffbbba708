package planarity_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephcbradley/filteredgraphs/builder"
	"github.com/josephcbradley/filteredgraphs/core"
	"github.com/josephcbradley/filteredgraphs/planarity"
)

// build is a shorthand for assembling test fixtures from builder constructors.
func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// addClique adds a complete graph on the given IDs to g.
func addClique(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			_, err := g.AddEdge(ids[i], ids[j], 0)
			require.NoError(t, err)
		}
	}
}

// petersen builds the Petersen graph: outer 5-cycle, inner pentagram, spokes.
func petersen(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		outer, inner := fmt.Sprintf("o%d", i), fmt.Sprintf("i%d", i)
		_, err := g.AddEdge(outer, fmt.Sprintf("o%d", (i+1)%5), 0)
		require.NoError(t, err)
		_, err = g.AddEdge(inner, fmt.Sprintf("i%d", (i+2)%5), 0)
		require.NoError(t, err)
		_, err = g.AddEdge(outer, inner, 0)
		require.NoError(t, err)
	}
	require.Equal(t, 15, g.EdgeCount())

	return g
}

func TestCheck_NilGraph(t *testing.T) {
	_, err := planarity.Check(nil)
	assert.ErrorIs(t, err, planarity.ErrGraphNil)
	_, err = planarity.IsPlanar(nil)
	assert.ErrorIs(t, err, planarity.ErrGraphNil)
}

func TestIsPlanar_SmallCompleteGraphs(t *testing.T) {
	for n := 1; n <= 4; n++ {
		ok, err := planarity.IsPlanar(build(t, builder.Complete(n)))
		require.NoError(t, err)
		assert.True(t, ok, "K%d must be planar", n)
	}

	ok, err := planarity.IsPlanar(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok, "empty graph is planar")
}

func TestCheck_K5_EdgeBoundFastPath(t *testing.T) {
	res, err := planarity.Check(build(t, builder.Complete(5)))
	require.NoError(t, err)
	assert.False(t, res.Planar)
	assert.True(t, res.EdgeBoundSkip, "10 > 3*5-6 rules K5 out before any DFS")
	assert.Empty(t, res.Roots, "no traversal, no forest")
}

func TestCheck_K33_ConflictDetected(t *testing.T) {
	res, err := planarity.Check(build(t, builder.CompleteBipartite(3, 3)))
	require.NoError(t, err)
	assert.False(t, res.Planar)
	assert.False(t, res.EdgeBoundSkip, "9 <= 3*6-6, the verdict needs the full test")
}

func TestCheck_Petersen(t *testing.T) {
	res, err := planarity.Check(petersen(t))
	require.NoError(t, err)
	assert.False(t, res.Planar)
	assert.False(t, res.EdgeBoundSkip, "15 <= 3*10-6")
}

func TestCheck_K5MinusEdgePlanar(t *testing.T) {
	g := build(t, builder.Complete(5))
	edges := g.Edges()
	require.NoError(t, g.RemoveEdge(edges[len(edges)-1].ID))

	res, err := planarity.Check(g)
	require.NoError(t, err)
	assert.True(t, res.Planar, "K5 minus any edge is planar")
	assert.False(t, res.EdgeBoundSkip)
}

func TestIsPlanar_ForestsAndTrees(t *testing.T) {
	edgeless := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, edgeless.AddVertex(id))
	}

	cases := map[string]*core.Graph{
		"path":     build(t, builder.Path(6)),
		"star":     build(t, builder.Star(8)),
		"K2":       build(t, builder.Complete(2)),
		"edgeless": edgeless,
	}
	for name, g := range cases {
		ok, err := planarity.IsPlanar(g)
		require.NoError(t, err, name)
		assert.True(t, ok, "%s must be planar", name)
	}
}

func TestIsPlanar_CyclesAndWheels(t *testing.T) {
	ok, err := planarity.IsPlanar(build(t, builder.Cycle(7)))
	require.NoError(t, err)
	assert.True(t, ok, "C7")

	ok, err = planarity.IsPlanar(build(t, builder.Wheel(6)))
	require.NoError(t, err)
	assert.True(t, ok, "W6")
}

func TestIsPlanar_Grid(t *testing.T) {
	g := core.NewGraph()
	at := func(r, c int) string { return fmt.Sprintf("%d:%d", r, c) }
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c < 2 {
				_, err := g.AddEdge(at(r, c), at(r, c+1), 0)
				require.NoError(t, err)
			}
			if r < 2 {
				_, err := g.AddEdge(at(r, c), at(r+1, c), 0)
				require.NoError(t, err)
			}
		}
	}

	ok, err := planarity.IsPlanar(g)
	require.NoError(t, err)
	assert.True(t, ok, "3x3 grid")
}

func TestCheck_DisconnectedIsANDOfComponents(t *testing.T) {
	// Two planar components: planar overall.
	g := build(t, builder.Complete(4))
	addClique(t, g, "a", "b", "c", "d")
	res, err := planarity.Check(g)
	require.NoError(t, err)
	assert.True(t, res.Planar, "K4 + K4")
	assert.Len(t, res.Roots, 2, "one root per component")

	// One non-planar component poisons the verdict; 16 <= 3*9-6 keeps the
	// fast path out of the way.
	h := build(t, builder.Complete(4))
	addClique(t, h, "a", "b", "c", "d", "e")
	res, err = planarity.Check(h)
	require.NoError(t, err)
	assert.False(t, res.Planar, "K4 + K5")
	assert.False(t, res.EdgeBoundSkip)
}

func TestCheck_IsomorphismInvariance(t *testing.T) {
	// Same K3,3 under two unrelated labelings.
	plain := build(t, builder.CompleteBipartite(3, 3))
	relabeled := core.NewGraph()
	left := []string{"zebra", "mouse", "yak"}
	right := []string{"apple", "quince", "fig"}
	for _, u := range left {
		for _, v := range right {
			_, err := relabeled.AddEdge(u, v, 0)
			require.NoError(t, err)
		}
	}

	a, err := planarity.IsPlanar(plain)
	require.NoError(t, err)
	b, err := planarity.IsPlanar(relabeled)
	require.NoError(t, err)
	assert.Equal(t, a, b, "verdict is a graph property, not a labeling one")
	assert.False(t, a)
}

func TestCheck_DeterministicAndNonMutating(t *testing.T) {
	g := petersen(t)
	vBefore, eBefore := g.VertexCount(), g.EdgeCount()

	first, err := planarity.Check(g)
	require.NoError(t, err)
	second, err := planarity.Check(g)
	require.NoError(t, err)

	assert.Equal(t, first.Planar, second.Planar)
	assert.Equal(t, first.EdgeBoundSkip, second.EdgeBoundSkip)
	assert.Equal(t, first.Roots, second.Roots)

	assert.Equal(t, vBefore, g.VertexCount())
	assert.Equal(t, eBefore, g.EdgeCount())
}

func TestCheck_SkeletonReduction(t *testing.T) {
	// Directed arcs, loops and parallels collapse to the undirected skeleton
	// before testing: a doubly-linked triangle with loops is just C3.
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	for _, pair := range [][2]string{{"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
		_, err = g.AddEdge(pair[1], pair[0], 0)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("x", "x", 0)
	require.NoError(t, err)

	ok, err := planarity.IsPlanar(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheck_RootsNamed(t *testing.T) {
	g := build(t, builder.Path(3))
	res, err := planarity.Check(g)
	require.NoError(t, err)
	require.Len(t, res.Roots, 1)
	assert.True(t, g.HasVertex(res.Roots[0]))
}
