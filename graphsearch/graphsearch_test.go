package graphsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jyuhuan/Solid/graphsearch"
	"github.com/jyuhuan/Solid/monoid"
	"github.com/jyuhuan/Solid/search"
)

// buildDiamond returns A→B(1), A→C(30), B→C(2), B→D(20), C→D(3).
func buildDiamond() *graphsearch.AdjacencyList[string, int] {
	g := graphsearch.NewAdjacencyList[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 30)
	g.AddEdge("B", "C", 2)
	g.AddEdge("B", "D", 20)
	g.AddEdge("C", "D", 3)

	return g
}

func diamondHeuristic(v string) int {
	return map[string]int{"A": 2, "B": 1, "C": 1, "D": 0}[v]
}

//----------------------------------------------------------------------------//
// AdjacencyList
//----------------------------------------------------------------------------//

func TestAdjacencyList_Basics(t *testing.T) {
	g := buildDiamond()
	g.AddVertex("E")
	g.AddEdge("A", "B", 5) // overwrite keeps position

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())
	assert.Equal(t, []string{"B", "C"}, g.Successors("A"))
	assert.Empty(t, g.Successors("E"))
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasVertex("E"))
	assert.False(t, g.HasVertex("Z"))

	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 5, w)
	_, ok = g.Weight("D", "A")
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Presets over an adjacency list
//----------------------------------------------------------------------------//

func TestDijkstraAndAStar_Diamond(t *testing.T) {
	g := buildDiamond()

	d, ok, err := graphsearch.Dijkstra[string, int](g, "A", "D")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, d.States)
	assert.Equal(t, []string{"B", "C", "D"}, d.Actions)
	assert.Equal(t, 6, d.Cost)

	a, ok, err := graphsearch.AStar[string, int](g, "A", "D", diamondHeuristic)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d.States, a.States)
	assert.Equal(t, 6, a.Cost)
}

func TestDepthAndBreadthFirst_Diamond(t *testing.T) {
	g := buildDiamond()

	b, ok, err := graphsearch.BreadthFirst[string, int](g, "A", "D")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, b.States)
	assert.Equal(t, 21, b.Cost)

	// DFS pops C (last successor of A) first, then reaches D directly.
	d, ok, err := graphsearch.DepthFirst[string, int](g, "A", "D")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "D"}, d.States)
	assert.Equal(t, 33, d.Cost)
}

// TestDijkstraWith_Bottleneck minimises the heaviest edge on the path.
func TestDijkstraWith_Bottleneck(t *testing.T) {
	p, ok, err := graphsearch.DijkstraWith[string, int](buildDiamond(), "A", "D", monoid.Max(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.States)
	assert.Equal(t, 3, p.Cost)
}

func TestUnreachableTarget(t *testing.T) {
	g := buildDiamond()
	g.AddVertex("Z")
	_, ok, err := graphsearch.Dijkstra[string, int](g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, ok)

	// An unknown target is unreachable, not an error.
	_, ok, err = graphsearch.BreadthFirst[string, int](g, "A", "nowhere")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestOptionsPassThrough checks that search options reach the core loop.
func TestOptionsPassThrough(t *testing.T) {
	var expanded []string
	_, ok, err := graphsearch.Dijkstra[string, int](buildDiamond(), "A", "D",
		search.WithOnExpand(func(n *search.Node[string, string, int]) {
			expanded = append(expanded, n.State())
		}),
	)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, expanded)
}

func TestErrors(t *testing.T) {
	_, err := graphsearch.NewProblem[string, int](nil, "A", "D", monoid.Sum[int]())
	assert.ErrorIs(t, err, graphsearch.ErrNilGraph)

	_, _, err = graphsearch.Dijkstra[string, int](buildDiamond(), "X", "D")
	assert.ErrorIs(t, err, graphsearch.ErrVertexNotFound)

	_, err = graphsearch.NewProblem[string, int](buildDiamond(), "A", "D", nil)
	assert.ErrorIs(t, err, search.ErrNilMonoid)
}

// brokenGraph reports a successor it has no weight for.
type brokenGraph struct{}

func (brokenGraph) HasVertex(string) bool          { return true }
func (brokenGraph) Successors(string) []string     { return []string{"ghost"} }
func (brokenGraph) Weight(_, _ string) (int, bool) { return 0, false }

func TestMissingEdgePanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _, _ = graphsearch.Dijkstra[string, int](brokenGraph{}, "A", "D")
	})
}

//----------------------------------------------------------------------------//
// gonum adapter
//----------------------------------------------------------------------------//

// buildGonumDiamond mirrors buildDiamond with IDs A=1, B=2, C=3, D=4.
func buildGonumDiamond() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, e := range []struct {
		from, to int64
		w        float64
	}{
		{1, 2, 1}, {1, 3, 30}, {2, 3, 2}, {2, 4, 20}, {3, 4, 3},
	} {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.from), simple.Node(e.to), e.w))
	}
	g.AddNode(simple.Node(5)) // isolated

	return g
}

func TestGonum_Dijkstra(t *testing.T) {
	g := graphsearch.FromGonum(buildGonumDiamond())

	assert.Equal(t, []int64{2, 3}, g.Successors(1))
	assert.True(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(9))
	_, ok := g.Weight(4, 1)
	assert.False(t, ok)

	p, ok, err := graphsearch.Dijkstra[int64, float64](g, 1, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3, 4}, p.States)
	assert.InDelta(t, 6.0, p.Cost, 1e-9)

	_, ok, err = graphsearch.Dijkstra[int64, float64](g, 1, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGonum_NilGraph(t *testing.T) {
	assert.Nil(t, graphsearch.FromGonum(nil))
	var g *graphsearch.Gonum
	_, _, err := graphsearch.BreadthFirst[int64, float64](g, 1, 2)
	assert.ErrorIs(t, err, graphsearch.ErrVertexNotFound)
}
