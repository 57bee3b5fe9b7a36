package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/builder"
	"github.com/chaithanyamandadi/routelab/core"
	"github.com/chaithanyamandadi/routelab/dijkstra"
)

// square: A-B 1, B-C 2, C-D 3, D-A 4, plus isolated E.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 3))
	require.NoError(t, g.AddEdge("D", "A", 4))
	require.NoError(t, g.AddVertex("E"))

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := square(t)

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_AllDistances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(square(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	require.Equal(t, 0.0, dist["A"])
	require.Equal(t, 1.0, dist["B"])
	require.Equal(t, 3.0, dist["C"])
	require.Equal(t, 4.0, dist["D"])
	require.True(t, math.IsInf(dist["E"], 1))

	require.Equal(t, "B", prev["C"])
	require.Equal(t, "A", prev["D"])
	require.Equal(t, "", prev["E"])
}

func TestDijkstra_NoPrevWithoutReturnPath(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(square(t), dijkstra.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(square(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 1.0, dist["B"])
	require.True(t, math.IsInf(dist["C"], 1))
	require.True(t, math.IsInf(dist["D"], 1))
}

func TestShortestPath_CycleAndErrors(t *testing.T) {
	g := square(t)

	path, d, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
	require.Equal(t, 3.0, d)

	path, d, err = dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
	require.Zero(t, d)

	_, _, err = dijkstra.ShortestPath(g, "A", "E")
	require.ErrorIs(t, err, core.ErrNoPath)

	_, _, err = dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(nil, "A", "C")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_ClosedRoad(t *testing.T) {
	// Closing D-A (weight 4) forces the long way round.
	path, d, err := dijkstra.ShortestPath(square(t), "A", "D", dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)
	require.Equal(t, 6.0, d)
}

func TestShortestPath_MatchesAStarOnHyderabad(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Hyderabad())
	require.NoError(t, err)

	for _, src := range g.Vertices() {
		for _, dst := range g.Vertices() {
			_, d, err := dijkstra.ShortestPath(g, src, dst)
			require.NoError(t, err)

			res, err := astar.Search(g, src, dst, astar.WithHeuristic(astar.Zero))
			require.NoError(t, err)
			require.InDelta(t, res.Distance, d, 1e-9, "%s → %s", src, dst)
		}
	}
}
