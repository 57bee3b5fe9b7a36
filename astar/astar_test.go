// Package astar_test validates A* search: optimality on small fixtures,
// FIFO tie-breaking, exclusion hooks, reopening under inconsistent heuristics
// and the error taxonomy.
package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/core"
)

// cycleABCD builds the 4-node cycle A–B–C–D–A with weights 1,2,3,4.
func cycleABCD(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 3))
	require.NoError(t, g.AddEdge("D", "A", 4))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, err := astar.Search(nil, "A", "B")
	require.ErrorIs(t, err, astar.ErrNilGraph)
}

func TestSearch_UnknownEndpoints(t *testing.T) {
	g := cycleABCD(t)

	_, err := astar.Search(g, "X", "A")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = astar.Search(g, "A", "X")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSearch_OptionPanics(t *testing.T) {
	require.Panics(t, func() { astar.WithHeuristic(nil) })
	require.Panics(t, func() { astar.WithMaxExpansions(-1) })
	require.Panics(t, func() { astar.Haversine(0) })
}

// ------------------------------------------------------------------------
// 2. Shortest paths
// ------------------------------------------------------------------------

func TestSearch_CycleShortestSide(t *testing.T) {
	res, err := astar.Search(cycleABCD(t), "A", "C", astar.WithHeuristic(astar.Zero))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
	require.Equal(t, 3.0, res.Distance)
}

func TestSearch_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	res, err := astar.Search(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Path)
	require.Equal(t, 5.0, res.Distance)
}

func TestSearch_SourceIsGoal(t *testing.T) {
	res, err := astar.Search(cycleABCD(t), "B", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, res.Path)
	require.Zero(t, res.Distance)
}

func TestSearch_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	_, err := astar.Search(g, "A", "D")
	require.ErrorIs(t, err, core.ErrNoPath)
}

func TestSearch_DistanceMatchesGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("S", core.WithCoord(0, 0)))
	require.NoError(t, g.AddVertex("M", core.WithCoord(1, 1)))
	require.NoError(t, g.AddVertex("N", core.WithCoord(1, -1)))
	require.NoError(t, g.AddVertex("G", core.WithCoord(2, 0)))
	require.NoError(t, g.AddEdge("S", "M", 1.5))
	require.NoError(t, g.AddEdge("M", "G", 1.5))
	require.NoError(t, g.AddEdge("S", "N", 2))
	require.NoError(t, g.AddEdge("N", "G", 2))

	res, err := astar.Search(g, "S", "G")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "M", "G"}, res.Path)
	require.Equal(t, g.Distance(res.Path), res.Distance)
}

// ------------------------------------------------------------------------
// 3. Ordering and reopening
// ------------------------------------------------------------------------

// Two equal-cost routes: the frontier entry discovered first wins.
func TestSearch_FIFOTies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("S", "B", 1))
	require.NoError(t, g.AddEdge("A", "G", 1))
	require.NoError(t, g.AddEdge("B", "G", 1))

	for i := 0; i < 10; i++ {
		res, err := astar.Search(g, "S", "G", astar.WithHeuristic(astar.Zero))
		require.NoError(t, err)
		require.Equal(t, []string{"S", "A", "G"}, res.Path)
	}
}

// An admissible but inconsistent heuristic closes C via the expensive edge
// first; the cheaper route through A must reopen it.
func TestSearch_ReopensClosedVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("S", "C", 3))
	require.NoError(t, g.AddEdge("C", "G", 10))

	h := func(_ *core.Graph, u, _ string) float64 {
		if u == "A" {
			return 5
		}
		return 0
	}

	res, err := astar.Search(g, "S", "G", astar.WithHeuristic(h))
	require.NoError(t, err)
	require.Equal(t, []string{"S", "A", "C", "G"}, res.Path)
	require.Equal(t, 12.0, res.Distance)
	require.Equal(t, 5, res.Expanded) // S, C, A, C again, G
}

// ------------------------------------------------------------------------
// 4. Exclusions and limits
// ------------------------------------------------------------------------

func TestSearch_AvoidVertices(t *testing.T) {
	res, err := astar.Search(cycleABCD(t), "A", "C",
		astar.WithHeuristic(astar.Zero),
		astar.WithAvoidVertices("B"),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D", "C"}, res.Path)
	require.Equal(t, 7.0, res.Distance)
}

func TestSearch_AvoidEdge(t *testing.T) {
	res, err := astar.Search(cycleABCD(t), "A", "C",
		astar.WithHeuristic(astar.Zero),
		astar.WithAvoidEdge(func(u, v string) bool { return u == "A" && v == "B" }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D", "C"}, res.Path)
}

func TestSearch_AvoidEverything(t *testing.T) {
	_, err := astar.Search(cycleABCD(t), "A", "C", astar.WithAvoidVertices("B", "D"))
	require.ErrorIs(t, err, core.ErrNoPath)
}

func TestSearch_ExpansionLimit(t *testing.T) {
	_, err := astar.Search(cycleABCD(t), "A", "C",
		astar.WithHeuristic(astar.Zero),
		astar.WithMaxExpansions(1),
	)
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
}

// ------------------------------------------------------------------------
// 5. Heuristics
// ------------------------------------------------------------------------

func TestEuclidean(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", core.WithCoord(0, 0)))
	require.NoError(t, g.AddVertex("B", core.WithCoord(3, 4)))
	require.NoError(t, g.AddVertex("C"))

	require.Equal(t, 5.0, astar.Euclidean(g, "A", "B"))
	require.Zero(t, astar.Euclidean(g, "A", "C"), "missing coordinate ⇒ 0")
}

func TestHaversine(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("P", core.WithCoord(0, 0)))
	require.NoError(t, g.AddVertex("Q", core.WithCoord(0, 1)))

	km := astar.Haversine(1)(g, "P", "Q")
	require.InDelta(t, 111.195, km, 0.01)

	m := astar.Haversine(1000)(g, "P", "Q")
	require.InDelta(t, km*1000, m, 1e-6)
	require.False(t, math.IsNaN(astar.Haversine(1)(g, "P", "P")))
}
