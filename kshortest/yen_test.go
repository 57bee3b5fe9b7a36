// Package kshortest_test checks Yen's ranking: order, uniqueness,
// simplicity, early exhaustion and agreement with A*.
package kshortest_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/core"
	"github.com/chaithanyamandadi/routelab/kshortest"
)

func cycleABCD(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 3))
	require.NoError(t, g.AddEdge("D", "A", 4))

	return g
}

// grid3 builds a 3×3 unit grid with vertices "rc".
func grid3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := fmt.Sprintf("%d%d", r, c)
			if c+1 < 3 {
				require.NoError(t, g.AddEdge(id, fmt.Sprintf("%d%d", r, c+1), 1))
			}
			if r+1 < 3 {
				require.NoError(t, g.AddEdge(id, fmt.Sprintf("%d%d", r+1, c), 1))
			}
		}
	}

	return g
}

// requireRanked asserts the structural guarantees of a Yen result.
func requireRanked(t *testing.T, g *core.Graph, paths []kshortest.Path) {
	t.Helper()
	keys := make(map[string]bool, len(paths))
	for i, p := range paths {
		if i > 0 {
			require.LessOrEqual(t, paths[i-1].Distance, p.Distance, "non-decreasing")
		}
		key := strings.Join(p.Nodes, ">")
		require.False(t, keys[key], "duplicate path %s", key)
		keys[key] = true

		visited := make(map[string]bool, len(p.Nodes))
		for _, id := range p.Nodes {
			require.False(t, visited[id], "path %s revisits %s", key, id)
			visited[id] = true
		}
		require.True(t, g.IsValidPath(p.Nodes))
		require.Equal(t, g.Distance(p.Nodes), p.Distance)
	}
}

func TestYen_Validation(t *testing.T) {
	_, err := kshortest.Yen(nil, "A", "C", 1)
	require.ErrorIs(t, err, kshortest.ErrNilGraph)

	_, err = kshortest.Yen(cycleABCD(t), "A", "C", 0)
	require.ErrorIs(t, err, kshortest.ErrBadK)

	_, err = kshortest.Yen(cycleABCD(t), "A", "Z", 2)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.Panics(t, func() { kshortest.WithMaxDeviations(-1) })
	require.Panics(t, func() { kshortest.WithHeuristic(nil) })
}

func TestYen_NoPath(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	_, err := kshortest.Yen(g, "A", "D", 3)
	require.ErrorIs(t, err, core.ErrNoPath)
}

func TestYen_CycleTwoPaths(t *testing.T) {
	paths, err := kshortest.Yen(cycleABCD(t), "A", "C", 2)
	require.NoError(t, err)
	require.Equal(t, []kshortest.Path{
		{Nodes: []string{"A", "B", "C"}, Distance: 3},
		{Nodes: []string{"A", "D", "C"}, Distance: 7},
	}, paths)
}

func TestYen_ExhaustsBeforeK(t *testing.T) {
	paths, err := kshortest.Yen(cycleABCD(t), "A", "C", 5)
	require.NoError(t, err)
	require.Len(t, paths, 2)
}

func TestYen_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	paths, err := kshortest.Yen(g, "A", "B", 1)
	require.NoError(t, err)
	require.Equal(t, []kshortest.Path{{Nodes: []string{"A", "B"}, Distance: 5}}, paths)
}

func TestYen_GridProperties(t *testing.T) {
	g := grid3(t)
	paths, err := kshortest.Yen(g, "00", "22", 8, kshortest.WithHeuristic(astar.Zero))
	require.NoError(t, err)
	require.Len(t, paths, 8)
	requireRanked(t, g, paths)

	// Six monotone lattice paths of length 4 come first.
	for _, p := range paths[:6] {
		require.Equal(t, 4.0, p.Distance)
	}
	require.Greater(t, paths[6].Distance, 4.0)

	ref, err := astar.Search(g, "00", "22", astar.WithHeuristic(astar.Zero))
	require.NoError(t, err)
	best, ok := kshortest.Best(paths)
	require.True(t, ok)
	require.Equal(t, ref.Distance, best.Distance)
	require.Equal(t, ref.Path, best.Nodes)
}

func TestYen_MaxDeviations(t *testing.T) {
	g := grid3(t)
	paths, err := kshortest.Yen(g, "00", "22", 10,
		kshortest.WithHeuristic(astar.Zero),
		kshortest.WithMaxDeviations(1),
	)
	require.NoError(t, err)
	require.Len(t, paths, 2, "one spur search yields one candidate")
	requireRanked(t, g, paths)
}

func TestBest(t *testing.T) {
	_, ok := kshortest.Best(nil)
	require.False(t, ok)

	paths := []kshortest.Path{
		{Nodes: []string{"A", "X", "B"}, Distance: 2},
		{Nodes: []string{"A", "Y", "B"}, Distance: 2},
	}
	best, ok := kshortest.Best(paths)
	require.True(t, ok)
	require.Equal(t, []string{"A", "X", "B"}, best.Nodes, "first minimum wins")
}
