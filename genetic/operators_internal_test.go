package genetic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaithanyamandadi/routelab/core"
)

// lineScorer prices orderings on the path A–B–C–D–E (unit weights).
func lineScorer(t *testing.T) scorer {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1], 1))
	}

	return scorer{g: g, epsilon: DefaultEpsilon}
}

// completeScorer prices orderings on K5 where every ordering is valid.
func completeScorer(t *testing.T) scorer {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, g.AddEdge(ids[i], ids[j], float64(i+j)))
		}
	}

	return scorer{g: g, epsilon: DefaultEpsilon}
}

func TestTwoDistinct(t *testing.T) {
	rng := rngFromSeed(3)
	for n := 2; n < 8; n++ {
		for k := 0; k < 200; k++ {
			i, j := twoDistinct(n, rng)
			require.True(t, 0 <= i && i < j && j < n, "n=%d i=%d j=%d", n, i, j)
		}
	}
}

func TestDeriveRNG_Deterministic(t *testing.T) {
	a := deriveRNG(rngFromSeed(9), streamWalk)
	b := deriveRNG(rngFromSeed(9), streamWalk)
	for k := 0; k < 10; k++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
	require.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63())
}

func TestOrderCrossover_PermutationOfParents(t *testing.T) {
	s := completeScorer(t)
	rng := rngFromSeed(5)
	p1 := []string{"A", "B", "C", "D", "E"}
	p2 := []string{"E", "D", "C", "B", "A"}

	for k := 0; k < 100; k++ {
		child := orderCrossover(p1, p2, s, rng)
		require.ElementsMatch(t, p1, child)
	}
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, p1, "parents untouched")
	require.Equal(t, []string{"E", "D", "C", "B", "A"}, p2, "parents untouched")
}

func TestOrderCrossover_InvalidChildFallsBackToParent1(t *testing.T) {
	s := lineScorer(t)
	rng := rngFromSeed(11)
	p1 := []string{"A", "B", "C", "D", "E"}
	p2 := []string{"E", "D", "C", "B", "A"}

	for k := 0; k < 100; k++ {
		child := orderCrossover(p1, p2, s, rng)
		require.True(t, s.valid(child))
	}
}

func TestOrderCrossover_SingleGene(t *testing.T) {
	s := lineScorer(t)
	child := orderCrossover([]string{"C"}, []string{"C"}, s, rngFromSeed(1))
	require.Equal(t, []string{"C"}, child)
}

// Only the identity and the reversal are valid orderings of a path graph,
// and no single swap yields the reversal, so every swap must be undone even
// when the swapped pair itself is adjacent.
func TestSwapMutate_RevertsWhenNeighborsBreak(t *testing.T) {
	s := lineScorer(t)
	rng := rngFromSeed(2)
	for k := 0; k < 100; k++ {
		genes := []string{"A", "B", "C", "D", "E"}
		kept := swapMutate(genes, s, rng)
		require.False(t, kept)
		require.Equal(t, []string{"A", "B", "C", "D", "E"}, genes)
	}
}

func TestSwapMutate_KeepsValidSwap(t *testing.T) {
	s := completeScorer(t)
	genes := []string{"A", "B", "C", "D", "E"}
	require.True(t, swapMutate(genes, s, rngFromSeed(4)))
	require.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, genes)
	require.NotEqual(t, []string{"A", "B", "C", "D", "E"}, genes)
}

func TestSwapMutate_AnchorsChecked(t *testing.T) {
	s := lineScorer(t)
	s.source, s.goal = "A", "E"
	genes := []string{"B", "C", "D"}
	for k := 0; k < 20; k++ {
		swapMutate(genes, s, rngFromSeed(int64(k+1)))
		require.Equal(t, []string{"B", "C", "D"}, genes)
	}
}

func TestBreed_EveryIndividualStaysValid(t *testing.T) {
	g := core.NewGraph()
	// Two interleaved paths plus chords: many orderings invalid, some valid.
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}, {"D", "E", 1},
		{"E", "F", 1}, {"A", "C", 2}, {"B", "D", 2}, {"C", "E", 2},
		{"D", "F", 2}, {"A", "F", 5},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	opts := DefaultOptions()
	opts.PopulationSize = 20
	opts.EliteCount = 2
	opts.MatingPoolSize = 10
	opts.MutationRate = 0.5
	opts.MaxInitAttempts = 50

	o := newOptimizer(g, []string{"A", "B", "C", "D", "E", "F"}, opts)
	pop, err := o.initPopulation()
	require.NoError(t, err)
	o.scorer.evaluate(pop)

	for gen := 0; gen < 30; gen++ {
		for _, ind := range pop {
			require.True(t, ind.Valid(), "generation %d: %v", gen, ind.Genes)
			require.True(t, o.scorer.valid(ind.Genes))
		}
		sortByFitness(pop)
		pop = o.breed(pop)
		require.Len(t, pop, opts.PopulationSize)
	}
}
