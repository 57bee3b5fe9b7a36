// Package hybrid_test checks the stitched route against A* and against a
// genetic-only run over the same interior.
package hybrid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/builder"
	"github.com/chaithanyamandadi/routelab/core"
	"github.com/chaithanyamandadi/routelab/genetic"
	"github.com/chaithanyamandadi/routelab/hybrid"
)

func hyderabad(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Hyderabad())
	require.NoError(t, err)

	return g
}

func fastGA() genetic.Options {
	o := genetic.DefaultOptions()
	o.PopulationSize = 20
	o.Generations = 25
	o.EliteCount = 3
	o.MatingPoolSize = 10
	o.MaxInitAttempts = 100

	return o
}

func TestPlan_Validation(t *testing.T) {
	_, err := hybrid.Plan(nil, "A", "B")
	require.ErrorIs(t, err, hybrid.ErrNilGraph)

	_, err = hybrid.Plan(hyderabad(t), "Uppal", "Atlantis", hybrid.WithGeneticOptions(fastGA()))
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	_, err = hybrid.Plan(g, "A", "D")
	require.ErrorIs(t, err, core.ErrNoPath)

	bad := fastGA()
	bad.Epsilon = 0
	_, err = hybrid.Plan(hyderabad(t), builder.HyderabadSource, builder.HyderabadGoal, hybrid.WithGeneticOptions(bad))
	require.ErrorIs(t, err, genetic.ErrBadOptions)
}

func TestPlan_MatchesAStarOnHyderabad(t *testing.T) {
	g := hyderabad(t)
	res, err := hybrid.Plan(g, builder.HyderabadSource, builder.HyderabadGoal, hybrid.WithGeneticOptions(fastGA()))
	require.NoError(t, err)

	require.Equal(t, []string{"Uppal", "Secunderabad", "Begumpet", "Kukatpally"}, res.Route)
	require.InDelta(t, 22.1, res.Distance, 1e-9)
	require.Equal(t, res.Baseline.Path, res.Route)
	require.InDelta(t, g.Distance(res.Route), res.Distance, 1e-12)
}

func TestPlan_NeverWorseThanGeneticOnly(t *testing.T) {
	g := hyderabad(t)
	for seed := int64(1); seed <= 5; seed++ {
		opts := fastGA()
		opts.Seed = seed

		res, err := hybrid.Plan(g, builder.HyderabadSource, builder.HyderabadGoal, hybrid.WithGeneticOptions(opts))
		require.NoError(t, err)

		interior := res.Baseline.Path[1 : len(res.Baseline.Path)-1]
		gaOpts := opts
		gaOpts.Source, gaOpts.Goal = builder.HyderabadSource, builder.HyderabadGoal
		gaOnly, err := genetic.Optimize(g, interior, gaOpts)
		require.NoError(t, err)

		require.LessOrEqual(t, res.Distance, gaOnly.Best.Distance, "seed %d", seed)
	}
}

func TestPlan_FullTourInterior(t *testing.T) {
	g := hyderabad(t)
	var interior []string
	for _, v := range g.Vertices() {
		if v != builder.HyderabadSource && v != builder.HyderabadGoal {
			interior = append(interior, v)
		}
	}

	res, err := hybrid.Plan(g, builder.HyderabadSource, builder.HyderabadGoal,
		hybrid.WithGeneticOptions(fastGA()),
		hybrid.WithInterior(interior...),
	)
	require.NoError(t, err)
	require.Len(t, res.Route, g.VertexCount())
	require.True(t, g.IsValidPath(res.Route))
	require.Equal(t, builder.HyderabadSource, res.Route[0])
	require.Equal(t, builder.HyderabadGoal, res.Route[len(res.Route)-1])
}

func TestPlan_ZeroHeuristicForwarded(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	res, err := hybrid.Plan(g, "A", "B",
		hybrid.WithAStarOptions(astar.WithHeuristic(astar.Zero)),
		hybrid.WithGeneticOptions(fastGA()),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Route)
	require.Equal(t, 5.0, res.Distance)
}

func TestPlan_SourceIsGoal(t *testing.T) {
	res, err := hybrid.Plan(hyderabad(t), "Ameerpet", "Ameerpet")
	require.NoError(t, err)
	require.Equal(t, []string{"Ameerpet"}, res.Route)
	require.Zero(t, res.Distance)
}

func TestPlanContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hybrid.PlanContext(ctx, hyderabad(t), "Uppal", "Kukatpally", hybrid.WithGeneticOptions(fastGA()))
	require.ErrorIs(t, err, context.Canceled)
}
