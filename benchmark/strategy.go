// SPDX-License-Identifier: MIT
//
// strategy.go - the Strategy contract and adapters for each route family.

package benchmark

import (
	"context"
	"sort"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/core"
	"github.com/chaithanyamandadi/routelab/dijkstra"
	"github.com/chaithanyamandadi/routelab/genetic"
	"github.com/chaithanyamandadi/routelab/hybrid"
	"github.com/chaithanyamandadi/routelab/kshortest"
)

// Strategy is one routing approach under benchmark. Run must not mutate g.
type Strategy interface {
	Name() string
	Run(ctx context.Context, g *core.Graph, source, goal string) (Outcome, error)
}

// Outcome is what a strategy reports back. The harness recomputes the
// distance from the graph, so Route is the only required field.
type Outcome struct {
	Route        []string
	Alternatives []kshortest.Path // ranked routes, K-shortest only
}

// Strategy names used in reports and metric labels.
const (
	NameAStar     = "A*"
	NameDijkstra  = "Dijkstra"
	NameGenetic   = "Genetic Algorithm"
	NameHybrid    = "Hybrid (A* + GA)"
	NameKShortest = "K-Shortest Paths"
)

// AStarStrategy runs astar.Search.
type AStarStrategy struct {
	Options []astar.Option
}

// Name implements Strategy.
func (AStarStrategy) Name() string { return NameAStar }

// Run implements Strategy.
func (s AStarStrategy) Run(ctx context.Context, g *core.Graph, source, goal string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	res, err := astar.Search(g, source, goal, s.Options...)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Route: res.Path}, nil
}

// DijkstraStrategy runs dijkstra.ShortestPath, the coordinate-free baseline
// A* is measured against.
type DijkstraStrategy struct {
	Options []dijkstra.Option
}

// Name implements Strategy.
func (DijkstraStrategy) Name() string { return NameDijkstra }

// Run implements Strategy.
func (s DijkstraStrategy) Run(ctx context.Context, g *core.Graph, source, goal string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	path, _, err := dijkstra.ShortestPath(g, source, goal, s.Options...)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Route: path}, nil
}

// GeneticStrategy runs genetic.OptimizeContext anchored at source and goal.
// Cancellation is observed between generations.
// A nil Interior means every other vertex in sorted order.
type GeneticStrategy struct {
	Options  genetic.Options
	Interior []string
}

// Name implements Strategy.
func (GeneticStrategy) Name() string { return NameGenetic }

// Run implements Strategy.
func (s GeneticStrategy) Run(ctx context.Context, g *core.Graph, source, goal string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	interior := s.Interior
	if interior == nil {
		interior = defaultInterior(g, source, goal)
	}
	opts := s.Options
	opts.Source, opts.Goal = source, goal

	res, err := genetic.OptimizeContext(ctx, g, interior, opts)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Route: res.Route}, nil
}

// HybridStrategy runs hybrid.PlanContext. Cancellation is observed between
// generations of the optimizer stage.
type HybridStrategy struct {
	Options []hybrid.Option
}

// Name implements Strategy.
func (HybridStrategy) Name() string { return NameHybrid }

// Run implements Strategy.
func (s HybridStrategy) Run(ctx context.Context, g *core.Graph, source, goal string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	res, err := hybrid.PlanContext(ctx, g, source, goal, s.Options...)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Route: res.Route}, nil
}

// KShortestStrategy runs kshortest.Yen and reports the best of K as its
// route, with all K in Alternatives.
type KShortestStrategy struct {
	K       int
	Options []kshortest.Option
}

// Name implements Strategy.
func (KShortestStrategy) Name() string { return NameKShortest }

// Run implements Strategy.
func (s KShortestStrategy) Run(ctx context.Context, g *core.Graph, source, goal string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	paths, err := kshortest.Yen(g, source, goal, s.K, s.Options...)
	if err != nil {
		return Outcome{}, err
	}
	best, _ := kshortest.Best(paths)

	return Outcome{Route: best.Nodes, Alternatives: paths}, nil
}

// defaultInterior lists every vertex except source and goal, sorted.
func defaultInterior(g *core.Graph, source, goal string) []string {
	all := g.Vertices()
	out := make([]string, 0, len(all))
	for _, id := range all {
		if id != source && id != goal {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}
