// SPDX-License-Identifier: MIT
//
// Package genetic searches for a short route visiting a fixed set of
// interior vertices in some order, using a generational genetic algorithm
// with elitism.
//
// Each generation:
//  1. Stable-sort the population by descending fitness.
//  2. Stop early if the best individual sits at the fitness floor (collapse).
//  3. Copy the top EliteCount individuals unchanged.
//  4. Fill the remaining slots with order-crossover children of two distinct
//     parents drawn from the top MatingPoolSize, each swap-mutated with
//     probability MutationRate.
//  5. Score the new individuals (optionally in parallel).
//
// Complexity:
//
//   - Time:  O(G · P · (L + log P)) for G generations, P individuals, L genes.
//   - Space: O(P · L).
package genetic

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/rs/zerolog"

	"github.com/chaithanyamandadi/routelab/core"
)

// Optimize runs the genetic algorithm over permutations of interior.
//
// Validation (in order): nil graph, Options, unknown vertices, duplicates.
// An empty interior returns the trivial route (anchors only) without running
// any generation.
//
// Returns ErrOptimizationCollapse when no valid individual can be built, or
// when the population collapses before any valid individual was seen. A
// collapse after a valid individual was seen returns that individual with
// Result.Collapsed set and a nil error.
func Optimize(g *core.Graph, interior []string, opts Options) (Result, error) {
	return OptimizeContext(context.Background(), g, interior, opts)
}

// OptimizeContext is Optimize with cancellation. ctx is checked before
// initialization and at the start of every generation; once it is done the
// run stops and returns ctx.Err() wrapped.
func OptimizeContext(ctx context.Context, g *core.Graph, interior []string, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateInterior(g, interior, opts); err != nil {
		return Result{}, err
	}

	o := newOptimizer(g, interior, opts)
	if len(interior) == 0 {
		return o.trivial()
	}

	return o.run(ctx)
}

// optimizer holds per-call state. It is never shared across goroutines
// except for the read-only scorer during evaluation.
type optimizer struct {
	opts     Options
	interior []string
	genePos  map[string]int
	scorer   scorer
	rng      *rand.Rand
	walkRNG  *rand.Rand
	log      zerolog.Logger
}

func newOptimizer(g *core.Graph, interior []string, opts Options) *optimizer {
	genes := make([]string, len(interior))
	copy(genes, interior)
	pos := make(map[string]int, len(genes))
	for i, id := range genes {
		pos[id] = i
	}

	rng := rngFromSeed(opts.Seed)

	return &optimizer{
		opts:     opts,
		interior: genes,
		genePos:  pos,
		scorer: scorer{
			g:       g,
			source:  opts.Source,
			goal:    opts.Goal,
			epsilon: opts.Epsilon,
			workers: opts.Workers,
		},
		rng:     rng,
		walkRNG: deriveRNG(rng, streamWalk),
		log:     newLogger(opts.Logger),
	}
}

// trivial handles the empty interior.
func (o *optimizer) trivial() (Result, error) {
	best := Individual{Genes: []string{}}
	o.scorer.score(&best)
	if !best.Valid() {
		return Result{}, fmt.Errorf("%w: %q and %q are not adjacent", ErrOptimizationCollapse, o.opts.Source, o.opts.Goal)
	}

	return Result{
		Best:    best,
		Route:   o.scorer.route(nil),
		History: []float64{best.Distance},
	}, nil
}

// run is the generation loop.
func (o *optimizer) run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("genetic: %w", err)
	}
	pop, err := o.initPopulation()
	if err != nil {
		return Result{}, err
	}
	o.scorer.evaluate(pop)

	var (
		res      Result
		bestEver Individual
		seen     bool
	)
	keep := func(ind Individual) {
		if ind.Valid() && (!seen || ind.Fitness > bestEver.Fitness) {
			bestEver = ind.clone()
			seen = true
		}
	}

	for gen := 0; gen < o.opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("genetic: stopped at generation %d: %w", gen, err)
		}
		sortByFitness(pop)
		best := pop[0]
		o.log.Debug().Int("generation", gen).Float64("fitness", best.Fitness).Float64("distance", best.Distance).Msg("best individual")

		if !best.Valid() {
			o.log.Warn().Int("generation", gen).Msg("population collapsed to the fitness floor")
			res.Collapsed = true
			break
		}
		keep(best)
		res.History = append(res.History, best.Distance)

		pop = o.breed(pop)
		res.Generations++
	}

	if !res.Collapsed {
		sortByFitness(pop)
		keep(pop[0])
		if pop[0].Valid() {
			res.History = append(res.History, pop[0].Distance)
		}
	}
	if !seen {
		return Result{}, fmt.Errorf("%w: no valid individual after %d generations", ErrOptimizationCollapse, res.Generations)
	}

	res.Best = bestEver
	res.Route = o.scorer.route(bestEver.Genes)
	o.log.Debug().Int("generations", res.Generations).Float64("distance", bestEver.Distance).Bool("collapsed", res.Collapsed).Msg("optimization finished")

	return res, nil
}

// breed builds the next generation from a fitness-sorted population.
func (o *optimizer) breed(pop []Individual) []Individual {
	size := o.opts.PopulationSize
	next := make([]Individual, 0, size)
	for i := 0; i < o.opts.EliteCount && i < len(pop); i++ {
		next = append(next, pop[i].clone())
	}
	elites := len(next)

	for len(next) < size {
		p1, p2 := pickParents(pop, o.opts.MatingPoolSize, o.rng)
		child := orderCrossover(p1.Genes, p2.Genes, o.scorer, o.rng)
		if o.rng.Float64() < o.opts.MutationRate {
			swapMutate(child, o.scorer, o.rng)
		}
		next = append(next, Individual{Genes: child})
	}

	o.scorer.evaluate(next[elites:])
	return next
}

// sortByFitness orders by descending fitness, keeping the prior order among
// equals.
func sortByFitness(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].Fitness > pop[j].Fitness
	})
}
