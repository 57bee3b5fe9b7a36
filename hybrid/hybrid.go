// SPDX-License-Identifier: MIT
//
// Package hybrid composes A* and the genetic optimizer: the A* route's
// interior seeds the initial population, the optimizer refines the ordering
// between fixed endpoints, and the endpoints are stitched back on.
//
// Because the A*-derived individual enters the initial population and elites
// survive every generation, the hybrid result is never longer than a
// genetic-only run with the same options over the same interior.
package hybrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/core"
	"github.com/chaithanyamandadi/routelab/genetic"
)

// ErrNilGraph indicates a nil *core.Graph.
var ErrNilGraph = errors.New("hybrid: graph is nil")

// Options configures Plan.
type Options struct {
	AStar    []astar.Option
	Genetic  genetic.Options
	Interior []string // nil ⇒ interior of the A* route
}

// Option mutates Options.
type Option func(*Options)

// WithAStarOptions forwards options to the baseline search.
func WithAStarOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.AStar = append(o.AStar, opts...)
	}
}

// WithGeneticOptions replaces the optimizer options. Source, Goal are always
// overwritten with Plan's endpoints, and the A* interior is prepended to Seeds.
func WithGeneticOptions(g genetic.Options) Option {
	return func(o *Options) {
		o.Genetic = g
	}
}

// WithInterior makes the optimizer order ids instead of the A* interior.
// The A* interior is still injected as a seed and repaired to cover ids.
func WithInterior(ids ...string) Option {
	return func(o *Options) {
		o.Interior = append([]string(nil), ids...)
	}
}

// Result is the stitched hybrid route.
type Result struct {
	Route    []string
	Distance float64
	Fitness  float64
	Baseline astar.Result
	GA       genetic.Result
}

// Plan runs A* from source to goal, seeds the optimizer with the A*
// interior and returns the refined route with both endpoints attached.
//
// Errors from A* (core.ErrVertexNotFound, core.ErrNoPath) and from the
// optimizer (genetic.ErrBadOptions, genetic.ErrOptimizationCollapse, ...)
// are returned wrapped.
func Plan(g *core.Graph, source, goal string, opts ...Option) (Result, error) {
	return PlanContext(context.Background(), g, source, goal, opts...)
}

// PlanContext is Plan with cancellation forwarded to the optimizer, which
// checks ctx between generations.
func PlanContext(ctx context.Context, g *core.Graph, source, goal string, opts ...Option) (Result, error) {
	cfg := Options{Genetic: genetic.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("hybrid: %w", err)
	}

	baseline, err := astar.Search(g, source, goal, cfg.AStar...)
	if err != nil {
		return Result{}, fmt.Errorf("hybrid: baseline: %w", err)
	}
	if source == goal {
		return Result{
			Route:    baseline.Path,
			Fitness:  1 / cfg.Genetic.Epsilon,
			Baseline: baseline,
		}, nil
	}

	seed := baseline.Path[1 : len(baseline.Path)-1]
	interior := cfg.Interior
	if interior == nil {
		interior = seed
	}

	gopts := cfg.Genetic
	gopts.Source, gopts.Goal = source, goal
	gopts.Seeds = append([][]string{seed}, cfg.Genetic.Seeds...)

	ga, err := genetic.OptimizeContext(ctx, g, interior, gopts)
	if err != nil {
		return Result{}, fmt.Errorf("hybrid: optimize: %w", err)
	}

	return Result{
		Route:    ga.Route,
		Distance: ga.Best.Distance,
		Fitness:  ga.Best.Fitness,
		Baseline: baseline,
		GA:       ga,
	}, nil
}
