// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/benchmark"
	"github.com/chaithanyamandadi/routelab/builder"
	"github.com/chaithanyamandadi/routelab/config"
	"github.com/chaithanyamandadi/routelab/core"
	"github.com/chaithanyamandadi/routelab/hybrid"
	"github.com/chaithanyamandadi/routelab/kshortest"
)

// loadGraph builds the configured dataset and resolves the endpoints,
// falling back to the dataset's default corners.
func loadGraph(cfg *config.Config) (*core.Graph, string, string, error) {
	var (
		cons         builder.Constructor
		opts         []builder.BuilderOption
		source, goal string
	)
	switch cfg.Dataset {
	case config.DatasetGrid:
		cons = builder.Grid(cfg.Grid.Rows, cfg.Grid.Cols)
		opts = append(opts, builder.WithSpacing(cfg.Grid.Spacing))
		source, goal = builder.GridID(0, 0), builder.GridID(cfg.Grid.Rows-1, cfg.Grid.Cols-1)
	case config.DatasetRandom:
		cons = builder.RandomSparse(cfg.Random.Nodes, cfg.Random.P)
		opts = append(opts, builder.WithSeed(cfg.Random.Seed))
		source, goal = builder.DefaultIDFn(0), builder.DefaultIDFn(cfg.Random.Nodes-1)
	default:
		cons = builder.Hyderabad()
		source, goal = builder.HyderabadSource, builder.HyderabadGoal
	}

	g, err := builder.BuildGraph(opts, cons)
	if err != nil {
		return nil, "", "", fmt.Errorf("dataset %s: %w", cfg.Dataset, err)
	}
	if cfg.Source != "" {
		source = cfg.Source
	}
	if cfg.Goal != "" {
		goal = cfg.Goal
	}
	for _, id := range []string{source, goal} {
		if !g.HasVertex(id) {
			return nil, "", "", fmt.Errorf("dataset %s: endpoint %s: %w", cfg.Dataset, strconv.Quote(id), core.ErrVertexNotFound)
		}
	}

	return g, source, goal, nil
}

// strategies assembles the benchmark contenders from cfg.
func strategies(cfg *config.Config, logger zerolog.Logger) []benchmark.Strategy {
	h := cfg.HeuristicFunc()

	ga := cfg.GeneticOptions()
	gaLogger := logger.With().Str("component", "genetic").Logger()
	ga.Logger = &gaLogger

	kopts := []kshortest.Option{kshortest.WithHeuristic(h)}
	if cfg.MaxDeviations > 0 {
		kopts = append(kopts, kshortest.WithMaxDeviations(cfg.MaxDeviations))
	}

	return []benchmark.Strategy{
		benchmark.AStarStrategy{Options: []astar.Option{astar.WithHeuristic(h)}},
		benchmark.DijkstraStrategy{},
		benchmark.GeneticStrategy{Options: ga},
		benchmark.HybridStrategy{Options: []hybrid.Option{
			hybrid.WithAStarOptions(astar.WithHeuristic(h)),
			hybrid.WithGeneticOptions(ga),
		}},
		benchmark.KShortestStrategy{K: cfg.K, Options: kopts},
	}
}
