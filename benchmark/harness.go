// SPDX-License-Identifier: MIT
//
// harness.go - runs a set of strategies over one graph and ranks them.

package benchmark

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/chaithanyamandadi/routelab/core"
)

// Sentinel errors returned by NewHarness and Run.
var (
	ErrNoStrategies = errors.New("benchmark: no strategies")
	ErrNilStrategy  = errors.New("benchmark: nil strategy")
	ErrNilGraph     = errors.New("benchmark: graph is nil")
)

// Harness executes strategies and produces ranked Reports.
// A Harness is safe for concurrent Run calls.
type Harness struct {
	strategies []Strategy
	logger     zerolog.Logger
	metrics    *metrics
	parallel   bool
}

// HarnessOption configures a Harness.
type HarnessOption func(*harnessConfig)

type harnessConfig struct {
	logger   zerolog.Logger
	reg      prometheus.Registerer
	parallel bool
}

// WithLogger sets the logger used for per-strategy events.
func WithLogger(l zerolog.Logger) HarnessOption {
	return func(c *harnessConfig) { c.logger = l }
}

// WithMetrics registers the harness collectors on reg.
func WithMetrics(reg prometheus.Registerer) HarnessOption {
	return func(c *harnessConfig) { c.reg = reg }
}

// WithParallel runs strategies concurrently.
func WithParallel(on bool) HarnessOption {
	return func(c *harnessConfig) { c.parallel = on }
}

// NewHarness validates strategies and wires logging and metrics.
func NewHarness(strategies []Strategy, opts ...HarnessOption) (*Harness, error) {
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}
	for i, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilStrategy, i)
		}
	}

	cfg := harnessConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Harness{
		strategies: append([]Strategy(nil), strategies...),
		logger:     cfg.logger,
		parallel:   cfg.parallel,
	}
	if cfg.reg != nil {
		m, err := newMetrics(cfg.reg)
		if err != nil {
			return nil, fmt.Errorf("benchmark: metrics: %w", err)
		}
		h.metrics = m
	}

	return h, nil
}

// Run executes every strategy from source to goal. A failing strategy, or
// one whose route does not join source to goal over existing edges, is
// recorded with Distance +Inf and does not stop the others. Run returns an
// error only for a nil graph or a cancelled context.
//
// Distances are recomputed from g so strategies are compared on the same
// terms regardless of what they report.
func (h *Harness) Run(ctx context.Context, g *core.Graph, source, goal string) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	runID := uuid.New().String()
	log := h.logger.With().Str("run_id", runID).Str("source", source).Str("goal", goal).Logger()
	log.Info().Int("strategies", len(h.strategies)).Msg("benchmark started")

	results := make([]Result, len(h.strategies))
	if h.parallel {
		var eg errgroup.Group
		for i, s := range h.strategies {
			eg.Go(func() error {
				results[i] = h.runOne(ctx, log, s, g, source, goal)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for i, s := range h.strategies {
			results[i] = h.runOne(ctx, log, s, g, source, goal)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Elapsed < results[j].Elapsed
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	report := &Report{
		RunID:   runID,
		Source:  source,
		Goal:    goal,
		Results: results,
	}
	if !results[0].Failed() {
		report.Best = &report.Results[0]
		log.Info().Str("best", report.Best.Strategy).Float64("distance", report.Best.Distance).Msg("benchmark finished")
	} else {
		log.Warn().Msg("benchmark finished without a valid route")
	}

	return report, nil
}

// runOne times a single strategy and normalizes its outcome.
func (h *Harness) runOne(ctx context.Context, log zerolog.Logger, s Strategy, g *core.Graph, source, goal string) Result {
	start := time.Now()
	out, err := s.Run(ctx, g, source, goal)
	res := Result{
		Strategy: s.Name(),
		Elapsed:  time.Since(start),
		Err:      err,
		Distance: math.Inf(1),
	}
	if err == nil {
		res.Route = out.Route
		res.Alternatives = out.Alternatives
		if connects(out.Route, source, goal) {
			res.Distance = g.Distance(out.Route)
		}
	}
	h.metrics.observe(res)

	ev := log.Debug()
	if res.Failed() {
		ev = log.Warn().Err(err)
	}
	ev.Str("strategy", res.Strategy).
		Float64("distance", res.Distance).
		Dur("elapsed", res.Elapsed).
		Strs("route", res.Route).
		Msg("strategy finished")

	return res
}

// connects reports whether route starts at source and ends at goal.
// Edge validity is left to core.Graph.Distance.
func connects(route []string, source, goal string) bool {
	return len(route) > 0 && route[0] == source && route[len(route)-1] == goal
}
