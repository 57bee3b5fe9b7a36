// SPDX-License-Identifier: MIT
//
// fitness.go - route scoring and batch evaluation.
//
// Scoring is a pure function of the read-only graph, so a batch may be scored
// in any order or concurrently with identical results.

package genetic

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/chaithanyamandadi/routelab/core"
)

// scorer prices gene orderings, attaching anchors when set.
type scorer struct {
	g       *core.Graph
	source  string
	goal    string
	epsilon float64
	workers int
}

// route returns genes with anchors attached.
func (s scorer) route(genes []string) []string {
	out := make([]string, 0, len(genes)+2)
	if s.source != "" {
		out = append(out, s.source)
	}
	out = append(out, genes...)
	if s.goal != "" {
		out = append(out, s.goal)
	}

	return out
}

// distance is the anchored route distance; +Inf on any missing edge.
func (s scorer) distance(genes []string) float64 {
	return s.g.Distance(s.route(genes))
}

// valid reports whether every consecutive pair, anchors included, is an edge.
func (s scorer) valid(genes []string) bool {
	return !math.IsInf(s.distance(genes), 1)
}

// score fills Distance and Fitness. A single missing edge drops the
// individual to the fitness floor.
func (s scorer) score(ind *Individual) {
	ind.Distance = s.distance(ind.Genes)
	if math.IsInf(ind.Distance, 1) {
		ind.Fitness = 0
		return
	}
	ind.Fitness = 1 / (ind.Distance + s.epsilon)
}

// evaluate scores every individual, fanning out across workers when
// configured. Each goroutine writes only its own slot.
//
// Complexity: O(P · L) for P individuals of length L.
func (s scorer) evaluate(pop []Individual) {
	if s.workers <= 1 || len(pop) < 2 {
		for i := range pop {
			s.score(&pop[i])
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for i := range pop {
		ind := &pop[i]
		eg.Go(func() error {
			s.score(ind)
			return nil
		})
	}
	_ = eg.Wait()
}
