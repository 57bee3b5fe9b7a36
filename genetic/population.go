// SPDX-License-Identifier: MIT
//
// population.go - building a fully valid initial population.
//
// Every initial individual is valid. Sources, in order:
//  1. Seeds, repaired: the longest valid prefix is kept and the remaining
//     genes are appended by the constructive walk.
//  2. Rejection sampling: uniform permutations, at most MaxInitAttempts each.
//  3. Constructive walk: randomized DFS preferring the neighbor with the
//     fewest onward options (Warnsdorff rule), under a step budget.
//
// If none of these yields a valid ordering, initialization fails with
// ErrOptimizationCollapse instead of looping forever.

package genetic

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/rs/zerolog"
)

// walkBudgetPerGene bounds DFS node visits per interior gene.
const walkBudgetPerGene = 256

// initPopulation returns size valid individuals (unscored).
func (o *optimizer) initPopulation() ([]Individual, error) {
	size := o.opts.PopulationSize
	pop := make([]Individual, 0, size)

	for i, seed := range o.opts.Seeds {
		if len(pop) == size {
			break
		}
		genes, ok := o.repair(seed)
		if !ok {
			o.log.Warn().Int("seed", i).Strs("genes", seed).Msg("seed could not be repaired; dropped")
			continue
		}
		pop = append(pop, Individual{Genes: genes})
	}

	for len(pop) < size {
		genes, ok := o.sample()
		if !ok {
			genes, ok = o.construct(nil)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no valid ordering of %d interior vertices", ErrOptimizationCollapse, len(o.interior))
		}
		pop = append(pop, Individual{Genes: genes})
	}

	return pop, nil
}

// sample draws uniform permutations until one is valid or the attempt
// budget runs out.
func (o *optimizer) sample() ([]string, bool) {
	genes := make([]string, len(o.interior))
	for attempt := 0; attempt < o.opts.MaxInitAttempts; attempt++ {
		copy(genes, o.interior)
		shuffleStrings(genes, o.rng)
		if o.scorer.valid(genes) {
			return genes, true
		}
	}

	return nil, false
}

// repair turns an arbitrary seed into a valid full ordering. Unknown and
// repeated genes are dropped, the longest valid prefix is kept and the rest
// is completed constructively.
func (o *optimizer) repair(seed []string) ([]string, bool) {
	used := make(map[string]bool, len(o.interior))
	prefix := make([]string, 0, len(o.interior))
	last := o.opts.Source

	for _, id := range seed {
		if _, ok := o.genePos[id]; !ok || used[id] {
			continue
		}
		if last != "" && !o.scorer.g.HasEdge(last, id) {
			break
		}
		used[id] = true
		prefix = append(prefix, id)
		last = id
	}

	if len(prefix) == len(o.interior) && o.scorer.valid(prefix) {
		return prefix, true
	}
	o.log.Debug().Int("kept", len(prefix)).Int("want", len(o.interior)).Msg("repairing seed")

	// Back off one gene at a time until the walk can finish the route.
	for k := len(prefix); k >= 0; k-- {
		if genes, ok := o.construct(prefix[:k]); ok {
			return genes, true
		}
	}

	return nil, false
}

// construct extends prefix into a full valid ordering with a randomized
// Warnsdorff-biased DFS. It never mutates prefix.
func (o *optimizer) construct(prefix []string) ([]string, bool) {
	w := &walker{
		o:         o,
		rng:       o.walkRNG,
		remaining: make(map[string]bool, len(o.interior)),
		path:      make([]string, 0, len(o.interior)),
		budget:    walkBudgetPerGene * (len(o.interior) + 1),
	}
	for _, id := range o.interior {
		w.remaining[id] = true
	}
	for _, id := range prefix {
		delete(w.remaining, id)
		w.path = append(w.path, id)
	}

	last := o.opts.Source
	if len(prefix) > 0 {
		last = prefix[len(prefix)-1]
	}
	if !w.extend(last) {
		return nil, false
	}

	return w.path, true
}

// walker is the state of one constructive DFS.
type walker struct {
	o         *optimizer
	rng       *rand.Rand
	remaining map[string]bool
	path      []string
	budget    int
}

// extend appends remaining genes after last; last=="" means unanchored start.
func (w *walker) extend(last string) bool {
	if w.budget <= 0 {
		return false
	}
	w.budget--

	if len(w.remaining) == 0 {
		goal := w.o.opts.Goal
		return goal == "" || last == "" || w.o.scorer.g.HasEdge(last, goal)
	}

	for _, next := range w.candidates(last) {
		delete(w.remaining, next)
		w.path = append(w.path, next)
		if w.extend(next) {
			return true
		}
		w.path = w.path[:len(w.path)-1]
		w.remaining[next] = true
	}

	return false
}

// candidates lists remaining genes reachable from last, fewest onward
// options first; ties keep a random order.
func (w *walker) candidates(last string) []string {
	var out []string
	if last == "" {
		out = make([]string, 0, len(w.remaining))
		for _, id := range w.o.interior {
			if w.remaining[id] {
				out = append(out, id)
			}
		}
	} else {
		nbrs, err := w.o.scorer.g.Neighbors(last)
		if err != nil {
			return nil
		}
		for _, id := range nbrs {
			if w.remaining[id] {
				out = append(out, id)
			}
		}
	}

	shuffleStrings(out, w.rng)
	onward := make(map[string]int, len(out))
	for _, id := range out {
		onward[id] = w.onward(id)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return onward[out[i]] < onward[out[j]]
	})

	return out
}

// onward counts remaining neighbors of id, excluding id itself.
func (w *walker) onward(id string) int {
	nbrs, err := w.o.scorer.g.Neighbors(id)
	if err != nil {
		return 0
	}
	n := 0
	for _, v := range nbrs {
		if v != id && w.remaining[v] {
			n++
		}
	}
	return n
}

// newLogger returns l or a disabled logger.
func newLogger(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}
