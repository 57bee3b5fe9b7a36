// SPDX-License-Identifier: MIT
//
// Package astar implements A* best-first search on core.Graph.
//
// The open set is a min-heap ordered by f = g + h; equal f values are
// expanded in discovery order (FIFO) via a monotonically increasing sequence
// number. A closed set records finalized vertices; a closed vertex is
// reopened only if a strictly cheaper g is discovered, which happens only
// when the heuristic is admissible but not consistent.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a consistent heuristic.
//   - Space: O(V + E) for g-scores, parents and lazy heap entries.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved vertices are pushed again, stale entries
//     are skipped on pop by comparing against the current g-score.
//   - Exclusion hooks (AvoidVertices, AvoidEdge) are applied during
//     relaxation, so Yen's algorithm can run spur searches without cloning
//     or mutating the shared graph.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/chaithanyamandadi/routelab/core"
)

// Search returns a minimum-weight path from source to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and goal must exist (core.ErrVertexNotFound).
//
// When source == goal the result is the single-vertex path with Distance 0.
// If the goal is unreachable under the configured exclusions, the error
// wraps core.ErrNoPath.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g *core.Graph, source, goal string, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return Result{}, fmt.Errorf("astar: source %q: %w", source, core.ErrVertexNotFound)
	}
	if !g.HasVertex(goal) {
		return Result{}, fmt.Errorf("astar: goal %q: %w", goal, core.ErrVertexNotFound)
	}
	if source == goal {
		return Result{Path: []string{source}}, nil
	}

	// 3) Run.
	r := &runner{
		g:      g,
		cfg:    cfg,
		source: source,
		goal:   goal,
		gScore: make(map[string]float64),
		parent: make(map[string]string),
		closed: make(map[string]bool),
	}

	return r.run()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *core.Graph
	cfg    Options
	source string
	goal   string

	gScore   map[string]float64 // best-known cost from source
	parent   map[string]string  // predecessor on the best-known path
	closed   map[string]bool    // finalized vertices
	open     openSet            // min-heap on (f, seq)
	seq      uint64             // discovery counter for FIFO ties
	expanded int
}

// run is the main best-first loop.
func (r *runner) run() (Result, error) {
	r.gScore[r.source] = 0
	heap.Init(&r.open)
	r.push(r.source, 0)

	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		u := item.id

		// Skip stale entries superseded by a cheaper push.
		if item.g > r.gScore[u] || r.closed[u] {
			continue
		}
		r.closed[u] = true
		r.expanded++

		if u == r.goal {
			return r.result(), nil
		}
		if r.cfg.MaxExpansions > 0 && r.expanded >= r.cfg.MaxExpansions {
			return Result{}, fmt.Errorf("%w: %d expansions from %q", ErrExpansionLimit, r.expanded, r.source)
		}
		if err := r.relax(u); err != nil {
			return Result{}, err
		}
	}

	return Result{}, fmt.Errorf("astar: %q → %q: %w", r.source, r.goal, core.ErrNoPath)
}

// relax tries to improve every neighbor of u.
func (r *runner) relax(u string) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", u, err)
	}

	gu := r.gScore[u]
	for _, v := range nbrs {
		if _, blocked := r.cfg.AvoidVertices[v]; blocked {
			continue
		}
		if r.cfg.AvoidEdge != nil && r.cfg.AvoidEdge(u, v) {
			continue
		}
		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("astar: relax %q→%q: %w", u, v, err)
		}

		tentative := gu + w
		if old, seen := r.gScore[v]; seen && tentative >= old {
			continue
		}
		r.gScore[v] = tentative
		r.parent[v] = u
		// Reopen: only reachable with an inconsistent heuristic.
		delete(r.closed, v)
		r.push(v, tentative)
	}

	return nil
}

// push enqueues v with cost g and priority g + h(v).
func (r *runner) push(v string, g float64) {
	r.seq++
	heap.Push(&r.open, &openItem{
		id:  v,
		g:   g,
		f:   g + r.cfg.Heuristic(r.g, v, r.goal),
		seq: r.seq,
	})
}

// result rebuilds the path from parent pointers.
func (r *runner) result() Result {
	path := []string{r.goal}
	for cur := r.goal; cur != r.source; {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Path:     path,
		Distance: r.gScore[r.goal],
		Expanded: r.expanded,
	}
}

// openItem is a frontier entry.
type openItem struct {
	id  string
	g   float64 // cost from source when pushed
	f   float64 // g + h
	seq uint64  // discovery order
}

// openSet is a min-heap of *openItem ordered by f, then by seq.
type openSet []*openItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
