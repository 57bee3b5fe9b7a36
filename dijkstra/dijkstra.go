// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's algorithm on core.Graph.
//
// Vertices are settled in order of increasing distance from the source with
// a min-heap; ties pop in push order so results are deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key heap entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/chaithanyamandadi/routelab/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex.
//
// Returns:
//
//   - dist: vertex ID → distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == "" for the source and for unreached vertices.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (core.ErrVertexNotFound).
//
// core.Graph rejects negative weights on insertion, so no pre-scan is needed.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, core.ErrVertexNotFound)
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight path from source to goal and its
// distance. It settles vertices only until goal is final.
func ShortestPath(g *core.Graph, source, goal string, opts ...Option) ([]string, float64, error) {
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = source

	if source == "" {
		return nil, 0, ErrEmptySource
	}
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, 0, fmt.Errorf("dijkstra: source %q: %w", source, core.ErrVertexNotFound)
	}
	if !g.HasVertex(goal) {
		return nil, 0, fmt.Errorf("dijkstra: goal %q: %w", goal, core.ErrVertexNotFound)
	}

	r := newRunner(g, cfg)
	r.goal = goal
	if err := r.process(); err != nil {
		return nil, 0, err
	}
	if math.IsInf(r.dist[goal], 1) {
		return nil, 0, fmt.Errorf("dijkstra: %q → %q: %w", source, goal, core.ErrNoPath)
	}

	path := []string{goal}
	for cur := goal; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.dist[goal], nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	goal    string // optional early exit; "" settles everything

	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64
}

func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	r.push(cfg.Source, 0)

	return r
}

// process settles vertices until the heap drains or the goal is final.
// relax never records a distance above MaxDistance, so vertices beyond the
// cap keep +Inf.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.goal {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of each neighbor of u.
func (r *runner) relax(u string) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, v := range nbrs {
		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: relax %q→%q: %w", u, v, err)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

func (r *runner) push(v string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: v, dist: d, seq: r.seq})
}

// nodeItem is a heap entry.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
