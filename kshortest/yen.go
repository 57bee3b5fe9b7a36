// SPDX-License-Identifier: MIT
//
// Package kshortest implements Yen's algorithm: the k-th shortest simple path
// is found by deviating from each (k-1)-th path at every spur vertex, running
// A* with the root prefix blocked, and promoting the cheapest unseen
// candidate.
//
// Complexity:
//
//   - Time:  O(K · V · S), where S is the cost of one A* spur search.
//   - Space: O(K · V) for accepted paths plus the candidate heap.
package kshortest

import (
	"container/heap"
	"errors"
	"fmt"
	"strings"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/core"
)

// Yen returns up to k lowest-distance simple paths from source to goal in
// non-decreasing order of distance. Fewer than k paths are returned when the
// graph has fewer distinct simple paths. Once MaxDeviations spur searches
// have run, no further deviations are explored and the remaining queued
// candidates are drained in order.
//
// The graph is never mutated: spur searches exclude root-prefix vertices and
// previously used deviation edges through astar exclusion hooks.
func Yen(g *core.Graph, source, goal string, k int, opts ...Option) ([]Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}

	first, err := astar.Search(g, source, goal, astar.WithHeuristic(cfg.Heuristic))
	if err != nil {
		return nil, fmt.Errorf("kshortest: %w", err)
	}

	r := &ranker{
		g:    g,
		cfg:  cfg,
		goal: goal,
		seen: make(map[string]struct{}),
	}
	r.accept(Path{Nodes: first.Path, Distance: g.Distance(first.Path)})

	for len(r.accepted) < k {
		if !r.exhausted {
			if err = r.deviate(r.accepted[len(r.accepted)-1]); err != nil {
				return nil, err
			}
		}
		if r.candidates.Len() == 0 {
			break
		}
		next := heap.Pop(&r.candidates).(*candidate)
		r.accepted = append(r.accepted, next.path)
	}

	return r.accepted, nil
}

// Best returns the first path with minimum distance, or false when paths is
// empty.
func Best(paths []Path) (Path, bool) {
	if len(paths) == 0 {
		return Path{}, false
	}
	best := paths[0]
	for _, p := range paths[1:] {
		if p.Distance < best.Distance {
			best = p
		}
	}

	return best, true
}

// ranker holds state for one Yen run.
type ranker struct {
	g    *core.Graph
	cfg  Options
	goal string

	accepted   []Path
	candidates candidateHeap
	seen       map[string]struct{} // keys of accepted and queued paths
	seq        uint64
	deviations int
	exhausted  bool // MaxDeviations reached
}

func (r *ranker) accept(p Path) {
	r.seen[pathKey(p.Nodes)] = struct{}{}
	r.accepted = append(r.accepted, p)
}

// deviate spurs off every vertex of prev except the goal.
func (r *ranker) deviate(prev Path) error {
	for i := 0; i < len(prev.Nodes)-1; i++ {
		if r.cfg.MaxDeviations > 0 && r.deviations >= r.cfg.MaxDeviations {
			r.exhausted = true
			return nil
		}

		spur := prev.Nodes[i]
		root := prev.Nodes[:i+1]
		blocked := r.blockedEdges(root)

		r.deviations++
		res, err := astar.Search(r.g, spur, r.goal,
			astar.WithHeuristic(r.cfg.Heuristic),
			astar.WithAvoidVertices(root[:i]...),
			astar.WithAvoidEdge(func(u, v string) bool {
				_, hit := blocked[edgeKey(u, v)]
				return hit
			}),
		)
		if errors.Is(err, core.ErrNoPath) {
			continue
		}
		if err != nil {
			return fmt.Errorf("kshortest: spur at %q: %w", spur, err)
		}

		nodes := make([]string, 0, i+len(res.Path))
		nodes = append(nodes, root[:i]...)
		nodes = append(nodes, res.Path...)
		key := pathKey(nodes)
		if _, dup := r.seen[key]; dup {
			continue
		}
		r.seen[key] = struct{}{}

		r.seq++
		heap.Push(&r.candidates, &candidate{
			path: Path{Nodes: nodes, Distance: r.g.Distance(nodes)},
			seq:  r.seq,
		})
	}

	return nil
}

// blockedEdges collects the next edge of every accepted path sharing root.
func (r *ranker) blockedEdges(root []string) map[string]struct{} {
	out := make(map[string]struct{})
	i := len(root) - 1
	for _, p := range r.accepted {
		if len(p.Nodes) <= i+1 || !samePrefix(p.Nodes, root) {
			continue
		}
		out[edgeKey(p.Nodes[i], p.Nodes[i+1])] = struct{}{}
	}

	return out
}

func samePrefix(nodes, root []string) bool {
	for j, id := range root {
		if nodes[j] != id {
			return false
		}
	}
	return true
}

// edgeKey is direction-independent.
func edgeKey(u, v string) string {
	if v < u {
		u, v = v, u
	}
	return u + "\x00" + v
}

func pathKey(nodes []string) string {
	return strings.Join(nodes, "\x00")
}

// candidate is a queued deviation path.
type candidate struct {
	path Path
	seq  uint64 // insertion order
}

// candidateHeap orders by distance, then insertion order.
type candidateHeap []*candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].path.Distance != h[j].path.Distance {
		return h[i].path.Distance < h[j].path.Distance
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return c
}
