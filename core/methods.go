// SPDX-License-Identifier: MIT
//
// Package core: Graph method implementations.
//
// All mutators take the write lock; all queries take the read lock.
// Adjacency is a nested map adjacency[u][v] = weight, mirrored for both
// directions, giving O(1) edge existence and weight lookup.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// Re-adding an existing vertex is a no-op, except that a coordinate supplied
// now fills a vertex that had none.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id, opts...)

	return nil
}

// addVertexLocked requires g.mu held for writing.
func (g *Graph) addVertexLocked(id string, opts ...VertexOption) {
	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{ID: id}
		g.vertices[id] = v
		g.adjacency[id] = make(map[string]float64)
	}
	if len(opts) == 0 || (exists && v.HasCoord) {
		return
	}
	for _, opt := range opts {
		opt(v)
	}
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects u and v with weight w in both directions, adding missing
// endpoints on the fly. Adding an edge that already exists replaces its weight.
//
// Returns ErrEmptyVertexID for empty endpoints and ErrInvalidEdge for
// self-loops or weights that are negative, NaN or infinite.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, u)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %s—%s weight=%g", ErrInvalidEdge, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w

	return nil
}

// HasEdge reports whether u and v are directly connected.
// Symmetric by construction: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of edge {u,v}, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, u, v)
	}

	return w, nil
}

// Neighbors returns the IDs adjacent to id in sorted order.
// Returns ErrVertexNotFound if id is unknown.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbors of id, or 0 if id is unknown.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Coord returns the coordinate of id and whether one is known.
// Complexity: O(1).
func (g *Graph) Coord(id string) (Coord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok || !v.HasCoord {
		return Coord{}, false
	}

	return v.Coord, true
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge once (From < To), sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
