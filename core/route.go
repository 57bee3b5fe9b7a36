// SPDX-License-Identifier: MIT
//
// route.go - distance and validity of vertex sequences.
//
// A route is valid iff every consecutive pair is an edge. Invalid routes
// carry infinite cost; callers compare distances without special-casing.

package core

import "math"

// Distance returns the total weight along path.
//
//   - len(path) < 2 ⇒ 0 (nothing to traverse).
//   - any consecutive pair without an edge ⇒ +Inf, regardless of how many
//     valid edges precede it.
//
// The whole walk runs under one read lock.
// Complexity: O(len(path)).
func (g *Graph) Distance(path []string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.adjacency[path[i]][path[i+1]]
		if !ok {
			return math.Inf(1)
		}
		total += w
	}

	return total
}

// IsValidPath reports whether every consecutive pair of path is an edge.
// Paths shorter than two vertices are trivially valid.
// Complexity: O(len(path)).
func (g *Graph) IsValidPath(path []string) bool {
	return !math.IsInf(g.Distance(path), 1)
}
