// Package astar provides heuristic-guided shortest-path search over the
// undirected location graph in package core.
//
// Overview:
//
//   - Search(g, source, goal, opts...) returns the minimum-weight path and its
//     distance, or an error wrapping core.ErrVertexNotFound / core.ErrNoPath.
//   - The heuristic defaults to Euclidean distance between vertex coordinates.
//     It must be admissible (never overestimate) for the result to be optimal.
//     Graphs without coordinates should pass WithHeuristic(Zero), which turns
//     the search into Dijkstra.
//   - Haversine(scale) serves lat/lng coordinate tables.
//
// Key features:
//
//   - Stable FIFO tie-breaking among frontier entries with equal g+h.
//   - WithMaxExpansions bounds latency on large graphs (ErrExpansionLimit).
//   - WithAvoidVertices / WithAvoidEdge exclude parts of the graph without
//     mutating it; kshortest relies on these for spur searches.
//
// Thread safety:
//
//   - Search never mutates the graph and keeps all state in a per-call runner,
//     so concurrent searches over one graph are safe.
package astar
