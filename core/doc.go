// Package core provides the thread-safe, in-memory location graph that every
// routing strategy in routelab reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: AddEdge(u,v,w) makes both u→v and v→u traversable with w.
//   - Float weights: distances in the caller's unit (km, metres, minutes).
//   - Optional 2-D coordinates per vertex for A* heuristics.
//   - No self-loops, no negative/NaN/infinite weights (ErrInvalidEdge).
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() are sorted.
//
// Core Methods:
//
//	// Construction
//	AddVertex(id string, opts ...VertexOption) error // O(1)
//	AddEdge(u, v string, w float64) error             // O(1)
//
//	// Query
//	HasVertex(id string) bool               // O(1)
//	HasEdge(u, v string) bool               // O(1)
//	Weight(u, v string) (float64, error)    // O(1), ErrEdgeNotFound
//	Neighbors(id string) ([]string, error)  // O(d·log d), ErrVertexNotFound
//	Coord(id string) (Coord, bool)          // O(1)
//	Vertices() []string                     // O(V·log V)
//	Edges() []Edge                          // O(E·log E)
//
//	// Routes
//	Distance(path []string) float64         // +Inf for invalid paths
//	IsValidPath(path []string) bool
//
// Concurrency:
//
// Graph is built once and then shared read-only. Reads take an RLock, so
// A*, the GA's parallel fitness workers and Yen's spur searches can all
// query the same instance at once without extra synchronization.
package core
