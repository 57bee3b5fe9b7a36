// Package dijkstra computes single-source shortest paths on core.Graph.
//
// Dijkstra(g, Source(id), ...) returns the distance to every vertex and,
// with WithReturnPath, the predecessor map. ShortestPath(g, source, goal)
// stops as soon as goal is settled and returns the path itself.
//
// Unlike astar it uses no coordinates, so it is the reference for graphs
// where no admissible heuristic is known. routebench runs it next to A*.
//
// Edges can be closed without mutating the graph via WithInfEdgeThreshold,
// and WithMaxDistance bounds how far the search explores.
package dijkstra
