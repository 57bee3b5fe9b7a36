// Package routelab compares route-finding strategies on weighted location
// graphs.
//
// Packages:
//
//	core/       - thread-safe undirected Graph with coordinates and route pricing
//	builder/    - graph constructors: Hyderabad map, grid, cycle, path, complete, random
//	astar/      - A* search with Euclidean, Haversine and zero heuristics
//	dijkstra/   - single-source Dijkstra, the coordinate-free baseline
//	kshortest/  - Yen's loopless K-shortest paths on top of astar
//	genetic/    - anchored permutation GA: OX crossover, swap mutation, elitism
//	hybrid/     - A* route seeds the GA, endpoints stitched back on
//	benchmark/  - runs strategies, ranks them, exports Prometheus metrics
//	config/     - ROUTELAB_* environment configuration
//	cmd/routebench - CLI printing a ranked comparison report
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Hyderabad())
//	res, _ := astar.Search(g, "Uppal", "Kukatpally")
//	fmt.Println(res.Path, res.Distance)
//
// All algorithms treat the graph as read-only, so one graph can be shared
// by concurrent searches.
package routelab
