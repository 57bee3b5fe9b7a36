// Package benchmark runs several routing strategies over one graph and
// ranks them by route distance.
//
// Overview:
//
//   - Strategy is the contract every approach implements. Adapters are
//     provided for astar, dijkstra, genetic, hybrid and kshortest.
//   - Harness.Run times each strategy, recomputes its distance from the
//     graph, and returns a Report sorted by distance then elapsed time.
//   - A strategy that errors or returns a broken route ranks last with
//     distance +Inf. The remaining strategies still run.
//   - WithMetrics exports duration, distance and failure collectors to a
//     Prometheus registry; WithLogger emits one event per strategy tagged
//     with the run id.
//
// Report.WriteText renders the table printed by cmd/routebench.
package benchmark
