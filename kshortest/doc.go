// Package kshortest enumerates the K lowest-distance simple routes between two
// locations using Yen's algorithm with A* spur searches.
//
// Guarantees:
//
//   - Paths are returned in non-decreasing distance order.
//   - No path repeats a vertex; no path appears twice.
//   - Fewer than K paths are returned when the graph runs out of simple paths.
//   - Equal-distance candidates keep the order in which they were discovered,
//     so Best returns the lowest deviation index among ties.
//
// Bounded latency on dense graphs is available through WithMaxDeviations.
package kshortest
