// SPDX-License-Identifier: MIT
//
// heuristic.go - distance estimates for A*.
//
// Every heuristic returns 0 when either endpoint lacks a coordinate, which
// keeps it admissible on partially-annotated graphs.

package astar

import (
	"math"

	"github.com/chaithanyamandadi/routelab/core"
)

// earthRadiusKm is the mean Earth radius used by Haversine.
const earthRadiusKm = 6371.0

// Zero is the null heuristic; A* degrades to Dijkstra.
func Zero(_ *core.Graph, _, _ string) float64 { return 0 }

// Euclidean is the straight-line distance between the coordinates of u and
// goal. It is admissible when edge weights are at least the planar distance
// between their endpoints.
func Euclidean(g *core.Graph, u, goal string) float64 {
	a, okA := g.Coord(u)
	b, okB := g.Coord(goal)
	if !okA || !okB {
		return 0
	}

	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Haversine returns a heuristic for graphs whose coordinates are
// (latitude, longitude) in degrees, stored as Coord{X: lat, Y: lng}.
// The great-circle distance in kilometres is multiplied by scale, so pass
// 1 for km-weighted graphs, 1000 for metres. scale must be positive.
func Haversine(scale float64) Heuristic {
	if scale <= 0 || math.IsNaN(scale) {
		panic("astar: Haversine scale must be positive")
	}
	return func(g *core.Graph, u, goal string) float64 {
		a, okA := g.Coord(u)
		b, okB := g.Coord(goal)
		if !okA || !okB {
			return 0
		}

		return scale * greatCircleKm(a, b)
	}
}

// greatCircleKm is the Haversine formula over degree coordinates.
func greatCircleKm(a, b core.Coord) float64 {
	lat1 := toRadians(a.X)
	lat2 := toRadians(b.X)
	dLat := toRadians(b.X - a.X)
	dLng := toRadians(b.Y - a.Y)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
