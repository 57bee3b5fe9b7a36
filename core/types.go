// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex, Coord and Edge types,
// and provides thread-safe primitives for building and querying the
// undirected location graph shared by every routing strategy.
//
// A single sync.RWMutex guards vertices and adjacency. Strategies only read
// the graph after construction, so any number of them may run concurrently.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist (UnknownNode).
//	ErrEdgeNotFound   - weight lookup on a non-edge.
//	ErrInvalidEdge    - self-loop, negative, NaN or infinite weight.
//	ErrNoPath         - a search could not connect source and goal.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a weight lookup on a pair that is not connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates malformed construction input: a self-loop or a
	// weight that is negative, NaN or infinite.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrNoPath indicates that source and goal are not connected under the
	// constraints of the search that produced it.
	ErrNoPath = errors.New("core: no path between vertices")
)

// Coord is a planar (or lat/lng) position used by search heuristics.
type Coord struct {
	X float64
	Y float64
}

// Vertex represents a location in the graph.
//
// ID uniquely identifies the Vertex. Coord is meaningful only when HasCoord
// is true; heuristics treat coordinate-free vertices as zero-estimate.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Coord is the optional 2-D position.
	Coord Coord

	// HasCoord reports whether Coord was supplied.
	HasCoord bool
}

// Edge is an undirected, weighted connection. Listings always report
// From < To so that each edge appears exactly once.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// VertexOption configures a Vertex when it is added.
type VertexOption func(v *Vertex)

// WithCoord attaches a 2-D coordinate to the vertex.
func WithCoord(x, y float64) VertexOption {
	return func(v *Vertex) {
		v.Coord = Coord{X: x, Y: y}
		v.HasCoord = true
	}
}

// Graph is the in-memory undirected weighted location graph.
//
// adjacency[u][v] holds the weight of edge {u,v}; every entry is mirrored so
// that adjacency[u][v] == adjacency[v][u] at all times.
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency and edgeCount

	vertices  map[string]*Vertex
	adjacency map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]float64),
	}
}
