// SPDX-License-Identifier: MIT
//
// Package dijkstra defines options and sentinel errors for single-source
// shortest paths over core.Graph.
//
// Options:
//
//	– Source:           starting vertex (required).
//	– ReturnPath:       also return the predecessor map.
//	– MaxDistance:      vertices farther than this are left unsettled.
//	– InfEdgeThreshold: edges with weight ≥ threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source was given.
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrBadMaxDistance  if MaxDistance < 0 (option panics).
//	– ErrBadInfThreshold if InfEdgeThreshold ≤ 0 (option panics).
//	– core.ErrVertexNotFound / core.ErrNoPath (wrapped) from ShortestPath.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrEmptySource indicates that the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a threshold that would block zero-weight edges.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures Dijkstra.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64 // +Inf means no cap
	InfEdgeThreshold float64 // +Inf means no walls
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath makes Dijkstra return the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops settling vertices beyond max. Negative values panic.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as closed roads.
// Non-positive values panic.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options for source with no caps and no walls.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
