// SPDX-License-Identifier: MIT
//
// Package kshortest defines options, results and errors for Yen's loopless
// K-shortest-paths ranking.
//
// Options:
//
//	– Heuristic:     forwarded to every A* spur search (default astar.Euclidean).
//	– MaxDeviations: optional cap on spur searches (0 = unlimited).
//
// Errors:
//
//	– ErrNilGraph  if the graph pointer is nil.
//	– ErrBadK      if k < 1.
//	– core.ErrVertexNotFound / core.ErrNoPath (wrapped) from the first search.
package kshortest

import (
	"errors"

	"github.com/chaithanyamandadi/routelab/astar"
)

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("kshortest: graph is nil")

	// ErrBadK indicates k < 1.
	ErrBadK = errors.New("kshortest: k must be at least 1")

	// ErrBadMaxDeviations indicates a negative deviation cap.
	ErrBadMaxDeviations = errors.New("kshortest: MaxDeviations must be non-negative")
)

// Path is one ranked simple path.
type Path struct {
	Nodes    []string
	Distance float64
}

// Options configures Yen.
type Options struct {
	Heuristic     astar.Heuristic
	MaxDeviations int
}

// Option mutates Options.
type Option func(*Options)

// WithHeuristic sets the heuristic used by spur searches. Nil panics.
func WithHeuristic(h astar.Heuristic) Option {
	if h == nil {
		panic("kshortest: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxDeviations caps the total number of spur searches. Once the cap is
// hit Yen stops and returns the paths found so far. Negative values panic.
func WithMaxDeviations(n int) Option {
	if n < 0 {
		panic(ErrBadMaxDeviations.Error())
	}
	return func(o *Options) {
		o.MaxDeviations = n
	}
}

// DefaultOptions returns the Euclidean heuristic with no deviation cap.
func DefaultOptions() Options {
	return Options{Heuristic: astar.Euclidean}
}
