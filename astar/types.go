// SPDX-License-Identifier: MIT
//
// Package astar defines options, results and sentinel errors for the A*
// shortest-path search over core.Graph.
//
// Options:
//
//	– Heuristic:     h(u, goal) estimate; must be admissible for optimality.
//	– MaxExpansions: optional cap on closed-set insertions (0 = unlimited).
//	– AvoidVertices: vertices the search must not enter (used by Yen's spur searches).
//	– AvoidEdge:     predicate marking individual edges impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrExpansionLimit  if MaxExpansions is reached before the goal is closed.
//	– core.ErrVertexNotFound (wrapped) if source or goal is unknown.
//	– core.ErrNoPath (wrapped) if the goal is unreachable.
package astar

import (
	"errors"

	"github.com/chaithanyamandadi/routelab/core"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrExpansionLimit indicates the search stopped at MaxExpansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative MaxExpansions.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Heuristic estimates the remaining cost from u to goal on g.
// It must never overestimate the true remaining cost (admissible) for
// Search to return an optimal path.
type Heuristic func(g *core.Graph, u, goal string) float64

// Result is the outcome of a successful search.
type Result struct {
	// Path is the ordered vertex sequence from source to goal, inclusive.
	Path []string

	// Distance is the total edge weight along Path.
	Distance float64

	// Expanded counts vertices moved into the closed set (including reopenings).
	Expanded int
}

// Options configures the behavior of Search.
type Options struct {
	Heuristic     Heuristic              // defaults to Euclidean
	MaxExpansions int                    // 0 means unlimited
	AvoidVertices map[string]struct{}    // never entered (source is exempt)
	AvoidEdge     func(u, v string) bool // true ⇒ edge u→v is impassable
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic sets the heuristic. Passing nil panics; use Zero for Dijkstra.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expansions. Negative values panic.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithAvoidVertices forbids the search from entering the given vertices.
// The source itself is never blocked.
func WithAvoidVertices(ids ...string) Option {
	return func(o *Options) {
		if o.AvoidVertices == nil {
			o.AvoidVertices = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.AvoidVertices[id] = struct{}{}
		}
	}
}

// WithAvoidEdge marks edges impassable when pred(u, v) is true for the
// traversal direction u→v.
func WithAvoidEdge(pred func(u, v string) bool) Option {
	return func(o *Options) {
		o.AvoidEdge = pred
	}
}

// DefaultOptions returns the Euclidean heuristic with no caps or exclusions.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
	}
}
