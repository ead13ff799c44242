// SPDX-License-Identifier: MIT
//
// This file declares Graph, GraphOption, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrVertexNotFound - AddEdge endpoint unknown to the local replica.
//	ErrPathNotFound   - FindPath exhausted the reachable vertices.

package core

import (
	"errors"

	"github.com/go-kit/kit/log"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/lwwset"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an edge endpoint is not present at this replica.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrPathNotFound indicates no path exists between two vertices.
	ErrPathNotFound = errors.New("core: path not found")
)

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithClock sets the time source used to stamp local mutations.
// A nil clock is ignored.
func WithClock(c clock.Clock) GraphOption {
	return func(g *Graph) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithLogger sets the go-kit logger. A nil logger is ignored.
func WithLogger(l log.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics sets the counters updated by mutations and merges.
// A nil value is ignored.
func WithMetrics(m *Metrics) GraphOption {
	return func(g *Graph) {
		if m != nil {
			g.metrics = m
		}
	}
}

// Graph is an LWW element graph replica.
//
// vertices and edges are authoritative; vertexState and adjacency are
// projections rebuilt incrementally from local mutations and effective merges.
type Graph struct {
	clock   clock.Clock
	logger  log.Logger
	metrics *Metrics

	// Authoritative CRDT state
	vertices *lwwset.Set
	edges    *lwwset.Set

	// Derived projections
	vertexState map[string]struct{} // identity → present
	adjacency   map[string][]string // identity → neighbors, insertion order
}

// NewGraph creates an empty Graph. Defaults: system clock, no-op logger,
// discard metrics.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		clock:       clock.System{},
		logger:      log.NewNopLogger(),
		metrics:     NewDiscardMetrics(),
		vertices:    lwwset.New(),
		edges:       lwwset.New(),
		vertexState: make(map[string]struct{}),
		adjacency:   make(map[string][]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
