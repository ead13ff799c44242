// Package dfs defines types and options for depth-first path search,
// including cancellation, pre-order hooks, depth limiting and neighbor
// filtering.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrNilSource is returned when a nil Neighborer is passed to FindPath.
	ErrNilSource = errors.New("dfs: neighbor source is nil")

	// ErrNoPath indicates the search exhausted every reachable vertex
	// without reaching the target.
	ErrNoPath = errors.New("dfs: no path between vertices")
)

// Neighborer exposes the adjacency projection searched by FindPath.
// Neighbor order drives traversal order.
type Neighborer interface {
	ConnectedVertices(id string) []string
}

// Option configures optional behavior of FindPath.
type Option func(*Options)

// Options holds configurable parameters for a path search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered.
	// Returning an error aborts the search with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, stops expansion at that depth.
	// A depth of 0 explores only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descent.
	// Return false to skip it.
	FilterNeighbor func(id string) bool

	// OnSkip, if non-nil, is invoked for each neighbor FilterNeighbor rejects.
	OnSkip func(id string)
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits expansion depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnSkip installs fn as a hook for neighbors rejected by the filter.
func WithOnSkip(fn func(id string)) Option {
	return func(o *Options) {
		o.OnSkip = fn
	}
}

// WithFilterNeighbor installs a neighbor filter.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
