// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and diagnostics on top of the core types.

package core

import (
	"github.com/katalvlaran/lwwgraph/clock"
)

// GraphStats is a snapshot of projection sizes and log sizes.
//
// The logs grow without bound; comparing log sizes with the projection sizes
// shows how much history a replica carries.
type GraphStats struct {
	VertexCount         int // present vertices
	AdjacencyEntries    int // directed adjacency entries, stale ones included
	VertexAdditions     int // vertex addition log length
	VertexRemovals      int // vertex removal log length
	EdgeAdditions       int // edge addition log length
	EdgeRemovals        int // edge removal log length
	ResolvedEdgeCount   int // edges resolved present by the edge set
	ResolvedVertexCount int // vertices resolved present by the vertex set
}

// Stats scans the logs and projections once.
//
// Complexity: O(V+E+total log size).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount:         len(g.vertexState),
		VertexAdditions:     g.vertices.AdditionCount(),
		VertexRemovals:      g.vertices.RemovalCount(),
		EdgeAdditions:       g.edges.AdditionCount(),
		EdgeRemovals:        g.edges.RemovalCount(),
		ResolvedEdgeCount:   g.edges.Len(),
		ResolvedVertexCount: g.vertices.Len(),
	}
	for _, nbs := range g.adjacency {
		stats.AdjacencyEntries += len(nbs)
	}

	return &stats
}

// Clock returns the time source used for local mutations.
func (g *Graph) Clock() clock.Clock {
	return g.clock
}
