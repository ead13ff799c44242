// SPDX-License-Identifier: MIT

package core

import (
	"time"

	"github.com/go-kit/kit/log/level"

	"github.com/katalvlaran/lwwgraph/element"
)

// AddEdge stamps Edge(a,b) with the current time, records it in the edge set
// and links a and b in the adjacency projection (both directions).
//
// Implementation:
//   - Stage 1: Validate that both endpoints are present at this replica.
//   - Stage 2: Record the edge in the edge set.
//   - Stage 3: Add b to adjacency[a] and a to adjacency[b] if missing.
//
// Errors:
//   - *VertexNotFoundError (matches ErrVertexNotFound) naming the first
//     missing endpoint. Nothing is recorded in that case.
//
// Notes:
//   - The endpoint check is a local guard, not a CRDT invariant: merged edges
//     may reference vertices this replica has not learned about yet.
//   - Local only: never call it to replay a remote change.
//
// Complexity: O(deg(a)+deg(b)).
func (g *Graph) AddEdge(a, b string) error {
	// Stage 1: endpoint guard.
	for _, v := range [2]string{a, b} {
		if !g.HasVertex(v) {
			g.metrics.RejectedEdges.Add(1)
			level.Info(g.logger).Log(
				"msg", "edge rejected, endpoint unknown",
				"a", a,
				"b", b,
				"missing", v,
			)

			return &VertexNotFoundError{ID: v}
		}
	}

	// Stage 2: authoritative record.
	g.edges.Add(g.edgeRecord(a, b))

	// Stage 3: projection.
	g.link(a, b)
	g.countMutation(opAddEdge)

	return nil
}

// RemoveEdge stamps a removal of Edge(a,b) and unlinks a and b in the
// adjacency projection. The removal targets the directional record (a,b);
// a separately recorded (b,a) edge stays in the edge set.
// Local only.
//
// Complexity: O(deg(a)+deg(b)).
func (g *Graph) RemoveEdge(a, b string) {
	g.edges.Remove(g.edgeRecord(a, b))
	g.unlink(a, b)
	g.countMutation(opRemoveEdge)
}

// HasEdge reports whether a and b are both present and linked in both
// adjacency directions.
//
// Complexity: O(deg(a)+deg(b)).
func (g *Graph) HasEdge(a, b string) bool {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}

	return contains(g.adjacency[a], b) && contains(g.adjacency[b], a)
}

// edgeRecord returns Edge(a,b) stamped by the graph clock.
func (g *Graph) edgeRecord(a, b string) element.Element {
	return element.NewEdge(time.Time{}, a, b).ReplicateNow(g.clock)
}
