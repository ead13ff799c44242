// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"time"

	"github.com/katalvlaran/lwwgraph/element"
)

// AddVertex stamps Vertex(v) with the current time, records it in the vertex
// set and marks v present.
// Local only: never call it to replay a remote change.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v string) {
	g.vertices.Add(g.vertexRecord(v))
	g.markVertex(v)
	g.countMutation(opAddVertex)
}

// RemoveVertex stamps a removal of Vertex(v) and unmarks v.
// Incident edges and adjacency entries are left in place; reads filter them.
// Local only.
//
// Complexity: O(1) amortized.
func (g *Graph) RemoveVertex(v string) {
	g.vertices.Remove(g.vertexRecord(v))
	g.unmarkVertex(v)
	g.countMutation(opRemoveVertex)
}

// HasVertex reports whether v is present at this replica.
//
// Complexity: O(1)
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.vertexState[v]

	return ok
}

// Vertices returns the present vertex identities, sorted.
//
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertexState))
	for v := range g.vertexState {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of present vertices.
func (g *Graph) VertexCount() int {
	return len(g.vertexState)
}

func (g *Graph) markVertex(v string) {
	g.vertexState[v] = struct{}{}
}

func (g *Graph) unmarkVertex(v string) {
	delete(g.vertexState, v)
}

// vertexRecord returns Vertex(v) stamped by the graph clock.
func (g *Graph) vertexRecord(v string) element.Element {
	return element.NewVertex(time.Time{}, v).ReplicateNow(g.clock)
}
