// Package delta carries batches of element changes between replicas.
//
// A Delta is the argument tuple of core.Graph.Merge: vertex additions and
// removals, edge additions and removals. It has a compact msgpack encoding
// (tinylib/msgp) and a snappy-compressed envelope for transport or storage.
// Transport and persistence themselves live outside this module.
package delta

import (
	"github.com/katalvlaran/lwwgraph/element"
)

// Delta is one batch of changes produced by a replica.
type Delta struct {
	AddVertices    []element.Vertex
	RemoveVertices []element.Vertex
	AddEdges       []element.Edge
	RemoveEdges    []element.Edge
}

// Len returns the total number of records in the batch.
func (d Delta) Len() int {
	return len(d.AddVertices) + len(d.RemoveVertices) + len(d.AddEdges) + len(d.RemoveEdges)
}

// Empty reports whether the batch carries no records.
func (d Delta) Empty() bool {
	return d.Len() == 0
}

// Concat returns a batch holding the records of d followed by those of other.
func (d Delta) Concat(other Delta) Delta {
	return Delta{
		AddVertices:    append(append([]element.Vertex(nil), d.AddVertices...), other.AddVertices...),
		RemoveVertices: append(append([]element.Vertex(nil), d.RemoveVertices...), other.RemoveVertices...),
		AddEdges:       append(append([]element.Edge(nil), d.AddEdges...), other.AddEdges...),
		RemoveEdges:    append(append([]element.Edge(nil), d.RemoveEdges...), other.RemoveEdges...),
	}
}
