// SPDX-License-Identifier: MIT

package core

import (
	"github.com/go-kit/kit/log/level"

	"github.com/katalvlaran/lwwgraph/delta"
	"github.com/katalvlaran/lwwgraph/element"
	"github.com/katalvlaran/lwwgraph/lwwset"
)

// MergeResult holds the effective changes of a graph merge, one set-level
// result per element kind.
type MergeResult struct {
	Vertices *lwwset.MergeResult
	Edges    *lwwset.MergeResult
}

// Empty reports whether the merge changed nothing.
func (r *MergeResult) Empty() bool {
	return r.Vertices.Empty() && r.Edges.Empty()
}

// Merge absorbs a remote batch of changes.
//
// Implementation:
//   - Stage 1: Merge vertex additions/removals into the vertex set.
//   - Stage 2: Merge edge additions/removals into the edge set.
//   - Stage 3: Fold only the effective changes into the projections, using
//     the same routines as the local mutators.
//
// Behavior highlights:
//   - Every record is absorbed into the logs; only effective ones touch the
//     projections, so repeated or stale batches leave reads unchanged.
//   - No endpoint validation: merged edges may name vertices not (yet)
//     present here.
//
// Complexity: O(log sizes + batch sizes + effective·deg).
func (g *Graph) Merge(addVertices, removeVertices []element.Vertex, addEdges, removeEdges []element.Edge) *MergeResult {
	// Stage 1 & 2: authoritative merge.
	res := &MergeResult{
		Vertices: g.vertices.Merge(vertexElements(addVertices), vertexElements(removeVertices)),
		Edges:    g.edges.Merge(edgeElements(addEdges), edgeElements(removeEdges)),
	}

	// Stage 3: projections.
	for _, e := range res.Vertices.AdditionList() {
		g.markVertex(e.(element.Vertex).Value())
	}
	for _, e := range res.Vertices.RemovalList() {
		g.unmarkVertex(e.(element.Vertex).Value())
	}
	for _, e := range res.Edges.AdditionList() {
		edge := e.(element.Edge)
		g.link(edge.A(), edge.B())
	}
	for _, e := range res.Edges.RemovalList() {
		edge := e.(element.Edge)
		g.unlink(edge.A(), edge.B())
	}

	g.observeMerge(res, len(addVertices)+len(removeVertices)+len(addEdges)+len(removeEdges))

	return res
}

// MergeDelta merges the four batches carried by d.
func (g *Graph) MergeDelta(d delta.Delta) *MergeResult {
	return g.Merge(d.AddVertices, d.RemoveVertices, d.AddEdges, d.RemoveEdges)
}

// Delta exports this replica's full logs as one batch. Merging it into any
// replica brings that replica up to date with this one.
//
// Complexity: O(total log size).
func (g *Graph) Delta() delta.Delta {
	return delta.Delta{
		AddVertices:    asVertices(g.vertices.Additions()),
		RemoveVertices: asVertices(g.vertices.Removals()),
		AddEdges:       asEdges(g.edges.Additions()),
		RemoveEdges:    asEdges(g.edges.Removals()),
	}
}

func (g *Graph) observeMerge(res *MergeResult, records int) {
	va, vr := len(res.Vertices.AdditionList()), len(res.Vertices.RemovalList())
	ea, er := len(res.Edges.AdditionList()), len(res.Edges.RemovalList())

	g.metrics.Merges.Add(1)
	g.metrics.EffectiveAdditions.With(labelKind, element.KindVertex.String()).Add(float64(va))
	g.metrics.EffectiveAdditions.With(labelKind, element.KindEdge.String()).Add(float64(ea))
	g.metrics.EffectiveRemovals.With(labelKind, element.KindVertex.String()).Add(float64(vr))
	g.metrics.EffectiveRemovals.With(labelKind, element.KindEdge.String()).Add(float64(er))

	level.Debug(g.logger).Log(
		"msg", "merged batch",
		"records", records,
		"vertex_additions", va,
		"vertex_removals", vr,
		"edge_additions", ea,
		"edge_removals", er,
	)
}

func vertexElements(vs []element.Vertex) []element.Element {
	out := make([]element.Element, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out
}

func edgeElements(es []element.Edge) []element.Element {
	out := make([]element.Element, len(es))
	for i, e := range es {
		out[i] = e
	}

	return out
}

// asVertices narrows a vertex-set log; the vertex set only ever holds Vertex.
func asVertices(log []element.Element) []element.Vertex {
	out := make([]element.Vertex, len(log))
	for i, e := range log {
		out[i] = e.(element.Vertex)
	}

	return out
}

// asEdges narrows an edge-set log; the edge set only ever holds Edge.
func asEdges(log []element.Element) []element.Edge {
	out := make([]element.Edge, len(log))
	for i, e := range log {
		out[i] = e.(element.Edge)
	}

	return out
}
