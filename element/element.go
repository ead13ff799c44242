// SPDX-License-Identifier: MIT
//
// Package element defines the timestamped values stored in an LWW element set.
//
// Element is a closed sum type with exactly two variants:
//
//	Vertex — one identity string.
//	Edge   — an ordered pair of identity strings (A, B).
//
// Elements are immutable. Equality compares payload only, never timestamps,
// and two elements of different variants are never equal. UniqueValue yields
// the key that identifies "the same logical element" across timestamps:
//
//	Vertex{v}   → "v"+v
//	Edge{a, b}  → "e"+a+","+b
//
// Edge identity is directional: Edge(A,B) and Edge(B,A) are distinct logical
// elements even though the graph treats both as the same undirected relation.
package element

import (
	"time"

	"github.com/katalvlaran/lwwgraph/clock"
)

// Kind tags the variant of an Element.
type Kind uint8

const (
	// KindVertex marks a Vertex.
	KindVertex Kind = iota + 1
	// KindEdge marks an Edge.
	KindEdge
)

// String returns "vertex" or "edge".
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Unique value prefixes per variant.
const (
	vertexPrefix = "v"
	edgePrefix   = "e"
	edgeSep      = ","
)

// Element is a timestamped, identity-bearing value. The interface is sealed:
// only Vertex and Edge implement it.
type Element interface {
	// Timestamp reports the instant the element was stamped with.
	Timestamp() time.Time

	// Equals compares payloads; timestamps are ignored.
	Equals(other Element) bool

	// ReplicateNow returns the same variant and payload stamped with c.Now().
	ReplicateNow(c clock.Clock) Element

	// UniqueValue returns the timestamp-independent key of the element.
	UniqueValue() string

	// Kind reports the variant.
	Kind() Kind

	sealed()
}

// Vertex is the vertex variant of Element.
type Vertex struct {
	ts    time.Time
	value string
}

// NewVertex stamps value with ts.
func NewVertex(ts time.Time, value string) Vertex {
	return Vertex{ts: ts, value: value}
}

// Value returns the vertex identity.
func (v Vertex) Value() string { return v.value }

// Timestamp implements Element.
func (v Vertex) Timestamp() time.Time { return v.ts }

// Kind implements Element.
func (Vertex) Kind() Kind { return KindVertex }

// Equals implements Element.
func (v Vertex) Equals(other Element) bool {
	o, ok := other.(Vertex)

	return ok && o.value == v.value
}

// ReplicateNow implements Element.
func (v Vertex) ReplicateNow(c clock.Clock) Element {
	return v.At(c.Now())
}

// At returns a copy of v stamped with ts.
func (v Vertex) At(ts time.Time) Vertex {
	return Vertex{ts: ts, value: v.value}
}

// UniqueValue implements Element.
func (v Vertex) UniqueValue() string { return vertexPrefix + v.value }

// String renders the vertex with its timestamp for diagnostics.
func (v Vertex) String() string {
	return "vertex(" + v.value + ")@" + v.ts.Format(time.RFC3339Nano)
}

func (Vertex) sealed() {}

// Edge is the edge variant of Element. A and B are stored verbatim,
// never canonically sorted.
type Edge struct {
	ts time.Time
	a  string
	b  string
}

// NewEdge stamps the pair (a, b) with ts.
func NewEdge(ts time.Time, a, b string) Edge {
	return Edge{ts: ts, a: a, b: b}
}

// A returns the first endpoint.
func (e Edge) A() string { return e.a }

// B returns the second endpoint.
func (e Edge) B() string { return e.b }

// Timestamp implements Element.
func (e Edge) Timestamp() time.Time { return e.ts }

// Kind implements Element.
func (Edge) Kind() Kind { return KindEdge }

// Equals implements Element. Endpoint order matters.
func (e Edge) Equals(other Element) bool {
	o, ok := other.(Edge)

	return ok && o.a == e.a && o.b == e.b
}

// ReplicateNow implements Element.
func (e Edge) ReplicateNow(c clock.Clock) Element {
	return e.At(c.Now())
}

// At returns a copy of e stamped with ts.
func (e Edge) At(ts time.Time) Edge {
	return Edge{ts: ts, a: e.a, b: e.b}
}

// UniqueValue implements Element.
func (e Edge) UniqueValue() string { return edgePrefix + e.a + edgeSep + e.b }

// String renders the edge with its timestamp for diagnostics.
func (e Edge) String() string {
	return "edge(" + e.a + "," + e.b + ")@" + e.ts.Format(time.RFC3339Nano)
}

func (Edge) sealed() {}

// Newer reports whether x carries a strictly later timestamp than y.
func Newer(x, y Element) bool {
	return x.Timestamp().After(y.Timestamp())
}
