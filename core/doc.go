// Package core provides the Last-Write-Wins element graph: a state-based
// CRDT of vertices and edges that replicas update independently and merge
// deterministically, converging regardless of merge order.
//
// The Graph G = (V,E) is composed of two lwwset.Set instances, one for
// vertices and one for edges, plus two derived projections kept in lockstep
// with every local mutation and every effective merge:
//
//   - vertexState: identities currently believed present (O(1) lookups).
//   - adjacency:   vertex → neighbors implied by currently effective edges,
//     undirected, in insertion order.
//
// The projections are never authoritative; they exist so reads never scan
// the logs.
//
// Configuration Options (GraphOption):
//
//	– WithClock(c clock.Clock)   time source for local mutations (default clock.System)
//	– WithLogger(l log.Logger)   go-kit logger (default no-op)
//	– WithMetrics(m *Metrics)    go-kit counters (default discard)
//
// Core Methods:
//
//	// Local mutations ("source" semantics: never call while replaying merges)
//	AddVertex(v string)                  // O(1)
//	RemoveVertex(v string)               // O(1); does not cascade to edges
//	AddEdge(a, b string) error           // O(deg); *VertexNotFoundError
//	RemoveEdge(a, b string)              // O(deg)
//
//	// Queries
//	HasVertex(v string) bool             // O(1)
//	HasEdge(a, b string) bool            // O(deg)
//	ConnectedVertices(v string) []string // O(deg); hides removed vertices
//	FindPath(a, b string, opts ...dfs.Option) ([]string, error) // DFS; *PathNotFoundError
//	Vertices() []string                  // sorted
//	AdjacencyList() map[string][]string  // raw projection snapshot
//	Stats() *GraphStats                  // projection and log sizes
//	Clone() *Graph                       // independent replica
//
//	// Synchronization
//	Merge(addV, remV, addE, remE) *MergeResult
//	MergeDelta(d delta.Delta) *MergeResult
//	Delta() delta.Delta                  // full logs, for state-based sync
//
// Edge identity is directional (Edge(A,B) ≠ Edge(B,A) in the edge set) while
// adjacency is undirected: RemoveEdge(A,B) only cancels additions recorded as
// (A,B), but always prunes both adjacency entries.
//
// RemoveVertex keeps incident edges and adjacency entries; ConnectedVertices
// filters neighbors against vertexState at read time instead.
//
// Concurrency: a Graph is not safe for concurrent use. Each replica owns its
// instance and serializes access to it.
package core
