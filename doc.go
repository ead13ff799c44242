// Package lwwgraph is a replicated, in-memory graph built from
// Last-Write-Wins element sets: every replica mutates its own copy without
// coordination, and any two replicas that have merged the same changes
// resolve to the same vertices and edges, whatever the merge order.
//
// What is inside:
//
//	• Element sum type: timestamped Vertex and Edge records
//	• LWW element set: add/remove logs, removal wins ties, merges report
//	  only the changes that altered resolved membership
//	• Element graph: two sets plus O(1) vertex lookups and an undirected
//	  adjacency projection, DFS path search
//	• Deltas: change batches with a msgpack + snappy wire encoding
//	• Ambient: go-kit structured logging and counters (Prometheus-ready)
//
// Subpackages:
//
//	clock/   — time sources: System (wall clock), Manual and Ticking (tests)
//	element/ — Vertex, Edge and the sealed Element interface
//	lwwset/  — the LWW element set and MergeResult
//	dfs/     — iterative depth-first path search over a neighbor function
//	core/    — Graph: local mutations, queries, Merge, Delta, metrics
//	delta/   — Delta batches, Encode/Decode
//
// Quick example:
//
//	left, right := core.NewGraph(), core.NewGraph()
//	left.AddVertex("A")
//	left.AddVertex("B")
//	_ = left.AddEdge("A", "B")
//
//	right.MergeDelta(left.Delta())
//	right.RemoveVertex("B")
//	left.MergeDelta(right.Delta())
//
//	left.ConnectedVertices("A") // []
//
// Ordering is by wall-clock timestamps only; there are no vector clocks and
// the logs are never compacted.
//
//	go get github.com/katalvlaran/lwwgraph
package lwwgraph
