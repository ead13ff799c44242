package core

// Clone returns an independent replica with identical logs and projections,
// sharing the clock, logger and metrics of g. Useful to fork a replica for
// what-if merges.
//
// Complexity: O(total log size + V + E).
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithClock(g.clock), WithLogger(g.logger), WithMetrics(g.metrics))
	out.vertices = g.vertices.Clone()
	out.edges = g.edges.Clone()
	for v := range g.vertexState {
		out.vertexState[v] = struct{}{}
	}
	for v, nbs := range g.adjacency {
		out.adjacency[v] = append([]string(nil), nbs...)
	}

	return out
}
