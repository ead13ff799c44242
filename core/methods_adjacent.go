package core

import (
	"slices"
)

// ConnectedVertices returns the neighbors of v that are present at this
// replica, in adjacency insertion order. An absent v has no neighbors.
//
// Complexity: O(deg(v)).
func (g *Graph) ConnectedVertices(v string) []string {
	if !g.HasVertex(v) {
		return []string{}
	}

	nbs := g.adjacency[v]
	out := make([]string, 0, len(nbs))
	for _, n := range nbs {
		if g.HasVertex(n) {
			out = append(out, n)
		}
	}

	return out
}

// AdjacencyList returns a snapshot of the raw adjacency projection, including
// entries for removed vertices that reads would filter out. Neighbor lists
// keep insertion order; map iteration order is irrelevant.
//
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(g.adjacency))
	for v, nbs := range g.adjacency {
		if len(nbs) == 0 {
			continue
		}
		out[v] = append([]string(nil), nbs...)
	}

	return out
}

// link records a ↔ b in the adjacency projection, skipping existing entries.
func (g *Graph) link(a, b string) {
	if !contains(g.adjacency[a], b) {
		g.adjacency[a] = append(g.adjacency[a], b)
	}
	if !contains(g.adjacency[b], a) {
		g.adjacency[b] = append(g.adjacency[b], a)
	}
}

// unlink drops a ↔ b from the adjacency projection, preserving the order of
// the remaining neighbors.
func (g *Graph) unlink(a, b string) {
	g.adjacency[a] = without(g.adjacency[a], b)
	g.adjacency[b] = without(g.adjacency[b], a)
	if len(g.adjacency[a]) == 0 {
		delete(g.adjacency, a)
	}
	if len(g.adjacency[b]) == 0 {
		delete(g.adjacency, b)
	}
}

func contains(list []string, v string) bool {
	return slices.Contains(list, v)
}

func without(list []string, v string) []string {
	if i := slices.Index(list, v); i >= 0 {
		return slices.Delete(list, i, i+1)
	}

	return list
}
