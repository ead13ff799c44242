// SPDX-License-Identifier: MIT
// Package core_test holds black-box tests for core.Graph.

package core_test

import (
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/delta"
	"github.com/katalvlaran/lwwgraph/element"
	"github.com/katalvlaran/lwwgraph/lwwset"
)

// Vertex identities reused across tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
	VertexY = "Y"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// at returns epoch shifted by n seconds.
func at(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Second)
}

// newReplica returns a graph whose local mutations carry strictly increasing
// timestamps, starting one second after epoch+offset.
func newReplica(offset time.Duration, opts ...core.GraphOption) *core.Graph {
	c := clock.Ticking{Manual: clock.NewManual(epoch.Add(offset), time.Second)}

	return core.NewGraph(append([]core.GraphOption{core.WithClock(c)}, opts...)...)
}

// withVertices adds every id as a local vertex.
func withVertices(g *core.Graph, ids ...string) *core.Graph {
	for _, id := range ids {
		g.AddVertex(id)
	}

	return g
}

// snapshot is the observable state of a replica: present vertices and, for
// each, its neighbors as a sorted set. Neighbor order depends on the order in
// which changes arrived, so it is not compared across replicas.
type snapshot struct {
	Vertices  []string
	Neighbors map[string][]string
}

func snap(g *core.Graph) snapshot {
	s := snapshot{Vertices: g.Vertices(), Neighbors: make(map[string][]string)}
	for _, v := range s.Vertices {
		nbs := g.ConnectedVertices(v)
		sort.Strings(nbs)
		s.Neighbors[v] = nbs
	}

	return s
}

// rederive resolves the exported logs from scratch and builds the snapshot
// the projections should match.
func rederive(g *core.Graph) snapshot {
	d := g.Delta()

	vs := lwwset.New()
	for _, v := range d.AddVertices {
		vs.Add(v)
	}
	for _, v := range d.RemoveVertices {
		vs.Remove(v)
	}
	es := lwwset.New()
	for _, e := range d.AddEdges {
		es.Add(e)
	}
	for _, e := range d.RemoveEdges {
		es.Remove(e)
	}

	present := make(map[string]bool)
	s := snapshot{Vertices: []string{}, Neighbors: make(map[string][]string)}
	for _, e := range vs.Elements() {
		id := e.(element.Vertex).Value()
		present[id] = true
		s.Vertices = append(s.Vertices, id)
	}
	sort.Strings(s.Vertices)

	nbs := make(map[string]map[string]bool)
	link := func(a, b string) {
		if nbs[a] == nil {
			nbs[a] = make(map[string]bool)
		}
		nbs[a][b] = true
	}
	for _, e := range es.Elements() {
		edge := e.(element.Edge)
		link(edge.A(), edge.B())
		link(edge.B(), edge.A())
	}
	for _, v := range s.Vertices {
		list := []string{}
		for n := range nbs[v] {
			if present[n] {
				list = append(list, n)
			}
		}
		sort.Strings(list)
		s.Neighbors[v] = list
	}

	return s
}

// randomDelta draws ops over a small universe so keys collide and timestamps
// tie. Edges are always recorded as (lower, higher) and never as loops: a
// graph holding both (A,B) and (B,A) shares one adjacency entry between two
// records, which a per-record rederivation cannot model.
func randomDelta(rng *rand.Rand, ops int) delta.Delta {
	keys := []string{VertexA, VertexB, VertexC, VertexD, VertexX, VertexY}
	var d delta.Delta
	for n := 0; n < ops; n++ {
		ts := at(rng.Intn(30))
		remove := rng.Intn(3) == 0
		if rng.Intn(2) == 0 {
			v := element.NewVertex(ts, keys[rng.Intn(len(keys))])
			if remove {
				d.RemoveVertices = append(d.RemoveVertices, v)
			} else {
				d.AddVertices = append(d.AddVertices, v)
			}
			continue
		}

		x, y := rng.Intn(len(keys)), rng.Intn(len(keys))
		if x == y {
			continue
		}
		if x > y {
			x, y = y, x
		}
		e := element.NewEdge(ts, keys[x], keys[y])
		if remove {
			d.RemoveEdges = append(d.RemoveEdges, e)
		} else {
			d.AddEdges = append(d.AddEdges, e)
		}
	}

	return d
}

// fromDelta returns a fresh graph that has merged d.
func fromDelta(d delta.Delta) *core.Graph {
	g := newReplica(0)
	g.MergeDelta(d)

	return g
}
