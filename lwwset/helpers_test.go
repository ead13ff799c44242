package lwwset_test

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/lwwgraph/element"
	"github.com/katalvlaran/lwwgraph/lwwset"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// at returns epoch shifted by n seconds.
func at(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Second)
}

func vtx(n int, v string) element.Element {
	return element.NewVertex(at(n), v)
}

func edge(n int, a, b string) element.Element {
	return element.NewEdge(at(n), a, b)
}

// batch is one replica's set of changes.
type batch struct {
	adds    []element.Element
	removes []element.Element
}

// randomBatch draws ops over a small key universe so that keys collide, and
// timestamps over a narrow window so that ties happen.
func randomBatch(rng *rand.Rand, ops int) batch {
	keys := []string{"A", "B", "C", "D", "E", "F"}
	var b batch
	for i := 0; i < ops; i++ {
		var e element.Element
		ts := at(rng.Intn(40))
		if rng.Intn(2) == 0 {
			e = element.NewVertex(ts, keys[rng.Intn(len(keys))])
		} else {
			e = element.NewEdge(ts, keys[rng.Intn(len(keys))], keys[rng.Intn(len(keys))])
		}
		if rng.Intn(3) == 0 {
			b.removes = append(b.removes, e)
		} else {
			b.adds = append(b.adds, e)
		}
	}

	return b
}

// build returns a set whose logs hold the batch verbatim.
func build(b batch) *lwwset.Set {
	s := lwwset.New()
	for _, e := range b.adds {
		s.Add(e)
	}
	for _, e := range b.removes {
		s.Remove(e)
	}

	return s
}

// clone copies a set through its logs.
func clone(s *lwwset.Set) *lwwset.Set {
	return build(batch{adds: s.Additions(), removes: s.Removals()})
}

// membership renders the resolved set as sorted "key@ts" strings.
func membership(s *lwwset.Set) []string {
	out := make([]string, 0)
	for _, e := range s.Elements() {
		out = append(out, fmt.Sprintf("%s@%d", e.UniqueValue(), e.Timestamp().Unix()))
	}
	sort.Strings(out)

	return out
}

// presentKeys returns the resolved unique values.
func presentKeys(s *lwwset.Set) map[string]bool {
	out := make(map[string]bool)
	for _, e := range s.Elements() {
		out[e.UniqueValue()] = true
	}

	return out
}

func keysOf(m map[string]element.Element) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
