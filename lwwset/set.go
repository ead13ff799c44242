// SPDX-License-Identifier: MIT

package lwwset

import (
	"github.com/katalvlaran/lwwgraph/element"
)

// Set is an LWW element set. The zero value is an empty, usable set.
type Set struct {
	adds    []element.Element
	removes []element.Element
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// Add appends e to the addition log.
// Complexity: O(1) amortized.
func (s *Set) Add(e element.Element) {
	s.adds = append(s.adds, e)
}

// Remove appends e to the removal log. Removing an element that was never
// added is legal; the record stays inert until an addition at or before its
// timestamp shows up.
// Complexity: O(1) amortized.
func (s *Set) Remove(e element.Element) {
	s.removes = append(s.removes, e)
}

// Exists resolves membership of the logical element e by scanning both logs
// for payload-equal records.
// Complexity: O(A+R).
func (s *Set) Exists(e element.Element) bool {
	return present(latestEqual(s.adds, e), latestEqual(s.removes, e))
}

// Elements resolves the whole set: for every distinct unique value the latest
// addition is returned, unless a removal at or after it exists. The result is
// ordered by the first appearance of each key in the addition log.
// Complexity: O(A+R).
func (s *Set) Elements() []element.Element {
	latestAdd, order := latestPerKey(s.adds)
	latestRem, _ := latestPerKey(s.removes)

	out := make([]element.Element, 0, len(order))
	var key string
	for _, key = range order {
		if present(latestAdd[key], latestRem[key]) {
			out = append(out, latestAdd[key])
		}
	}

	return out
}

// Len returns the number of resolved members.
func (s *Set) Len() int {
	return len(s.Elements())
}

// Additions returns a copy of the addition log in insertion order.
func (s *Set) Additions() []element.Element {
	return append([]element.Element(nil), s.adds...)
}

// Removals returns a copy of the removal log in insertion order.
func (s *Set) Removals() []element.Element {
	return append([]element.Element(nil), s.removes...)
}

// AdditionCount returns the length of the addition log.
func (s *Set) AdditionCount() int {
	return len(s.adds)
}

// RemovalCount returns the length of the removal log.
func (s *Set) RemovalCount() int {
	return len(s.removes)
}

// latestEqual returns the record of log with the greatest timestamp that is
// payload-equal to e, or nil.
func latestEqual(log []element.Element, e element.Element) element.Element {
	var latest, rec element.Element
	for _, rec = range log {
		if !rec.Equals(e) {
			continue
		}
		if latest == nil || element.Newer(rec, latest) {
			latest = rec
		}
	}

	return latest
}

// latestPerKey folds log into unique value → record with the greatest
// timestamp. On equal timestamps the earliest record is kept. order lists the
// keys by first appearance.
func latestPerKey(log []element.Element) (latest map[string]element.Element, order []string) {
	latest = make(map[string]element.Element, len(log))
	var (
		rec element.Element
		key string
	)
	for _, rec = range log {
		key = rec.UniqueValue()
		cur, seen := latest[key]
		if !seen {
			order = append(order, key)
			latest[key] = rec
			continue
		}
		if element.Newer(rec, cur) {
			latest[key] = rec
		}
	}

	return latest, order
}

// later returns whichever of x, y carries the greater timestamp; nil-safe.
func later(x, y element.Element) element.Element {
	switch {
	case x == nil:
		return y
	case y == nil:
		return x
	case element.Newer(y, x):
		return y
	default:
		return x
	}
}

// present applies the LWW rule to the latest addition and removal of one key.
// Removal wins ties.
func present(add, rem element.Element) bool {
	if add == nil {
		return false
	}
	if rem == nil {
		return true
	}

	return rem.Timestamp().Before(add.Timestamp())
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		adds:    s.Additions(),
		removes: s.Removals(),
	}
}
