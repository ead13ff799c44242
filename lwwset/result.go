package lwwset

import (
	"sort"

	"github.com/katalvlaran/lwwgraph/element"
)

// MergeResult pairs the effective additions and effective removals of one
// Merge call, keyed by unique value. It is immutable; accessors return copies.
type MergeResult struct {
	additions map[string]element.Element
	removals  map[string]element.Element
	addOrder  []string
	remOrder  []string
}

// NewMergeResult builds a result from key → element mappings. List views are
// ordered by key.
func NewMergeResult(additions, removals map[string]element.Element) *MergeResult {
	return newMergeResult(copyIndex(additions), copyIndex(removals), sortedKeys(additions), sortedKeys(removals))
}

// newMergeResult takes ownership of the maps; orders may list keys that are
// not in the maps and are filtered here.
func newMergeResult(additions, removals map[string]element.Element, addOrder, remOrder []string) *MergeResult {
	return &MergeResult{
		additions: additions,
		removals:  removals,
		addOrder:  filterKeys(addOrder, additions),
		remOrder:  filterKeys(remOrder, removals),
	}
}

// EffectiveAdditions returns the effective additions keyed by unique value.
func (r *MergeResult) EffectiveAdditions() map[string]element.Element {
	return copyIndex(r.additions)
}

// EffectiveRemovals returns the effective removals keyed by unique value.
func (r *MergeResult) EffectiveRemovals() map[string]element.Element {
	return copyIndex(r.removals)
}

// AdditionList returns the effective additions in batch order.
func (r *MergeResult) AdditionList() []element.Element {
	return listOf(r.addOrder, r.additions)
}

// RemovalList returns the effective removals in batch order.
func (r *MergeResult) RemovalList() []element.Element {
	return listOf(r.remOrder, r.removals)
}

// Empty reports whether the merge changed nothing.
func (r *MergeResult) Empty() bool {
	return len(r.additions) == 0 && len(r.removals) == 0
}

func copyIndex(in map[string]element.Element) map[string]element.Element {
	out := make(map[string]element.Element, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

func sortedKeys(in map[string]element.Element) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func filterKeys(order []string, index map[string]element.Element) []string {
	out := make([]string, 0, len(index))
	for _, k := range order {
		if _, ok := index[k]; ok {
			out = append(out, k)
		}
	}

	return out
}

func listOf(order []string, index map[string]element.Element) []element.Element {
	out := make([]element.Element, 0, len(order))
	for _, k := range order {
		out = append(out, index[k])
	}

	return out
}
