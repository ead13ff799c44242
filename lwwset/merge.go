// SPDX-License-Identifier: MIT

package lwwset

import (
	"github.com/katalvlaran/lwwgraph/element"
)

// Merge absorbs a remote batch into the set and reports its effective subset.
//
// Implementation:
//   - Stage 1: Snapshot the pre-merge state: latest addition and latest removal
//     per unique value (resolved membership follows from the pair).
//   - Stage 2: Fold each batch per unique value, keeping the record with the
//     greatest timestamp; append both batches verbatim to the logs.
//   - Stage 3: Effective additions: a key absent before the merge, or a key
//     present before the merge re-added with a strictly newer timestamp.
//   - Stage 4: Effective removals: a key present before the merge, or a key
//     absent before the merge removed strictly later than its latest recorded
//     removal.
//   - Stage 5: Neutralization: an effective addition older than the batch's
//     removal of the same key cancels both; an effective removal older than
//     the batch's addition of the same key cancels both.
//   - Stage 6: Clamp every reported key to the resolved transition it actually
//     underwent: absent→present is always an addition, present→absent is always
//     a removal, absent→absent is never an addition, present→present is never
//     a removal.
//
// Behavior highlights:
//   - Nothing is rejected at the log level; effectiveness is reporting only.
//   - Re-merging the same batch reports no effective changes.
//
// Complexity:
//   - Time O(A+R+|adds|+|removes|), Space O(keys).
func (s *Set) Merge(adds, removes []element.Element) *MergeResult {
	// Stage 1: pre-merge snapshot.
	preAdd, _ := latestPerKey(s.adds)
	preRem, _ := latestPerKey(s.removes)

	// Stage 2: fold batches and absorb them.
	addCand, addOrder := latestPerKey(adds)
	remCand, remOrder := latestPerKey(removes)
	s.adds = append(s.adds, adds...)
	s.removes = append(s.removes, removes...)

	wasPresent := func(key string) bool {
		return present(preAdd[key], preRem[key])
	}

	// Stage 3: effective additions.
	effAdd := make(map[string]element.Element, len(addCand))
	var (
		key  string
		cand element.Element
	)
	for _, key = range addOrder {
		cand = addCand[key]
		if !wasPresent(key) || element.Newer(cand, preAdd[key]) {
			effAdd[key] = cand
		}
	}

	// Stage 4: effective removals.
	effRem := make(map[string]element.Element, len(remCand))
	for _, key = range remOrder {
		cand = remCand[key]
		if wasPresent(key) {
			effRem[key] = cand
			continue
		}
		if prev, ok := preRem[key]; ok && element.Newer(cand, prev) {
			effRem[key] = cand
		}
	}

	// Stage 5: neutralization, symmetric and mutual.
	for key, cand = range effAdd {
		if rem, ok := remCand[key]; ok && cand.Timestamp().Before(rem.Timestamp()) {
			delete(effAdd, key)
			delete(effRem, key)
		}
	}
	for key, cand = range effRem {
		if add, ok := addCand[key]; ok && cand.Timestamp().Before(add.Timestamp()) {
			delete(effRem, key)
			delete(effAdd, key)
		}
	}

	// Stage 6: clamp reports to the resolved transition.
	clamp := func(key string) {
		was := wasPresent(key)
		now := present(later(preAdd[key], addCand[key]), later(preRem[key], remCand[key]))
		switch {
		case !was && now:
			effAdd[key] = addCand[key]
			delete(effRem, key)
		case was && !now:
			effRem[key] = remCand[key]
			delete(effAdd, key)
		case !now:
			delete(effAdd, key)
		default:
			delete(effRem, key)
		}
	}
	for _, key = range addOrder {
		clamp(key)
	}
	for _, key = range remOrder {
		if _, inAdds := addCand[key]; !inAdds {
			clamp(key)
		}
	}

	return newMergeResult(effAdd, effRem, addOrder, remOrder)
}
