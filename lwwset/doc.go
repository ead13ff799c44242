// Package lwwset implements the Last-Write-Wins element set, the CRDT primitive
// under the LWW element graph.
//
// A Set is two append-only logs of timestamped elements: additions and
// removals. Membership is never stored; it is always resolved from the logs:
//
//	exists(e) ⇔ latestAdd(e) exists ∧ (no removal ∨ latestRem(e) < latestAdd(e))
//
// Ties favour removal: an element removed at the exact instant of its latest
// addition is absent.
//
// Merge absorbs a remote batch of additions and removals unconditionally and
// reports which of them were effective, i.e. changed the resolved membership
// (or, for an element already present, re-added it with a newer timestamp; for
// an element already absent, removed it again with a newer timestamp). A batch
// that adds and later removes the same element neutralizes itself and is
// reported as no change.
//
// Merge is commutative, associative and idempotent with respect to resolved
// membership.
//
// A Set is not safe for concurrent use; callers own synchronization.
package lwwset
