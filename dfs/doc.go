// Package dfs implements depth-first path search over a neighbor projection.
//
// What:
//
//   - FindPath(src, from, to, opts...): returns the first path discovered by a
//     pre-order depth-first search from "from" to "to". The path is not
//     necessarily the shortest; among several valid paths the one found first
//     in neighbor order wins.
//
// Why:
//
//   - DFS tends to find *some* path quickly and needs only O(V) memory.
//   - The search runs on an explicit stack, so very deep graphs cannot
//     exhaust the goroutine stack. Visiting order is identical to the
//     textbook recursive formulation.
//
// Source:
//
//	Any value implementing Neighborer. The LWW element graph (package core)
//	passes itself; its ConnectedVertices already hides removed vertices.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery; error aborts.
//   - WithMaxDepth(limit)       does not expand vertices beyond the given depth.
//   - WithFilterNeighbor(fn)    filters neighbor IDs; return false to skip.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter overhead.
//   - Memory: O(V) for the stack, the current path and the visited set.
//
// Errors:
//
//   - ErrNilSource   if src is nil.
//   - ErrNoPath      if the search is exhausted without reaching the target.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
