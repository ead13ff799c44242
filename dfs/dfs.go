package dfs

import (
	"fmt"
)

// frame is one level of the explicit DFS stack: a vertex and the index of
// the next neighbor to try.
type frame struct {
	id   string
	nbs  []string
	next int
}

// pathWalker encapsulates state during a path search.
type pathWalker struct {
	src     Neighborer
	opts    Options
	visited map[string]bool
	path    []string
	stack   []frame
}

// FindPath returns the first path from "from" to "to" found by depth-first
// search over src. Each vertex is visited at most once. When from == to the
// single-vertex path is returned without consulting src.
func FindPath(src Neighborer, from, to string, opts ...Option) ([]string, error) {
	// 1. Validate input source
	if src == nil {
		return nil, ErrNilSource
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	w := &pathWalker{
		src:     src,
		opts:    o,
		visited: make(map[string]bool),
	}

	return w.search(from, to)
}

// search drives the explicit stack. Pushing a frame mirrors a recursive call,
// popping mirrors its return, so discovery order equals recursive pre-order.
func (w *pathWalker) search(from, to string) ([]string, error) {
	if err := w.discover(from); err != nil {
		return nil, err
	}
	if from == to {
		return w.result(), nil
	}
	w.push(from)

	var (
		top *frame
		nid string
	)
	for len(w.stack) > 0 {
		// Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		top = &w.stack[len(w.stack)-1]

		// Exhausted or at depth limit: backtrack
		if top.next >= len(top.nbs) || (w.opts.MaxDepth >= 0 && len(w.stack)-1 >= w.opts.MaxDepth) {
			w.stack = w.stack[:len(w.stack)-1]
			w.path = w.path[:len(w.path)-1]
			continue
		}

		nid = top.nbs[top.next]
		top.next++

		if w.visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			if w.opts.OnSkip != nil {
				w.opts.OnSkip(nid)
			}
			continue
		}

		if err := w.discover(nid); err != nil {
			return nil, err
		}
		if nid == to {
			return w.result(), nil
		}
		w.push(nid)
	}

	return nil, ErrNoPath
}

// discover marks id visited, extends the current path and runs the hook.
func (w *pathWalker) discover(id string) error {
	w.visited[id] = true
	w.path = append(w.path, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	return nil
}

func (w *pathWalker) push(id string) {
	w.stack = append(w.stack, frame{id: id, nbs: w.src.ConnectedVertices(id)})
}

func (w *pathWalker) result() []string {
	return append([]string(nil), w.path...)
}
