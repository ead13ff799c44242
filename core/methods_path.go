package core

import (
	"errors"

	"github.com/katalvlaran/lwwgraph/dfs"
)

// FindPath returns the first path from a to b discovered by depth-first
// search over ConnectedVertices. It is not necessarily the shortest path, and
// callers must not rely on which of several valid paths is returned.
//
// Errors:
//   - *PathNotFoundError (matches ErrPathNotFound) if b is unreachable from a.
//
// Complexity: Time O(V+E), Space O(V).
func (g *Graph) FindPath(a, b string, opts ...dfs.Option) ([]string, error) {
	path, err := dfs.FindPath(g, a, b, opts...)
	if errors.Is(err, dfs.ErrNoPath) {
		return nil, &PathNotFoundError{Source: a, Target: b}
	}
	if err != nil {
		return nil, err
	}

	return path, nil
}
