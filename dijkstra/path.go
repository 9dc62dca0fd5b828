package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// ReconstructPath walks res.Prev from dest back to the source and returns the
// nodes in source→dest order. The path to the source itself is [source].
//
// Errors:
//   - ErrNilResult           : res is nil.
//   - core.ErrNodeOutOfRange : dest is not a node of the solved graph.
//   - ErrUnreachable         : res.Dist[dest] is infinite.
//   - ErrBrokenPath          : res.Prev does not lead from dest back to res.Source.
func ReconstructPath[W core.Weight](res *Result[W], dest int) ([]int, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	n := len(res.Dist)
	if dest < 0 || dest >= n {
		return nil, fmt.Errorf("%w: destination %d not in [0, %d)", core.ErrNodeOutOfRange, dest, n)
	}
	if core.IsInf(res.Dist[dest]) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dest, res.Source)
	}

	if len(res.Prev) != n {
		return nil, fmt.Errorf("%w: %d predecessors for %d distances", ErrBrokenPath, len(res.Prev), n)
	}

	var path []int
	for v := dest; v != core.NoNode; v = res.Prev[v] {
		// a root path visits each node at most once
		if v < 0 || v >= n || len(path) == n {
			return nil, fmt.Errorf("%w: walking back from %d", ErrBrokenPath, dest)
		}
		path = append(path, v)
	}
	if path[len(path)-1] != res.Source {
		return nil, fmt.Errorf("%w: chain from %d ends at %d, source is %d",
			ErrBrokenPath, dest, path[len(path)-1], res.Source)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
