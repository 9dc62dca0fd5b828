package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// TopologicalSort orders the nodes of g so that every edge u→v has u before v.
// Bidirectional edges count as 2-cycles, so only graphs whose edges are all
// directed and acyclic succeed; otherwise ErrCycleDetected wraps the cycle.
//
// Complexity: O(V + E).
func TopologicalSort[W core.Weight](g *core.Graph[W]) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, e := range g.Edges() {
		if !e.Directed {
			return nil, fmt.Errorf("%w: bidirectional edge %d-%d", ErrCycleDetected, e.From, e.To)
		}
	}
	if cyc, _ := FindCycle(g); cyc != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, cyc)
	}

	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}
	// reverse post-order
	out := make([]int, len(res.Order))
	for i, v := range res.Order {
		out[len(out)-1-i] = v
	}

	return out, nil
}
