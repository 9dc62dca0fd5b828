// Package dfs implements cycle detection for directed, bidirectional and
// mixed core.Graphs using three-color marking and back-edge detection.
//
// A bidirectional edge is not a cycle by itself: the walk never returns over
// the logical edge (same EdgeID) it arrived by. Parallel bidirectional edges
// and self-loops are cycles.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack + state)
package dfs

import (
	"github.com/katalvlaran/graphkit/core"
)

// FindCycle returns the nodes of one cycle of g in walk order, or nil when g
// is acyclic. Roots are tried in ascending order and adjacency in insertion
// order, so the reported cycle is deterministic.
func FindCycle[W core.Weight](g *core.Graph[W]) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := &cycleFinder[W]{
		g:     g,
		state: make([]int, g.Order()),
		path:  make([]int, 0, g.Order()),
	}
	for v := 0; v < g.Order(); v++ {
		if c.state[v] == White {
			if cyc := c.visit(v, core.NoNode); cyc != nil {
				return cyc, nil
			}
		}
	}

	return nil, nil
}

// HasCycle reports whether g contains any cycle.
func HasCycle[W core.Weight](g *core.Graph[W]) (bool, error) {
	cyc, err := FindCycle(g)

	return cyc != nil, err
}

type cycleFinder[W core.Weight] struct {
	g     *core.Graph[W]
	state []int
	path  []int // current recursion stack
}

// visit explores id, entered through the logical edge via (NoNode for roots).
func (c *cycleFinder[W]) visit(id, via int) []int {
	c.state[id] = Gray
	c.path = append(c.path, id)

	nbs, _ := c.g.Neighbors(id)
	for _, e := range nbs {
		if e.EdgeID == via {
			continue
		}
		switch c.state[e.To] {
		case White:
			if cyc := c.visit(e.To, e.EdgeID); cyc != nil {
				return cyc
			}
		case Gray:
			// back edge: the cycle is the stack suffix starting at e.To
			for i := len(c.path) - 1; i >= 0; i-- {
				if c.path[i] == e.To {
					return append([]int(nil), c.path[i:]...)
				}
			}
		}
	}

	c.state[id] = Black
	c.path = c.path[:len(c.path)-1]

	return nil
}
