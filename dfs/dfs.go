// Package dfs provides depth-first traversal, cycle detection and topological
// ordering over a core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

type dfsWalker[W core.Weight] struct {
	graph *core.Graph[W]
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start, following directed edges
// only from their tail. With WithFullTraversal it covers every component.
// Returns the partial result together with any context or hook error.
func DFS[W core.Weight](g *core.Graph[W], start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d not in [0, %d)", core.ErrNodeOutOfRange, start, g.Order())
	}

	n := g.Order()
	res := &Result{Order: make([]int, 0, n), Depth: make([]int, n), Parent: make([]int, n)}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = core.NoNode
	}
	w := &dfsWalker[W]{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start, 0)
	}
	for v := 0; v < n; v++ {
		if res.Depth[v] < 0 {
			if err := w.traverse(v, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits id at the given depth, recursing into unvisited successors.
func (w *dfsWalker[W]) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	nbs, _ := w.graph.Neighbors(id) // id is always in range
	for _, e := range nbs {
		if w.res.Depth[e.To] >= 0 {
			continue
		}
		w.res.Parent[e.To] = id
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
