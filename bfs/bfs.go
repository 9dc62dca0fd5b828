// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state. next yields the successors of a node,
// which lets the same loop serve directed traversal and component discovery.
type walker struct {
	next  func(u int) []int
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, following edges in
// their stored direction and ignoring weights.
// Returns ErrGraphNil, ErrOptionViolation, core.ErrNodeOutOfRange,
// the context error on cancellation, or any OnVisit error.
func BFS[W core.Weight](g *core.Graph[W], start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d not in [0, %d)", core.ErrNodeOutOfRange, start, g.Order())
	}

	w := newWalker(g.Order(), outgoing(g), o)
	w.enqueue(start, 0, core.NoNode)
	w.res.Start = start

	return w.res, w.loop()
}

func newWalker(n int, next func(int) []int, o Options) *walker {
	res := &Result{
		Start:  core.NoNode,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = core.NoNode
	}

	return &walker{next: next, opts: o, ctx: o.Ctx, queue: make([]queueItem, 0, n), res: res}
}

// outgoing adapts g's adjacency to a successor function.
func outgoing[W core.Weight](g *core.Graph[W]) func(int) []int {
	return func(u int) []int {
		nb, _ := g.Neighbors(u) // u always comes from the queue, so it is in range
		out := make([]int, len(nb))
		for i, e := range nb {
			out[i] = e.To
		}

		return out
	}
}

// enqueue marks node discovered at depth d with the given parent.
func (w *walker) enqueue(node, d, parent int) {
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, v := range w.next(item.node) {
			if w.res.Depth[v] < 0 {
				w.enqueue(v, nextDepth, item.node)
			}
		}
	}

	return nil
}
