package bfs

import (
	"context"

	"github.com/katalvlaran/graphkit/core"
)

// Components returns the weakly connected components of g: edge directions
// are ignored. Each component lists its nodes in BFS order from its smallest
// node, and components are ordered by that smallest node. Isolated nodes form
// singleton components.
//
// Complexity: O(V + E).
func Components[W core.Weight](ctx context.Context, g *core.Graph[W]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	o := DefaultOptions()
	if ctx != nil {
		o.Ctx = ctx
	}
	w := newWalker(n, func(u int) []int { return adj[u] }, o)

	var comps [][]int
	for s := 0; s < n; s++ {
		if w.res.Depth[s] >= 0 {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(s, 0, core.NoNode)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, append([]int(nil), w.res.Order[from:]...))
	}

	return comps, nil
}

// Connected reports whether g has at most one weakly connected component.
func Connected[W core.Weight](ctx context.Context, g *core.Graph[W]) (bool, error) {
	comps, err := Components(ctx, g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
