package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjointset.Forest (path compression, union by rank) to detect cycles.
//
// Error Conditions:
//   - ErrNilGraph        : graph is nil.
//   - ErrInvalidGraph    : graph stores at least one directed edge.
//   - ErrDisconnected    : graph has zero nodes.
//   - *ConnectivityError : the accepted edges do not span every node.
//
// Steps:
//  1. Validate; n == 1 yields an empty tree.
//  2. Collect all edges via g.Edges(), skip self-loops (e.From == e.To).
//  3. Stable-sort by ascending weight, so equal weights keep insertion order.
//  4. For each edge (u,v): Union(u,v) succeeds → accept, otherwise reject.
//  5. Stop once n-1 edges are accepted; fewer means the graph is disconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal[W core.Weight](g *core.Graph[W], opts ...Option[W]) (*Result[W], error) {
	// 1. Validate.
	if err := validate(g); err != nil {
		return nil, err
	}
	n := g.Order()
	res := &Result[W]{Method: MethodKruskal, Edges: make([]core.Edge[W], 0, n-1)}
	if n == 1 {
		return res, nil
	}
	trace := core.NewTracer(buildOptions(opts).Observer)

	// 2. Collect non-loop edges.
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by weight; stability keeps ties in insertion order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Scan.
	forest := disjointset.New(n)
	for _, e := range edges {
		if len(res.Edges) == n-1 {
			break
		}
		if !forest.Union(e.From, e.To) {
			trace.Emit(core.Step[W]{
				Decision: core.DecisionRejected,
				From:     e.From, To: e.To, Weight: e.Weight, Total: res.Total,
			})
			continue
		}
		res.Total += e.Weight
		res.Edges = append(res.Edges, e)
		trace.Emit(core.Step[W]{
			Decision: core.DecisionAccepted,
			From:     e.From, To: e.To, Weight: e.Weight, Total: res.Total,
		})
	}

	// 5. Partial forest.
	if len(res.Edges) < n-1 {
		return nil, &ConnectivityError{Method: MethodKruskal, Nodes: n, Spanned: largestGroup(forest)}
	}

	return res, nil
}

func largestGroup(f *disjointset.Forest) int {
	best := 0
	for _, grp := range f.Groups() {
		if len(grp) > best {
			best = len(grp)
		}
	}

	return best
}
