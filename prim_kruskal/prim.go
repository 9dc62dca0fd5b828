package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from start using a lazy-deletion min-heap of frontier edges.
//
// Error Conditions:
//   - ErrNilGraph           : graph is nil.
//   - ErrInvalidGraph       : graph stores at least one directed edge.
//   - ErrDisconnected       : graph has zero nodes.
//   - core.ErrNodeOutOfRange: start is not in [0, n).
//   - *ConnectivityError    : not every node is reachable from start.
//
// Steps:
//  1. Validate the graph and start node; n == 1 yields an empty tree.
//  2. Mark start as included and push its edges to not-yet-included nodes.
//  3. While the heap is non-empty and the tree has fewer than n-1 edges:
//     a. Pop the lightest frontier edge (u→v).
//     b. If v is already included, the entry is stale: report it as rejected.
//     c. Otherwise accept (u→v), include v and push v's edges to excluded nodes.
//  4. Fewer than n-1 accepted edges means the graph is disconnected.
//
// Ties between equal weights are broken by push order, so the result is
// deterministic for a given graph. Self-loops never enter the heap.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[W core.Weight](g *core.Graph[W], start int, opts ...Option[W]) (*Result[W], error) {
	// 1. Validate.
	if err := validate(g); err != nil {
		return nil, err
	}
	n := g.Order()
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d not in [0, %d)", core.ErrNodeOutOfRange, start, n)
	}
	res := &Result[W]{Method: MethodPrim, Edges: make([]core.Edge[W], 0, n-1)}
	if n == 1 {
		return res, nil
	}

	o := buildOptions(opts)
	p := &primRunner[W]{
		g:        g,
		included: make([]bool, n),
		pq:       &frontier[W]{},
		trace:    core.NewTracer(o.Observer),
	}

	// 2. Seed the frontier from start.
	p.include(start)

	// 3. Main loop: extract the lightest edge and expand the tree.
	for p.pq.Len() > 0 && len(res.Edges) < n-1 {
		it := heap.Pop(p.pq).(frontierItem[W])
		if p.included[it.to] {
			p.trace.Emit(core.Step[W]{
				Decision: core.DecisionRejected,
				From:     it.from, To: it.to, Weight: it.weight, Total: res.Total,
			})
			continue
		}
		res.Total += it.weight
		res.Edges = append(res.Edges, core.Edge[W]{ID: it.edgeID, From: it.from, To: it.to, Weight: it.weight})
		p.trace.Emit(core.Step[W]{
			Decision: core.DecisionAccepted,
			From:     it.from, To: it.to, Weight: it.weight, Total: res.Total,
		})
		p.include(it.to)
	}

	// 4. Partial tree.
	if len(res.Edges) < n-1 {
		return nil, &ConnectivityError{Method: MethodPrim, Nodes: n, Spanned: len(res.Edges) + 1}
	}

	return res, nil
}

// primRunner carries the mutable state of one Prim run.
type primRunner[W core.Weight] struct {
	g        *core.Graph[W]
	included []bool
	pq       *frontier[W]
	seq      int
	trace    *core.Tracer[W]
}

// include marks u as part of the tree and pushes every edge from u to an
// excluded node onto the frontier.
func (p *primRunner[W]) include(u int) {
	p.included[u] = true
	nb, _ := p.g.Neighbors(u) // u is always in range here
	for _, e := range nb {
		if p.included[e.To] {
			continue
		}
		heap.Push(p.pq, frontierItem[W]{weight: e.Weight, from: u, to: e.To, edgeID: e.EdgeID, seq: p.seq})
		p.seq++
	}
}

// frontierItem is one candidate edge u→v waiting in the heap.
type frontierItem[W core.Weight] struct {
	weight W
	from   int
	to     int
	edgeID int
	seq    int // push order, breaks weight ties
}

// frontier implements heap.Interface as a min-heap ordered by (weight, seq).
type frontier[W core.Weight] []frontierItem[W]

func (pq frontier[W]) Len() int { return len(pq) }

func (pq frontier[W]) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[W]) Push(x interface{}) { *pq = append(*pq, x.(frontierItem[W])) }

func (pq *frontier[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
