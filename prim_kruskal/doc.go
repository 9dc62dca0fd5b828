// Package prim_kruskal computes Minimum Spanning Trees (MST) on an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - An MST of a connected, weighted graph G = (V, E) is a subset T ⊆ E that
//     spans V with |V|−1 edges and minimal total weight.
//   - Typical uses: cost-efficient network design (fibre backbones, pipes,
//     roads), single-linkage clustering, and as a subroutine of approximation
//     algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) (*Result[W], error)
//     Stable-sorts all edges by weight and merges components with a
//     disjointset.Forest, skipping edges whose endpoints are already connected.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, start, opts...) (*Result[W], error)
//     Grows a single tree from start with a lazy-deletion min-heap of frontier
//     edges. Stale entries (both endpoints already in the tree) are discarded
//     on pop. Time O(E log E), space O(V + E).
//
//   - Compute(g, MSTOptions{Method, Root}, opts...) dispatches by name.
//
// Both engines return the same total weight on any connected graph; the edge
// sets may differ when weights tie. Result.Edges is in acceptance order.
//
// Conventions
//
//   - Self-loops are skipped. Parallel edges are all candidates; the lighter wins.
//   - A graph with any directed edge is rejected with ErrInvalidGraph.
//   - n == 0 → ErrDisconnected; n == 1 → empty tree with zero total.
//   - A disconnected graph yields *ConnectivityError (errors.Is ErrDisconnected)
//     and no partial result.
//
// Observing a run
//
// WithObserver registers a core.Observer that receives one core.Step per edge
// decision: DecisionAccepted when the edge joins the tree, DecisionRejected when
// it would close a cycle (Kruskal) or is a stale frontier entry (Prim). Step.Total
// is the running tree weight. The CLI uses this to narrate a run line by line.
//
// Example:
//
//	g, _ := core.NewGraph[int](3)
//	_, _ = g.AddEdge(0, 1, 1)
//	_, _ = g.AddEdge(1, 2, 2)
//	_, _ = g.AddEdge(0, 2, 3)
//	res, err := prim_kruskal.Kruskal(g)
//	// res.Total == 3, len(res.Edges) == 2
package prim_kruskal
