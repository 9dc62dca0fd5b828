// Package core provides the in-memory weighted graph shared by every graphkit
// algorithm.
//
// The Graph G = (V, E) has a fixed node range [0, n) chosen at construction:
//
//   - Weighted edges of any integer or floating-point type (generic parameter W).
//   - Directed and bidirectional edges may coexist. The default comes from
//     WithDirected; WithEdgeDirected overrides it per edge.
//   - A bidirectional edge is one logical Edge and two adjacency entries,
//     inserted atomically.
//   - Parallel edges and self-loops are stored as given; algorithms decide how
//     to treat them (MST engines skip self-loops).
//   - Optional node labels for presentation (SetLabel/Label).
//
// Core methods:
//
//	NewGraph[W](n int, opts ...GraphOption) (*Graph[W], error) // O(n)
//	AddEdge(u, v int, w W, opts ...EdgeOption) (id int, err error) // O(1) amortized
//	Neighbors(u int) ([]Neighbor[W], error)                      // O(deg u), insertion order
//	Edges() []Edge[W]                                              // O(E), insertion order
//	Order() int, EdgeCount() int, HasDirectedEdges() bool
//	Clone() *Graph[W]                                              // O(V+E)
//
// Infinity[W]() is the "unreachable" distance for W and Observer[W] is the
// step-trace hook accepted by the algorithm packages.
//
// Example:
//
//	g, _ := core.NewGraph[int](3)
//	_, _ = g.AddEdge(0, 1, 4)                             // bidirectional
//	_, _ = g.AddEdge(1, 2, 1, core.WithEdgeDirected(true)) // one-way 1→2
package core
