// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing hop count from
//     start, following directed edges only from their tail. Weights are ignored.
//   - Result holds Order (visit sequence), Depth (-1 when unreached) and
//     Parent (core.NoNode for the start and unreached nodes).
//   - Components(ctx, g) lists weakly connected components, and Connected
//     reports whether there is at most one. The CLI uses them to explain why an
//     MST run failed before it runs.
//
// Options
//
//   - WithContext: cancellation, checked once per dequeued node.
//   - WithOnVisit: per-node hook; a returned error aborts the search.
//   - WithMaxDepth: d > 0 limits depth, d == 0 means no limit, d < 0 is
//     ErrOptionViolation.
//
// Determinism
//
//	core.Graph.Neighbors returns adjacency in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the result slices.
package bfs
