// Package dfs provides depth-first traversal over a core.Graph:
//
//   - DFS(g, start, opts...) returns post-order, depth and parent slices.
//     WithFullTraversal covers every component; WithContext cancels;
//     WithOnVisit is a pre-order hook that may abort the walk.
//   - FindCycle / HasCycle detect a cycle in directed, bidirectional or mixed
//     graphs. The CLI's inspect command uses them to tell whether a graph is
//     already a tree or forest.
//   - TopologicalSort orders a fully directed acyclic graph.
//
// Directed edges are followed from their tail only. Adjacency is visited in
// insertion order, so every result is deterministic.
package dfs
