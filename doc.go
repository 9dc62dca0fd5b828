// Package graphkit is a toolkit of classic weighted-graph algorithms over a
// shared in-memory graph, with optional step-by-step narration.
//
// What's inside:
//
//	core/           Graph[W] with int node ids, directed and bidirectional edges, labels, Observer hook
//	disjointset/    union-find forest (union by rank, path compression)
//	prim_kruskal/   minimum spanning trees: Prim (lazy heap) and Kruskal (sorted edges + forest)
//	dijkstra/       single-source shortest paths with path reconstruction and summaries
//	matrix/         dense distance matrices and Floyd–Warshall (optionally parallel)
//	bfs/, dfs/      traversals, weak components, cycle detection, topological order
//	builder/        deterministic and seeded graph generators
//	converters/     YAML / TOML / HCL graph documents and Graphviz DOT export
//	cmd/graphkit    command-line front end (mst, path, apsp, inspect, generate, render)
//
// Quick example:
//
//	g, _ := core.NewGraph[int](4)
//	_, _ = g.AddEdge(0, 1, 1)
//	_, _ = g.AddEdge(1, 2, 1)
//	_, _ = g.AddEdge(0, 2, 2)
//	_, _ = g.AddEdge(0, 3, 3)
//	res, _ := prim_kruskal.Kruskal(g) // res.Total == 5
//
// Every algorithm is deterministic for a given graph: ties are broken by
// insertion order.
//
//	go get github.com/katalvlaran/graphkit
package graphkit
