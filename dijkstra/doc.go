// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on a *core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, source, opts...) returns a *Result with a distance and a
//     predecessor for every node. Unreachable nodes keep core.Infinity[W]()
//     and core.NoNode.
//   - The frontier is a min-heap with lazy deletion: an improved distance is
//     pushed as a new entry and outdated entries are skipped when popped.
//   - Relaxation is strict ("<"), so the first shortest path found to a node
//     keeps its predecessor.
//   - Directed and bidirectional edges may be mixed; directed edges are only
//     followed from their tail.
//
// Key features:
//
//   - ReconstructPath / Result.PathTo rebuild the source→dest node sequence and
//     report ErrUnreachable instead of walking an empty chain.
//   - WithMaxDistance(x): nodes farther than x stay unreachable.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithObserver(fn): receives DecisionRelaxed for every improvement and
//     DecisionFinalized when a node's distance becomes final.
//   - Destinations and Summarize give the "delivery report" view: destinations
//     nearest first, nearest and farthest reachable node, total distance.
//
// Negative weights are out of contract for Dijkstra. Rather than returning
// silently wrong distances, an O(E) pre-scan rejects them with ErrNegativeWeight.
// Use matrix.FloydWarshall for negative edges without negative cycles.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilResult
//   - core.ErrNodeOutOfRange for a bad source or destination
//   - ErrNegativeWeight
//   - ErrBadMaxDistance, ErrBadInfThreshold for invalid options
//   - ErrUnreachable from path reconstruction
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo(4) // e.g. [0 1 3 4]
package dijkstra
