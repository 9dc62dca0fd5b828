// File: methods_edges.go
// Role: Edge insertion and edge/adjacency queries.
// Determinism:
//   - Edges() returns edges in insertion order (Edge.ID ascending).
//   - Neighbors(u) returns adjacency entries in insertion order.
// Concurrency:
//   - AddEdge takes the write lock; queries take the read lock and return copies.

package core

import (
	"fmt"
)

// AddEdge inserts an edge u→v with the given weight and returns its logical id.
//
// A bidirectional edge (the default unless WithDirected or WithEdgeDirected(true)
// applies) is recorded once in the edge list and twice in the adjacency: v in
// u's list and u in v's list. Both adjacency entries are written under the same
// lock acquisition. A bidirectional self-loop produces a single adjacency entry.
//
// Errors: ErrNodeOutOfRange (wrapped with the offending id) if u or v is outside [0, n);
// ErrNaNWeight if weight is NaN.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(u, v int, weight W, opts ...EdgeOption) (int, error) {
	if err := g.checkNode(u); err != nil {
		return NoNode, err
	}
	if err := g.checkNode(v); err != nil {
		return NoNode, err
	}
	if weight != weight { // only NaN is unequal to itself
		return NoNode, fmt.Errorf("%w: edge %d→%d", ErrNaNWeight, u, v)
	}

	cfg := edgeConfig{directed: g.directed}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.edges)
	g.edges = append(g.edges, Edge[W]{ID: id, From: u, To: v, Weight: weight, Directed: cfg.directed})
	g.adjacency[u] = append(g.adjacency[u], Neighbor[W]{To: v, Weight: weight, EdgeID: id})
	if cfg.directed {
		g.directedCount++
	} else if u != v {
		g.adjacency[v] = append(g.adjacency[v], Neighbor[W]{To: u, Weight: weight, EdgeID: id})
	}

	return id, nil
}

// Neighbors returns the outgoing (neighbor, weight) pairs of u in insertion order.
// The returned slice is a copy and may be modified by the caller.
//
// Errors: ErrNodeOutOfRange.
// Complexity: O(deg(u)).
func (g *Graph[W]) Neighbors(u int) ([]Neighbor[W], error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor[W], len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Edges returns every logical edge exactly once, in insertion order.
// Complexity: O(E).
func (g *Graph[W]) Edges() []Edge[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[W], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of logical edges.
func (g *Graph[W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether at least one stored edge is directed.
func (g *Graph[W]) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directedCount > 0
}

// checkNode validates that u is inside [0, n).
func (g *Graph[W]) checkNode(u int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, u, g.n)
	}

	return nil
}
