// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, node labels and cloning.
// Policy:
//   - No algorithms here.
//   - Node count and default directedness are immutable after NewGraph.

package core

import "strconv"

// Order returns the number of nodes n. Node ids are 0..n-1.
// Complexity: O(1).
func (g *Graph[W]) Order() int {
	return g.n
}

// HasNode reports whether u is a valid node id for this graph.
func (g *Graph[W]) HasNode(u int) bool {
	return u >= 0 && u < g.n
}

// Directed reports the default directedness applied to new edges.
// It says nothing about the edges already stored; see HasDirectedEdges.
func (g *Graph[W]) Directed() bool {
	return g.directed
}

// SetLabel attaches a human-readable name to node u.
// An empty label resets u to its default (the decimal id).
//
// Errors: ErrNodeOutOfRange.
func (g *Graph[W]) SetLabel(u int, label string) error {
	if err := g.checkNode(u); err != nil {
		return err
	}

	g.mu.Lock()
	g.labels[u] = label
	g.mu.Unlock()

	return nil
}

// Label returns the name of node u, or its decimal id when no label was set.
// Out-of-range ids also render as their decimal value.
func (g *Graph[W]) Label(u int) string {
	if !g.HasNode(u) {
		return strconv.Itoa(u)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.labels[u] == "" {
		return strconv.Itoa(u)
	}

	return g.labels[u]
}

// Labels returns the resolved label of every node, indexed by node id.
func (g *Graph[W]) Labels() []string {
	out := make([]string, g.n)
	for u := range out {
		out[u] = g.Label(u)
	}

	return out
}

// Clone returns a deep copy of g: node count, default directedness, edges,
// adjacency and labels. Edge ids are preserved.
//
// Complexity: O(V + E).
func (g *Graph[W]) Clone() *Graph[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[W]{
		n:             g.n,
		directed:      g.directed,
		edges:         make([]Edge[W], len(g.edges)),
		adjacency:     make([][]Neighbor[W], g.n),
		labels:        make([]string, g.n),
		directedCount: g.directedCount,
	}
	copy(clone.edges, g.edges)
	copy(clone.labels, g.labels)
	for u, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[u] = append([]Neighbor[W](nil), list...)
	}

	return clone
}
