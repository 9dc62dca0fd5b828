// Package core defines the central Graph, Edge and Neighbor types used by every
// algorithm package in graphkit, together with the weight constraint, the
// infinity helpers and the step-trace observer.
//
// Nodes are dense integers in [0, n). A Graph is built once by the caller and is
// read-only while an algorithm runs over it; all methods are safe for concurrent
// use (a single sync.RWMutex guards edges, adjacency and labels).
//
// Errors:
//
//	ErrBadNodeCount   - NewGraph called with a negative node count.
//	ErrNodeOutOfRange - a node id outside [0, n) was passed to a method.
//	ErrNaNWeight      - AddEdge was given a NaN weight.
package core

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates that a graph was requested with a negative node count.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates an operation referenced a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNaNWeight indicates an edge weight that is not a number. NaN has no
	// place in the ordering every algorithm relies on.
	ErrNaNWeight = errors.New("core: edge weight is NaN")
)

// NoNode marks the absence of a node (no predecessor, no parent).
const NoNode = -1

// Weight is the set of numeric types usable as edge weights.
// Any Go integer or floating-point type supports the addition and total
// ordering the algorithms need.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is one logical edge record.
//
// A bidirectional edge is stored once here even though it produces two
// adjacency entries; algorithms that sort edges (Kruskal) see it once.
type Edge[W Weight] struct {
	// ID is the insertion index of the edge, starting at 0.
	ID int

	// From is the source node id.
	From int

	// To is the destination node id.
	To int

	// Weight is the cost of traversing the edge.
	Weight W

	// Directed reports whether the edge is one-way (From→To only).
	Directed bool
}

// Neighbor is one adjacency entry of a node: the reachable node, the weight of
// the connection and the logical edge it came from.
type Neighbor[W Weight] struct {
	To     int
	Weight W
	EdgeID int
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time flags.
type graphConfig struct {
	directed bool
}

// WithDirected makes directed edges the default for AddEdge.
// Individual edges may still override it with WithEdgeDirected.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// EdgeOption configures an individual edge when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	directed bool
}

// WithEdgeDirected overrides the graph's default directedness for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) { c.directed = directed }
}

// Graph is a weighted graph over the dense node range [0, n).
//
// edges holds every logical edge in insertion order; adjacency[u] holds the
// outgoing (neighbor, weight) pairs of u in insertion order. labels are optional
// human-readable names for nodes.
type Graph[W Weight] struct {
	mu sync.RWMutex // guards edges, adjacency, labels and directedCount

	n        int  // node count, immutable after construction
	directed bool // default directedness for new edges

	edges         []Edge[W]
	adjacency     [][]Neighbor[W]
	labels        []string
	directedCount int // number of edges with Directed == true
}

// NewGraph creates a Graph with n isolated nodes.
// By default edges are bidirectional; use WithDirected to change the default.
//
// Errors: ErrBadNodeCount if n < 0.
// Complexity: O(n).
func NewGraph[W Weight](n int, opts ...GraphOption) (*Graph[W], error) {
	if n < 0 {
		return nil, ErrBadNodeCount
	}

	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[W]{
		n:         n,
		directed:  cfg.directed,
		adjacency: make([][]Neighbor[W], n),
		labels:    make([]string, n),
	}, nil
}
