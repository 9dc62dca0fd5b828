// Package prim_kruskal defines configuration options, results and sentinel errors
// for minimum spanning tree computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an MST engine.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrInvalidGraph indicates that MST algorithms require a purely bidirectional graph.
// Returned when the graph stores at least one directed edge.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. It also applies to the empty graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was given a method name it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ConnectivityError reports that an MST engine could only span part of the graph.
// It matches ErrDisconnected under errors.Is.
type ConnectivityError struct {
	Method  string // MethodPrim or MethodKruskal
	Nodes   int    // node count of the graph
	Spanned int    // size of the tree grown from the root (Prim) or of the largest component (Kruskal)
}

// Error implements error.
func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: %s spanned %d of %d nodes", ErrDisconnected, e.Method, e.Spanned, e.Nodes)
}

// Unwrap lets errors.Is(err, ErrDisconnected) succeed.
func (e *ConnectivityError) Unwrap() error { return ErrDisconnected }

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is a minimum spanning tree: the accepted edges in acceptance order and
// their total weight. A Result always holds exactly n-1 edges; partial trees are
// reported as *ConnectivityError instead.
type Result[W core.Weight] struct {
	Method string
	Edges  []core.Edge[W]
	Total  W
}

// Options holds per-run settings shared by Prim and Kruskal.
type Options[W core.Weight] struct {
	// Observer, if non-nil, receives one step per accepted or rejected edge.
	Observer core.Observer[W]
}

// Option configures Options.
type Option[W core.Weight] func(*Options[W])

// WithObserver registers a step-trace callback. A nil observer is ignored.
func WithObserver[W core.Weight](obs core.Observer[W]) Option[W] {
	return func(o *Options[W]) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

func buildOptions[W core.Weight](opts []Option[W]) Options[W] {
	var o Options[W]
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MSTOptions configures which MST algorithm Compute runs, and for Prim, which
// starting node to use.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   int:    start node for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root int
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on mo.Method.
//
//	– MethodKruskal: Kruskal(g, opts...).
//	– MethodPrim:    Prim(g, mo.Root, opts...).
//	– Otherwise:     ErrUnknownMethod.
func Compute[W core.Weight](g *core.Graph[W], mo MSTOptions, opts ...Option[W]) (*Result[W], error) {
	switch mo.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, mo.Root, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, mo.Method)
	}
}

// validate applies the checks shared by both engines.
func validate[W core.Weight](g *core.Graph[W]) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.HasDirectedEdges() {
		return ErrInvalidGraph
	}
	if g.Order() == 0 {
		return ErrDisconnected
	}

	return nil
}
