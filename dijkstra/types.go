// Package dijkstra defines result types, functional options and sentinel errors
// for Dijkstra's single-source shortest-path algorithm.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable indicates that no path exists from the source to the requested node.
	ErrUnreachable = errors.New("dijkstra: destination is unreachable")

	// ErrNilResult indicates that path reconstruction was asked of a nil *Result.
	ErrNilResult = errors.New("dijkstra: result is nil")

	// ErrBrokenPath indicates a Result whose Prev chain loops, leaves [0, n) or
	// stops before reaching Source.
	ErrBrokenPath = errors.New("dijkstra: predecessor chain does not reach the source")
)

// Result holds the shortest-path tree rooted at Source.
//
//	Dist[v] – minimum distance from Source, core.Infinity[W]() when v is unreachable.
//	Prev[v] – predecessor of v on a shortest path; core.NoNode for Source and unreached nodes.
type Result[W core.Weight] struct {
	Source int
	Dist   []W
	Prev   []int
}

// Reachable reports whether v has a finite distance from Source.
// Out-of-range ids are never reachable.
func (r *Result[W]) Reachable(v int) bool {
	return r != nil && v >= 0 && v < len(r.Dist) && !core.IsInf(r.Dist[v])
}

// PathTo is shorthand for ReconstructPath(r, dest).
func (r *Result[W]) PathTo(dest int) ([]int, error) {
	return ReconstructPath(r, dest)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose distance would exceed this cap are left unreachable.
//
//	Must be ≥ 0. Default is core.Infinity[W]() (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is core.Infinity[W]() (no obstacles).
//
// Observer         – receives DecisionRelaxed and DecisionFinalized steps.
type Options[W core.Weight] struct {
	MaxDistance      W
	InfEdgeThreshold W
	Observer         core.Observer[W]

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option[W core.Weight] func(*Options[W])

// WithMaxDistance sets a maximum distance threshold.
// A negative value makes Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance[W core.Weight](max W) Option[W] {
	return func(o *Options[W]) {
		if max < 0 {
			o.setErr(ErrBadMaxDistance)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped entirely.
// Zero or negative values make Dijkstra fail with ErrBadInfThreshold.
func WithInfEdgeThreshold[W core.Weight](threshold W) Option[W] {
	return func(o *Options[W]) {
		if threshold <= 0 {
			o.setErr(ErrBadInfThreshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithObserver registers a step-trace callback. A nil observer is ignored.
func WithObserver[W core.Weight](obs core.Observer[W]) Option[W] {
	return func(o *Options[W]) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

func (o *Options[W]) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions[W core.Weight]() Options[W] {
	inf := core.Infinity[W]()

	return Options[W]{
		MaxDistance:      inf,
		InfEdgeThreshold: inf,
	}
}
