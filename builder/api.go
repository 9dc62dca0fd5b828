// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// api.go - deterministic topology generators.
//
// Contract:
//   - Every generator returns a fresh *core.Graph[W] with nodes [0, n).
//   - Parameters are validated before any graph is allocated; errors wrap a
//     sentinel from errors.go with the method tag and the offending values.
//   - Edges are inserted in a documented, stable order, so edge ids and
//     drawn weights are reproducible for a fixed seed.
//
// Complexity: O(V+E) for every generator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Method tags used in error messages.
const (
	methodPath            = "Path"
	methodCycle           = "Cycle"
	methodStar            = "Star"
	methodComplete        = "Complete"
	methodGrid            = "Grid"
	methodRandomConnected = "RandomConnected"
)

// Minimum sizes per generator.
const (
	MinPathNodes     = 1
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinRandomNodes   = 1
)

// edgeEmitter inserts the generator's edges through add.
type edgeEmitter func(add func(u, v int) error) error

// build allocates the graph, applies labels and runs emit with a weight-drawing add.
func build[W core.Weight](method string, n int, cfg config[W], emit edgeEmitter) (*core.Graph[W], error) {
	if cfg.needsRNG && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	var gopts []core.GraphOption
	if cfg.directed {
		gopts = append(gopts, core.WithDirected())
	}
	g, err := core.NewGraph[W](n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	if cfg.labelFn != nil {
		for i := 0; i < n; i++ {
			if err = g.SetLabel(i, cfg.labelFn(i)); err != nil {
				return nil, fmt.Errorf("%s: label %d: %w: %w", method, i, ErrConstructFailed, err)
			}
		}
	}

	add := func(u, v int) error {
		if _, err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: AddEdge(%d, %d): %w: %w", method, u, v, ErrConstructFailed, err)
		}

		return nil
	}
	if err = emit(add); err != nil {
		return nil, err
	}

	return g, nil
}

// Path returns the chain 0 - 1 - … - (n-1). Directed orientation: i → i+1.
//
// Errors: ErrTooFewVertices if n < MinPathNodes.
func Path[W core.Weight](n int, opts ...Option[W]) (*core.Graph[W], error) {
	if n < MinPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
	}

	return build(methodPath, n, newConfig(opts), func(add func(u, v int) error) error {
		for i := 0; i+1 < n; i++ {
			if err := add(i, i+1); err != nil {
				return err
			}
		}

		return nil
	})
}

// Cycle returns Path(n) closed by the edge (n-1) - 0.
//
// Errors: ErrTooFewVertices if n < MinCycleNodes.
func Cycle[W core.Weight](n int, opts ...Option[W]) (*core.Graph[W], error) {
	if n < MinCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
	}

	return build(methodCycle, n, newConfig(opts), func(add func(u, v int) error) error {
		for i := 0; i < n; i++ {
			if err := add(i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	})
}

// Star returns center 0 joined to every leaf 1..n-1. Directed orientation: 0 → leaf.
//
// Errors: ErrTooFewVertices if n < MinStarNodes.
func Star[W core.Weight](n int, opts ...Option[W]) (*core.Graph[W], error) {
	if n < MinStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
	}

	return build(methodStar, n, newConfig(opts), func(add func(u, v int) error) error {
		for leaf := 1; leaf < n; leaf++ {
			if err := add(0, leaf); err != nil {
				return err
			}
		}

		return nil
	})
}

// Complete returns K_n with edges in (i asc, j asc, i < j) order.
// Directed orientation: i → j for i < j, which yields a DAG.
//
// Errors: ErrTooFewVertices if n < MinCompleteNodes.
func Complete[W core.Weight](n int, opts ...Option[W]) (*core.Graph[W], error) {
	if n < MinCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
	}

	return build(methodComplete, n, newConfig(opts), func(add func(u, v int) error) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := add(i, j); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Grid returns a rows×cols lattice. Node (r, c) has id r*cols + c; for each
// cell in row-major order the right edge is added before the bottom edge.
//
// Errors: ErrTooFewVertices if rows or cols < MinGridDim.
func Grid[W core.Weight](rows, cols int, opts ...Option[W]) (*core.Graph[W], error) {
	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
	}

	return build(methodGrid, rows*cols, newConfig(opts), func(add func(u, v int) error) error {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := add(id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := add(id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}
