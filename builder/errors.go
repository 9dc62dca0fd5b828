// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// errors.go - sentinel errors for graph generators.
//
// Contract:
//   - Generators return these sentinels wrapped with a method tag and the
//     offending parameters, e.g. "Grid: rows=0, cols=3 (each must be ≥ 1): ...".
//   - Callers test with errors.Is.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the generator's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrTooManyEdges indicates RandomConnected was asked for more extra edges
	// than the simple graph on n nodes can hold.
	ErrTooManyEdges = errors.New("builder: too many edges requested")

	// ErrNeedRandSource indicates a randomized generator ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed wraps a failure reported by the underlying graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
