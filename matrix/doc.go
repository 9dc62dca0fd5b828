// SPDX-License-Identifier: MIT

// Package matrix provides a dense distance matrix and the Floyd–Warshall
// all-pairs shortest-path engine.
//
// What & Why
//
//   - Dense[W] is a square, row-major n×n matrix of any core.Weight.
//     core.Infinity[W]() marks "no path" and the diagonal holds 0.
//   - FloydWarshall closes the matrix in place so that d[i][j] is the length
//     of a shortest i→j path. AllPairs does the same on a validated copy of
//     plain rows.
//   - Negative edges are allowed. Negative cycles are not detected: their
//     distances come out understated and some diagonal entries go negative.
//     NegativeCycleNodes reports those entries after the run.
//
// Constructors:
//
//	NewDense[W](n)   // 0 diagonal, Infinity elsewhere
//	FromRows(rows)   // validates ErrBadShape, ErrNonSquare, ErrNonZeroDiagonal
//	FromGraph(g)     // lightest edge per ordered pair of a *core.Graph
//
// Concurrency:
//
// WithWorkers(n) relaxes the rows of one k-iteration on up to n goroutines
// (golang.org/x/sync/errgroup). The k loop is strictly sequential and row k is
// snapshotted before each iteration, so the result is identical for every
// worker count. WithContext(ctx) stops between iterations.
//
// Complexity: O(n³) time, O(n) extra space.
//
// Example:
//
//	inf := core.Infinity[int]()
//	d, err := matrix.AllPairs([][]int{
//	    {0, 3, inf},
//	    {inf, 0, 2},
//	    {1, inf, 0},
//	})
//	// d.Rows() == [[0 3 5] [3 0 2] [1 4 0]]
package matrix
