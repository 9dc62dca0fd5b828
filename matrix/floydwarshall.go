// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic results for any worker count.
//   - In place, O(n³) time, O(n) extra space (one snapshot of row k).
//
// Contract:
//   - Square matrix; core.Infinity[W]() means "no path"; diagonal 0 before calling.
//   - Negative edges are fine; negative cycles are not detected (see NegativeCycleNodes).
//   - Integer sums below the smallest representable value saturate to it.

package matrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphkit/core"
)

const opFloydWarshall = "FloydWarshall"

type fwOptions struct {
	workers int
	ctx     context.Context
	err     error
}

// Option configures FloydWarshall and AllPairs.
type Option func(*fwOptions)

// WithWorkers relaxes the rows of each k-iteration on up to n goroutines.
// The k loop stays sequential, so results equal the single-worker run.
// n < 1 makes FloydWarshall fail with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *fwOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.workers = n
	}
}

// WithContext makes FloydWarshall check ctx between k-iterations and return
// ctx.Err() once it is done. The matrix is then partially relaxed.
func WithContext(ctx context.Context) Option {
	return func(o *fwOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Loop order is k → i → j. For each k a copy of row k is taken first, so every
// relaxation in iteration k reads iteration k-1 values no matter how rows are
// scheduled across workers. An Infinity operand is skipped, never added, and a
// sum that would reach Infinity is treated as no improvement. A sum of two
// negatives that would wrap below the type's minimum is written as that
// minimum instead. Only strict improvements are written.
//
// Complexity: Time O(n³), extra space O(n).
func FloydWarshall[W core.Weight](d *Dense[W], opts ...Option) error {
	if d == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	o := fwOptions{workers: 1, ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, o.err)
	}

	n := d.n
	inf := core.Infinity[W]()
	floor := -inf - 1 // minimum of a signed integer W, -Inf for floats
	rowK := make([]W, n)
	workers := min(o.workers, n)

	for k := 0; k < n; k++ {
		if err := o.ctx.Err(); err != nil {
			return fmt.Errorf("%s: k=%d: %w", opFloydWarshall, k, err)
		}
		copy(rowK, d.row(k))

		if workers == 1 {
			for i := 0; i < n; i++ {
				relaxRow(d.row(i), rowK, k, inf, floor)
			}
			continue
		}

		// contiguous stripes of rows, one goroutine each
		var g errgroup.Group
		g.SetLimit(workers)
		stripe := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += stripe {
			hi := min(lo+stripe, n)
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					relaxRow(d.row(i), rowK, k, inf, floor)
				}
				return nil
			})
		}
		_ = g.Wait() // stripes never fail
	}

	return nil
}

// relaxRow applies d[i][j] = min(d[i][j], d[i][k] + d[k][j]) across one row.
func relaxRow[W core.Weight](rowI, rowK []W, k int, inf, floor W) {
	ik := rowI[k]
	if ik == inf {
		return
	}
	for j, kj := range rowK {
		if kj == inf {
			continue
		}
		// ik + kj would reach or pass the sentinel
		if ik > 0 && kj >= inf-ik {
			continue
		}
		// ik + kj would wrap below the minimum
		if ik < 0 && kj < 0 && kj < floor-ik {
			if floor < rowI[j] {
				rowI[j] = floor
			}
			continue
		}
		if cand := ik + kj; cand < rowI[j] {
			rowI[j] = cand
		}
	}
}

// AllPairs validates rows (see FromRows), runs FloydWarshall on a copy and
// returns the closed distance matrix. rows is never modified.
func AllPairs[W core.Weight](rows [][]W, opts ...Option) (*Dense[W], error) {
	d, err := FromRows(rows)
	if err != nil {
		return nil, err
	}
	if err = FloydWarshall(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}
