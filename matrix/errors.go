// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match with errors.Is.
// Context (coordinates, sizes) is added with fmt.Errorf("%w: ...") at the
// detection site.

package matrix

import "errors"

var (
	// ErrBadShape is returned for an empty matrix or a non-positive order.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals a distance matrix whose diagonal is not all zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNaNEntry signals a NaN distance, which cannot be compared.
	ErrNaNEntry = errors.New("matrix: entry is NaN")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadWorkers indicates WithWorkers was given a value below 1.
	ErrBadWorkers = errors.New("matrix: workers must be >= 1")
)
