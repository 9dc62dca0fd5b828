// SPDX-License-Identifier: MIT

// Package matrix - Dense distance matrix (row-major) & safe accessors.
//
// Purpose:
//   - Square n×n buffer with the explicit index formula i*n + j.
//   - At/Set return errors instead of panicking.
//   - core.Infinity[W]() marks "no path"; the diagonal of a distance matrix is 0.
//
// Complexity quicksheet:
//   - NewDense/FromRows/Clone: O(n²); At/Set: O(1); FromGraph: O(n² + E).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphkit/core"
)

// Dense is a square row-major distance matrix.
type Dense[W core.Weight] struct {
	n    int
	data []W // len == n*n, offset = i*n + j
}

// NewDense returns an n×n distance matrix with 0 on the diagonal and
// core.Infinity[W]() elsewhere.
// Errors: ErrBadShape when n <= 0.
func NewDense[W core.Weight](n int) (*Dense[W], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: order %d", ErrBadShape, n)
	}
	inf := core.Infinity[W]()
	data := make([]W, n*n)
	for i := range data {
		data[i] = inf
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &Dense[W]{n: n, data: data}, nil
}

// FromRows copies rows into a new Dense after validating the distance-matrix
// contract, in this order:
//   - len(rows) == 0                 → ErrBadShape
//   - any len(rows[i]) != len(rows)  → ErrNonSquare
//   - any entry is NaN               → ErrNaNEntry
//   - any rows[i][i] != 0            → ErrNonZeroDiagonal
func FromRows[W core.Weight](rows [][]W) (*Dense[W], error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	data := make([]W, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
		data = append(data, row...)
	}
	for idx, v := range data {
		if v != v { // NaN
			return nil, fmt.Errorf("%w: [%d,%d]", ErrNaNEntry, idx/n, idx%n)
		}
	}
	for i := 0; i < n; i++ {
		if v := data[i*n+i]; v != 0 {
			return nil, fmt.Errorf("%w: [%d,%d]=%v", ErrNonZeroDiagonal, i, i, v)
		}
	}

	return &Dense[W]{n: n, data: data}, nil
}

// FromGraph builds the initial distance matrix of g: the lightest edge per
// ordered pair, both directions for bidirectional edges. Self-loops are ignored
// so the diagonal stays 0.
// Errors: ErrGraphNil, ErrBadShape for an empty graph.
func FromGraph[W core.Weight](g *core.Graph[W]) (*Dense[W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d, err := NewDense[W](g.Order())
	if err != nil {
		return nil, err
	}
	relaxEdge := func(u, v int, w W) {
		if idx := u*d.n + v; w < d.data[idx] {
			d.data[idx] = w
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		relaxEdge(e.From, e.To, e.Weight)
		if !e.Directed {
			relaxEdge(e.To, e.From, e.Weight)
		}
	}

	return d, nil
}

// Order returns n for an n×n matrix.
func (m *Dense[W]) Order() int { return m.n }

func (m *Dense[W]) indexOf(method string, i, j int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: Dense.%s(%d,%d) on %dx%d", ErrOutOfRange, method, i, j, m.n, m.n)
	}

	return i*m.n + j, nil
}

// At returns the element at (i, j).
func (m *Dense[W]) At(i, j int) (W, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		var zero W
		return zero, err
	}

	return m.data[idx], nil
}

// Set writes v at (i, j).
func (m *Dense[W]) Set(i, j int, v W) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Dense[W]) Rows() [][]W {
	out := make([][]W, m.n)
	for i := range out {
		out[i] = append([]W(nil), m.row(i)...)
	}

	return out
}

// Clone returns a deep copy.
func (m *Dense[W]) Clone() *Dense[W] {
	return &Dense[W]{n: m.n, data: append([]W(nil), m.data...)}
}

// NegativeCycleNodes lists every i with d[i][i] < 0 after FloydWarshall.
// Such nodes lie on a negative cycle and their row is meaningless.
// FloydWarshall itself does not detect negative cycles.
func (m *Dense[W]) NegativeCycleNodes() []int {
	var out []int
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] < 0 {
			out = append(out, i)
		}
	}

	return out
}

// String renders one bracketed row per line, "∞" for unreachable pairs.
func (m *Dense[W]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j, v := range m.row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			if core.IsInf(v) {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%v", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func (m *Dense[W]) row(i int) []W { return m.data[i*m.n : (i+1)*m.n] }
