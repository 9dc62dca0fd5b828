// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
)

func TestNewGraph_BadCount(t *testing.T) {
	g, err := core.NewGraph[int](-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrBadNodeCount)

	empty, err := core.NewGraph[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Order())
	assert.Empty(t, empty.Edges())
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)

	cases := []struct {
		name string
		u, v int
	}{
		{"negative from", -1, 0},
		{"from too large", 3, 0},
		{"negative to", 0, -2},
		{"to too large", 1, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := g.AddEdge(tc.u, tc.v, 1)
			assert.Equal(t, core.NoNode, id)
			assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
		})
	}
	assert.Zero(t, g.EdgeCount(), "rejected inserts must not leave edges behind")
}

func TestAddEdge_NaNWeight(t *testing.T) {
	g, err := core.NewGraph[float64](3)
	require.NoError(t, err)

	id, err := g.AddEdge(0, 1, math.NaN())
	assert.Equal(t, core.NoNode, id)
	require.ErrorIs(t, err, core.ErrNaNWeight)
	assert.Contains(t, err.Error(), "0→1")
	assert.Zero(t, g.EdgeCount())

	// infinities are ordered, so they are accepted
	_, err = g.AddEdge(1, 2, math.Inf(1))
	assert.NoError(t, err)
}

func TestAddEdge_Bidirectional(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)

	id, err := g.AddEdge(0, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	n1, err := g.Neighbors(1)
	require.NoError(t, err)

	assert.Equal(t, []core.Neighbor[int]{{To: 1, Weight: 4, EdgeID: 0}}, n0)
	assert.Equal(t, []core.Neighbor[int]{{To: 0, Weight: 4, EdgeID: 0}}, n1)
	assert.Len(t, g.Edges(), 1, "one logical edge for a bidirectional connection")
	assert.False(t, g.HasDirectedEdges())
}

func TestAddEdge_DirectedAndMixed(t *testing.T) {
	g, err := core.NewGraph[float64](3, core.WithDirected())
	require.NoError(t, err)
	assert.True(t, g.Directed())

	_, err = g.AddEdge(0, 1, 1.5)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 2.5, core.WithEdgeDirected(false))
	require.NoError(t, err)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[float64]{{To: 2, Weight: 2.5, EdgeID: 1}}, n1,
		"directed 0→1 must not appear in 1's adjacency")

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[float64]{{To: 1, Weight: 2.5, EdgeID: 1}}, n2)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.True(t, edges[0].Directed)
	assert.False(t, edges[1].Directed)
	assert.True(t, g.HasDirectedEdges())
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g, err := core.NewGraph[int](2)
	require.NoError(t, err)

	_, err = g.AddEdge(1, 1, 3)
	require.NoError(t, err)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Len(t, n1, 1, "bidirectional self-loop appears once")
}

func TestNeighbors_InsertionOrderAndCopy(t *testing.T) {
	g, err := core.NewGraph[int](4)
	require.NoError(t, err)
	for _, v := range []int{3, 1, 2} {
		_, err = g.AddEdge(0, v, v*10)
		require.NoError(t, err)
	}

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, n0, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{n0[0].To, n0[1].To, n0[2].To})

	n0[0].Weight = -99
	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, 30, again[0].Weight, "Neighbors must return a copy")

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestLabels(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)

	require.NoError(t, g.SetLabel(0, "Warehouse"))
	assert.Equal(t, "Warehouse", g.Label(0))
	assert.Equal(t, "1", g.Label(1))
	assert.Equal(t, "9", g.Label(9))
	assert.Equal(t, []string{"Warehouse", "1", "2"}, g.Labels())

	require.NoError(t, g.SetLabel(0, ""))
	assert.Equal(t, "0", g.Label(0))

	assert.ErrorIs(t, g.SetLabel(3, "x"), core.ErrNodeOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2, core.WithEdgeDirected(true))
	require.NoError(t, g.SetLabel(2, "C"))

	c := g.Clone()
	_, err = c.AddEdge(0, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())
	assert.Equal(t, "C", c.Label(2))
	assert.True(t, c.HasDirectedEdges())

	n0, _ := g.Neighbors(0)
	assert.Len(t, n0, 1, "clone mutation must not leak into the source")
}

func TestInfinity(t *testing.T) {
	assert.True(t, math.IsInf(core.Infinity[float64](), 1))
	assert.True(t, math.IsInf(float64(core.Infinity[float32]()), 1))
	assert.Equal(t, math.MaxInt64, core.Infinity[int]())
	assert.Equal(t, int64(math.MaxInt64), core.Infinity[int64]())
	assert.Equal(t, int32(math.MaxInt32), core.Infinity[int32]())
	assert.Equal(t, int8(math.MaxInt8), core.Infinity[int8]())
	assert.Equal(t, uint16(math.MaxUint16), core.Infinity[uint16]())
	assert.Equal(t, uint64(math.MaxUint64), core.Infinity[uint64]())

	type meters int32
	assert.Equal(t, meters(math.MaxInt32), core.Infinity[meters]())
	type grams uint8
	assert.Equal(t, grams(math.MaxUint8), core.Infinity[grams]())
	type cost float32
	assert.True(t, math.IsInf(float64(core.Infinity[cost]()), 1))
	type tiny int8
	assert.Equal(t, tiny(math.MaxInt8), core.Infinity[tiny]())

	assert.True(t, core.IsInf(core.Infinity[int]()))
	assert.False(t, core.IsInf(42))
}

func TestTracer(t *testing.T) {
	var got []core.Step[int]
	tr := core.NewTracer(func(s core.Step[int]) { got = append(got, s) })
	tr.Emit(core.Step[int]{Decision: core.DecisionAccepted, Total: 1})
	tr.Emit(core.Step[int]{Decision: core.DecisionRejected, Total: 1})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "rejected", got[1].Decision.String())

	// nil observer and nil tracer are no-ops
	core.NewTracer[int](nil).Emit(core.Step[int]{})
	var nilTracer *core.Tracer[int]
	nilTracer.Emit(core.Step[int]{})
}
