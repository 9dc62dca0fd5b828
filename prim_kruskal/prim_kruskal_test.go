package prim_kruskal_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/disjointset"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

// ringEdges is the 8-node network used by several tests; its MST weighs 14.
var ringEdges = [][3]int{
	{0, 1, 4}, {0, 2, 3}, {1, 2, 1}, {1, 3, 2}, {2, 3, 4}, {2, 4, 5}, {3, 4, 1},
	{3, 5, 6}, {4, 5, 2}, {4, 6, 3}, {5, 6, 4}, {5, 7, 5}, {6, 7, 2},
}

func buildGraph(t testing.TB, n int, edges [][3]int) *core.Graph[int] {
	t.Helper()
	g, err := core.NewGraph[int](n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}

	return g
}

// buildTriangle constructs 0—1 (1), 1—2 (2), 0—2 (3); its MST weighs 3.
func buildTriangle(t testing.TB) *core.Graph[int] {
	return buildGraph(t, 3, [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})
}

// buildMediumGraph creates a connected graph with n nodes and edgesCount edges:
// a chain 0—1—…—(n-1) with weights in [1..10] plus random extra edges with
// weights in [1..100]. The generator is seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph[float64] {
	t.Helper()
	g, err := core.NewGraph[float64](n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, err = g.AddEdge(i-1, i, 1.0+r.Float64()+float64(r.Intn(10)))
		require.NoError(t, err)
	}
	for i := n - 1; i < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, err = g.AddEdge(u, v, 1.0+r.Float64()+float64(r.Intn(100)))
		require.NoError(t, err)
		i++
	}

	return g
}

// assertSpanningTree checks |T| = n-1, that T is acyclic and that it connects
// every node, by replaying the edges into a fresh forest.
func assertSpanningTree[W core.Weight](t *testing.T, n int, res *prim_kruskal.Result[W]) {
	t.Helper()
	require.Len(t, res.Edges, n-1)
	f := disjointset.New(n)
	var sum W
	for _, e := range res.Edges {
		assert.True(t, f.Union(e.From, e.To), "edge %d-%d closes a cycle", e.From, e.To)
		sum += e.Weight
	}
	assert.Equal(t, 1, f.Count(), "tree must connect all nodes")
	assert.Equal(t, sum, res.Total)
}

func TestMST_EightNodeNetwork(t *testing.T) {
	g := buildGraph(t, 8, ringEdges)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 14, k.Total)
	assert.Equal(t, prim_kruskal.MethodKruskal, k.Method)
	assertSpanningTree(t, 8, k)

	for start := 0; start < 8; start++ {
		p, err := prim_kruskal.Prim(g, start)
		require.NoError(t, err)
		assert.Equal(t, 14, p.Total, "start %d", start)
		assertSpanningTree(t, 8, p)
	}
}

func TestMST_Triangle(t *testing.T) {
	g := buildTriangle(t)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3, k.Total)
	assert.Equal(t, []int{0, 1}, []int{k.Edges[0].ID, k.Edges[1].ID})

	p, err := prim_kruskal.Prim(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Total)
	// Prim orients every accepted edge from the tree outwards.
	assert.Equal(t, 2, p.Edges[0].From)
	assert.Equal(t, 1, p.Edges[0].To)
	assert.Equal(t, 1, p.Edges[1].From)
	assert.Equal(t, 0, p.Edges[1].To)
}

// TestMST_EqualTotals compares both engines on random connected graphs.
func TestMST_EqualTotals(t *testing.T) {
	for _, size := range []struct{ n, m int }{{2, 1}, {10, 20}, {60, 200}, {200, 1200}} {
		g := buildMediumGraph(t, size.n, size.m)

		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		p, err := prim_kruskal.Prim(g, size.n/2)
		require.NoError(t, err)

		assert.InDelta(t, k.Total, p.Total, 1e-9, "n=%d m=%d", size.n, size.m)
		assertSpanningTree(t, size.n, k)
		assertSpanningTree(t, size.n, p)
	}
}

func TestMST_Disconnected(t *testing.T) {
	// Drop every edge touching node 7.
	var edges [][3]int
	for _, e := range ringEdges {
		if e[0] != 7 && e[1] != 7 {
			edges = append(edges, e)
		}
	}
	g := buildGraph(t, 8, edges)

	k, err := prim_kruskal.Kruskal(g)
	assert.Nil(t, k)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	var ce *prim_kruskal.ConnectivityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 8, ce.Nodes)
	assert.Equal(t, 7, ce.Spanned)

	p, err := prim_kruskal.Prim(g, 0)
	assert.Nil(t, p)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, prim_kruskal.MethodPrim, ce.Method)
	assert.Equal(t, 7, ce.Spanned)

	// Starting inside the isolated component spans only that node.
	_, err = prim_kruskal.Prim(g, 7)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Spanned)
}

func TestMST_TrivialSizes(t *testing.T) {
	empty, err := core.NewGraph[int](0)
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Prim(empty, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	single, err := core.NewGraph[int](1)
	require.NoError(t, err)
	_, _ = single.AddEdge(0, 0, 9) // a self-loop never enters the tree
	k, err := prim_kruskal.Kruskal(single)
	require.NoError(t, err)
	assert.Empty(t, k.Edges)
	assert.Zero(t, k.Total)
	p, err := prim_kruskal.Prim(single, 0)
	require.NoError(t, err)
	assert.Empty(t, p.Edges)
}

func TestMST_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal[int](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, err = prim_kruskal.Prim[int](nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	g := buildTriangle(t)
	_, err = prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	_, err = g.AddEdge(0, 1, 1, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestMST_ParallelEdgesAndLoops(t *testing.T) {
	g := buildGraph(t, 3, [][3]int{{0, 1, 5}, {0, 1, 2}, {1, 1, 0}, {1, 2, 7}, {2, 1, 3}})

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 5, k.Total)
	assert.Equal(t, []int{1, 4}, []int{k.Edges[0].ID, k.Edges[1].ID})

	p, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Total)
	for _, e := range p.Edges {
		assert.NotEqual(t, e.From, e.To)
	}
}

func TestMST_Observer(t *testing.T) {
	// square with a chord: 0-1 (1), 1-2 (2), 0-2 (3), 2-3 (4)
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}, {2, 3, 4}})
	want := []core.Decision{
		core.DecisionAccepted, core.DecisionAccepted, core.DecisionRejected, core.DecisionAccepted,
	}
	wantTotals := []int{1, 3, 3, 7}

	run := map[string]func(obs core.Observer[int]) (*prim_kruskal.Result[int], error){
		"kruskal": func(obs core.Observer[int]) (*prim_kruskal.Result[int], error) {
			return prim_kruskal.Kruskal(g, prim_kruskal.WithObserver(obs))
		},
		"prim": func(obs core.Observer[int]) (*prim_kruskal.Result[int], error) {
			return prim_kruskal.Prim(g, 0, prim_kruskal.WithObserver(obs))
		},
	}
	for name, fn := range run {
		t.Run(name, func(t *testing.T) {
			var steps []core.Step[int]
			res, err := fn(func(s core.Step[int]) { steps = append(steps, s) })
			require.NoError(t, err)
			assert.Equal(t, 7, res.Total)

			require.Len(t, steps, len(want))
			for i, s := range steps {
				assert.Equal(t, i+1, s.Index)
				assert.Equal(t, want[i], s.Decision, "step %d", i+1)
				assert.Equal(t, wantTotals[i], s.Total, "step %d", i+1)
			}
			assert.Equal(t, 3, steps[2].Weight, "the 0-2 chord is rejected")
		})
	}
}

func TestCompute(t *testing.T) {
	g := buildGraph(t, 8, ringEdges)

	res, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, res.Method)
	assert.Equal(t, 14, res.Total)

	res, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: prim_kruskal.MethodPrim, Root: 5})
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, res.Method)
	assert.Equal(t, 14, res.Total)

	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
