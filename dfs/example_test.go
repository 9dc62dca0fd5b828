package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// ExampleFindCycle reports the loop closed by the last edge of a small network.
func ExampleFindCycle() {
	g, _ := core.NewGraph[int](4)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)

	cyc, _ := dfs.FindCycle(g)
	fmt.Println("before:", cyc)

	_, _ = g.AddEdge(3, 1, 1)
	cyc, _ = dfs.FindCycle(g)
	fmt.Println("after:", cyc)
	// Output:
	// before: []
	// after: [1 2 3]
}
