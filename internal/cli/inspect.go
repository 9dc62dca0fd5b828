package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/dfs"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var source int

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Describe a graph file: size, components, reach, cycles and order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], source)
		},
	}

	cmd.Flags().IntVarP(&source, "source", "s", 0, "node whose reach is reported")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, path string, source int) error {
	g, doc, err := c.loadGraph(path)
	if err != nil {
		return err
	}
	if g.Order() > 0 {
		if err = checkNode(g, "source", source); err != nil {
			return err
		}
	}
	comps, err := bfs.Components(cmd.Context(), g)
	if err != nil {
		return err
	}
	cycle, err := dfs.FindCycle(g)
	if err != nil {
		return err
	}

	oneWay, loops := 0, 0
	for _, e := range g.Edges() {
		if e.Directed {
			oneWay++
		}
		if e.From == e.To {
			loops++
		}
	}

	out := cmd.OutOrStdout()
	printTitle(out, "%s", displayName(doc.Name, path))
	printKeyValue(out, "nodes", g.Order())
	printKeyValue(out, "edges", g.EdgeCount())
	printKeyValue(out, "one-way", oneWay)
	printKeyValue(out, "self-loops", loops)
	printKeyValue(out, "components", len(comps))
	if len(comps) > 1 {
		for i, comp := range comps {
			printDetail(out, "#%d: %v", i+1, comp)
		}
	}
	if g.Order() > 0 {
		reach, err := bfs.BFS(g, source, bfs.WithContext(cmd.Context()))
		if err != nil {
			return err
		}
		hops := 0
		for _, v := range reach.Order {
			hops = max(hops, reach.Depth[v])
		}
		printKeyValue(out, "reach", fmt.Sprintf("%d of %d nodes from %s in %d hop(s)",
			len(reach.Order), g.Order(), g.Label(source), hops))
	}
	if cycle == nil {
		printKeyValue(out, "cycle", "none")
	} else {
		printKeyValue(out, "cycle", routeString(g.Label, cycle))
	}
	// only all-directed acyclic graphs have a topological order
	if g.EdgeCount() > 0 && oneWay == g.EdgeCount() && cycle == nil {
		order, err := dfs.TopologicalSort(g)
		if err != nil {
			return err
		}
		printKeyValue(out, "order", routeString(g.Label, order))
	}
	switch {
	case g.Order() == 0:
		printDetail(out, "empty graph")
	case oneWay > 0:
		printDetail(out, "one-way edges present: mst is unavailable")
	case len(comps) > 1:
		printDetail(out, "disconnected: mst will fail, path leaves some nodes unreachable")
	default:
		printSuccess(out, "connected and undirected: ready for mst")
	}

	return nil
}
