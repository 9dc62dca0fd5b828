package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/dijkstra"
)

type pathOpts struct {
	source  int
	to      int
	narrate bool
}

func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path [file]",
		Short: "Compute shortest paths from a source node (Dijkstra)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("narrate") {
				opts.narrate = c.cfg.Narrate
			}
			if !cmd.Flags().Changed("to") {
				opts.to = -1
			}

			return c.runPath(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source node")
	cmd.Flags().IntVarP(&opts.to, "to", "t", 0, "destination node (default: every node)")
	cmd.Flags().BoolVar(&opts.narrate, "narrate", false, "log every finalized node and relaxation")

	return cmd
}

func (c *CLI) runPath(cmd *cobra.Command, path string, opts pathOpts) error {
	g, doc, err := c.loadGraph(path)
	if err != nil {
		return err
	}
	if err = checkNode(g, "source", opts.source); err != nil {
		return err
	}
	if opts.to >= 0 {
		if err = checkNode(g, "to", opts.to); err != nil {
			return err
		}
	}

	var dopts []dijkstra.Option[float64]
	if opts.narrate {
		dopts = append(dopts, dijkstra.WithObserver(pathNarrator(c.Logger, g)))
	}
	prog := newProgress(c.Logger)
	res, err := dijkstra.Dijkstra(g, opts.source, dopts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	prog.done("computed shortest paths", "source", opts.source)

	out := cmd.OutOrStdout()
	printTitle(out, "Shortest paths from %s · %s", g.Label(opts.source), displayName(doc.Name, path))

	if opts.to >= 0 {
		route, err := dijkstra.ReconstructPath(res, opts.to)
		if err != nil {
			return fmt.Errorf("%s to %s: %w", g.Label(opts.source), g.Label(opts.to), err)
		}
		printKeyValue(out, "route", routeString(g.Label, route))
		printKeyValue(out, "distance", res.Dist[opts.to])
		printKeyValue(out, "hops", len(route)-1)

		return nil
	}

	for _, d := range dijkstra.Destinations(res) {
		if !res.Reachable(d.Node) {
			continue
		}
		route, _ := res.PathTo(d.Node)
		printKeyValue(out, g.Label(d.Node), fmt.Sprintf("%v  via %s", d.Dist, routeString(g.Label, route)))
	}
	sum := dijkstra.Summarize(res)
	if sum.Unreachable > 0 {
		printWarning(out, "%d node(s) unreachable from %s", sum.Unreachable, g.Label(opts.source))
	}
	if sum.Farthest >= 0 {
		printDetail(out, "farthest %s at %v", g.Label(sum.Farthest), sum.FarthestDist)
	}

	return nil
}

func routeString(label func(int) string, route []int) string {
	parts := make([]string, len(route))
	for i, u := range route {
		parts[i] = label(u)
	}

	return strings.Join(parts, " "+iconArrow+" ")
}
