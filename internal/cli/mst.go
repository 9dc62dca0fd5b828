package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/internal/config"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

type mstOpts struct {
	method  string
	start   int
	narrate bool
}

func (c *CLI) mstCommand() *cobra.Command {
	var opts mstOpts

	cmd := &cobra.Command{
		Use:   "mst [file]",
		Short: "Compute a minimum spanning tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("method") {
				opts.method = c.cfg.Method
			}
			if !cmd.Flags().Changed("narrate") {
				opts.narrate = c.cfg.Narrate
			}

			return c.runMST(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", config.MethodKruskal, "algorithm: prim, kruskal or both")
	cmd.Flags().IntVar(&opts.start, "start", 0, "root node for Prim")
	cmd.Flags().BoolVar(&opts.narrate, "narrate", false, "log every accepted and rejected edge")

	return cmd
}

func (c *CLI) runMST(cmd *cobra.Command, path string, opts mstOpts) error {
	var methods []string
	switch opts.method {
	case config.MethodPrim, config.MethodKruskal:
		methods = []string{opts.method}
	case config.MethodBoth:
		methods = []string{config.MethodPrim, config.MethodKruskal}
	default:
		return fmt.Errorf("--method %q: %w", opts.method, prim_kruskal.ErrUnknownMethod)
	}

	g, doc, err := c.loadGraph(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var totals []float64
	for _, method := range methods {
		var popts []prim_kruskal.Option[float64]
		if opts.narrate {
			popts = append(popts, prim_kruskal.WithObserver(mstNarrator(c.Logger, g, method)))
		}

		prog := newProgress(c.Logger)
		res, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: method, Root: opts.start}, popts...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		prog.done("computed spanning tree", "method", method, "edges", len(res.Edges))

		printTitle(out, "Minimum spanning tree · %s · %s", method, displayName(doc.Name, path))
		for _, e := range res.Edges {
			printEdge(out, g.Label(e.From), g.Label(e.To), e.Weight)
		}
		printKeyValue(out, "edges", len(res.Edges))
		printKeyValue(out, "total", res.Total)
		totals = append(totals, res.Total)
	}

	if len(totals) == 2 {
		if totals[0] != totals[1] {
			printWarning(out, "totals differ: prim=%v kruskal=%v", totals[0], totals[1])
		} else {
			printSuccess(out, "prim and kruskal agree on total %v", totals[0])
		}
	}

	return nil
}

// displayName prefers the document name over the file path.
func displayName(name, path string) string {
	if name != "" {
		return name
	}

	return path
}
