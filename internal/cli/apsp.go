package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/matrix"
)

func (c *CLI) apspCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "apsp [file]",
		Short: "Compute all-pairs shortest distances (Floyd–Warshall)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = c.cfg.Workers
			}

			return c.runAPSP(cmd, args[0], workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "goroutines per relaxation round")

	return cmd
}

func (c *CLI) runAPSP(cmd *cobra.Command, path string, workers int) error {
	g, doc, err := c.loadGraph(path)
	if err != nil {
		return err
	}
	d, err := matrix.FromGraph(g)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	prog := newProgress(c.Logger)
	if err = matrix.FloydWarshall(d, matrix.WithWorkers(workers), matrix.WithContext(cmd.Context())); err != nil {
		return err
	}
	prog.done("computed all-pairs distances", "nodes", d.Order(), "workers", workers)

	out := cmd.OutOrStdout()
	printTitle(out, "All-pairs shortest distances · %s", displayName(doc.Name, path))
	for _, line := range strings.Split(strings.TrimRight(d.String(), "\n"), "\n") {
		fmt.Fprintln(out, "  "+line)
	}
	if neg := d.NegativeCycleNodes(); len(neg) > 0 {
		printWarning(out, "negative cycle through nodes %v: distances on it are not meaningful", neg)
	}

	return nil
}
