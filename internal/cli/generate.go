package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/converters"
)

const defaultSeed = 42

type generateOpts struct {
	nodes     int
	extra     int
	seed      int64
	maxWeight int
	name      string
	output    string
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{nodes: 8, extra: 4, seed: defaultSeed, maxWeight: 10}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random connected graph document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", opts.nodes, "number of nodes")
	cmd.Flags().IntVar(&opts.extra, "extra", opts.extra, "edges beyond the spanning tree")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().IntVar(&opts.maxWeight, "max-weight", opts.maxWeight, "integer weights are drawn from [1, max-weight]")
	cmd.Flags().StringVar(&opts.name, "name", "random", "document name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.yaml, .toml, .hcl); YAML to stdout when empty")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	if opts.maxWeight < 1 {
		return fmt.Errorf("--max-weight %d must be ≥ 1", opts.maxWeight)
	}
	maxW := opts.maxWeight
	g, err := builder.RandomConnected[float64](opts.nodes, opts.extra,
		builder.WithSeed[float64](opts.seed),
		builder.WithWeightFn[float64](func(r *rand.Rand) float64 { return float64(1 + r.Intn(maxW)) }),
	)
	if err != nil {
		return err
	}
	doc, err := converters.FromGraph(g, opts.name)
	if err != nil {
		return err
	}
	c.Logger.Debug("generated graph", "nodes", g.Order(), "edges", g.EdgeCount(), "seed", opts.seed)

	out := cmd.OutOrStdout()
	if opts.output == "" {
		data, err := converters.Encode(doc, converters.FormatYAML)
		if err != nil {
			return err
		}
		_, err = out.Write(data)

		return err
	}
	if err = converters.Save(opts.output, doc); err != nil {
		return err
	}
	printSuccess(out, "generated %d nodes, %d edges", g.Order(), g.EdgeCount())
	printFile(out, opts.output)

	return nil
}
