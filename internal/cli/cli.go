// Package cli implements the graphkit command-line interface.
//
// # Commands
//
//   - mst: minimum spanning tree with Prim, Kruskal or both
//   - path: single-source shortest paths (Dijkstra)
//   - apsp: all-pairs shortest paths (Floyd–Warshall)
//   - inspect: size, components and cycles of a graph file
//   - generate: random connected graph documents
//   - render: DOT or SVG drawings with the MST or a shortest-path tree highlighted
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) switches to
// debug level. Every run carries a short run id. With --narrate the
// algorithm steps are logged as they happen.
//
// # Configuration
//
// Defaults come from a TOML file (--config, else
// $XDG_CONFIG_HOME/graphkit/config.toml); flags override it.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/internal/buildinfo"
	"github.com/katalvlaran/graphkit/internal/config"
)

const appName = "graphkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    config.Config
	runID  string
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "graphkit runs classic weighted-graph algorithms on graph files",
		Long:          `graphkit computes minimum spanning trees (Prim, Kruskal), single-source shortest paths (Dijkstra) and all-pairs shortest paths (Floyd–Warshall) over YAML, TOML or HCL graph documents, and can narrate every algorithm step.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			level, _ := cfg.Level()
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)

			c.runID = uuid.New().String()
			c.Logger = c.Logger.With("run", c.runID[:8])
			c.Logger.Debug("starting", "command", cmd.Name(), "config", configPath)

			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphkit/config.toml)")

	root.AddCommand(c.mstCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.apspCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())

	return root
}
