package cli

import (
	"fmt"

	"github.com/katalvlaran/graphkit/converters"
	"github.com/katalvlaran/graphkit/core"
)

// loadGraph reads a graph document and builds its graph.
func (c *CLI) loadGraph(path string) (*core.Graph[float64], *converters.Document, error) {
	doc, err := converters.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.ToGraph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Logger.Debug("loaded graph", "path", path, "name", doc.Name, "nodes", g.Order(), "edges", g.EdgeCount())

	return g, doc, nil
}

// checkNode validates a node flag against g.
func checkNode(g *core.Graph[float64], flag string, u int) error {
	if !g.HasNode(u) {
		return fmt.Errorf("--%s %d: %w: graph has %d nodes", flag, u, core.ErrNodeOutOfRange, g.Order())
	}

	return nil
}

// edgeID returns the id of the lightest edge usable from u to v, or -1.
func edgeID(g *core.Graph[float64], u, v int) int {
	nb, err := g.Neighbors(u)
	if err != nil {
		return core.NoNode
	}
	id, best := core.NoNode, 0.0
	for _, n := range nb {
		if n.To == v && (id == core.NoNode || n.Weight < best) {
			id, best = n.EdgeID, n.Weight
		}
	}

	return id
}

// edgeLabel formats an edge by its node labels.
func edgeLabel(g *core.Graph[float64], u, v int) string {
	return g.Label(u) + "-" + g.Label(v)
}
