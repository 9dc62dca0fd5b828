// SPDX-License-Identifier: MIT
package converters

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphkit/core"
)

// Highlight colors used by ToDOT.
const (
	highlightColor = "#d62728"
	edgeColor      = "#7f7f7f"
)

// ToDOT renders g as Graphviz DOT. Edge ids in highlight are drawn bold and
// colored; pass nil for a plain drawing.
//
// Graphs with any one-way edge become a digraph whose bidirectional edges
// carry dir=none; otherwise an undirected graph is written.
func ToDOT[W core.Weight](g *core.Graph[W], highlight map[int]bool) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	kind, arrow := "graph", "--"
	directed := g.HasDirectedEdges()
	if directed {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, fontsize=10];\n\n", edgeColor)

	for u, label := range g.Labels() {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", u, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprint(e.Weight))}
		if directed && !e.Directed {
			attrs = append(attrs, "dir=none")
		}
		if highlight[e.ID] {
			attrs = append(attrs, "penwidth=3", fmt.Sprintf("color=%q", highlightColor))
		}
		fmt.Fprintf(&buf, "  %d %s %d [%s];\n", e.From, arrow, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}
