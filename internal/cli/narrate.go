package cli

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/graphkit/core"
)

// mstNarrator logs one line per edge decision of a spanning-tree run.
func mstNarrator(l *log.Logger, g *core.Graph[float64], method string) core.Observer[float64] {
	return func(s core.Step[float64]) {
		l.Info("step",
			"method", method,
			"n", s.Index,
			"decision", s.Decision,
			"edge", edgeLabel(g, s.From, s.To),
			"weight", s.Weight,
			"total", s.Total)
	}
}

// pathNarrator logs finalized nodes and improved tentative distances.
func pathNarrator(l *log.Logger, g *core.Graph[float64]) core.Observer[float64] {
	return func(s core.Step[float64]) {
		via := "-"
		if s.From != core.NoNode {
			via = g.Label(s.From)
		}
		l.Info("step",
			"n", s.Index,
			"decision", s.Decision,
			"node", g.Label(s.To),
			"via", via,
			"dist", s.Total)
	}
}
