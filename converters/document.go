// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/graphkit/core"
)

// Document is the on-disk description of a weighted graph.
//
// Nodes are the ids [0, Nodes). Directed sets the default edge direction;
// an edge's own Directed field, when present, overrides it.
type Document struct {
	Name     string    `yaml:"name,omitempty" toml:"name,omitempty"`
	Nodes    int       `yaml:"nodes" toml:"nodes"`
	Directed bool      `yaml:"directed,omitempty" toml:"directed,omitempty"`
	Labels   []string  `yaml:"labels,omitempty" toml:"labels,omitempty"`
	Edges    []EdgeDoc `yaml:"edges" toml:"edges"`
}

// EdgeDoc is one edge of a Document.
type EdgeDoc struct {
	From     int     `yaml:"from" toml:"from"`
	To       int     `yaml:"to" toml:"to"`
	Weight   float64 `yaml:"weight" toml:"weight"`
	Directed *bool   `yaml:"directed,omitempty" toml:"directed"`
}

// Validate checks the document's shape without building a graph. Node ids must
// be in range and every weight must be finite.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if d.Nodes < 0 {
		return fmt.Errorf("%w: nodes=%d must be ≥ 0", ErrInvalidDocument, d.Nodes)
	}
	if len(d.Labels) > d.Nodes {
		return fmt.Errorf("%w: %d labels for %d nodes", ErrInvalidDocument, len(d.Labels), d.Nodes)
	}
	for i, e := range d.Edges {
		if e.From < 0 || e.From >= d.Nodes || e.To < 0 || e.To >= d.Nodes {
			return fmt.Errorf("%w: edge #%d %d→%d outside [0, %d): %w",
				ErrInvalidDocument, i, e.From, e.To, d.Nodes, core.ErrNodeOutOfRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge #%d %d→%d weight %v is not finite",
				ErrInvalidDocument, i, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// ToGraph builds a core.Graph from the document. Edge ids follow document order.
func (d *Document) ToGraph() (*core.Graph[float64], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var gopts []core.GraphOption
	if d.Directed {
		gopts = append(gopts, core.WithDirected())
	}
	g, err := core.NewGraph[float64](d.Nodes, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	for i, l := range d.Labels {
		if err = g.SetLabel(i, l); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	for _, e := range d.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err = g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a Document named name. Labels are written only
// when at least one node carries a non-default label, and an edge records its
// direction only when it differs from the graph default.
func FromGraph(g *core.Graph[float64], name string) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	doc := &Document{
		Name:     name,
		Nodes:    g.Order(),
		Directed: g.Directed(),
	}

	labels := g.Labels()
	for i, l := range labels {
		if l != strconv.Itoa(i) {
			doc.Labels = labels
			break
		}
	}

	edges := g.Edges()
	doc.Edges = make([]EdgeDoc, 0, len(edges))
	for _, e := range edges {
		ed := EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		if e.Directed != doc.Directed {
			dir := e.Directed
			ed.Directed = &dir
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return doc, nil
}
