// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclDocument is the HCL shape of a Document: edges are repeated `edge` blocks.
//
//	name  = "ring"
//	nodes = 3
//	edge {
//	  from   = 0
//	  to     = 1
//	  weight = 2.5
//	}
type hclDocument struct {
	Name     string    `hcl:"name,optional"`
	Nodes    int       `hcl:"nodes"`
	Directed bool      `hcl:"directed,optional"`
	Labels   []string  `hcl:"labels,optional"`
	Edges    []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From   int     `hcl:"from"`
	To     int     `hcl:"to"`
	Weight float64 `hcl:"weight"`
	// absent evaluates to null, which keeps the graph default
	Directed hcl.Expression `hcl:"directed,optional"`
}

func decodeHCL(data []byte, filename string, doc *Document) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return fmt.Errorf("%w: hcl: %w", ErrInvalidDocument, diags)
	}

	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return fmt.Errorf("%w: hcl: %w", ErrInvalidDocument, diags)
	}

	*doc = Document{
		Name:     raw.Name,
		Nodes:    raw.Nodes,
		Directed: raw.Directed,
		Labels:   raw.Labels,
		Edges:    make([]EdgeDoc, 0, len(raw.Edges)),
	}
	for i, e := range raw.Edges {
		ed := EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		if e.Directed != nil {
			v, vd := e.Directed.Value(nil)
			if vd.HasErrors() {
				return fmt.Errorf("%w: hcl: edge #%d: %w", ErrInvalidDocument, i, vd)
			}
			if !v.IsNull() {
				if !v.IsKnown() || !v.Type().Equals(cty.Bool) {
					return fmt.Errorf("%w: hcl: edge #%d: directed must be a bool", ErrInvalidDocument, i)
				}
				dir := v.True()
				ed.Directed = &dir
			}
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return nil
}

func encodeHCL(doc *Document) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if doc.Name != "" {
		body.SetAttributeValue("name", cty.StringVal(doc.Name))
	}
	body.SetAttributeValue("nodes", cty.NumberIntVal(int64(doc.Nodes)))
	if doc.Directed {
		body.SetAttributeValue("directed", cty.True)
	}
	if len(doc.Labels) > 0 {
		labels := make([]cty.Value, len(doc.Labels))
		for i, l := range doc.Labels {
			labels[i] = cty.StringVal(l)
		}
		body.SetAttributeValue("labels", cty.ListVal(labels))
	}

	for _, e := range doc.Edges {
		body.AppendNewline()
		eb := body.AppendNewBlock("edge", nil).Body()
		eb.SetAttributeValue("from", cty.NumberIntVal(int64(e.From)))
		eb.SetAttributeValue("to", cty.NumberIntVal(int64(e.To)))
		eb.SetAttributeValue("weight", cty.NumberFloatVal(e.Weight))
		if e.Directed != nil {
			eb.SetAttributeValue("directed", cty.BoolVal(*e.Directed))
		}
	}

	return f.Bytes()
}
