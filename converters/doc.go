// Package converters moves graphkit graphs in and out of files.
//
// A Document is the portable description of a weighted graph:
//
//	name: courier
//	nodes: 3
//	directed: false
//	labels: [Depot, A, B]
//	edges:
//	  - {from: 0, to: 1, weight: 5}
//	  - {from: 1, to: 2, weight: 3, directed: true}
//
// The same document can be written as TOML ([[edges]] tables) or HCL
// (repeated edge { ... } blocks). Load and Save pick the codec from the file
// extension; Decode and Encode take an explicit Format. YAML and TOML
// decoding reject unknown keys.
//
// Document.ToGraph and FromGraph convert to and from core.Graph[float64];
// ToDOT renders any core.Graph as Graphviz DOT with optional edge
// highlighting (e.g. the edges of a spanning tree or a shortest path).
package converters
