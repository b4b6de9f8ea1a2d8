// Package shacl turns SHACL shapes documents into the shape model the
// ontology builder consumes. Parsing happens in two steps: the Turtle
// front end (shacl/parsing) produces a triple graph, and the extractor in
// this package reads sh:NodeShape resources out of it. Callers holding a
// pre-parsed graph can skip the first step with ShapesFromGraph.
package shacl

import (
	"io"

	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/shacl/diagnostics"
	"github.com/ontoforge/shaclgen/shacl/parsing"
)

// Diagnostics is re-exported for callers reporting warnings.
type Diagnostics = diagnostics.Diagnostics

// ParseShapes parses a Turtle shapes document and extracts its node
// shapes. A syntax error is fatal and returned as err; dropped shapes and
// properties surface as warnings in the diagnostics.
func ParseShapes(filename string, r io.Reader) ([]Shape, Diagnostics, error) {
	graph, err := parsing.Parse(filename, r)
	if err != nil {
		return nil, diagnostics.NewDiagnostics(), err
	}
	shapes, diags := ShapesFromGraph(graph)
	return shapes, diags, nil
}

// ParseShapesString parses a Turtle shapes document from a string.
func ParseShapesString(filename, input string) ([]Shape, Diagnostics, error) {
	graph, err := parsing.ParseString(filename, input)
	if err != nil {
		return nil, diagnostics.NewDiagnostics(), err
	}
	shapes, diags := ShapesFromGraph(graph)
	return shapes, diags, nil
}

// ParseGraph parses Turtle into a triple graph without shape extraction.
func ParseGraph(filename string, r io.Reader) (*rdf.MemoryGraph, error) {
	return parsing.Parse(filename, r)
}
