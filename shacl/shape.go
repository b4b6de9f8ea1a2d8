package shacl

import (
	"strconv"
	"strings"

	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/shacl/diagnostics"
	"github.com/ontoforge/shaclgen/vocab"
)

// Property is one property shape: a path plus the constraint fields this
// generator translates into code.
type Property struct {
	Path        rdf.IRI
	Name        string
	Description string

	// Datatype and Class are empty when the shape does not constrain them.
	Datatype rdf.IRI
	Class    rdf.IRI

	// MinCount defaults to 0; a nil MaxCount means unbounded.
	MinCount int
	MaxCount *int

	MinLength *int
	MaxLength *int
	Pattern   string
	In        []rdf.Literal

	MinInclusive *float64
	MaxInclusive *float64
	MinExclusive *float64
	MaxExclusive *float64
}

// Shape is a node shape with a resolved target class. Shapes without a
// target class never reach this type; they are dropped during extraction.
type Shape struct {
	IRI         rdf.Term
	TargetClass rdf.IRI
	Description string
	Properties  []Property
}

// ShapesFromGraph extracts all sh:NodeShape resources from a pre-parsed
// graph. Shapes without sh:targetClass and property shapes without
// sh:path are dropped with a warning; everything else missing is simply
// left at its default.
func ShapesFromGraph(g rdf.Graph) ([]Shape, diagnostics.Diagnostics) {
	diags := diagnostics.NewDiagnostics()
	var shapes []Shape

	for _, t := range g.Triples(nil, vocab.RDFType, vocab.ShNodeShape) {
		shapeNode := t.Subject

		target, ok := firstIRI(g, shapeNode, vocab.ShTargetClass)
		if !ok {
			diags.PushWarning(diagnostics.NewMissingTargetClassWarning(shapeNode))
			continue
		}

		shape := Shape{IRI: shapeNode, TargetClass: target}
		if desc, ok := firstLiteral(g, shapeNode, vocab.ShDescription); ok {
			shape.Description = desc.Value
		}
		for _, pt := range g.Triples(shapeNode, vocab.ShProperty, nil) {
			prop, ok := extractProperty(g, shapeNode, pt.Object, &diags)
			if !ok {
				continue
			}
			shape.Properties = append(shape.Properties, prop)
		}
		shapes = append(shapes, shape)
	}
	return shapes, diags
}

// extractProperty reads one property shape node. Returns false when the
// shape has no sh:path.
func extractProperty(g rdf.Graph, shapeNode, propNode rdf.Term, diags *diagnostics.Diagnostics) (Property, bool) {
	path, ok := firstIRI(g, propNode, vocab.ShPath)
	if !ok {
		diags.PushWarning(diagnostics.NewMissingPathWarning(shapeNode, propNode))
		return Property{}, false
	}

	prop := Property{
		Path: path,
		Name: LocalName(path),
	}
	if name, ok := firstLiteral(g, propNode, vocab.ShName); ok {
		prop.Name = name.Value
	}
	if desc, ok := firstLiteral(g, propNode, vocab.ShDescription); ok {
		prop.Description = desc.Value
	}
	if dt, ok := firstIRI(g, propNode, vocab.ShDatatype); ok {
		prop.Datatype = dt
	}
	if cls, ok := firstIRI(g, propNode, vocab.ShClass); ok {
		prop.Class = cls
	}
	if n, ok := intValue(g, propNode, vocab.ShMinCount); ok {
		prop.MinCount = n
	}
	if n, ok := intValue(g, propNode, vocab.ShMaxCount); ok {
		prop.MaxCount = &n
	}
	if n, ok := intValue(g, propNode, vocab.ShMinLength); ok {
		prop.MinLength = &n
	}
	if n, ok := intValue(g, propNode, vocab.ShMaxLength); ok {
		prop.MaxLength = &n
	}
	if pat, ok := firstLiteral(g, propNode, vocab.ShPattern); ok {
		prop.Pattern = pat.Value
	}
	if head, ok := firstObject(g, propNode, vocab.ShIn); ok {
		prop.In = readLiteralList(g, head)
	}
	prop.MinInclusive = floatValue(g, propNode, vocab.ShMinInclusive)
	prop.MaxInclusive = floatValue(g, propNode, vocab.ShMaxInclusive)
	prop.MinExclusive = floatValue(g, propNode, vocab.ShMinExclusive)
	prop.MaxExclusive = floatValue(g, propNode, vocab.ShMaxExclusive)

	return prop, true
}

// readLiteralList walks an rdf:first/rdf:rest chain collecting literal
// members in list order. Non-literal members are ignored.
func readLiteralList(g rdf.Graph, head rdf.Term) []rdf.Literal {
	var out []rdf.Literal
	node := head
	for node != nil && !node.Equal(vocab.RDFNil) {
		first, ok := firstObject(g, node, vocab.RDFFirst)
		if !ok {
			break
		}
		if lit, ok := first.(rdf.Literal); ok {
			out = append(out, lit)
		}
		rest, ok := firstObject(g, node, vocab.RDFRest)
		if !ok {
			break
		}
		node = rest
	}
	return out
}

// LocalName returns the fragment or final path segment of an IRI.
func LocalName(iri rdf.IRI) string {
	v := iri.Value()
	if i := strings.LastIndex(v, "#"); i >= 0 {
		return v[i+1:]
	}
	if i := strings.LastIndex(v, "/"); i >= 0 {
		return v[i+1:]
	}
	return v
}

func firstObject(g rdf.Graph, subject, predicate rdf.Term) (rdf.Term, bool) {
	matches := g.Triples(subject, predicate, nil)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0].Object, true
}

func firstIRI(g rdf.Graph, subject, predicate rdf.Term) (rdf.IRI, bool) {
	obj, ok := firstObject(g, subject, predicate)
	if !ok {
		return "", false
	}
	iri, ok := obj.(rdf.IRI)
	return iri, ok
}

func firstLiteral(g rdf.Graph, subject, predicate rdf.Term) (rdf.Literal, bool) {
	obj, ok := firstObject(g, subject, predicate)
	if !ok {
		return rdf.Literal{}, false
	}
	lit, ok := obj.(rdf.Literal)
	return lit, ok
}

func intValue(g rdf.Graph, subject, predicate rdf.Term) (int, bool) {
	lit, ok := firstLiteral(g, subject, predicate)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

func floatValue(g rdf.Graph, subject, predicate rdf.Term) *float64 {
	lit, ok := firstLiteral(g, subject, predicate)
	if !ok {
		return nil
	}
	f, err := lit.Float()
	if err != nil {
		return nil
	}
	return &f
}
