package runtime

import (
	"strconv"

	"github.com/ontoforge/shaclgen/rdf"
)

// Accessor read helpers. Generated wrappers query the graph through
// these: scalar reads take the first triple in insertion order, list
// reads collect all matches in order.

// ScalarLiteral returns the first literal value of a predicate on the
// focus node.
func ScalarLiteral(g rdf.Graph, focus rdf.Term, predicate rdf.IRI) (rdf.Literal, bool) {
	for _, t := range g.Triples(focus, predicate, nil) {
		if lit, ok := t.Object.(rdf.Literal); ok {
			return lit, true
		}
	}
	return rdf.Literal{}, false
}

// Literals returns every literal value of a predicate on the focus node
// in insertion order.
func Literals(g rdf.Graph, focus rdf.Term, predicate rdf.IRI) []rdf.Literal {
	var out []rdf.Literal
	for _, t := range g.Triples(focus, predicate, nil) {
		if lit, ok := t.Object.(rdf.Literal); ok {
			out = append(out, lit)
		}
	}
	return out
}

// ScalarRef returns the first non-literal value of a predicate on the
// focus node.
func ScalarRef(g rdf.Graph, focus rdf.Term, predicate rdf.IRI) (rdf.Term, bool) {
	for _, t := range g.Triples(focus, predicate, nil) {
		if _, ok := t.Object.(rdf.Literal); !ok {
			return t.Object, true
		}
	}
	return nil, false
}

// Refs returns every non-literal value of a predicate on the focus node
// in insertion order.
func Refs(g rdf.Graph, focus rdf.Term, predicate rdf.IRI) []rdf.Term {
	var out []rdf.Term
	for _, t := range g.Triples(focus, predicate, nil) {
		if _, ok := t.Object.(rdf.Literal); !ok {
			out = append(out, t.Object)
		}
	}
	return out
}

// Int returns a pointer to n. Generated rule literals use it for
// optional constraint fields.
func Int(n int) *int { return &n }

// Float returns a pointer to f. Generated rule literals use it for
// optional constraint fields.
func Float(f float64) *float64 { return &f }

// Lexical-to-Go conversions. A form that does not parse yields the zero
// value; the raw form stays reachable through the extras side-channel
// or a string accessor.

// AsString returns the literal's lexical form.
func AsString(lit rdf.Literal) string { return lit.Value }

// AsInt parses the lexical form as an int.
func AsInt(lit rdf.Literal) int {
	n, err := strconv.Atoi(lit.Value)
	if err != nil {
		return 0
	}
	return n
}

// AsFloat parses the lexical form as a float64.
func AsFloat(lit rdf.Literal) float64 {
	f, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		return 0
	}
	return f
}

// AsBool parses the lexical form as a bool. "1" and "0" are accepted
// alongside "true" and "false", as XSD allows.
func AsBool(lit rdf.Literal) bool {
	switch lit.Value {
	case "true", "1":
		return true
	}
	return false
}
