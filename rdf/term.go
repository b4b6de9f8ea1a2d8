// Package rdf provides the RDF term and triple model used by the parser,
// the generators, and the generated runtime: IRIs, blank nodes, literals
// with datatypes and language tags, and an in-memory insertion-ordered
// triple graph.
package rdf

import (
	"fmt"
	"strconv"
)

// Term is an RDF term: an IRI, a blank node, or a literal.
type Term interface {
	// String returns the N-Triples form of the term.
	String() string

	// Equal reports whether two terms are the same RDF term.
	Equal(other Term) bool
}

// IRI is an absolute IRI reference.
type IRI string

// NewIRI creates an IRI term.
func NewIRI(value string) IRI { return IRI(value) }

// Value returns the raw IRI string without angle brackets.
func (i IRI) Value() string { return string(i) }

func (i IRI) String() string { return "<" + string(i) + ">" }

// Equal reports whether other is the same IRI.
func (i IRI) Equal(other Term) bool {
	o, ok := other.(IRI)
	return ok && o == i
}

// BlankNode is an anonymous resource with a document-scoped label.
type BlankNode string

// NewBlankNode creates a blank node with the given label.
func NewBlankNode(label string) BlankNode { return BlankNode(label) }

func (b BlankNode) String() string { return "_:" + string(b) }

// Equal reports whether other is a blank node with the same label.
func (b BlankNode) Equal(other Term) bool {
	o, ok := other.(BlankNode)
	return ok && o == b
}

// Literal is an RDF literal: a lexical form with an optional datatype IRI
// and an optional language tag. A literal carries a language tag only when
// its datatype is rdf:langString; a plain literal has datatype xsd:string.
type Literal struct {
	Value    string
	Datatype IRI
	Language string
}

// NewLiteral creates a plain xsd:string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value, Datatype: xsdString}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(value, language string) Literal {
	return Literal{Value: value, Datatype: rdfLangString, Language: language}
}

// NewTypedLiteral creates a literal with an explicit datatype.
func NewTypedLiteral(value string, datatype IRI) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// NewIntegerLiteral creates an xsd:integer literal.
func NewIntegerLiteral(value int64) Literal {
	return Literal{Value: strconv.FormatInt(value, 10), Datatype: xsdInteger}
}

// NewDoubleLiteral creates an xsd:double literal.
func NewDoubleLiteral(value float64) Literal {
	return Literal{Value: strconv.FormatFloat(value, 'g', -1, 64), Datatype: xsdDouble}
}

// NewBooleanLiteral creates an xsd:boolean literal.
func NewBooleanLiteral(value bool) Literal {
	return Literal{Value: strconv.FormatBool(value), Datatype: xsdBoolean}
}

func (l Literal) String() string {
	quoted := strconv.Quote(l.Value)
	if l.Language != "" {
		return quoted + "@" + l.Language
	}
	if l.Datatype != "" && l.Datatype != xsdString {
		return fmt.Sprintf("%s^^<%s>", quoted, string(l.Datatype))
	}
	return quoted
}

// Equal reports whether other is a literal with the same lexical form,
// datatype, and language tag.
func (l Literal) Equal(other Term) bool {
	o, ok := other.(Literal)
	return ok && o == l
}

// IsNumeric reports whether the literal carries a numeric XSD datatype.
func (l Literal) IsNumeric() bool {
	switch l.Datatype {
	case xsdInteger, xsdInt, xsdLong, xsdDouble, xsdFloat, xsdDecimal:
		return true
	}
	return false
}

// Float returns the literal's lexical form parsed as a float64.
func (l Literal) Float() (float64, error) {
	return strconv.ParseFloat(l.Value, 64)
}

// Local copies of the XSD IRIs needed by the term model. The full
// vocabulary lives in the vocab package; these are duplicated here to keep
// rdf dependency-free.
const (
	xsdString     IRI = "http://www.w3.org/2001/XMLSchema#string"
	xsdInteger    IRI = "http://www.w3.org/2001/XMLSchema#integer"
	xsdInt        IRI = "http://www.w3.org/2001/XMLSchema#int"
	xsdLong       IRI = "http://www.w3.org/2001/XMLSchema#long"
	xsdDouble     IRI = "http://www.w3.org/2001/XMLSchema#double"
	xsdFloat      IRI = "http://www.w3.org/2001/XMLSchema#float"
	xsdDecimal    IRI = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdBoolean    IRI = "http://www.w3.org/2001/XMLSchema#boolean"
	rdfLangString IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)
