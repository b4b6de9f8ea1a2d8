// Package vocab holds the IRI constants for the vocabularies this
// generator reads: SHACL Core, XSD datatypes, and the RDF namespace.
package vocab

import "github.com/ontoforge/shaclgen/rdf"

// Namespaces.
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"
	SH   = "http://www.w3.org/ns/shacl#"
)

// RDF terms.
var (
	RDFType       = rdf.NewIRI(RDF + "type")
	RDFFirst      = rdf.NewIRI(RDF + "first")
	RDFRest       = rdf.NewIRI(RDF + "rest")
	RDFNil        = rdf.NewIRI(RDF + "nil")
	RDFLangString = rdf.NewIRI(RDF + "langString")
)

// SHACL Core terms read by the shape extractor.
var (
	ShNodeShape    = rdf.NewIRI(SH + "NodeShape")
	ShTargetClass  = rdf.NewIRI(SH + "targetClass")
	ShProperty     = rdf.NewIRI(SH + "property")
	ShPath         = rdf.NewIRI(SH + "path")
	ShName         = rdf.NewIRI(SH + "name")
	ShDescription  = rdf.NewIRI(SH + "description")
	ShDatatype     = rdf.NewIRI(SH + "datatype")
	ShClass        = rdf.NewIRI(SH + "class")
	ShMinCount     = rdf.NewIRI(SH + "minCount")
	ShMaxCount     = rdf.NewIRI(SH + "maxCount")
	ShMinLength    = rdf.NewIRI(SH + "minLength")
	ShMaxLength    = rdf.NewIRI(SH + "maxLength")
	ShPattern      = rdf.NewIRI(SH + "pattern")
	ShIn           = rdf.NewIRI(SH + "in")
	ShMinInclusive = rdf.NewIRI(SH + "minInclusive")
	ShMaxInclusive = rdf.NewIRI(SH + "maxInclusive")
	ShMinExclusive = rdf.NewIRI(SH + "minExclusive")
	ShMaxExclusive = rdf.NewIRI(SH + "maxExclusive")
)

// XSD datatypes understood by the type mapper.
var (
	XSDString  = rdf.NewIRI(XSD + "string")
	XSDAnyURI  = rdf.NewIRI(XSD + "anyURI")
	XSDInt     = rdf.NewIRI(XSD + "int")
	XSDInteger = rdf.NewIRI(XSD + "integer")
	XSDLong    = rdf.NewIRI(XSD + "long")
	XSDDouble  = rdf.NewIRI(XSD + "double")
	XSDFloat   = rdf.NewIRI(XSD + "float")
	XSDDecimal = rdf.NewIRI(XSD + "decimal")
	XSDBoolean = rdf.NewIRI(XSD + "boolean")
)

// DefaultPrefixes is the prefix table used when serializing graphs built
// by the instance DSL.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  RDF,
		"rdfs": RDFS,
		"xsd":  XSD,
		"sh":   SH,
	}
}
