package ontology

import (
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/vocab"
)

var goTypes = map[rdf.IRI]string{
	vocab.XSDString:  "string",
	vocab.XSDAnyURI:  "string",
	vocab.XSDInt:     "int",
	vocab.XSDInteger: "int",
	vocab.XSDLong:    "int",
	vocab.XSDDouble:  "float64",
	vocab.XSDFloat:   "float64",
	vocab.XSDDecimal: "float64",
	vocab.XSDBoolean: "bool",
}

// GoTypeFor maps an XSD datatype IRI to the Go type a literal value is
// exposed as. Unknown datatypes fall back to string so the lexical form
// stays available.
func GoTypeFor(datatype rdf.IRI) string {
	if t, ok := goTypes[datatype]; ok {
		return t
	}
	return "string"
}
