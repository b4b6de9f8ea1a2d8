// Package parsing parses the Turtle serialization of a SHACL shapes
// document into an RDF triple graph using Participle. The grammar covers
// the Turtle subset SHACL documents use: prefix and base directives,
// predicate-object lists, blank node property lists, collections, and
// typed or language-tagged literals.
package parsing

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/ontoforge/shaclgen/rdf"
)

// document is the raw parse tree for a Turtle document.
type document struct {
	Statements []*statement `@@*`
}

// statement is a directive or a triples block.
type statement struct {
	Prefix  *prefixDecl   `  @@`
	Base    *baseDecl     `| @@`
	Triples *triplesBlock `| @@`
}

// prefixDecl binds a prefix name to a namespace IRI. The trailing dot is
// required after @prefix and absent after SPARQL-style PREFIX.
type prefixDecl struct {
	Name string `PrefixDirective @PName`
	IRI  string `@IRIRef ( "." )?`
}

// baseDecl sets the base IRI for relative references.
type baseDecl struct {
	IRI string `BaseDirective @IRIRef ( "." )?`
}

// triplesBlock is a subject with its predicate-object list.
type triplesBlock struct {
	Subject    *subject            `@@`
	Predicates []*predicateObjects `@@ ( ";" @@? )* "."`
}

// subject is an IRI, a labelled blank node, or a blank node property list.
type subject struct {
	IRIRef *string                `  @IRIRef`
	PName  *string                `| @PName`
	Blank  *string                `| @BlankNodeLabel`
	BNPL   *blankNodePropertyList `| @@`
}

// predicateObjects pairs one verb with its comma-separated objects.
type predicateObjects struct {
	Verb    *verb     `@@`
	Objects []*object `@@ ( "," @@ )*`
}

// verb is a predicate IRI or the rdf:type shorthand `a`.
type verb struct {
	A      bool    `  @A`
	IRIRef *string `| @IRIRef`
	PName  *string `| @PName`
}

// object is any term that may appear in object position.
type object struct {
	IRIRef  *string                `  @IRIRef`
	PName   *string                `| @PName`
	Blank   *string                `| @BlankNodeLabel`
	BNPL    *blankNodePropertyList `| @@`
	Coll    *collection            `| @@`
	Literal *literalNode           `| @@`
}

// blankNodePropertyList is the `[ p o ; p o ]` form.
type blankNodePropertyList struct {
	Predicates []*predicateObjects `"[" ( @@ ( ";" @@? )* )? "]"`
}

// collection is the `( o o o )` RDF list form, used by sh:in.
type collection struct {
	Objects []*object `"(" @@* ")"`
}

// literalNode is a string, numeric, or boolean literal.
type literalNode struct {
	Str     *stringLiteral `  @@`
	Number  *string        `| @Number`
	Boolean *string        `| @Boolean`
}

// stringLiteral is a quoted string with an optional language tag or
// datatype suffix.
type stringLiteral struct {
	Value    string          `@String`
	LangTag  *string         `( @LangTag`
	Datatype *datatypeSuffix `| @@ )?`
}

// datatypeSuffix is the `^^<iri>` or `^^prefix:local` form.
type datatypeSuffix struct {
	IRIRef *string `DatatypeMarker ( @IRIRef`
	PName  *string `| @PName )`
}

// turtleParser is the Participle parser instance.
var turtleParser = participle.MustBuild[document](
	participle.Lexer(TurtleLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(4),
)

// Parse parses a Turtle document from an io.Reader into an
// insertion-ordered triple graph. Any syntax or reference error is fatal.
func Parse(filename string, r io.Reader) (*rdf.MemoryGraph, error) {
	doc, err := turtleParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return newConverter().convert(doc)
}

// ParseString parses a Turtle document from a string.
func ParseString(filename, input string) (*rdf.MemoryGraph, error) {
	return Parse(filename, strings.NewReader(input))
}
