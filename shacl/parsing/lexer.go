package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TurtleLexer defines the token types for the Turtle subset this generator
// reads. Rule order matters: prefixed names must win over the bare `a`
// keyword, and the @prefix/@base directives must win over language tags.
var TurtleLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line.
	{Name: "Comment", Pattern: `#[^\n]*`},

	// IRI references in angle brackets.
	{Name: "IRIRef", Pattern: "<[^\\x00-\\x20<>\"{}|^`\\\\]*>"},

	// Blank node labels.
	{Name: "BlankNodeLabel", Pattern: `_:[A-Za-z0-9][A-Za-z0-9_-]*`},

	// Directives (before LangTag, which would otherwise match @prefix).
	{Name: "PrefixDirective", Pattern: `@prefix\b|\bPREFIX\b`},
	{Name: "BaseDirective", Pattern: `@base\b|\bBASE\b`},

	// Language tags.
	{Name: "LangTag", Pattern: `@[a-zA-Z]+(?:-[a-zA-Z0-9]+)*`},

	// Prefixed names, including bare "ex:" and ":local" forms. Local names
	// may contain dots but never end in one, so the statement terminator
	// stays a separate token. Must come before Boolean and A.
	{Name: "PName", Pattern: `(?:[A-Za-z][A-Za-z0-9_.-]*)?:(?:[A-Za-z0-9_](?:[A-Za-z0-9_.-]*[A-Za-z0-9_-])?)?`},

	// Boolean literals and the rdf:type shorthand.
	{Name: "Boolean", Pattern: `\b(?:true|false)\b`},
	{Name: "A", Pattern: `\ba\b`},

	// Numeric literals. A trailing dot with no digit after it is left for
	// the statement terminator.
	{Name: "Number", Pattern: `[+-]?(?:\d+\.\d+(?:[eE][+-]?\d+)?|\d+[eE][+-]?\d+|\.\d+(?:[eE][+-]?\d+)?|\d+)`},

	// String literals with escapes.
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},

	// Datatype marker.
	{Name: "DatatypeMarker", Pattern: `\^\^`},

	// Punctuation.
	{Name: "Punct", Pattern: `[;,.\[\]()]`},

	// Whitespace.
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
