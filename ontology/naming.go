package ontology

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/shacl"
)

// GoName derives a Go identifier from an IRI: take the local name,
// replace every non-alphanumeric rune with an underscore, prefix a
// leading digit, and uppercase the first rune of each underscore or
// case segment.
func GoName(iri rdf.IRI) string {
	return goIdent(shacl.LocalName(iri))
}

func goIdent(local string) string {
	if local == "" {
		return "Unnamed"
	}

	var b strings.Builder
	upperNext := true
	for _, r := range local {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		default:
			upperNext = true
		}
	}
	name := b.String()
	if name == "" {
		return "Unnamed"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "X" + name
	}
	return name
}

// nameTable hands out unique identifiers, suffixing collisions with
// _2, _3 and so on in encounter order.
type nameTable struct {
	used map[string]int
}

func newNameTable() *nameTable {
	return &nameTable{used: make(map[string]int)}
}

func (t *nameTable) claim(name string) string {
	n := t.used[name]
	t.used[name] = n + 1
	if n == 0 {
		return name
	}
	return name + "_" + strconv.Itoa(n+1)
}
