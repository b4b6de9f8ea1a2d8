package rdf

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteTurtle serializes the graph to Turtle. Prefixes maps prefix names
// to namespaces; IRIs under a namespace are compacted to prefixed names,
// everything else is written in full. Triples are grouped by subject in
// first-seen order so the output is stable for a given graph.
func WriteTurtle(w io.Writer, g Graph, prefixes map[string]string) error {
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "@prefix %s: <%s> .\n", name, prefixes[name]); err != nil {
			return err
		}
	}
	if len(names) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	all := g.Triples(nil, nil, nil)
	var order []Term
	bySubject := make(map[string][]Triple)
	for _, t := range all {
		key := t.Subject.String()
		if _, seen := bySubject[key]; !seen {
			order = append(order, t.Subject)
		}
		bySubject[key] = append(bySubject[key], t)
	}

	for _, subject := range order {
		group := bySubject[subject.String()]
		if _, err := fmt.Fprintf(w, "%s\n", turtleTerm(subject, prefixes)); err != nil {
			return err
		}
		for i, t := range group {
			sep := " ;"
			if i == len(group)-1 {
				sep = " ."
			}
			pred := turtleTerm(t.Predicate, prefixes)
			if iri, ok := t.Predicate.(IRI); ok && iri.Value() == rdfType {
				pred = "a"
			}
			if _, err := fmt.Fprintf(w, "    %s %s%s\n",
				pred, turtleTerm(t.Object, prefixes), sep); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// turtleTerm renders a term in Turtle syntax, compacting IRIs against the
// prefix table where possible. Prefixes are tried in sorted name order so
// the chosen compaction is stable when namespaces overlap.
func turtleTerm(t Term, prefixes map[string]string) string {
	iri, ok := t.(IRI)
	if !ok {
		return t.String()
	}
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		local, found := strings.CutPrefix(iri.Value(), prefixes[name])
		if found && local != "" && !strings.ContainsAny(local, "/#") {
			return name + ":" + local
		}
	}
	return iri.String()
}

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
