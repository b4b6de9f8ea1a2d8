package codegen

import (
	"strings"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

const fileHeader = "// Code generated by shaclgen. DO NOT EDIT.\n"

var interfaceTemplate = template.Must(template.New("interface").Funcs(templateFuncs).Parse(fileHeader + `
package {{.Package}}

import (
	"github.com/ontoforge/shaclgen/rdf"
)

// {{.Name}} is the data-model interface for class <{{.IRI}}>.{{with .Description}}
// {{.}}{{end}}
type {{.Name}} interface {
{{- range .Properties}}
	// {{.Doc}}
	{{.Name}}() {{.ReturnType}}
{{- end}}
}

// {{.Name}}Predicates maps {{.Name}} accessor names to their predicate IRIs.
var {{.Name}}Predicates = map[string]rdf.IRI{
{{- range .Properties}}
	{{printf "%q" .Name}}: rdf.NewIRI({{printf "%q" .IRI}}),
{{- end}}
}

// {{.Name}}KnownPredicates lists every predicate bound to {{.Name}} accessors.
var {{.Name}}KnownPredicates = []rdf.IRI{
{{- range .Properties}}
	rdf.NewIRI({{printf "%q" .IRI}}),
{{- end}}
}
`))

var wrapperTemplate = template.Must(template.New("wrapper").Funcs(templateFuncs).Parse(fileHeader + `
package {{.Package}}

import (
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/runtime"
)

// {{.Recv}} is the lazy graph-backed {{.Name}}. Every accessor is a
// first-read snapshot: computed from the graph once, then cached for
// the instance lifetime.
type {{.Recv}} struct {
	focus rdf.Term
	graph rdf.Graph
	cache runtime.PropertyCache
}

// New{{.Name}} wraps a graph focus node as {{.Name}}.
func New{{.Name}}(focus rdf.Term, graph rdf.Graph) {{.Name}} {
	return &{{.Recv}}{focus: focus, graph: graph}
}
{{$c := .}}
{{- range .Properties}}
{{- if .IsObject}}
{{- if .ObjectName}}
{{- if .IsList}}
// {{.Doc}}
func (w *{{$c.Recv}}) {{.Name}}() {{.ReturnType}} {
	v := w.cache.Load({{$c.Name}}Predicates[{{printf "%q" .Name}}], func() any {
		var out []{{.ElemType}}
		for _, ref := range runtime.Refs(w.graph, w.focus, {{$c.Name}}Predicates[{{printf "%q" .Name}}]) {
			inst, err := Materializer().Materialize(ref, w.graph, {{printf "%q" .ObjectName}})
			if err != nil {
				continue
			}
			if typed, ok := inst.({{.ElemType}}); ok {
				out = append(out, typed)
			}
		}
		return out
	})
	return v.({{.ReturnType}})
}
{{- else}}
// {{.Doc}}
func (w *{{$c.Recv}}) {{.Name}}() {{.ReturnType}} {
	v := w.cache.Load({{$c.Name}}Predicates[{{printf "%q" .Name}}], func() any {
		ref, ok := runtime.ScalarRef(w.graph, w.focus, {{$c.Name}}Predicates[{{printf "%q" .Name}}])
		if !ok {
			return nil
		}
		inst, err := Materializer().Materialize(ref, w.graph, {{printf "%q" .ObjectName}})
		if err != nil {
			return nil
		}
		return inst
	})
	if v == nil {
		return nil
	}
	if typed, ok := v.({{.ReturnType}}); ok {
		return typed
	}
	return nil
}
{{- end}}
{{- else}}
{{- if .IsList}}
// {{.Doc}}
func (w *{{$c.Recv}}) {{.Name}}() {{.ReturnType}} {
	v := w.cache.Load({{$c.Name}}Predicates[{{printf "%q" .Name}}], func() any {
		var out []rdf.IRI
		for _, ref := range runtime.Refs(w.graph, w.focus, {{$c.Name}}Predicates[{{printf "%q" .Name}}]) {
			if iri, ok := ref.(rdf.IRI); ok {
				out = append(out, iri)
			}
		}
		return out
	})
	return v.({{.ReturnType}})
}
{{- else}}
// {{.Doc}}
func (w *{{$c.Recv}}) {{.Name}}() {{.ReturnType}} {
	v := w.cache.Load({{$c.Name}}Predicates[{{printf "%q" .Name}}], func() any {
		ref, ok := runtime.ScalarRef(w.graph, w.focus, {{$c.Name}}Predicates[{{printf "%q" .Name}}])
		if !ok {
			return rdf.IRI("")
		}
		if iri, ok := ref.(rdf.IRI); ok {
			return iri
		}
		return rdf.IRI("")
	})
	return v.(rdf.IRI)
}
{{- end}}
{{- end}}
{{- else}}
{{- if .IsList}}
// {{.Doc}}
func (w *{{$c.Recv}}) {{.Name}}() {{.ReturnType}} {
	v := w.cache.Load({{$c.Name}}Predicates[{{printf "%q" .Name}}], func() any {
		var out []{{.ElemType}}
		for _, lit := range runtime.Literals(w.graph, w.focus, {{$c.Name}}Predicates[{{printf "%q" .Name}}]) {
			out = append(out, {{.ConvFunc}}(lit))
		}
		return out
	})
	return v.({{.ReturnType}})
}
{{- else}}
// {{.Doc}}
func (w *{{$c.Recv}}) {{.Name}}() {{.ReturnType}} {
	v := w.cache.Load({{$c.Name}}Predicates[{{printf "%q" .Name}}], func() any {
		lit, ok := runtime.ScalarLiteral(w.graph, w.focus, {{$c.Name}}Predicates[{{printf "%q" .Name}}])
		if !ok {
			return {{.ZeroValue}}
		}
		return {{.ConvFunc}}(lit)
	})
	return v.({{.ReturnType}})
}
{{- end}}
{{- end}}
{{- end}}

// ExtraProperties returns every triple on the focus node whose
// predicate is not bound to an accessor.
func (w *{{.Recv}}) ExtraProperties() []rdf.Triple {
	return runtime.Extras(w.graph, w.focus, {{.Name}}KnownPredicates)
}
{{if .ValidationEnabled}}
// Validate checks the focus node against the {{.Name}} shape.
func (w *{{.Recv}}) Validate() error {
	return Validate{{.Name}}(w.focus, w.graph)
}
{{end}}
func init() {
	Registry().Register({{printf "%q" .Name}}, func(focus rdf.Term, graph rdf.Graph) any {
		return New{{.Name}}(focus, graph)
	})
}
`))

var rulesTemplate = template.Must(template.New("rules").Funcs(templateFuncs).Parse(fileHeader + `
package {{.Package}}

import (
{{- if or .Rules .ValidationEnabled}}
	"github.com/ontoforge/shaclgen/rdf"
{{- end}}
	"github.com/ontoforge/shaclgen/runtime"
)

// {{.RulesVar}} drives both the builder setter checks and the deferred
// shape validation for {{.Name}}.
var {{.RulesVar}} = []runtime.PropertyRule{
{{- range .Rules}}
	{
		Name:      {{printf "%q" .Name}},
		Predicate: rdf.NewIRI({{printf "%q" .Predicate}}),
{{- if .MinCount}}
		MinCount:  {{.MinCount}},
{{- end}}
{{- if .Numeric}}
		Numeric:   true,
{{- end}}
{{- with .MinLength}}
		MinLength: {{.}},
{{- end}}
{{- with .MaxLength}}
		MaxLength: {{.}},
{{- end}}
{{- with .Pattern}}
		Pattern:   {{printf "%q" .}},
{{- end}}
{{- if .In}}
		In:        []rdf.Literal{ {{join .In ", "}} },
{{- end}}
{{- with .MinInclusive}}
		MinInclusive: {{.}},
{{- end}}
{{- with .MaxInclusive}}
		MaxInclusive: {{.}},
{{- end}}
{{- with .MinExclusive}}
		MinExclusive: {{.}},
{{- end}}
{{- with .MaxExclusive}}
		MaxExclusive: {{.}},
{{- end}}
	},
{{- end}}
}
{{if .ValidationEnabled}}
// Validate{{.Name}} evaluates every {{.Name}} constraint against the
// focus node and aggregates all violations into one error.
func Validate{{.Name}}(focus rdf.Term, graph rdf.Graph) error {
	return runtime.CheckShape(focus, graph, {{.RulesVar}})
}
{{end}}`))

var registryTemplate = template.Must(template.New("registry").Parse(fileHeader + `
package {{.Package}}

import (
	"github.com/ontoforge/shaclgen/runtime"
)

var registry = runtime.NewRegistry()

var materializer = runtime.NewMaterializer(registry)

// Registry returns the package registry wrappers register their
// factories into at load time.
func Registry() *runtime.Registry {
	return registry
}

// Materializer returns the materializer over the package registry.
func Materializer() *runtime.Materializer {
	return materializer
}
`))

var dslTemplate = template.Must(template.New("dsl").Funcs(templateFuncs).Parse(fileHeader + `
package {{.Package}}

import (
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/runtime"
)

// Build{{.DslName}} opens a graph-building scope, hands it to fn, and
// returns the built graph together with the recorded focus nodes.
func Build{{.DslName}}(fn func(*{{.DslName}})) (rdf.Graph, []rdf.Term) {
	dsl := &{{.DslName}}{scope: runtime.NewScope()}
	fn(dsl)
	return dsl.scope.Graph, dsl.scope.Instances
}

// {{.DslName}} is the instance-building scope. It owns the graph under
// construction and records every focus node built into it.
type {{.DslName}} struct {
	scope *runtime.Scope
}
{{$top := .}}
{{- range .Classes}}
{{$c := .}}
// {{.Name}} starts building one {{.Name}} instance for the given focus IRI.
func (d *{{$top.DslName}}) {{.Name}}(iri string) *{{.Name}}Builder {
	return &{{.Name}}Builder{
		scope: d.scope,
		core:  runtime.NewInstanceBuilder(rdf.NewIRI(iri), rdf.NewIRI({{printf "%q" .IRI}}), {{.RulesVar}}),
	}
}

// {{.Name}}Builder builds one {{.Name}} instance. Setters check each
// value immediately and reject it on the first violated constraint.
type {{.Name}}Builder struct {
	scope *runtime.Scope
	core  *runtime.InstanceBuilder
}
{{range .Properties}}
{{- if .IsObject}}
{{- if .IsList}}
// Add{{.Name}} records one <{{.IRI}}> object reference.
func (b *{{$c.Name}}Builder) Add{{.Name}}(ref rdf.Term) {
	b.core.AddRef({{$c.Name}}Predicates[{{printf "%q" .Name}}], ref)
}
{{- else}}
// Set{{.Name}} sets the <{{.IRI}}> object reference.
func (b *{{$c.Name}}Builder) Set{{.Name}}(ref rdf.Term) {
	b.core.SetRef({{$c.Name}}Predicates[{{printf "%q" .Name}}], ref)
}
{{- end}}
{{- else if .LangParam}}
{{- if .IsList}}
// Add{{.Name}} records one <{{.IRI}}> value. An optional language tag
// emits a language-tagged literal.
func (b *{{$c.Name}}Builder) Add{{.Name}}(v string, lang ...string) error {
	lit := rdf.NewLiteral(v)
	if len(lang) > 0 {
		lit = rdf.NewLangLiteral(v, lang[0])
	}
	return b.core.Add({{$c.RulesVar}}[{{.RuleIndex}}], lit)
}
{{- else}}
// Set{{.Name}} sets the <{{.IRI}}> value. An optional language tag
// emits a language-tagged literal.
func (b *{{$c.Name}}Builder) Set{{.Name}}(v string, lang ...string) error {
	lit := rdf.NewLiteral(v)
	if len(lang) > 0 {
		lit = rdf.NewLangLiteral(v, lang[0])
	}
	return b.core.Set({{$c.RulesVar}}[{{.RuleIndex}}], lit)
}
{{- end}}
{{- else}}
{{- if .IsList}}
// Add{{.Name}} records one <{{.IRI}}> value.
func (b *{{$c.Name}}Builder) Add{{.Name}}(v {{.ParamType}}) error {
	return b.core.Add({{$c.RulesVar}}[{{.RuleIndex}}], {{.SetterLit}})
}
{{- else}}
// Set{{.Name}} sets the <{{.IRI}}> value.
func (b *{{$c.Name}}Builder) Set{{.Name}}(v {{.ParamType}}) error {
	return b.core.Set({{$c.RulesVar}}[{{.RuleIndex}}], {{.SetterLit}})
}
{{- end}}
{{- end}}
{{- end}}
{{- if $top.ValidationEnabled}}
// Validate runs the deferred shape check over the accumulated triples,
// catching cross-call issues such as a required property never set.
func (b *{{.Name}}Builder) Validate() error {
	return b.core.Validate()
}
{{- end}}

// Build writes the accumulated triples into the scope graph and
// records the focus node. Build always succeeds; conformance is
// checked only by Validate.
func (b *{{.Name}}Builder) Build() rdf.Term {
	focus := b.core.Build(b.scope.Graph)
	b.scope.Record(focus)
	return focus
}
{{- end}}
`))
