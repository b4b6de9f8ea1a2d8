package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/ontoforge/shaclgen/jsonld"
	"github.com/ontoforge/shaclgen/ontology"
	"github.com/ontoforge/shaclgen/shacl"
)

const emitShapes = `
@prefix sh:  <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex:  <http://example.org/ns#> .

ex:PersonShape a sh:NodeShape ;
    sh:targetClass ex:Person ;
    sh:description "A natural person." ;
    sh:property [
        sh:path ex:name ;
        sh:datatype xsd:string ;
        sh:minCount 1 ;
        sh:maxCount 1 ;
        sh:minLength 1 ;
    ] ;
    sh:property [
        sh:path ex:age ;
        sh:datatype xsd:integer ;
        sh:maxCount 1 ;
        sh:minInclusive 0 ;
        sh:maxInclusive 120 ;
    ] ;
    sh:property [
        sh:path ex:email ;
        sh:datatype xsd:string ;
        sh:maxCount 1 ;
        sh:pattern "[^@]+@[^@]+\\.[a-z]+" ;
    ] ;
    sh:property [
        sh:path ex:knows ;
        sh:class ex:Person ;
    ] .
`

func emitModel(t *testing.T) *ontology.Model {
	t.Helper()
	shapes, diags, err := shacl.ParseShapesString("shapes.ttl", emitShapes)
	if err != nil {
		t.Fatalf("parsing shapes: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("diagnostics: %v", diags.Errors())
	}
	return ontology.Build(shapes, jsonld.Context{})
}

func emitConfig() Config {
	return Config{
		PackageName:       "person",
		DslName:           "People",
		ValidationEnabled: true,
	}
}

func parseSource(t *testing.T, src []byte) *ast.File {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("emitted source does not parse: %v\n%s", err, src)
	}
	return file
}

func interfaceType(t *testing.T, file *ast.File, name string) *ast.InterfaceType {
	t.Helper()
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != name {
				continue
			}
			if iface, ok := ts.Type.(*ast.InterfaceType); ok {
				return iface
			}
		}
	}
	t.Fatalf("interface %s not found", name)
	return nil
}

func TestRenderInterface(t *testing.T) {
	model := emitModel(t)
	src, err := RenderInterface(model.Classes[0], emitConfig())
	if err != nil {
		t.Fatalf("RenderInterface: %v", err)
	}
	file := parseSource(t, src)

	iface := interfaceType(t, file, "Person")
	if got := len(iface.Methods.List); got != 4 {
		t.Fatalf("interface has %d accessors, want one per shape property (4)", got)
	}
	if !strings.Contains(string(src), "// A natural person.") {
		t.Error("interface doc comment missing the shape description")
	}

	returnTypes := map[string]string{}
	for _, m := range iface.Methods.List {
		ft := m.Type.(*ast.FuncType)
		if len(ft.Results.List) != 1 {
			t.Fatalf("accessor %s has %d results", m.Names[0].Name, len(ft.Results.List))
		}
		returnTypes[m.Names[0].Name] = typeString(ft.Results.List[0].Type)
	}
	want := map[string]string{
		"Name":  "string",
		"Age":   "int",
		"Email": "string",
		"Knows": "[]Person",
	}
	for name, typ := range want {
		if returnTypes[name] != typ {
			t.Errorf("accessor %s returns %q, want %q", name, returnTypes[name], typ)
		}
	}

	text := string(src)
	if !strings.Contains(text, `"Name": rdf.NewIRI("http://example.org/ns#name")`) {
		t.Error("predicate map entry for Name missing")
	}
	if !strings.Contains(text, "PersonKnownPredicates") {
		t.Error("known-predicate slice missing")
	}
}

func typeString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.ArrayType:
		return "[]" + typeString(e.Elt)
	case *ast.SelectorExpr:
		return typeString(e.X) + "." + e.Sel.Name
	}
	return ""
}

func TestRenderWrapper(t *testing.T) {
	model := emitModel(t)
	src, err := RenderWrapper(model.Classes[0], emitConfig())
	if err != nil {
		t.Fatalf("RenderWrapper: %v", err)
	}
	parseSource(t, src)

	text := string(src)
	for _, want := range []string{
		"type personWrapper struct",
		"func NewPerson(focus rdf.Term, graph rdf.Graph) Person",
		"w.cache.Load(",
		`Materializer().Materialize(ref, w.graph, "Person")`,
		"func (w *personWrapper) ExtraProperties() []rdf.Triple",
		"func (w *personWrapper) Validate() error",
		`Registry().Register("Person"`,
		"func init()",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("wrapper missing %q", want)
		}
	}
}

func TestRenderWrapperValidationDisabled(t *testing.T) {
	model := emitModel(t)
	cfg := emitConfig()
	cfg.ValidationEnabled = false
	src, err := RenderWrapper(model.Classes[0], cfg)
	if err != nil {
		t.Fatalf("RenderWrapper: %v", err)
	}
	if strings.Contains(string(src), "func (w *personWrapper) Validate()") {
		t.Error("wrapper Validate emitted with validation disabled")
	}
}

func TestRenderRules(t *testing.T) {
	model := emitModel(t)
	src, err := RenderRules(model.Classes[0], emitConfig())
	if err != nil {
		t.Fatalf("RenderRules: %v", err)
	}
	parseSource(t, src)

	text := string(src)
	for _, want := range []string{
		"var personRules = []runtime.PropertyRule{",
		"MinCount:",
		"MinLength: runtime.Int(1)",
		"MinInclusive: runtime.Float(0)",
		"MaxInclusive: runtime.Float(120)",
		`Pattern:`,
		"func ValidatePerson(focus rdf.Term, graph rdf.Graph) error",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rules file missing %q", want)
		}
	}
}

func TestRenderDsl(t *testing.T) {
	model := emitModel(t)
	src, err := RenderDsl(model, emitConfig())
	if err != nil {
		t.Fatalf("RenderDsl: %v", err)
	}
	parseSource(t, src)

	text := string(src)
	for _, want := range []string{
		"func BuildPeople(fn func(*People)) (rdf.Graph, []rdf.Term)",
		"func (d *People) Person(iri string) *PersonBuilder",
		"func (b *PersonBuilder) SetName(v string) error",
		"func (b *PersonBuilder) SetAge(v int) error",
		"func (b *PersonBuilder) AddKnows(ref rdf.Term)",
		"func (b *PersonBuilder) Validate() error",
		"func (b *PersonBuilder) Build() rdf.Term",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("dsl file missing %q", want)
		}
	}
}

func TestRenderDslLanguageTags(t *testing.T) {
	model := emitModel(t)
	cfg := emitConfig()
	cfg.SupportLanguageTags = true
	src, err := RenderDsl(model, cfg)
	if err != nil {
		t.Fatalf("RenderDsl: %v", err)
	}
	text := string(src)
	if !strings.Contains(text, "func (b *PersonBuilder) SetName(v string, lang ...string) error") {
		t.Error("language-tag setter variant missing")
	}
	if strings.Contains(text, "SetAge(v int, lang") {
		t.Error("language-tag parameter leaked onto a non-string property")
	}
}

func TestRenderRegistry(t *testing.T) {
	src, err := RenderRegistry(emitConfig())
	if err != nil {
		t.Fatalf("RenderRegistry: %v", err)
	}
	parseSource(t, src)
	text := string(src)
	if !strings.Contains(text, "var registry = runtime.NewRegistry()") {
		t.Error("registry declaration missing")
	}
	if !strings.Contains(text, "runtime.NewMaterializer(registry)") {
		t.Error("materializer over the package registry missing")
	}
}
