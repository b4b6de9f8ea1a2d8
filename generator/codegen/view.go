// Package codegen renders the ontology model into Go source: one
// interface and one wrapper per class, per-class validation routines,
// and the instance DSL.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ontoforge/shaclgen/ontology"
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/vocab"
)

// classView is the per-class template input, with every type decision
// already made so the templates stay declarative.
type classView struct {
	Name        string
	Recv        string // unexported wrapper type name
	RulesVar    string // unexported rule slice name
	IRI         string
	Package     string
	Description string
	Properties  []propView
	Rules       []ruleView

	ValidationEnabled   bool
	SupportLanguageTags bool
}

// dslView is the input of the instance DSL template, spanning every
// class in the model.
type dslView struct {
	Package           string
	DslName           string
	ValidationEnabled bool
	Classes           []classView
}

type propView struct {
	Name       string // accessor name
	FieldName  string
	IRI        string
	Doc        string
	ReturnType string // full accessor return type
	ElemType   string
	ZeroValue  string
	ConvFunc   string // runtime conversion for literal properties
	ParamType  string // setter parameter type
	SetterLit  string // literal constructor expression over "v"

	IsList     bool
	IsObject   bool
	ObjectName string // materializable type name, empty for raw refs
	LangParam  bool
	RuleIndex  int
}

type ruleView struct {
	Name      string
	Predicate string
	MinCount  int
	Numeric   bool

	MinLength, MaxLength   string // rendered pointer expressions, empty if unset
	Pattern                string
	In                     []string // rendered literal constructors
	MinInclusive           string
	MaxInclusive           string
	MinExclusive           string
	MaxExclusive           string
}

func newClassView(c ontology.Class, pkg string, validation, langTags bool) classView {
	view := classView{
		Name:                c.Name,
		Recv:                lowerFirst(c.Name) + "Wrapper",
		RulesVar:            lowerFirst(c.Name) + "Rules",
		IRI:                 c.IRI.Value(),
		Package:             pkg,
		Description:         c.Description,
		ValidationEnabled:   validation,
		SupportLanguageTags: langTags,
	}
	for i, p := range c.Properties {
		view.Properties = append(view.Properties, newPropView(p, i, langTags))
		view.Rules = append(view.Rules, newRuleView(p))
	}
	return view
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func newPropView(p ontology.Property, index int, langTags bool) propView {
	v := propView{
		Name:      p.Name,
		FieldName: p.FieldName,
		IRI:       p.IRI.Value(),
		Doc:       propDoc(p),
		IsList:    p.IsList,
		IsObject:  p.IsObject,
		RuleIndex: index,
	}

	if p.IsObject {
		v.ElemType = p.GoType
		v.ObjectName = p.ObjectType
		v.ZeroValue = "nil"
		if p.GoType == "rdf.IRI" {
			v.ZeroValue = `rdf.IRI("")`
		}
		v.ParamType = "rdf.Term"
	} else {
		v.ElemType = p.GoType
		v.ParamType = p.GoType
		v.ConvFunc, v.ZeroValue, v.SetterLit = literalPlumbing(p.GoType)
		v.LangParam = langTags && p.GoType == "string"
	}

	v.ReturnType = v.ElemType
	if p.IsList {
		v.ReturnType = "[]" + v.ElemType
	}
	return v
}

func literalPlumbing(goType string) (conv, zero, setter string) {
	switch goType {
	case "int":
		return "runtime.AsInt", "0", "rdf.NewIntegerLiteral(int64(v))"
	case "float64":
		return "runtime.AsFloat", "0", "rdf.NewDoubleLiteral(v)"
	case "bool":
		return "runtime.AsBool", "false", "rdf.NewBooleanLiteral(v)"
	default:
		return "runtime.AsString", `""`, "rdf.NewLiteral(v)"
	}
}

func propDoc(p ontology.Property) string {
	doc := fmt.Sprintf("%s returns the values of <%s>.", p.Name, p.IRI.Value())
	if !p.IsList {
		doc = fmt.Sprintf("%s returns the value of <%s>.", p.Name, p.IRI.Value())
	}
	if p.Description != "" {
		doc += " " + strings.TrimSuffix(p.Description, ".") + "."
	}
	doc += " " + cardinalityDoc(p)
	return doc
}

func cardinalityDoc(p ontology.Property) string {
	max := "unbounded"
	if p.Constraints.MaxCount != nil {
		max = strconv.Itoa(*p.Constraints.MaxCount)
	}
	return fmt.Sprintf("Cardinality %d..%s.", p.Constraints.MinCount, max)
}

func newRuleView(p ontology.Property) ruleView {
	c := p.Constraints
	r := ruleView{
		Name:      p.FieldName,
		Predicate: p.IRI.Value(),
		MinCount:  c.MinCount,
		Numeric:   p.GoType == "int" || p.GoType == "float64",
		Pattern:   c.Pattern,
	}
	if c.MinLength != nil {
		r.MinLength = fmt.Sprintf("runtime.Int(%d)", *c.MinLength)
	}
	if c.MaxLength != nil {
		r.MaxLength = fmt.Sprintf("runtime.Int(%d)", *c.MaxLength)
	}
	if c.MinInclusive != nil {
		r.MinInclusive = fmt.Sprintf("runtime.Float(%s)", formatFloat(*c.MinInclusive))
	}
	if c.MaxInclusive != nil {
		r.MaxInclusive = fmt.Sprintf("runtime.Float(%s)", formatFloat(*c.MaxInclusive))
	}
	if c.MinExclusive != nil {
		r.MinExclusive = fmt.Sprintf("runtime.Float(%s)", formatFloat(*c.MinExclusive))
	}
	if c.MaxExclusive != nil {
		r.MaxExclusive = fmt.Sprintf("runtime.Float(%s)", formatFloat(*c.MaxExclusive))
	}
	for _, lit := range c.In {
		r.In = append(r.In, literalExpr(lit))
	}
	return r
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func literalExpr(lit rdf.Literal) string {
	if lit.Datatype == "" || lit.Datatype == vocab.XSDString {
		return fmt.Sprintf("rdf.NewLiteral(%q)", lit.Value)
	}
	return fmt.Sprintf("rdf.NewTypedLiteral(%q, rdf.NewIRI(%q))", lit.Value, lit.Datatype.Value())
}
