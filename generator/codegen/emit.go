package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/ontoforge/shaclgen/internal/debug"
	"github.com/ontoforge/shaclgen/ontology"
)

// Config carries the option subset the emitters need.
type Config struct {
	PackageName         string
	DslName             string
	ValidationEnabled   bool
	SupportLanguageTags bool
}

// RenderInterface renders the data-model interface file for a class.
func RenderInterface(c ontology.Class, cfg Config) ([]byte, error) {
	return render(interfaceTemplate, classViewFor(c, cfg))
}

// RenderWrapper renders the lazy graph-backed wrapper file for a class.
func RenderWrapper(c ontology.Class, cfg Config) ([]byte, error) {
	return render(wrapperTemplate, classViewFor(c, cfg))
}

// RenderRules renders the constraint rules file for a class, including
// the validation routine when validation is enabled.
func RenderRules(c ontology.Class, cfg Config) ([]byte, error) {
	return render(rulesTemplate, classViewFor(c, cfg))
}

// RenderRegistry renders the package registry file.
func RenderRegistry(cfg Config) ([]byte, error) {
	return render(registryTemplate, struct{ Package string }{cfg.PackageName})
}

// RenderDsl renders the instance DSL file spanning every class.
func RenderDsl(model *ontology.Model, cfg Config) ([]byte, error) {
	view := dslView{
		Package:           cfg.PackageName,
		DslName:           cfg.DslName,
		ValidationEnabled: cfg.ValidationEnabled,
	}
	for _, c := range model.Classes {
		view.Classes = append(view.Classes, classViewFor(c, cfg))
	}
	return render(dslTemplate, view)
}

func classViewFor(c ontology.Class, cfg Config) classView {
	return newClassView(c, cfg.PackageName, cfg.ValidationEnabled, cfg.SupportLanguageTags)
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s output: %w", tmpl.Name(), err)
	}
	return src, nil
}

// WriteSource writes formatted source into the output directory,
// creating it if needed.
func WriteSource(fs afero.Fs, outputDir, name string, src []byte) error {
	if err := fs.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(outputDir, name)
	debug.Debug("Writing generated file", "path", path, "bytes", len(src))
	if err := afero.WriteFile(fs, path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FileBase returns the file name stem for a class's emitted files.
func FileBase(c ontology.Class) string {
	return strings.ToLower(c.Name)
}
