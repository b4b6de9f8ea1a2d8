// Package generator turns an ontology model into Go source: one
// interface and one wrapper per class, per-class constraint rules, a
// package registry, and the instance DSL.
package generator

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/ontoforge/shaclgen/generator/codegen"
	"github.com/ontoforge/shaclgen/internal/debug"
	"github.com/ontoforge/shaclgen/ontology"
)

// Generator emits code for one ontology model.
type Generator struct {
	model *ontology.Model
	opts  Options
	fs    afero.Fs
}

// New creates a generator writing to the OS filesystem.
func New(model *ontology.Model, opts Options) *Generator {
	return NewWithFs(model, opts, afero.NewOsFs())
}

// NewWithFs creates a generator writing through the given filesystem.
func NewWithFs(model *ontology.Model, opts Options, fs afero.Fs) *Generator {
	debug.Debug("Creating generator", "classes", len(model.Classes), "outputDir", opts.OutputDir)
	return &Generator{model: model, opts: opts.withDefaults(), fs: fs}
}

// Generate emits every artifact: per class the interface, wrapper, and
// rules files, plus the shared registry and DSL files.
func (g *Generator) Generate() error {
	if len(g.model.Classes) == 0 {
		debug.Error("No classes in ontology model")
		return fmt.Errorf("shapes document yields no classes")
	}

	cfg := codegen.Config{
		PackageName:         g.opts.PackageName,
		DslName:             g.opts.DslName,
		ValidationEnabled:   g.opts.ValidationEnabled(),
		SupportLanguageTags: g.opts.SupportLanguageTags,
	}

	for _, class := range g.model.Classes {
		debug.Debug("Generating class", "class", class.Name, "properties", len(class.Properties))
		base := codegen.FileBase(class)

		src, err := codegen.RenderInterface(class, cfg)
		if err != nil {
			return fmt.Errorf("generating interface for %s: %w", class.Name, err)
		}
		if err := codegen.WriteSource(g.fs, g.opts.OutputDir, base+".go", src); err != nil {
			return err
		}

		src, err = codegen.RenderWrapper(class, cfg)
		if err != nil {
			return fmt.Errorf("generating wrapper for %s: %w", class.Name, err)
		}
		if err := codegen.WriteSource(g.fs, g.opts.OutputDir, base+"_wrapper.go", src); err != nil {
			return err
		}

		src, err = codegen.RenderRules(class, cfg)
		if err != nil {
			return fmt.Errorf("generating rules for %s: %w", class.Name, err)
		}
		if err := codegen.WriteSource(g.fs, g.opts.OutputDir, base+"_rules.go", src); err != nil {
			return err
		}
	}

	src, err := codegen.RenderRegistry(cfg)
	if err != nil {
		return fmt.Errorf("generating registry: %w", err)
	}
	if err := codegen.WriteSource(g.fs, g.opts.OutputDir, "registry.go", src); err != nil {
		return err
	}

	src, err = codegen.RenderDsl(g.model, cfg)
	if err != nil {
		return fmt.Errorf("generating instance DSL: %w", err)
	}
	if err := codegen.WriteSource(g.fs, g.opts.OutputDir, "dsl.go", src); err != nil {
		return err
	}

	debug.Info("Generation completed", "classes", len(g.model.Classes), "outputDir", g.opts.OutputDir)
	return nil
}
