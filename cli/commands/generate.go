package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ontoforge/shaclgen/cli/internal/config"
	"github.com/ontoforge/shaclgen/cli/internal/ui"
	"github.com/ontoforge/shaclgen/cli/internal/watch"
	"github.com/ontoforge/shaclgen/generator"
	"github.com/ontoforge/shaclgen/generator/codegen"
	"github.com/ontoforge/shaclgen/jsonld"
	"github.com/ontoforge/shaclgen/ontology"
	"github.com/ontoforge/shaclgen/shacl"
)

var generateCmd = &cobra.Command{
	Use:   "generate [shapes-path]",
	Short: "Generate Go bindings from a SHACL shapes document",
	Long: `Generate Go source code from a SHACL shapes document.

This command will:
- Parse the Turtle shapes document (and JSON-LD context, if given)
- Build the class model from the node shapes
- Emit per-class interfaces, wrappers, constraint rules, and the
  instance DSL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	generateShapesPath  string
	generateContextPath string
	generateOutputDir   string
	generatePackage     string
	generateDslName     string
	generateValidation  bool
	generateLangTags    bool
	generateWatch       bool
	generateWatchOnly   bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateShapesPath, "shapes", "s", "", "Path to the SHACL shapes document")
	generateCmd.Flags().StringVarP(&generateContextPath, "context", "c", "", "Path to a JSON-LD context file")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output directory for generated code")
	generateCmd.Flags().StringVarP(&generatePackage, "package", "p", "", "Package name for generated code")
	generateCmd.Flags().StringVar(&generateDslName, "dsl-name", "", "Name of the instance DSL entry point")
	generateCmd.Flags().BoolVar(&generateValidation, "validation", true, "Emit Validate functions and methods")
	generateCmd.Flags().BoolVar(&generateLangTags, "lang-tags", false, "Accept language tags on string setters")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch the shapes document for changes")
	generateCmd.Flags().BoolVar(&generateWatchOnly, "watch-only", false, "Only watch, don't generate initially")

	rootCmd.AddCommand(generateCmd)
}

// generateSettings is the merged flag/config/argument view one
// generation run works from.
type generateSettings struct {
	shapesPath  string
	contextPath string
	outputDir   string
	options     generator.Options
}

func resolveGenerateSettings(cmd *cobra.Command, args []string) generateSettings {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = &config.Config{
			ShapesPath:        "shapes.ttl",
			OutputPath:        "./ontology",
			PackageName:       "ontology",
			DslName:           "Instances",
			ValidationEnabled: true,
		}
	}

	s := generateSettings{
		shapesPath:  cfg.ShapesPath,
		contextPath: cfg.ContextPath,
		outputDir:   cfg.OutputPath,
		options: generator.Options{
			PackageName:         cfg.PackageName,
			DslName:             cfg.DslName,
			DisableValidation:   !cfg.ValidationEnabled,
			SupportLanguageTags: cfg.LanguageTags,
		},
	}

	if generateShapesPath != "" {
		s.shapesPath = generateShapesPath
	}
	if len(args) > 0 {
		s.shapesPath = args[0]
	}
	if s.shapesPath == "" {
		s.shapesPath = "shapes.ttl"
	}
	if generateContextPath != "" {
		s.contextPath = generateContextPath
	}
	if generateOutputDir != "" {
		s.outputDir = generateOutputDir
	}
	if generatePackage != "" {
		s.options.PackageName = generatePackage
	}
	if generateDslName != "" {
		s.options.DslName = generateDslName
	}
	if cmd != nil {
		if cmd.Flags().Changed("validation") {
			s.options.DisableValidation = !generateValidation
		}
		if cmd.Flags().Changed("lang-tags") {
			s.options.SupportLanguageTags = generateLangTags
		}
	}
	s.options.OutputDir = s.outputDir
	return s
}

// generateOnce runs the whole pipeline for one shapes document.
func generateOnce(s generateSettings) (*ontology.Model, error) {
	f, err := os.Open(s.shapesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read shapes document: %w", err)
	}
	defer f.Close()

	shapes, diags, err := shacl.ParseShapes(s.shapesPath, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shapes document: %w", err)
	}
	if diags.HasErrors() {
		ui.PrintError("Shapes parsing failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(s.shapesPath))
		return nil, fmt.Errorf("cannot generate from invalid shapes document")
	}
	if len(diags.Warnings()) > 0 {
		fmt.Fprint(os.Stderr, diags.ToPrettyString(s.shapesPath))
	}

	ctx := jsonld.Context{}
	if s.contextPath != "" {
		cf, err := os.Open(s.contextPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read context file: %w", err)
		}
		ctx, err = jsonld.Parse(cf)
		cf.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse context file: %w", err)
		}
	}

	model := ontology.Build(shapes, ctx)

	gen := generator.New(model, s.options)
	if err := gen.Generate(); err != nil {
		return nil, fmt.Errorf("code generation failed: %w", err)
	}
	return model, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s := resolveGenerateSettings(cmd, args)

	if generateWatch || generateWatchOnly {
		return runGenerateWatch(s, !generateWatchOnly)
	}

	ui.PrintHeader("shaclgen", "Generate Bindings")

	spinner, _ := ui.PrintSpinner("Generating ontology bindings...")
	defer spinner.Stop()

	if _, err := os.Stat(s.shapesPath); os.IsNotExist(err) {
		spinner.Stop()
		return fmt.Errorf("shapes document not found: %s", s.shapesPath)
	}

	spinner.UpdateText("Parsing shapes...")
	spinner.Stop()

	info := pterm.Info.WithPrefix(pterm.Prefix{
		Text:  "INFO",
		Style: pterm.NewStyle(pterm.FgBlue),
	})
	info.Println(fmt.Sprintf("Shapes: %s", s.shapesPath))
	if s.contextPath != "" {
		info.Println(fmt.Sprintf("Context: %s", s.contextPath))
	}
	info.Println(fmt.Sprintf("Output: %s", s.outputDir))
	info.Println(fmt.Sprintf("Package: %s", s.options.PackageName))
	fmt.Println()

	spinner, _ = ui.PrintSpinner("Generating code...")
	model, err := generateOnce(s)
	spinner.Stop()
	if err != nil {
		return err
	}

	absPath, _ := filepath.Abs(s.outputDir)
	ui.PrintSuccess("Generated ontology bindings at %s", absPath)
	fmt.Println()

	ui.PrintSection("Generated Files")
	var files []string
	for _, class := range model.Classes {
		base := codegen.FileBase(class)
		files = append(files,
			fmt.Sprintf("%s.go  - %s interface", base, class.Name),
			fmt.Sprintf("%s_wrapper.go  - lazy graph wrapper", base),
			fmt.Sprintf("%s_rules.go  - constraint rules", base),
		)
	}
	files = append(files,
		"registry.go  - wrapper factory registry",
		"dsl.go  - instance builder DSL",
	)
	ui.PrintList(files)

	fmt.Println()
	ui.PrintSection("Next Steps")
	nextSteps := []string{
		"Import the generated package in your code",
		fmt.Sprintf("Build instances: graph, _ := %s.Build%s(func(b *%s.%s) { ... })",
			s.options.PackageName, s.options.DslName, s.options.PackageName, s.options.DslName),
		"Wrap existing graph nodes with the generated New<Class> factories",
	}
	ui.PrintList(nextSteps)

	return nil
}

func runGenerateWatch(s generateSettings, generateInitially bool) error {
	ui.PrintHeader("shaclgen", "Watch Mode")

	if _, err := os.Stat(s.shapesPath); os.IsNotExist(err) {
		return fmt.Errorf("shapes document not found: %s", s.shapesPath)
	}

	generateCallback := func() error {
		ui.PrintInfo("Shapes changed, regenerating...")
		if _, err := generateOnce(s); err != nil {
			return err
		}
		absPath, _ := filepath.Abs(s.outputDir)
		ui.PrintSuccess("Generated ontology bindings at %s", absPath)
		return nil
	}

	if generateInitially {
		if err := generateCallback(); err != nil {
			return err
		}
	}

	watcher, err := watch.NewWatcher([]string{s.shapesPath, s.contextPath}, generateCallback)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ui.PrintSuccess("Watching %s for changes... (Press Ctrl+C to stop)", s.shapesPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("\nStopping watch mode...")
	return nil
}
