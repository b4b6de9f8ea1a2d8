package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/ontoforge/shaclgen/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "Initialize a new shaclgen project",
	Long: `Initialize a new shaclgen project.

Creates a starter shapes document, an optional JSON-LD context, a
.shaclgen.yaml config file, and a .gitignore.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initYes bool

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept all defaults without prompting")

	rootCmd.AddCommand(initCmd)
}

type initAnswers struct {
	Namespace   string
	PackageName string
	WithContext bool
}

func runInit(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	ui.PrintHeader("shaclgen", "Initialize Project")

	answers := initAnswers{
		Namespace:   "http://example.org/ontology#",
		PackageName: "ontology",
		WithContext: true,
	}

	if !initYes {
		questions := []*survey.Question{
			{
				Name: "namespace",
				Prompt: &survey.Input{
					Message: "Ontology namespace IRI:",
					Default: answers.Namespace,
				},
				Validate: survey.Required,
			},
			{
				Name: "packageName",
				Prompt: &survey.Input{
					Message: "Go package name for generated code:",
					Default: answers.PackageName,
				},
				Validate: survey.Required,
			},
			{
				Name: "withContext",
				Prompt: &survey.Confirm{
					Message: "Create a JSON-LD context file?",
					Default: true,
				},
			},
		}
		if err := survey.Ask(questions, &answers); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	if projectDir != "." {
		if err := os.MkdirAll(projectDir, 0755); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
		ui.PrintInfo("Created project directory: %s", projectDir)
	}

	if err := writeIfAbsent(filepath.Join(projectDir, "shapes.ttl"), starterShapes(answers.Namespace)); err != nil {
		return err
	}
	if answers.WithContext {
		if err := writeIfAbsent(filepath.Join(projectDir, "context.jsonld"), starterContext(answers.Namespace)); err != nil {
			return err
		}
	}
	if err := writeIfAbsent(filepath.Join(projectDir, ".shaclgen.yaml"), starterConfig(answers)); err != nil {
		return err
	}
	if err := writeIfAbsent(filepath.Join(projectDir, ".gitignore"), starterGitignore); err != nil {
		return err
	}

	fmt.Println()
	ui.PrintSuccess("shaclgen project initialized")
	fmt.Println()

	next := `## Next steps

1. Edit **shapes.ttl** to describe your classes and properties
2. Run ` + "`shaclgen validate`" + ` to check the shapes document
3. Run ` + "`shaclgen generate`" + ` to emit the Go bindings
4. Import the generated package and start building instances
`
	if err := ui.PrintMarkdown(next); err != nil {
		// Plain fallback for terminals glamour cannot style.
		fmt.Println(next)
	}

	return nil
}

func writeIfAbsent(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		ui.PrintWarning("File already exists, skipping: %s", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	ui.PrintSuccess("Created %s", path)
	return nil
}

func starterShapes(namespace string) string {
	return fmt.Sprintf(`@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <%s> .

ex:PersonShape
    a sh:NodeShape ;
    sh:targetClass ex:Person ;
    sh:property [
        sh:path ex:name ;
        sh:name "name" ;
        sh:description "Full name of the person." ;
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
    ] ;
    sh:property [
        sh:path ex:knows ;
        sh:class ex:Person ;
    ] .
`, namespace)
}

func starterContext(namespace string) string {
	return fmt.Sprintf(`{
  "@context": {
    "ex": "%s",
    "name": "ex:name",
    "age": "ex:age",
    "knows": {
      "@id": "ex:knows",
      "@type": "@id",
      "@container": "@set"
    }
  }
}
`, namespace)
}

func starterConfig(a initAnswers) string {
	contextLine := ""
	if a.WithContext {
		contextLine = "context_path: context.jsonld\n"
	}
	return fmt.Sprintf(`shapes_path: shapes.ttl
%soutput_path: ./%s
package: %s
dsl_name: Instances
validation: true
language_tags: false
`, contextLine, a.PackageName, a.PackageName)
}

const starterGitignore = `# Environment variables
.env
.env.local

# IDE
.idea/
.vscode/
*.swp
*.swo
*~

# OS
.DS_Store
Thumbs.db
`
