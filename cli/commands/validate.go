package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ontoforge/shaclgen/cli/internal/ui"
	"github.com/ontoforge/shaclgen/jsonld"
	"github.com/ontoforge/shaclgen/ontology"
	"github.com/ontoforge/shaclgen/rdf"
	"github.com/ontoforge/shaclgen/shacl"
)

var validateCmd = &cobra.Command{
	Use:   "validate [shapes-path]",
	Short: "Validate a SHACL shapes document",
	Long: `Validate a SHACL shapes document for syntax and shape errors.

This command will:
- Parse the Turtle shapes document
- Check each node shape for a target class and property paths
- Display validation results and the resulting class model`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validateShapesPath  string
	validateContextPath string
	validateDump        bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateShapesPath, "shapes", "s", "", "Path to the SHACL shapes document")
	validateCmd.Flags().StringVarP(&validateContextPath, "context", "c", "", "Path to a JSON-LD context file")
	validateCmd.Flags().BoolVar(&validateDump, "dump", false, "Re-serialize the parsed shapes graph as Turtle")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	shapesPath := validateShapesPath
	if len(args) > 0 {
		shapesPath = args[0]
	}
	if shapesPath == "" {
		shapesPath = "shapes.ttl"
	}

	ui.PrintHeader("shaclgen", "Validate Shapes")

	if _, err := os.Stat(shapesPath); os.IsNotExist(err) {
		return fmt.Errorf("shapes document not found: %s", shapesPath)
	}

	f, err := os.Open(shapesPath)
	if err != nil {
		return fmt.Errorf("failed to read shapes document: %w", err)
	}
	defer f.Close()

	shapes, diags, err := shacl.ParseShapes(shapesPath, f)
	if err != nil {
		return fmt.Errorf("failed to parse shapes document: %w", err)
	}

	if diags.HasErrors() {
		ui.PrintError("Shapes parsing failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(shapesPath))
		return fmt.Errorf("shapes document has errors")
	}

	if len(diags.Warnings()) > 0 {
		ui.PrintWarning("Shapes parsed with warnings:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(shapesPath))
	}

	ctx := jsonld.Context{}
	if validateContextPath != "" {
		cf, err := os.Open(validateContextPath)
		if err != nil {
			return fmt.Errorf("failed to read context file: %w", err)
		}
		ctx, err = jsonld.Parse(cf)
		cf.Close()
		if err != nil {
			return fmt.Errorf("failed to parse context file: %w", err)
		}
	}

	model := ontology.Build(shapes, ctx)
	if len(model.Classes) == 0 {
		ui.PrintError("Shapes validation failed:")
		fmt.Fprintf(os.Stderr, "\nNo node shape with a target class was found.\n")
		return fmt.Errorf("shapes document yields no classes")
	}

	absPath, _ := filepath.Abs(shapesPath)
	ui.PrintSuccess("Shapes document is valid: %s", absPath)

	fmt.Println()
	ui.PrintSection("Shapes Summary")
	propCount := 0
	for _, class := range model.Classes {
		propCount += len(class.Properties)
	}
	summary := []string{
		fmt.Sprintf("%d shape(s)", len(shapes)),
		fmt.Sprintf("%d class(es)", len(model.Classes)),
		fmt.Sprintf("%d property definition(s)", propCount),
	}
	ui.PrintList(summary)

	fmt.Println()
	ui.PrintSection("Classes")
	rows := make([][]string, 0, len(model.Classes))
	for _, class := range model.Classes {
		constrained := 0
		for _, p := range class.Properties {
			if p.IsRequired || p.Constraints.HasValueConstraints() {
				constrained++
			}
		}
		rows = append(rows, []string{
			class.Name,
			string(class.IRI),
			fmt.Sprintf("%d", len(class.Properties)),
			fmt.Sprintf("%d", constrained),
		})
	}
	ui.PrintTable([]string{"Class", "IRI", "Properties", "Constrained"}, rows)

	if validateDump {
		fmt.Println()
		ui.PrintSection("Parsed Graph")
		if err := dumpShapesGraph(shapesPath, ctx); err != nil {
			return err
		}
	}

	return nil
}

// dumpShapesGraph re-parses the document into a triple graph and prints
// it back as Turtle, using the context prefixes when available.
func dumpShapesGraph(shapesPath string, ctx jsonld.Context) error {
	f, err := os.Open(shapesPath)
	if err != nil {
		return fmt.Errorf("failed to read shapes document: %w", err)
	}
	defer f.Close()

	graph, err := shacl.ParseGraph(shapesPath, f)
	if err != nil {
		return fmt.Errorf("failed to parse shapes document: %w", err)
	}
	return rdf.WriteTurtle(os.Stdout, graph, ctx.Prefixes)
}
