package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwast "github.com/msto63/letter/foundation/letter/ast"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Print the syntax tree of a source",
	Long: `Parses a source and prints its syntax tree.

Output formats:
  tree    - indented node outline (default)
  source  - canonical, fully parenthesised source

Examples:
  letter parse program.let
  letter parse -e "x = y = 42;"
  letter parse --format source -e "2 + 2 * 2;"
  cat program.let | letter parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "format", "f", "tree", "output format (tree, source)")
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseOutput != "tree" && parseOutput != "source" {
		return fmt.Errorf("unknown output format %q (tree, source)", parseOutput)
	}

	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	result, err := engine.Parse(source)
	if err != nil {
		return &sourceError{name: name, source: source, err: err}
	}

	out := cmd.OutOrStdout()
	if parseOutput == "source" {
		fmt.Fprintln(out, mdwast.Format(result.Program))
		return nil
	}

	fmt.Fprint(out, mdwast.Outline(result.Program))
	if verbose {
		fmt.Fprintf(out, "\n%d statement(s) in %s (request %s)\n", result.Statements, result.Duration, result.RequestID)
	}
	return nil
}
