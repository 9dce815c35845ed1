package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Report syntax errors only",
	Long: `Parses and validates a source without printing the tree.
Exits with status 1 on the first error.

Examples:
  letter check program.let
  letter check -e "1 = 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	if err := engine.Check(source); err != nil {
		return &sourceError{name: name, source: source, err: err}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
	return nil
}
