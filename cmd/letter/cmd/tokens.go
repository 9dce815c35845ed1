package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream of a source",
	Long: `Scans a source and prints one token per line with its position.
Whitespace and comments are skipped.

Examples:
  letter tokens -e "x += 1;"
  letter tokens program.let`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	tokens, err := engine.Tokens(source)
	if err != nil {
		return &sourceError{name: name, source: source, err: err}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tTYPE\tVALUE")
	for _, tok := range tokens {
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Value)
	}
	return w.Flush()
}
