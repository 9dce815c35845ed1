package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/letter/foundation/core/log"
	"github.com/msto63/letter/foundation/utils/filex"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Print a source in canonical form",
	Long: `Parses a source and prints it back in canonical form: one statement
per line, blocks indented by two spaces and every binary, logical and
assignment expression parenthesised.

Examples:
  letter fmt -e "x=y=1+2*3;"
  letter fmt program.let
  letter fmt -w program.let   # rewrite the file in place`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the source file")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && !isFileArg(args) {
		return fmt.Errorf("--write needs a file argument")
	}

	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	formatted, err := engine.Format(source)
	if err != nil {
		return &sourceError{name: name, source: source, err: err}
	}

	if fmtWrite {
		if formatted+"\n" == source {
			return nil
		}
		if err := filex.WriteStringAtomic(name, formatted+"\n"); err != nil {
			return err
		}
		logger.Info("Source rewritten", mdwlog.Fields{
			"path": name,
			"size": filex.FormatSize(int64(len(formatted) + 1)),
		})
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatted)
	return nil
}
