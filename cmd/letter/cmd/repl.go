package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/letter/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive parser",
	Long: `Starts an interactive session. Every line entered is parsed and its
syntax tree or error is shown below it. Errors never end the session.

Keys:
  Enter     - parse the line
  Tab       - switch between outline and source output
  Ctrl+L    - clear history
  Esc       - quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// log lines would corrupt the alternate screen
	engine, err := newEngine(logger.WithOutput(io.Discard))
	if err != nil {
		return err
	}

	cfg := repl.Config{
		Engine:  engine,
		Prompt:  appConfig.GetString("repl.prompt"),
		History: appConfig.GetInt("repl.history"),
	}

	if err := repl.Run(cfg); err != nil {
		return fmt.Errorf("REPL: %w", err)
	}
	return nil
}
