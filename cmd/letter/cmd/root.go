package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/letter/foundation/core/config"
	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwlog "github.com/msto63/letter/foundation/core/log"
	"github.com/msto63/letter/foundation/letter"
	mdwparser "github.com/msto63/letter/foundation/letter/parser"
)

const envPrefix = "LETTER"

var (
	cfgFile string
	verbose bool
	exprSrc string

	appConfig *mdwconfig.Config
	logger    *mdwlog.Logger
)

var (
	errorLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	excerptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var rootCmd = &cobra.Command{
	Use:   "letter",
	Short: "letter - scanner and parser for the letter language",
	Long: `letter turns source text of the letter language into a syntax tree.

Commands:
  parse   - print the syntax tree of a source
  tokens  - print the token stream of a source
  check   - report syntax errors only
  fmt     - print a source in canonical form
  repl    - interactive parser

Source is read from a file argument, from stdin ("-" or no argument)
or inline with --expr.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(os.Stderr, err)
	}
	return err
}

// reportError prints err for the user. With --verbose the structured error
// is logged as well, carrying its code, operation and details.
func reportError(w io.Writer, err error) {
	if verbose && logger != nil {
		logger.LogError(err)
	}
	printError(w, err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML, default: built-in settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVarP(&exprSrc, "expr", "e", "", "inline source instead of a file")
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"log.level":               "warn",
		"log.format":              "console",
		"parser.max_input_length": mdwparser.DefaultMaxInputLength,
		"parser.max_depth":        mdwparser.DefaultMaxDepth,
		"parser.validate":         true,
		"repl.prompt":             "letter> ",
		"repl.history":            50,
	}
}

func setup(cmd *cobra.Command, args []string) error {
	options := mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: envPrefix,
		Defaults:  defaultSettings(),
	}

	var err error
	if cfgFile == "" {
		appConfig, err = mdwconfig.LoadFromStringWithOptions("", options)
	} else {
		appConfig, err = mdwconfig.LoadWithOptions(cfgFile, options)
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err = newLogger(appConfig, cmd.ErrOrStderr())
	return err
}

func newLogger(cfg *mdwconfig.Config, output io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	if verbose {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return nil, fmt.Errorf("log.format: %w", err)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "letter",
	}), nil
}

// newEngine builds an engine from the loaded configuration
func newEngine(log *mdwlog.Logger) (*letter.Engine, error) {
	opts, err := letter.OptionsFromConfig(appConfig)
	if err != nil {
		return nil, err
	}
	opts.Logger = log
	opts.LogLevel = 0 // the logger already carries the configured level
	return letter.NewEngine(opts)
}

// sourceError ties a failure to the text it was raised for
type sourceError struct {
	name   string
	source string
	err    error
}

func (e *sourceError) Error() string { return e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

func printError(w io.Writer, err error) {
	var srcErr *sourceError
	if !errors.As(err, &srcErr) {
		fmt.Fprintf(w, "%s %v\n", errorLabelStyle.Render("error:"), err)
		return
	}

	location := srcErr.name
	line, column, ok := mdwparser.Location(srcErr.err)
	if ok {
		location = fmt.Sprintf("%s:%d:%d", srcErr.name, line, column)
	}

	fmt.Fprintf(w, "%s %s: %s [%s]\n",
		errorLabelStyle.Render("error:"), location, srcErr.err, mdwerror.GetCode(srcErr.err))

	if ok {
		if excerpt := mdwparser.Excerpt(srcErr.source, line, column); excerpt != "" {
			fmt.Fprintln(w, excerptStyle.Render(excerpt))
		}
	}
}
