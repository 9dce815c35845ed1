package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/letter/foundation/core/log"
	"github.com/msto63/letter/foundation/utils/filex"
)

// readSource returns the source text and a display name for it. --expr
// wins over a file argument; "-" or no argument reads stdin.
func readSource(cmd *cobra.Command, args []string) (name, source string, err error) {
	if exprSrc != "" {
		return "<expr>", exprSrc, nil
	}

	limit := int64(appConfig.GetInt("parser.max_input_length"))

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), limit+1))
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		// the engine rejects the oversized text with its own error
		return "<stdin>", string(data), nil
	}

	source, err = filex.ReadString(args[0], limit)
	if err != nil {
		return "", "", err
	}
	logger.Debug("Source loaded", mdwlog.Fields{
		"path": args[0],
		"size": filex.FormatSize(int64(len(source))),
	})
	return args[0], source, nil
}

// isFileArg reports whether the source comes from a named file
func isFileArg(args []string) bool {
	return exprSrc == "" && len(args) > 0 && args[0] != "-"
}
