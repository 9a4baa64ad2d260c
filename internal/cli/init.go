package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gotsdoc/internal/logging"
	"github.com/yaklabco/gotsdoc/pkg/configfile"
	"github.com/yaklabco/gotsdoc/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new tsdoc.json configuration file",
		Long: `Create a starter tsdoc.json in the current directory. The file declares
the schema it follows and shows how to define custom tags; edit it to add
tag definitions, synonyms, and support declarations.

Examples:
  gotsdoc init                    Create tsdoc.json
  gotsdoc init --format yaml      Create tsdoc.yaml instead
  gotsdoc init --output cfg.json  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: tsdoc.json or tsdoc.yaml)")

	return cmd
}

const jsonTemplate = `{
  "$schema": "https://developer.microsoft.com/json-schemas/tsdoc/v0/tsdoc.schema.json",
  "tagDefinitions": [
    {
      "tagName": "@sampleTag",
      "syntaxKind": "modifier"
    }
  ]
}
`

const yamlTemplate = `$schema: https://developer.microsoft.com/json-schemas/tsdoc/v0/tsdoc.schema.json
tagDefinitions:
  - tagName: "@sampleTag"
    syntaxKind: modifier
`

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	var content string
	switch flags.format {
	case "json":
		content = jsonTemplate
	case "yaml":
		content = yamlTemplate
	default:
		return fmt.Errorf("invalid format %q: must be json or yaml", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == "yaml" {
			outputPath = "tsdoc.yaml"
		} else {
			outputPath = configfile.ConfigFileName
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force && !confirmOverwrite(cmd, outputPath) {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := fsutil.WriteAtomic(ctx, absPath, []byte(content), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your tag definitions by editing the file")
	logger.Info("run 'gotsdoc tags' to see the effective vocabulary")

	return nil
}

// confirmOverwrite asks the user whether to replace an existing file.
// Only prompts when stdin is attached to a terminal.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	stdin, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(stdin.Fd())) {
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Overwrite? [y/N] ", path)
	reader := bufio.NewReader(stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
