package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotsdoc/internal/logging"
	"github.com/yaklabco/gotsdoc/internal/ui/pretty"
	"github.com/yaklabco/gotsdoc/pkg/configfile"
)

func newTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the effective tag definitions",
		Long: `List every tag definition in the effective configuration: the standard
TSDoc tags plus any definitions, synonyms, and support declarations from the
governing tsdoc.json chain.

Examples:
  gotsdoc tags                     Show tags for the current directory
  gotsdoc tags --config tsdoc.json Show tags for an explicit config file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTags(cmd)
		},
	}

	return cmd
}

func runTags(cmd *cobra.Command) error {
	logger := logging.FromContext(cmd.Context())

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	var file *configfile.ConfigFile
	if configPath != "" {
		file = configfile.LoadFile(configPath)
	} else {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		file = configfile.LoadForFolder(workDir)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	cfg, err := resolveConfigFile(file, styles, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if file.FilePath != "" {
		rel := file.FilePath
		if wd, err := os.Getwd(); err == nil {
			if r, err := filepath.Rel(wd, file.FilePath); err == nil {
				rel = r
			}
		}
		logger.Debug("loaded tag configuration", logging.FieldConfigPath, rel)
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatTagTable(cfg))

	return nil
}
