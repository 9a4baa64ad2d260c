package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotsdoc/internal/logging"
	"github.com/yaklabco/gotsdoc/internal/ui/pretty"
	"github.com/yaklabco/gotsdoc/pkg/configfile"
	"github.com/yaklabco/gotsdoc/pkg/docast"
	"github.com/yaklabco/gotsdoc/pkg/parser"
	"github.com/yaklabco/gotsdoc/pkg/tags"
)

// ErrDiagnosticsFound is returned when parsing reported diagnostics.
var ErrDiagnosticsFound = errors.New("diagnostics found")

// ErrConfigInvalid is returned when a tsdoc.json file could not be resolved.
var ErrConfigInvalid = errors.New("invalid tsdoc configuration")

// ErrFileRead is returned when an input file could not be read.
var ErrFileRead = errors.New("read input file")

type parseFlags struct {
	format    string
	dump      bool
	noContext bool
	summary   bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse doc comments in source files",
		Long:  parseLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "print the AST of each parsed comment")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary block")

	return cmd
}

const parseLongDescription = `Parse every /** ... */ doc comment in the given source files and report
diagnostics for malformed or misused TSDoc constructs.

Tag definitions are resolved from the nearest tsdoc.json, searching upward
from each file's directory, or from an explicit --config path.

Examples:
  gotsdoc parse src/widget.ts           # Parse one file
  gotsdoc parse src/*.ts                # Parse several files
  gotsdoc parse --format json api.ts    # Machine-readable output for CI
  gotsdoc parse --dump api.ts           # Show the AST of each comment
  gotsdoc parse --config tsdoc.json .   # Use an explicit config file`

// jsonDiagnostic is the machine-readable form of one diagnostic.
type jsonDiagnostic struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	MessageID string `json:"messageId"`
	Text      string `json:"text"`
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := logging.FromContext(cmd.Context())

	if flags.format != "text" && flags.format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", flags.format)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	configs := newConfigResolver(configPath)
	out := cmd.OutOrStdout()

	var stats pretty.Stats
	var jsonDiags []jsonDiagnostic

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w %s: %s", ErrFileRead, path, err)
		}

		cfg, err := configs.forFile(path, styles, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		comments := parser.FindDocComments(string(source))
		logger.Debug("extracted doc comments",
			logging.FieldPath, path,
			logging.FieldComments, len(comments),
		)

		stats.FilesProcessed++
		fileIssues := 0
		p := parser.New(cfg)

		for _, comment := range comments {
			ctx := p.Parse(comment.Text())
			stats.Comments++

			for _, msg := range ctx.Log.Messages() {
				fileIssues++
				line, col := messageLocation(comment, msg)
				if flags.format == "json" {
					jsonDiags = append(jsonDiags, jsonDiagnostic{
						File:      path,
						Line:      line,
						Column:    col,
						MessageID: string(msg.ID),
						Text:      msg.Text,
					})
					continue
				}
				fmt.Fprint(out, styles.FormatMessageAt(path, line, col, msg, !flags.noContext))
			}

			if flags.dump && flags.format == "text" {
				fmt.Fprintln(out, strings.TrimRight(docast.Dump(ctx.Comment), "\n"))
			}
		}

		stats.Diagnostics += fileIssues
		if fileIssues > 0 {
			stats.FilesWithIssues++
		}
	}

	if flags.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if jsonDiags == nil {
			jsonDiags = []jsonDiagnostic{}
		}
		if err := enc.Encode(jsonDiags); err != nil {
			return fmt.Errorf("encode diagnostics: %w", err)
		}
	} else if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(stats))
	}

	if stats.Diagnostics > 0 {
		return ErrDiagnosticsFound
	}
	return nil
}

// messageLocation maps a diagnostic's buffer offset to a position in the
// original file, offsetting by the comment's own position.
func messageLocation(comment parser.DocComment, msg *parser.ParserMessage) (int, int) {
	line, col := msg.Range.StartLocation()
	// Line 1 of the comment text sits on the comment's own line.
	if line == 1 {
		return comment.Line, comment.Column + col - 1
	}
	return comment.Line + line - 1, col
}

// configResolver caches tag configurations per directory so a run over many
// files loads each tsdoc.json chain once.
type configResolver struct {
	explicitPath string
	explicit     *tags.Configuration
	byDir        map[string]*tags.Configuration
}

func newConfigResolver(explicitPath string) *configResolver {
	return &configResolver{
		explicitPath: explicitPath,
		byDir:        make(map[string]*tags.Configuration),
	}
}

func (r *configResolver) forFile(path string, styles *pretty.Styles, errOut io.Writer) (*tags.Configuration, error) {
	if r.explicitPath != "" {
		if r.explicit == nil {
			cfg, err := resolveConfigFile(configfile.LoadFile(r.explicitPath), styles, errOut)
			if err != nil {
				return nil, err
			}
			r.explicit = cfg
		}
		return r.explicit, nil
	}

	dir := filepath.Dir(path)
	if cfg, ok := r.byDir[dir]; ok {
		return cfg, nil
	}
	cfg, err := resolveConfigFile(configfile.LoadForFolder(dir), styles, errOut)
	if err != nil {
		return nil, err
	}
	r.byDir[dir] = cfg
	return cfg, nil
}

func resolveConfigFile(file *configfile.ConfigFile, styles *pretty.Styles, errOut io.Writer) (*tags.Configuration, error) {
	if file.HasErrors() {
		label := file.FilePath
		if label == "" {
			label = configfile.ConfigFileName
		}
		for _, msg := range file.AllMessages() {
			fmt.Fprint(errOut, styles.FormatMessage(label, msg, false))
		}
		return nil, ErrConfigInvalid
	}
	cfg, err := file.TagConfiguration()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return cfg, nil
}
