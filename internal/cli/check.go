package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/logging"
	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/runner"
)

// ErrIssuesFound is returned when a check run found diagnostics or
// unprocessable files. It signals the non-zero exit code without producing
// an error message of its own.
var ErrIssuesFound = errors.New("issues found")

type checkFlags struct {
	format    string
	ignore    []string
	strict    bool
	noContext bool
	summary   bool
}

func newCheckCommand() *cobra.Command {
	cliCfg := config.NewConfig()
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse files and report diagnostics",
		Long: `Parse all supported files under the given paths, verify that every tree
reproduces its source byte-for-byte, and report parse diagnostics.

By default, checks all supported files in the current directory and
subdirectories. Specify paths to check specific files or directories.

Examples:
  syntree check                  # Check current directory
  syntree check configs/         # Check one directory
  syntree check app.conf         # Check a single file
  syntree check --format json    # Output as JSON for CI
  syntree check --strict         # Treat warnings as errors`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, cliCfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cliCfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.summary, "summary", true, "print the summary block")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	cliCfg.Format = config.OutputFormat(flags.format)
	cliCfg.Ignore = flags.ignore

	cfg, workDir, err := resolveConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New().Run(cmd.Context(), runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	logger.Debug("check run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	switch cfg.Format {
	case config.FormatJSON:
		if err := writeCheckJSON(cmd, result); err != nil {
			return err
		}
	default:
		writeCheckText(cmd, result, cfg, flags)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

func writeCheckText(cmd *cobra.Command, result *runner.Result, cfg *config.Config, flags *checkFlags) {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), out))

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			fmt.Fprintln(out, styles.FormatFileHeader(outcome.Path, 0))
			fmt.Fprintf(out, "  %s\n", styles.Failure.Render(outcome.Error.Error()))
			continue
		}
		if len(outcome.Diagnostics) == 0 {
			continue
		}

		fmt.Fprintln(out, styles.FormatFileHeader(outcome.Path, len(outcome.Diagnostics)))
		for _, diag := range outcome.Diagnostics {
			fmt.Fprint(out, styles.FormatDiagnostic(outcome.Tree, diag, !flags.noContext))
		}
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}
}

// checkReport is the JSON shape emitted by check --format json.
type checkReport struct {
	Files []checkFileReport `json:"files"`
	Stats runner.Stats      `json:"stats"`
}

type checkFileReport struct {
	Path        string                  `json:"path"`
	Language    string                  `json:"language,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Diagnostics []checkDiagnosticReport `json:"diagnostics,omitempty"`
}

type checkDiagnosticReport struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func writeCheckJSON(cmd *cobra.Command, result *runner.Result) error {
	report := checkReport{
		Files: make([]checkFileReport, 0, len(result.Files)),
		Stats: result.Stats,
	}

	for _, outcome := range result.Files {
		fileReport := checkFileReport{
			Path:     outcome.Path,
			Language: outcome.Language.String(),
		}
		if outcome.Error != nil {
			fileReport.Error = outcome.Error.Error()
		}
		for _, diag := range outcome.Diagnostics {
			line, col := outcome.Tree.Lines().PositionFor(diag.Span.Start)
			fileReport.Diagnostics = append(fileReport.Diagnostics, checkDiagnosticReport{
				Code:     diag.Code,
				Message:  diag.Message,
				Severity: diag.Severity.String(),
				Offset:   diag.Span.Start,
				Length:   diag.Span.Length,
				Line:     line,
				Column:   col,
			})
		}
		report.Files = append(report.Files, fileReport)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
