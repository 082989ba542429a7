package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/runner"
)

func newParseCommand() *cobra.Command {
	cliCfg := config.NewConfig()
	var showDiagnostics bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Long: `Parse a single file and print the full syntax tree: one element per line
with kind and span, nested by structure. Token lines include the token text;
missing tokens inserted by error recovery are marked.

Examples:
  syntree parse script.calc
  syntree parse app.conf --diagnostics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolveConfig(cmd, cliCfg)
			if err != nil {
				return err
			}

			outcome := runner.New().ParseFile(args[0])
			if outcome.Error != nil {
				return outcome.Error
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), out))
			fmt.Fprint(out, styles.FormatTree(outcome.Tree))

			if showDiagnostics && len(outcome.Diagnostics) > 0 {
				fmt.Fprintln(out)
				for _, diag := range outcome.Diagnostics {
					fmt.Fprint(out, styles.FormatDiagnostic(outcome.Tree, diag, true))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiagnostics, "diagnostics", false, "also print parse diagnostics")

	return cmd
}
