package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/runner"
)

func newTokensCommand() *cobra.Command {
	cliCfg := config.NewConfig()

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Parse a file and dump its token stream",
		Long: `Parse a single file and print every token in source order with kind, span
and text. Trivia pieces such as whitespace, comments and directives appear
indented under the token that carries them.

Examples:
  syntree tokens script.calc
  syntree tokens app.conf`,
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
			fmt.Fprint(out, styles.FormatTokens(outcome.Tree))
			return nil
		},
	}

	return cmd
}
