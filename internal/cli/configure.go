package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/configloader"
	"github.com/yaklabco/syntree/internal/logging"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// resolveConfig merges configuration from all sources for a command run and
// applies the process-wide settings (log level, sibling search threshold).
// cliCfg carries the values set by explicit CLI flags.
func resolveConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	logger := logging.Default()
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	// The debug flag takes precedence over the configured level.
	if debug, _ := cmd.Flags().GetBool("debug"); !debug && cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}

	if cfg.Navigation.SiblingSearchThreshold > 0 {
		syntax.SetSiblingSearchThreshold(cfg.Navigation.SiblingSearchThreshold)
		logger.Debug("sibling search threshold set",
			logging.FieldThreshold, cfg.Navigation.SiblingSearchThreshold)
	}

	return cfg, workDir, nil
}

// colorMode resolves the persistent --color flag, merged with configuration.
func colorMode(cmd *cobra.Command, cfg *config.Config) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" {
		mode = "auto"
	}
	if mode == "auto" && cfg != nil && cfg.Color != "" {
		mode = string(cfg.Color)
	}
	return mode
}
