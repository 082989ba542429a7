package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/syntree/pkg/config"
)

func baseOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), baseOptions(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfigFile(t, dir, ".syntree.yml",
		"log_level: debug\nnavigation:\n  sibling_search_threshold: 16\n")

	result, err := Load(context.Background(), baseOptions(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", result.Config.LogLevel)
	}
	if result.Config.Navigation.SiblingSearchThreshold != 16 {
		t.Errorf("expected threshold 16, got %d", result.Config.Navigation.SiblingSearchThreshold)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != path {
		t.Errorf("unexpected LoadedFrom %v", result.LoadedFrom)
	}
}

func TestLoad_UpwardSearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfigFile(t, root, ".syntree.yml", "log_level: warn\n")

	repo := filepath.Join(root, "repo")
	nested := filepath.Join(repo, "a", "b")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	// The config above the VCS root must not be picked up.
	result, err := Load(context.Background(), baseOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "info" {
		t.Errorf("expected defaults, got log level %q", result.Config.LogLevel)
	}

	// A config inside the repo is found from the nested directory.
	writeConfigFile(t, repo, ".syntree.yml", "log_level: error\n")
	result, err = Load(context.Background(), baseOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "error" {
		t.Errorf("expected error level from repo config, got %q", result.Config.LogLevel)
	}
}

func TestLoad_ExplicitPathSkipsProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, ".syntree.yml", "log_level: debug\n")
	explicit := writeConfigFile(t, dir, "other.yml", "log_level: error\n")

	opts := baseOptions(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "error" {
		t.Errorf("expected the explicit config to win, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != explicit {
		t.Errorf("unexpected LoadedFrom %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, ".syntree.yml", "log_level: debug\ncolor: never\n")

	opts := baseOptions(dir)
	opts.CLIConfig = &config.Config{LogLevel: "error", Jobs: 3}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "error" {
		t.Errorf("CLI log level must win, got %q", result.Config.LogLevel)
	}
	if result.Config.Color != config.ColorNever {
		t.Errorf("file color must survive, got %q", result.Config.Color)
	}
	if result.Config.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", result.Config.Jobs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ".syntree.yml", "log_level: debug\n")

	t.Setenv("SYNTREE_LOG_LEVEL", "warn")
	t.Setenv("SYNTREE_SIBLING_SEARCH_THRESHOLD", "32")
	t.Setenv("SYNTREE_IGNORE", "vendor/**, dist/** ,")

	opts := baseOptions(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "warn" {
		t.Errorf("expected env log level, got %q", result.Config.LogLevel)
	}
	if result.Config.Navigation.SiblingSearchThreshold != 32 {
		t.Errorf("expected threshold 32, got %d", result.Config.Navigation.SiblingSearchThreshold)
	}
	if len(result.Config.Ignore) != 2 {
		t.Errorf("expected 2 ignore globs, got %v", result.Config.Ignore)
	}
}

func TestLoad_InvalidEnvInteger(t *testing.T) {
	t.Setenv("SYNTREE_JOBS", "many")

	opts := baseOptions(t.TempDir())
	opts.IgnoreEnv = false

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected an error for a non-integer SYNTREE_JOBS")
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, ".syntree.yml", "log_level: shouty\n")

	if _, err := Load(context.Background(), baseOptions(dir)); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t.TempDir())
	opts.ExplicitPath = filepath.Join(opts.WorkingDir, "nope.yml")

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}
