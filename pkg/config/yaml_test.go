package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/pkg/config"
)

func TestConfig_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.LogLevel = "debug"
	cfg.Color = config.ColorNever
	cfg.Navigation.SiblingSearchThreshold = 12
	cfg.Ignore = []string{"vendor/**", "**/testdata"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.LogLevel, parsed.LogLevel)
	assert.Equal(t, cfg.Color, parsed.Color)
	assert.Equal(t, cfg.Navigation, parsed.Navigation)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
}

func TestFromYAML_PartialDocument(t *testing.T) {
	t.Parallel()

	parsed, err := config.FromYAML([]byte("log_level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", parsed.LogLevel)
	assert.Empty(t, parsed.Color)
	assert.Zero(t, parsed.Navigation.SiblingSearchThreshold)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("log_level: [broken"))
	assert.Error(t, err)
}

func TestToYAML_NilConfig(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestTemplate_ParsesAndValidates(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.Template())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}
