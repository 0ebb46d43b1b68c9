package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type loaderTestConfiguration struct {
	Common struct {
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"common"`
	Tools struct {
		Branch struct {
			MaxLength int `mapstructure:"max_length"`
		} `mapstructure:"branch"`
	} `mapstructure:"tools"`
}

func TestLoadConfigurationAppliesDefaults(t *testing.T) {
	loader := NewConfigurationLoader("config", "yaml", "GITNOVA", []string{t.TempDir()})

	var configuration loaderTestConfiguration
	metadata, loadError := loader.LoadConfiguration("", map[string]any{
		"common.log_level":        "info",
		"tools.branch.max_length": 250,
	}, &configuration)

	require.NoError(t, loadError)
	require.Empty(t, metadata.ConfigFileUsed)
	require.Equal(t, "info", configuration.Common.LogLevel)
	require.Equal(t, 250, configuration.Tools.Branch.MaxLength)
}

func TestLoadConfigurationReadsExplicitFile(t *testing.T) {
	configurationPath := filepath.Join(t.TempDir(), "config.yaml")
	configurationContent := "common:\n  log_level: debug\ntools:\n  branch:\n    max_length: 120\n"
	require.NoError(t, os.WriteFile(configurationPath, []byte(configurationContent), 0o644))

	loader := NewConfigurationLoader("config", "yaml", "GITNOVA", nil)

	var configuration loaderTestConfiguration
	metadata, loadError := loader.LoadConfiguration(configurationPath, map[string]any{"common.log_level": "info"}, &configuration)

	require.NoError(t, loadError)
	require.Equal(t, configurationPath, metadata.ConfigFileUsed)
	require.Equal(t, "debug", configuration.Common.LogLevel)
	require.Equal(t, 120, configuration.Tools.Branch.MaxLength)
}

func TestLoadConfigurationMergesEmbeddedDataFirst(t *testing.T) {
	loader := NewConfigurationLoader("config", "yaml", "GITNOVA", nil)
	loader.SetEmbeddedConfiguration([]byte("common:\n  log_level: warn\n"), "yaml")

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration("", nil, &configuration)

	require.NoError(t, loadError)
	require.Equal(t, "warn", configuration.Common.LogLevel)
}

func TestLoadConfigurationHonorsEnvironmentOverrides(t *testing.T) {
	t.Setenv("GITNOVA_COMMON_LOG_LEVEL", "error")

	loader := NewConfigurationLoader("config", "yaml", "GITNOVA", nil)

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration("", map[string]any{"common.log_level": "info"}, &configuration)

	require.NoError(t, loadError)
	require.Equal(t, "error", configuration.Common.LogLevel)
}
