package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "dadosSujos/vendas.csv", cfg.Paths.InputFile)
	assert.Equal(t, "dadosLimpos", cfg.Paths.OutputDir)
	assert.Equal(t, "relatorios", cfg.Paths.ReportsDir)
	assert.Equal(t, "não especificado", cfg.Cleaning.UnspecifiedSentinel)
	assert.InDelta(t, 0.01, cfg.Mining.MinSupport, 1e-9)
	assert.InDelta(t, 0.3, cfg.Mining.MinConfidence, 1e-9)
	assert.Equal(t, 10, cfg.Mining.TopRules)
}

func TestLoadFromEnvironmentOverrides(t *testing.T) {
	t.Setenv("MEGASUPER_MINING_MIN_SUPPORT", "0.05")
	t.Setenv("MEGASUPER_PATHS_INPUT_FILE", "outra/vendas.csv")
	t.Setenv("MEGASUPER_LOGGING_LEVEL", "debug")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.InDelta(t, 0.05, cfg.Mining.MinSupport, 1e-9)
	assert.Equal(t, "outra/vendas.csv", cfg.Paths.InputFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "support above 1", key: "MEGASUPER_MINING_MIN_SUPPORT", value: "2"},
		{name: "confidence above 1", key: "MEGASUPER_MINING_MIN_CONFIDENCE", value: "1.5"},
		{name: "unknown log level", key: "MEGASUPER_LOGGING_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "MEGASUPER_LOGGING_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadFrom("")
			assert.Error(t, err)
		})
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Paths.ReportsDir = filepath.Join(dir, "reports")

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.Paths.OutputDir)
	assert.DirExists(t, cfg.Paths.ReportsDir)
}
