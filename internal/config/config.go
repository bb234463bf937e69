package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Mining   MiningConfig   `yaml:"mining" envconfig:"MINING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/processor.log"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE" default:"dadosSujos/vendas.csv"`
	OutputDir  string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"dadosLimpos"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"relatorios"`
}

// CleaningConfig contains cleaning pipeline configuration.
type CleaningConfig struct {
	// UnspecifiedSentinel fills missing seller and brand fields. It is
	// stored lowercased because text normalization runs first.
	UnspecifiedSentinel string `yaml:"unspecified_sentinel" envconfig:"UNSPECIFIED_SENTINEL" default:"não especificado"`
}

// MiningConfig contains association-rule mining thresholds.
type MiningConfig struct {
	MinSupport    float64 `yaml:"min_support" envconfig:"MIN_SUPPORT" default:"0.01"`
	MinConfidence float64 `yaml:"min_confidence" envconfig:"MIN_CONFIDENCE" default:"0.3"`
	TopRules      int     `yaml:"top_rules" envconfig:"TOP_RULES" default:"10"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom loads configuration using the given config file path.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MEGASUPER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	if envConfig.Paths.InputFile == "" {
		envConfig.Paths.InputFile = fileConfig.Paths.InputFile
	}
	if envConfig.Paths.OutputDir == "" {
		envConfig.Paths.OutputDir = fileConfig.Paths.OutputDir
	}
	if envConfig.Paths.ReportsDir == "" {
		envConfig.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}

	if envConfig.Cleaning.UnspecifiedSentinel == "" {
		envConfig.Cleaning.UnspecifiedSentinel = fileConfig.Cleaning.UnspecifiedSentinel
	}

	if envConfig.Mining.MinSupport == 0 {
		envConfig.Mining.MinSupport = fileConfig.Mining.MinSupport
	}
	if envConfig.Mining.MinConfidence == 0 {
		envConfig.Mining.MinConfidence = fileConfig.Mining.MinConfidence
	}
	if envConfig.Mining.TopRules == 0 {
		envConfig.Mining.TopRules = fileConfig.Mining.TopRules
	}

	return envConfig
}

// validate checks configuration values for consistency.
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Mining.MinSupport <= 0 || c.Mining.MinSupport > 1 {
		return fmt.Errorf("min_support must be in (0, 1], got %v", c.Mining.MinSupport)
	}
	if c.Mining.MinConfidence <= 0 || c.Mining.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be in (0, 1], got %v", c.Mining.MinConfidence)
	}
	if c.Mining.TopRules <= 0 {
		return fmt.Errorf("top_rules must be positive, got %d", c.Mining.TopRules)
	}

	return nil
}

// EnsureDirectories creates the output and report directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.ReportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if c.Logging.Output != "console" {
		if err := os.MkdirAll(filepath.Dir(c.Logging.FilePath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return nil
}

// getConfigFilePath returns the config file path, honoring the
// MEGASUPER_CONFIG_FILE override.
func getConfigFilePath() string {
	if path := os.Getenv("MEGASUPER_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}
