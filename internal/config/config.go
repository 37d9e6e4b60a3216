package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/vbp-optim/internal/solver"
)

const (
	defaultLogLevel = "warn"

	// DefaultConfigFile is looked up under the XDG config directories when
	// no --config flag is given.
	DefaultConfigFile = "vbp-optim/config.yaml"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	UseDotProduct bool
	Seed          *int64
	LogLevel      string
	// LogEncoding is "json", "console" or empty to pick by terminal.
	LogEncoding string
	// Source is the YAML file that was applied, empty if none.
	Source string
}

// SolverOptions returns the heuristic controls handed to every Optimize call.
func (c Config) SolverOptions() solver.Options {
	opts := solver.Options{UseDotProduct: c.UseDotProduct}
	if c.Seed != nil {
		seed := *c.Seed
		opts.Seed = &seed
	}
	return opts
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	DotProduct *bool      `yaml:"dot_product"`
	Seed       *int64     `yaml:"seed"`
	Logging    yamlLogger `yaml:"logging"`
}

// yamlLogger represents the logging section in YAML.
type yamlLogger struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// CLIOverrides holds command-line flag overrides. Nil fields were not given.
type CLIOverrides struct {
	ConfigFile    string
	UseDotProduct *bool
	Seed          *int64
	LogLevel      *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables (lowest explicit source)
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	// Load from YAML file: the explicit one, else the XDG default if present
	path, err := resolveConfigFile(overrides)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		yamlCfg, err := loadFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
		cfg.Source = path
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogEncoding = strings.ToLower(cfg.LogEncoding)
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel: defaultLogLevel,
	}
}

func resolveConfigFile(overrides *CLIOverrides) (string, error) {
	if overrides != nil && overrides.ConfigFile != "" {
		return overrides.ConfigFile, nil
	}
	if path := strings.TrimSpace(os.Getenv("VBP_CONFIG")); path != "" {
		return path, nil
	}
	path, err := xdg.SearchConfigFile(DefaultConfigFile)
	if err != nil {
		// no default file is fine
		return "", nil
	}
	return path, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.DotProduct != nil {
		cfg.UseDotProduct = *yamlCfg.DotProduct
	}

	if yamlCfg.Seed != nil {
		seed := *yamlCfg.Seed
		cfg.Seed = &seed
	}

	if yamlCfg.Logging.Level != "" {
		cfg.LogLevel = yamlCfg.Logging.Level
	}

	if yamlCfg.Logging.Encoding != "" {
		cfg.LogEncoding = yamlCfg.Logging.Encoding
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if raw := strings.TrimSpace(os.Getenv("VBP_DOT_PRODUCT")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("VBP_DOT_PRODUCT: invalid boolean %q", raw)
		}
		cfg.UseDotProduct = value
	}

	if raw := strings.TrimSpace(os.Getenv("VBP_SEED")); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("VBP_SEED: invalid integer %q", raw)
		}
		cfg.Seed = &value
	}

	if level := strings.TrimSpace(os.Getenv("VBP_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(os.Getenv("VBP_LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = encoding
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.UseDotProduct != nil {
		cfg.UseDotProduct = *overrides.UseDotProduct
	}

	if overrides.Seed != nil {
		seed := *overrides.Seed
		cfg.Seed = &seed
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(validLogLevels, ", "), cfg.LogLevel)
	}

	switch cfg.LogEncoding {
	case "", "json", "console":
	default:
		return errors.New("log encoding must be json or console")
	}
	return nil
}
