package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppName is used for the config directory and environment variable prefix.
const AppName = "acronymcreator"

// Environment variables read by Load.
const (
	EnvConfigPath = "ACRONYMCREATOR_CONFIG"
	EnvFormat     = "ACRONYMCREATOR_FORMAT"
	EnvStrategy   = "ACRONYMCREATOR_STRATEGY"
	EnvLogLevel   = "ACRONYMCREATOR_LOG_LEVEL"
	EnvWorkers    = "ACRONYMCREATOR_WORKERS"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all acronymcreator configuration.
type Config struct {
	// Defaults for the generation flags
	Defaults DefaultsConfig `yaml:"defaults"`

	// Batch mode settings
	Batch BatchConfig `yaml:"batch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			IncludeArticles: false,
			MinWordLength:   2,
			MaxWords:        0,
			Lowercase:       false,
			Format:          "text",
			Strategy:        "basic",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns the config file location: $ACRONYMCREATOR_CONFIG if set,
// otherwise <user config dir>/acronymcreator/config.yaml. It returns "" when
// neither can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load loads configuration from a YAML file. A missing file or an empty path
// yields the defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Fall through to defaults
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Defaults.Format = v
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Defaults.Strategy = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		// Unparsable values keep the configured worker count
		if n, err := strconv.Atoi(v); err == nil {
			c.Batch.Workers = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return err
	}
	if err := c.Batch.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
