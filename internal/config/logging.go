package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// ZapLevel parses Level. An empty level means warn.
func (c LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.WarnLevel, nil
	}
	return zapcore.ParseLevel(c.Level)
}

// Validate validates the level and encoding.
func (c LoggingConfig) Validate() error {
	if _, err := c.ZapLevel(); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	switch c.Format {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Format)
	}
}
