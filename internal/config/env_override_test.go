package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("format and strategy", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvFormat, "yaml")
		t.Setenv(EnvStrategy, "syllable")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "yaml", cfg.Defaults.Format)
		assert.Equal(t, "syllable", cfg.Defaults.Strategy)
	})

	t.Run("log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogLevel, "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		lvl, err := cfg.Logging.ZapLevel()
		assert.NoError(t, err)
		assert.Equal(t, zapcore.DebugLevel, lvl)
	})

	t.Run("workers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvWorkers, "16")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 16, cfg.Batch.Workers)
	})

	t.Run("unparsable workers ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvWorkers, "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4, cfg.Batch.Workers)
	})

	t.Run("empty values do not override", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Defaults: DefaultsConfig{Format: "csv"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "csv", cfg.Defaults.Format)
	})

	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvFormat, "toml")

		path := t.TempDir() + "/config.yaml"
		cfg := DefaultConfig()
		cfg.Defaults.Format = "json"
		assert.NoError(t, cfg.Save(path))

		loaded, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, "toml", loaded.Defaults.Format)
	})
}

func TestLoggingConfigZapLevel(t *testing.T) {
	lvl, err := LoggingConfig{}.ZapLevel()
	assert.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	lvl, err = LoggingConfig{Level: "error"}.ZapLevel()
	assert.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, lvl)
}
