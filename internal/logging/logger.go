// Package logging builds the zap loggers used by acronymcreator.
// Output goes to stderr so it never mixes with rendered acronyms on stdout.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"acronymcreator/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Config loading, logger setup
	CategoryCLI    Category = "cli"    // Command execution
	CategoryBatch  Category = "batch"  // Batch runner
	CategoryRender Category = "render" // Output encoding
)

// New builds a logger from cfg writing to w (stderr when nil).
// verbose forces debug level regardless of cfg.Level.
func New(cfg config.LoggingConfig, verbose bool, w io.Writer) (*zap.Logger, error) {
	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("failed to initialize logger: unknown format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(w)))), nil
}

// For returns a child logger named after the category.
func For(l *zap.Logger, category Category) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return l.Named(string(category))
}
