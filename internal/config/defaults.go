package config

import (
	"errors"
	"fmt"

	"acronymcreator/internal/acronym"
)

// ErrInvalidOptions reports generation options outside their allowed range.
var ErrInvalidOptions = errors.New("invalid options")

// DefaultsConfig holds the defaults for the generation flags.
type DefaultsConfig struct {
	IncludeArticles bool   `yaml:"include_articles"`
	MinWordLength   int    `yaml:"min_word_length"`
	MaxWords        int    `yaml:"max_words"` // 0 = no cap
	Lowercase       bool   `yaml:"lowercase"`
	Format          string `yaml:"format"`   // text, json, yaml, csv, tsv, toml
	Strategy        string `yaml:"strategy"` // basic, syllable
}

// Options converts the defaults into engine options.
func (d DefaultsConfig) Options() acronym.Options {
	return acronym.Options{
		IncludeArticles: d.IncludeArticles,
		MinWordLength:   d.MinWordLength,
		MaxWords:        d.MaxWords,
		ForceUppercase:  !d.Lowercase,
	}
}

// Validate checks the numeric ranges and the strategy name. The format is
// checked by the renderer that has to serve it.
func (d DefaultsConfig) Validate() error {
	if d.MaxWords < 0 {
		return fmt.Errorf("%w: defaults.max_words must be >= 0, got %d", ErrInvalidConfig, d.MaxWords)
	}
	if err := ValidateOptions(d.Options()); err != nil {
		return fmt.Errorf("%w: defaults: %v", ErrInvalidConfig, err)
	}
	if _, err := acronym.ParseStrategy(d.Strategy); err != nil {
		return fmt.Errorf("%w: defaults.strategy: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ValidateOptions checks options built from flags or config before they reach
// the engine, which performs no validation of its own.
func ValidateOptions(opts acronym.Options) error {
	if opts.MinWordLength < 1 {
		return fmt.Errorf("%w: min word length must be >= 1, got %d", ErrInvalidOptions, opts.MinWordLength)
	}
	if opts.MaxWords < 0 {
		return fmt.Errorf("%w: max words must be positive, got %d", ErrInvalidOptions, opts.MaxWords)
	}
	return nil
}
