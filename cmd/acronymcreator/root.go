package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acronymcreator/internal/acronym"
	"acronymcreator/internal/config"
	"acronymcreator/internal/logging"
	"acronymcreator/internal/render"
)

// cliState holds flag values and the per-invocation config and logger.
type cliState struct {
	// Global flags
	configPath string
	verbose    bool
	format     string

	// Generation flags
	includeArticles bool
	minLength       int
	maxWords        int
	lowercase       bool
	strategy        string

	// Batch flags
	workers int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "acronymcreator PHRASE",
		Short: "Generate acronyms from phrases",
		Long: `Generate acronyms from phrases.

PHRASE: The phrase to create an acronym from

Punctuation is stripped, then articles and prepositions are skipped
unless --include-articles is given:
  ` + strings.Join(sortedStopWords(), ", ") + `

Examples:
  acronymcreator "The Quick Brown Fox"
  acronymcreator "Application Programming Interface" --include-articles
  acronymcreator "Very Long Phrase With Many Words" --max-words 3
  acronymcreator "Python Programming Language" --strategy syllable --format json`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runGenerate(cmd, args[0])
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", "", "Config file (default: $"+config.EnvConfigPath+" or user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&st.format, "format", defaults.Defaults.Format, "Output format ("+render.FormatNames()+")")
	addGenerationFlags(rootCmd, st, defaults)

	rootCmd.AddCommand(newSuggestCmd(st))
	rootCmd.AddCommand(newBatchCmd(st, defaults))
	rootCmd.AddCommand(newConfigCmd(st))

	return rootCmd
}

func addGenerationFlags(cmd *cobra.Command, st *cliState, defaults *config.Config) {
	cmd.Flags().BoolVar(&st.includeArticles, "include-articles", defaults.Defaults.IncludeArticles, "Include articles (a, an, the) in the acronym")
	cmd.Flags().IntVar(&st.minLength, "min-length", defaults.Defaults.MinWordLength, "Minimum word length to include")
	cmd.Flags().IntVar(&st.maxWords, "max-words", defaults.Defaults.MaxWords, "Maximum number of words to process (0 = no limit)")
	cmd.Flags().BoolVar(&st.lowercase, "lowercase", defaults.Defaults.Lowercase, "Output acronym in lowercase")
	cmd.Flags().StringVar(&st.strategy, "strategy", defaults.Defaults.Strategy, "Extraction strategy (basic|syllable)")
}

// setup loads config and builds the logger before any subcommand runs.
func (st *cliState) setup(cmd *cobra.Command) error {
	path := st.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	st.cfg = cfg

	logger, err := logging.New(cfg.Logging, st.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	st.logger = logger

	logging.For(logger, logging.CategoryBoot).Debug("Config loaded",
		zap.String("path", path),
		zap.String("format", cfg.Defaults.Format),
		zap.String("strategy", cfg.Defaults.Strategy))
	return nil
}

// resolveFormat picks the --format flag when given, otherwise the configured
// default.
func (st *cliState) resolveFormat(cmd *cobra.Command) (render.Format, error) {
	name := st.cfg.Defaults.Format
	if cmd.Flags().Changed("format") {
		name = st.format
	}
	return render.ParseFormat(name)
}

// resolveOptions merges explicit flags over the configured defaults.
func (st *cliState) resolveOptions(cmd *cobra.Command) (acronym.Options, acronym.Strategy, error) {
	d := st.cfg.Defaults
	flags := cmd.Flags()

	if flags.Changed("include-articles") {
		d.IncludeArticles = st.includeArticles
	}
	if flags.Changed("min-length") {
		d.MinWordLength = st.minLength
	}
	if flags.Changed("max-words") {
		if st.maxWords < 1 {
			return acronym.Options{}, "", fmt.Errorf("%w: --max-words must be a positive integer, got %d", config.ErrInvalidOptions, st.maxWords)
		}
		d.MaxWords = st.maxWords
	}
	if flags.Changed("lowercase") {
		d.Lowercase = st.lowercase
	}
	if flags.Changed("strategy") {
		d.Strategy = st.strategy
	}

	opts := d.Options()
	if err := config.ValidateOptions(opts); err != nil {
		return acronym.Options{}, "", err
	}
	strategy, err := acronym.ParseStrategy(d.Strategy)
	if err != nil {
		return acronym.Options{}, "", err
	}
	return opts, strategy, nil
}

// runGenerate creates one acronym and renders it with its options.
func (st *cliState) runGenerate(cmd *cobra.Command, phrase string) error {
	format, err := st.resolveFormat(cmd)
	if err != nil {
		return err
	}
	opts, strategy, err := st.resolveOptions(cmd)
	if err != nil {
		return err
	}

	logger := logging.For(st.logger, logging.CategoryCLI)
	result := acronym.Generate(phrase, opts, strategy)
	logger.Debug("Generated acronym",
		zap.String("phrase", phrase),
		zap.String("acronym", result),
		zap.String("strategy", strategy.String()),
		zap.Strings("words", acronym.ExtractWords(phrase, opts)))

	if result == "" {
		return fmt.Errorf("%w from %q", ErrEmptyResult, phrase)
	}

	rec := render.NewRecord(phrase, result, opts, strategy)
	if err := render.WriteRecord(string(format), cmd.OutOrStdout(), rec); err != nil {
		logging.For(st.logger, logging.CategoryRender).Error("Write failed", zap.Error(err))
		return err
	}
	return nil
}

func sortedStopWords() []string {
	words := acronym.StopWords()
	sort.Strings(words)
	return words
}
