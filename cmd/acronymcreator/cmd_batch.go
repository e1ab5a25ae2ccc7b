package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acronymcreator/internal/batch"
	"acronymcreator/internal/config"
	"acronymcreator/internal/logging"
	"acronymcreator/internal/render"
)

// newBatchCmd reads one phrase per line and renders all results together.
func newBatchCmd(st *cliState, defaults *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [FILE|-]",
		Short: "Generate acronyms for every line of a file or stdin",
		Long: `Reads one phrase per line from FILE, or stdin when FILE is "-" or omitted.
Blank lines are skipped. Phrases that produce no acronym are reported on
stderr and left out of the output.

Example:
  acronymcreator batch phrases.txt --format csv --max-words 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := st.resolveFormat(cmd)
			if err != nil {
				return err
			}
			opts, strategy, err := st.resolveOptions(cmd)
			if err != nil {
				return err
			}

			workers := st.cfg.Batch.Workers
			if cmd.Flags().Changed("workers") {
				if st.workers < 1 || st.workers > config.MaxBatchWorkers {
					return fmt.Errorf("%w: --workers must be between 1 and %d, got %d", config.ErrInvalidOptions, config.MaxBatchWorkers, st.workers)
				}
				workers = st.workers
			}

			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			in, closeIn, err := openInput(cmd, src)
			if err != nil {
				return err
			}
			defer closeIn()

			inputs, err := batch.ReadPhrases(in)
			if err != nil {
				return err
			}

			logger := logging.For(st.logger, logging.CategoryBatch)
			logger.Debug("Starting batch",
				zap.String("source", src),
				zap.Int("phrases", len(inputs)),
				zap.Int("workers", workers))

			runner := &batch.Runner{
				Options:  opts,
				Strategy: strategy,
				Workers:  workers,
				Logger:   logger,
			}
			recs, err := runner.Run(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return fmt.Errorf("%w from %s", ErrEmptyResult, src)
			}

			return render.WriteBatch(string(format), cmd.OutOrStdout(), recs)
		},
	}

	addGenerationFlags(cmd, st, defaults)
	cmd.Flags().IntVar(&st.workers, "workers", defaults.Batch.Workers, "Phrases processed concurrently")
	return cmd
}

func openInput(cmd *cobra.Command, src string) (io.Reader, func(), error) {
	if src == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", src, err)
	}
	return f, func() { _ = f.Close() }, nil
}
