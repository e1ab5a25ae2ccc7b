// Package batch generates acronyms for many phrases at once.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"acronymcreator/internal/acronym"
	"acronymcreator/internal/render"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Runner applies one set of options and one strategy to every phrase.
type Runner struct {
	Options  acronym.Options
	Strategy acronym.Strategy
	Workers  int
	Logger   *zap.Logger
}

// Input is one non-blank input line.
type Input struct {
	Line   int // 1-based
	Phrase string
}

// ReadPhrases reads one phrase per line, skipping blank lines. Lines keep
// their original text; trailing "\r" from CRLF input is dropped.
func ReadPhrases(r io.Reader) ([]Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var inputs []Input
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		inputs = append(inputs, Input{Line: line, Phrase: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phrases: %w", err)
	}
	return inputs, nil
}

// Run generates acronyms for inputs concurrently. Results keep input order;
// phrases that yield no acronym are logged and left out.
func (r *Runner) Run(ctx context.Context, inputs []Input) ([]render.Record, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]string, len(inputs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = acronym.Generate(in.Phrase, r.Options, r.Strategy)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	records := make([]render.Record, 0, len(inputs))
	for i, in := range inputs {
		if results[i] == "" {
			logger.Warn("No acronym generated",
				zap.Int("line", in.Line),
				zap.String("phrase", in.Phrase))
			continue
		}
		records = append(records, render.NewRecord(in.Phrase, results[i], r.Options, r.Strategy))
	}

	logger.Debug("Batch complete",
		zap.Int("inputs", len(inputs)),
		zap.Int("records", len(records)),
		zap.Int("workers", workers))

	return records, nil
}
