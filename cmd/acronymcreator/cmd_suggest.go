package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acronymcreator/internal/acronym"
	"acronymcreator/internal/logging"
	"acronymcreator/internal/render"
)

// newSuggestCmd runs every strategy with default options.
func newSuggestCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest PHRASE",
		Short: "Suggest acronyms using every strategy",
		Long: `Generates candidates with several strategies using default options:

  basic          first letters, articles excluded
  with_articles  first letters, articles included
  creative       lowercase and three-word variants that differ from basic
  syllable       short syllable fragments per word

Example:
  acronymcreator suggest "Very Long Phrase With Many Words" --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := st.resolveFormat(cmd)
			if err != nil {
				return err
			}

			phrase := args[0]
			res := acronym.GenerateMultipleOptions(phrase)
			logging.For(st.logger, logging.CategoryCLI).Debug("Generated suggestions",
				zap.String("phrase", phrase),
				zap.Strings("basic", res.Basic),
				zap.Strings("creative", res.Creative))

			if res.Empty() {
				return fmt.Errorf("%w from %q", ErrEmptyResult, phrase)
			}

			return render.WriteSuggestions(string(format), cmd.OutOrStdout(), render.Suggestions{
				Phrase:      phrase,
				Suggestions: res,
			})
		},
	}
}
