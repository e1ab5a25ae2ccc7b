package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	RegisterRecord(FormatText, writeRecordText)
	RegisterSuggestions(FormatText, writeSuggestionsText)
	RegisterBatch(FormatText, writeBatchText)
}

func writeRecordText(w io.Writer, rec Record) error {
	_, err := fmt.Fprintln(w, rec.Acronym)
	return err
}

func writeBatchText(w io.Writer, recs []Record) error {
	for _, rec := range recs {
		if _, err := fmt.Fprintln(w, rec.Acronym); err != nil {
			return err
		}
	}
	return nil
}

// writeSuggestionsText prints one "name: A, B" line per strategy. Styling is
// dropped automatically when w is not a terminal.
func writeSuggestionsText(w io.Writer, s Suggestions) error {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true)
	muted := r.NewStyle().Faint(true)

	for _, g := range s.Suggestions.Groups() {
		value := muted.Render("(none)")
		if len(g.Acronyms) > 0 {
			value = strings.Join(g.Acronyms, ", ")
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label.Render(g.Name+":"), value); err != nil {
			return err
		}
	}
	return nil
}
