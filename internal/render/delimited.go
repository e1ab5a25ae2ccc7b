package render

import (
	"encoding/csv"
	"io"
	"strconv"
)

// recordHeader is the column order of CSV and TSV record output.
var recordHeader = []string{
	"phrase",
	"acronym",
	"include_articles",
	"min_word_length",
	"max_words",
	"lowercase",
	"strategy",
}

var suggestionHeader = []string{"phrase", "strategy", "acronym"}

func init() {
	for f, comma := range map[Format]rune{FormatCSV: ',', FormatTSV: '\t'} {
		comma := comma
		RegisterRecord(f, func(w io.Writer, rec Record) error {
			return writeRows(w, comma, recordHeader, [][]string{recordRow(rec)})
		})
		RegisterBatch(f, func(w io.Writer, recs []Record) error {
			rows := make([][]string, 0, len(recs))
			for _, rec := range recs {
				rows = append(rows, recordRow(rec))
			}
			return writeRows(w, comma, recordHeader, rows)
		})
		RegisterSuggestions(f, func(w io.Writer, s Suggestions) error {
			return writeRows(w, comma, suggestionHeader, suggestionRows(s))
		})
	}
}

func recordRow(rec Record) []string {
	return []string{
		rec.Phrase,
		rec.Acronym,
		strconv.FormatBool(rec.Options.IncludeArticles),
		strconv.Itoa(rec.Options.MinWordLength),
		rec.Options.maxWordsField(),
		strconv.FormatBool(rec.Options.Lowercase),
		rec.Options.Strategy,
	}
}

// suggestionRows flattens the groups into one row per acronym.
func suggestionRows(s Suggestions) [][]string {
	var rows [][]string
	for _, g := range s.Suggestions.Groups() {
		for _, a := range g.Acronyms {
			rows = append(rows, []string{s.Phrase, g.Name, a})
		}
	}
	return rows
}

func writeRows(w io.Writer, comma rune, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
