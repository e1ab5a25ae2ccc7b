package render

import (
	"io"

	"github.com/BurntSushi/toml"
)

// tomlRecord is the flat TOML layout. TOML has no null, so an unset
// max_words is written as an empty string.
type tomlRecord struct {
	Phrase          string `toml:"phrase"`
	Acronym         string `toml:"acronym"`
	IncludeArticles bool   `toml:"include_articles"`
	MinWordLength   int    `toml:"min_word_length"`
	MaxWords        any    `toml:"max_words"`
	Lowercase       bool   `toml:"lowercase"`
	Strategy        string `toml:"strategy"`
}

type tomlBatch struct {
	Acronyms []tomlRecord `toml:"acronyms"`
}

func init() {
	RegisterRecord(FormatTOML, func(w io.Writer, rec Record) error {
		return toml.NewEncoder(w).Encode(toTOML(rec))
	})
	RegisterSuggestions(FormatTOML, func(w io.Writer, s Suggestions) error {
		return toml.NewEncoder(w).Encode(s)
	})
	RegisterBatch(FormatTOML, func(w io.Writer, recs []Record) error {
		doc := tomlBatch{Acronyms: make([]tomlRecord, 0, len(recs))}
		for _, rec := range recs {
			doc.Acronyms = append(doc.Acronyms, toTOML(rec))
		}
		return toml.NewEncoder(w).Encode(doc)
	})
}

func toTOML(rec Record) tomlRecord {
	var maxWords any = ""
	if rec.Options.MaxWords != nil {
		maxWords = *rec.Options.MaxWords
	}
	return tomlRecord{
		Phrase:          rec.Phrase,
		Acronym:         rec.Acronym,
		IncludeArticles: rec.Options.IncludeArticles,
		MinWordLength:   rec.Options.MinWordLength,
		MaxWords:        maxWords,
		Lowercase:       rec.Options.Lowercase,
		Strategy:        rec.Options.Strategy,
	}
}
