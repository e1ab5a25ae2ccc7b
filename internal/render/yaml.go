package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlRecord lays out a Record with keys in sorted order at every level.
type yamlRecord struct {
	Acronym string      `yaml:"acronym"`
	Options yamlOptions `yaml:"options"`
	Phrase  string      `yaml:"phrase"`
}

type yamlOptions struct {
	IncludeArticles bool   `yaml:"include_articles"`
	Lowercase       bool   `yaml:"lowercase"`
	MaxWords        *int   `yaml:"max_words"`
	MinWordLength   int    `yaml:"min_word_length"`
	Strategy        string `yaml:"strategy"`
}

// yamlSuggestions uses a map so yaml.v3 emits the strategy keys sorted.
type yamlSuggestions struct {
	Phrase      string              `yaml:"phrase"`
	Suggestions map[string][]string `yaml:"suggestions"`
}

func init() {
	RegisterRecord(FormatYAML, func(w io.Writer, rec Record) error { return writeYAML(w, toYAML(rec)) })
	RegisterSuggestions(FormatYAML, func(w io.Writer, s Suggestions) error {
		doc := yamlSuggestions{Phrase: s.Phrase, Suggestions: map[string][]string{}}
		for _, g := range s.Suggestions.Groups() {
			acronyms := g.Acronyms
			if acronyms == nil {
				acronyms = []string{}
			}
			doc.Suggestions[g.Name] = acronyms
		}
		return writeYAML(w, doc)
	})
	RegisterBatch(FormatYAML, func(w io.Writer, recs []Record) error {
		docs := make([]yamlRecord, 0, len(recs))
		for _, rec := range recs {
			docs = append(docs, toYAML(rec))
		}
		return writeYAML(w, docs)
	})
}

func toYAML(rec Record) yamlRecord {
	return yamlRecord{
		Acronym: rec.Acronym,
		Options: yamlOptions{
			IncludeArticles: rec.Options.IncludeArticles,
			Lowercase:       rec.Options.Lowercase,
			MaxWords:        rec.Options.MaxWords,
			MinWordLength:   rec.Options.MinWordLength,
			Strategy:        rec.Options.Strategy,
		},
		Phrase: rec.Phrase,
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
