package render

import (
	"strconv"

	"acronymcreator/internal/acronym"
)

// Record is a generated acronym together with the inputs that produced it.
type Record struct {
	Phrase  string        `json:"phrase" yaml:"phrase"`
	Acronym string        `json:"acronym" yaml:"acronym"`
	Options RecordOptions `json:"options" yaml:"options"`
}

// RecordOptions mirrors the command line flags. MaxWords is nil when unset
// so JSON and YAML emit null.
type RecordOptions struct {
	IncludeArticles bool   `json:"include_articles" yaml:"include_articles"`
	MinWordLength   int    `json:"min_word_length" yaml:"min_word_length"`
	MaxWords        *int   `json:"max_words" yaml:"max_words"`
	Lowercase       bool   `json:"lowercase" yaml:"lowercase"`
	Strategy        string `json:"strategy" yaml:"strategy"`
}

// NewRecord builds a Record from engine options.
func NewRecord(phrase, result string, opts acronym.Options, s acronym.Strategy) Record {
	var maxWords *int
	if opts.HasMaxWords() {
		n := opts.MaxWords
		maxWords = &n
	}
	if s == "" {
		s = acronym.StrategyBasic
	}
	return Record{
		Phrase:  phrase,
		Acronym: result,
		Options: RecordOptions{
			IncludeArticles: opts.IncludeArticles,
			MinWordLength:   opts.MinWordLength,
			MaxWords:        maxWords,
			Lowercase:       !opts.ForceUppercase,
			Strategy:        string(s),
		},
	}
}

// maxWordsField renders MaxWords for flat formats: "" when unset.
func (o RecordOptions) maxWordsField() string {
	if o.MaxWords == nil {
		return ""
	}
	return strconv.Itoa(*o.MaxWords)
}

// Suggestions is the multi strategy result for one phrase.
type Suggestions struct {
	Phrase      string                    `json:"phrase" yaml:"phrase" toml:"phrase"`
	Suggestions acronym.MultiOptionResult `json:"suggestions" yaml:"suggestions" toml:"suggestions"`
}
