package acronym

import "strings"

// creativeMaxWords is the word cap of the shortened creative variant.
const creativeMaxWords = 3

// MultiOptionResult groups candidate acronyms by how they were produced.
// Every slice is non-nil so encoders emit [] rather than null.
type MultiOptionResult struct {
	Basic        []string `json:"basic" yaml:"basic" toml:"basic"`
	WithArticles []string `json:"with_articles" yaml:"with_articles" toml:"with_articles"`
	Creative     []string `json:"creative" yaml:"creative" toml:"creative"`
	Syllable     []string `json:"syllable" yaml:"syllable" toml:"syllable"`
}

// Empty reports whether no strategy produced an acronym.
func (m MultiOptionResult) Empty() bool {
	return len(m.Basic) == 0 && len(m.WithArticles) == 0 &&
		len(m.Creative) == 0 && len(m.Syllable) == 0
}

// Group is one named entry of a MultiOptionResult.
type Group struct {
	Name     string
	Acronyms []string
}

// Groups returns the four entries in their fixed order.
func (m MultiOptionResult) Groups() []Group {
	return []Group{
		{Name: "basic", Acronyms: m.Basic},
		{Name: "with_articles", Acronyms: m.WithArticles},
		{Name: "creative", Acronyms: m.Creative},
		{Name: "syllable", Acronyms: m.Syllable},
	}
}

func emptyMultiOptionResult() MultiOptionResult {
	return MultiOptionResult{
		Basic:        []string{},
		WithArticles: []string{},
		Creative:     []string{},
		Syllable:     []string{},
	}
}

// GenerateMultipleOptions runs several strategies over phrase with default
// options and collects the distinct results.
//
// creative holds the lower case variant when it differs from basic ignoring
// case, followed by the three word variant when it is non-empty and differs
// from basic exactly. Both are only attempted when basic is non-empty.
func GenerateMultipleOptions(phrase string) MultiOptionResult {
	res := emptyMultiOptionResult()
	if strings.TrimSpace(phrase) == "" {
		return res
	}

	defaults := DefaultOptions()

	basic := CreateBasicAcronym(phrase, defaults)
	res.Basic = single(basic)
	res.WithArticles = single(CreateBasicAcronym(phrase, defaults.WithArticles(true)))

	if basic != "" {
		lower := CreateBasicAcronym(phrase, defaults.WithUppercase(false))
		if strings.ToLower(lower) != strings.ToLower(basic) {
			res.Creative = append(res.Creative, lower)
		}

		limited := CreateBasicAcronym(phrase, defaults.WithMaxWords(creativeMaxWords))
		if limited != "" && limited != basic {
			res.Creative = append(res.Creative, limited)
		}
	}

	res.Syllable = single(CreateSyllableAcronym(phrase, defaults))
	return res
}

func single(s string) []string {
	if s == "" {
		return []string{}
	}
	return []string{s}
}
