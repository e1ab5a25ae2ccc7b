package acronym

// Options controls word selection and case folding.
//
// Options is a plain value; pass it by value and derive variants with the
// With* helpers instead of mutating a shared copy.
type Options struct {
	// IncludeArticles keeps stop words such as "the" and "of".
	IncludeArticles bool
	// MinWordLength drops words with fewer runes. Must be >= 1.
	MinWordLength int
	// MaxWords caps the number of words that contribute a fragment.
	// Zero means no cap.
	MaxWords int
	// ForceUppercase folds the result to upper case, otherwise lower case.
	ForceUppercase bool
}

// DefaultMinWordLength is the minimum word length used by DefaultOptions.
const DefaultMinWordLength = 2

// DefaultOptions returns articles excluded, minimum length 2, no word cap and
// upper case output.
func DefaultOptions() Options {
	return Options{
		IncludeArticles: false,
		MinWordLength:   DefaultMinWordLength,
		MaxWords:        0,
		ForceUppercase:  true,
	}
}

// WithArticles returns a copy of o with IncludeArticles set.
func (o Options) WithArticles(include bool) Options {
	o.IncludeArticles = include
	return o
}

// WithMaxWords returns a copy of o with the word cap set. n <= 0 removes the cap.
func (o Options) WithMaxWords(n int) Options {
	if n < 0 {
		n = 0
	}
	o.MaxWords = n
	return o
}

// WithUppercase returns a copy of o with ForceUppercase set.
func (o Options) WithUppercase(upper bool) Options {
	o.ForceUppercase = upper
	return o
}

// HasMaxWords reports whether a word cap is set.
func (o Options) HasMaxWords() bool {
	return o.MaxWords > 0
}

// truncate applies MaxWords to an already filtered word list.
func (o Options) truncate(words []string) []string {
	if o.HasMaxWords() && len(words) > o.MaxWords {
		return words[:o.MaxWords]
	}
	return words
}
