package acronym

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names a fragment extraction rule.
type Strategy string

const (
	// StrategyBasic takes the first letter of each word.
	StrategyBasic Strategy = "basic"
	// StrategySyllable takes a 1-3 rune syllable approximation of each word.
	StrategySyllable Strategy = "syllable"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists the supported strategies in display order.
var Strategies = []Strategy{StrategyBasic, StrategySyllable}

// ParseStrategy resolves a strategy name, ignoring case and surrounding space.
// An empty name selects StrategyBasic.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyBasic:
		return StrategyBasic, nil
	case StrategySyllable:
		return StrategySyllable, nil
	default:
		return "", fmt.Errorf("%w %q (valid: %v)", ErrUnknownStrategy, name, Strategies)
	}
}

// Generate runs the extraction rule selected by s.
func Generate(phrase string, opts Options, s Strategy) string {
	if s == StrategySyllable {
		return CreateSyllableAcronym(phrase, opts)
	}
	return CreateBasicAcronym(phrase, opts)
}

func (s Strategy) String() string { return string(s) }
