package wordday

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	PredicateSubstring          = "substring"
	PredicateExplicitGuessToken = "explicit-guess-token"

	guessToken = "guess:"
)

// Predicate decides whether a reply's content is a correct guess of word.
type Predicate func(content, word string) bool

func PredicateByName(name string) (Predicate, error) {
	switch name {
	case PredicateSubstring, "":
		return Substring, nil
	case PredicateExplicitGuessToken:
		return ExplicitGuess, nil
	default:
		return nil, fmt.Errorf("unknown win predicate %q", name)
	}
}

// Substring matches when the case-folded content contains the case-folded word.
func Substring(content, word string) bool {
	if word == "" {
		return false
	}
	return strings.Contains(strings.ToLower(content), strings.ToLower(word))
}

// ExplicitGuess matches replies like "guess: Lighthouse!" where the token after
// "guess:" equals the word, ignoring case and surrounding punctuation.
func ExplicitGuess(content, word string) bool {
	if word == "" {
		return false
	}

	lower := strings.ToLower(content)
	for {
		idx := strings.Index(lower, guessToken)
		if idx < 0 {
			return false
		}
		lower = lower[idx+len(guessToken):]

		fields := strings.Fields(lower)
		if len(fields) == 0 {
			return false
		}

		candidate := strings.TrimFunc(fields[0], func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if strings.EqualFold(candidate, word) {
			return true
		}
	}
}
