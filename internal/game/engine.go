// internal/game/engine.go
//
// Word validation for a word scramble session.
// Responsibilities:
//   - Normalize candidates (lowercase, trim surrounding whitespace).
//   - Apply the acceptance checks in a fixed order; the first failure wins:
//     length → originality → feasibility → dictionary.
//
// Notes:
//   - Lowercasing follows the configured language (Turkish dotless i etc.),
//     the same rule the dictionary uses.
//   - Feasibility is a bag subtraction: each root letter can be used once.
//   - A candidate equal to the root word is not special-cased; it is accepted
//     when the dictionary knows it.
//   - Lengths are counted in runes.
package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MinLength is the shortest accepted candidate.
	MinLength = 4

	// DefaultLanguage is passed to the SpellChecker when none is configured.
	DefaultLanguage = "en"
)

// Validator checks candidates against a root word and the words already used.
// It holds no per-session state, but its case mapper is not safe for
// concurrent use.
type Validator struct {
	checker  SpellChecker
	language string
	lower    cases.Caser
}

// NewValidator builds a Validator backed by checker.
// An empty language falls back to DefaultLanguage; a tag that does not parse
// is still handed to the checker but lowercases with neutral rules.
func NewValidator(checker SpellChecker, lang string) *Validator {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return &Validator{checker: checker, language: lang, lower: cases.Lower(tag)}
}

// Language reports the tag handed to the SpellChecker.
func (v *Validator) Language() string { return v.language }

// Validate normalizes candidate and runs the checks in order.
// usedWords is only read.
func (v *Validator) Validate(candidate, root string, usedWords []string) Result {
	word := v.Normalize(candidate)
	res := Result{Word: word, Root: root}

	switch {
	case utf8.RuneCountInString(word) < MinLength:
		res.Reason = ReasonTooShort
	case !isOriginal(word, usedWords):
		res.Reason = ReasonAlreadyUsed
	case !IsPossible(word, root):
		res.Reason = ReasonNotPossible
	case !v.isReal(word):
		res.Reason = ReasonNotReal
	default:
		res.Accepted = true
	}
	return res
}

// Normalize strips surrounding whitespace and newlines from s and lowercases
// it with the validator's language rules.
func (v *Validator) Normalize(s string) string {
	return v.lower.String(strings.TrimSpace(s))
}

// IsPossible reports whether word can be spelled from root's letters,
// using each letter of root at most once.
//
// A copy of root's runes acts as the remaining pool; every letter of word
// removes one matching rune from it. A letter with no match left fails.
func IsPossible(word, root string) bool {
	pool := []rune(root)
	for _, r := range word {
		i := indexRune(pool, r)
		if i < 0 {
			return false
		}
		pool = append(pool[:i], pool[i+1:]...)
	}
	return true
}

// isOriginal reports whether word has not been accepted yet.
func isOriginal(word string, usedWords []string) bool {
	for _, w := range usedWords {
		if w == word {
			return false
		}
	}
	return true
}

// isReal asks the SpellChecker. A Validator without a checker knows no words.
func (v *Validator) isReal(word string) bool {
	if v.checker == nil {
		return false
	}
	return v.checker.IsKnownWord(word, v.language)
}

// indexRune returns the first index of r in pool, or -1.
func indexRune(pool []rune, r rune) int {
	for i, p := range pool {
		if p == r {
			return i
		}
	}
	return -1
}
