// internal/words/dictionary.go
//
// Dictionary is the word-list backed game.SpellChecker.
//
// A Dictionary is bound to one BCP 47 language. Lookups for a tag whose base
// language differs (e.g. "fr" against an English list) never match, while
// regional variants ("en-GB", "en-US") share the base list. Words are folded
// with the dictionary language's lowercase rules before lookup.
//
// Environment (read by main through internal/config):
//   WORDS_DICTIONARY_FILE=/path/to/dictionary.txt
//   WORDS_LANGUAGE=en

package words

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
)

var _ game.SpellChecker = (*Dictionary)(nil)

// Dictionary is a set of known words for a single language.
// It is not safe for concurrent use: the case mapper carries state.
type Dictionary struct {
	tag   language.Tag
	base  language.Base
	lower cases.Caser
	set   map[string]struct{}
}

// NewDictionary builds a dictionary for lang from list.
// Entries are normalized like any other word list.
func NewDictionary(lang string, list []string) (*Dictionary, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("dictionary language %q: %w", lang, err)
	}
	base, _ := tag.Base()
	d := &Dictionary{
		tag:   tag,
		base:  base,
		lower: cases.Lower(tag),
		set:   make(map[string]struct{}, len(list)),
	}
	for _, w := range normalizeList(list) {
		d.set[d.lower.String(w)] = struct{}{}
	}
	return d, nil
}

// LoadDictionary reads the dictionary at path, or the embedded English list
// when path is empty.
func LoadDictionary(lang, path string) (*Dictionary, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = EmbeddedDictionaryWords()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("load dictionary: no words in %q", path)
	}
	return NewDictionary(lang, list)
}

// IsKnownWord reports whether word is in the dictionary for language.
func (d *Dictionary) IsKnownWord(word, lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	if base, _ := tag.Base(); base != d.base {
		return false
	}
	_, ok := d.set[d.lower.String(word)]
	return ok
}

// Language is the tag the dictionary was built for.
func (d *Dictionary) Language() language.Tag { return d.tag }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.set) }
