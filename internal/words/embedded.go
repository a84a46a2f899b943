// internal/words/embedded.go
//
// Bundled word lists, wrapping assets.RootWords/DictionaryWords.
//
// Notes:
//   • Data is lazily initialized once via sync.Once, reading from embedded files.
//   • Entries go through the same normalization as file-based lists.

package words

import (
	"fmt"
	"sync"

	"github.com/robalobadob/wordscramble/assets"
)

var (
	embeddedOnce  sync.Once // ensures initEmbedded runs once
	embeddedRoots []string  // bundled root words
	embeddedDict  []string  // bundled English dictionary
	embeddedErr   error     // init error, if any
)

// initEmbedded loads both bundled lists into memory.
func initEmbedded() {
	roots, err := assets.RootWords()
	if err != nil {
		embeddedErr = fmt.Errorf("load embedded root words: %w", err)
		return
	}
	dict, err := assets.DictionaryWords()
	if err != nil {
		embeddedErr = fmt.Errorf("load embedded dictionary: %w", err)
		return
	}
	embeddedRoots = normalizeList(roots)
	embeddedDict = normalizeList(dict)
}

// EmbeddedSource serves the root words compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) LoadRootWords() ([]string, error) {
	embeddedOnce.Do(initEmbedded)
	if embeddedErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRootWords, embeddedErr)
	}
	if len(embeddedRoots) == 0 {
		return nil, fmt.Errorf("%w: embedded list is empty", ErrNoRootWords)
	}
	return append([]string(nil), embeddedRoots...), nil
}

// EmbeddedDictionaryWords returns the bundled English word list.
func EmbeddedDictionaryWords() ([]string, error) {
	embeddedOnce.Do(initEmbedded)
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	return embeddedDict, nil
}
