// internal/words/words.go
//
// Provides the root word sources a game can start from.
//
// Responsibilities:
//   - Read newline-delimited word lists from disk or from the embedded assets.
//   - Normalize entries (trim, lowercase) and drop blanks, comments and
//     anything that is not made only of letters.
//   - Offer a fallback source so a bad configured file degrades to the
//     bundled list instead of aborting startup.
//
// Every source satisfies game.WordListSource. Failures wrap ErrNoRootWords.
//
// Environment (read by main through internal/config):
//   WORDS_ROOT_FILE=/path/to/start.txt

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNoRootWords is wrapped by every root word loading failure.
var ErrNoRootWords = errors.New("words: no root words available")

// FileSource loads root words from a newline-delimited file.
type FileSource struct {
	Path string
}

// LoadRootWords reads the file on every call so edits show up on New Game.
func (f FileSource) LoadRootWords() ([]string, error) {
	list, err := readWordFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRootWords, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s has no usable words", ErrNoRootWords, f.Path)
	}
	return list, nil
}

// StaticSource serves a fixed in-memory list.
type StaticSource []string

func (s StaticSource) LoadRootWords() ([]string, error) {
	list := normalizeList(s)
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: static list is empty", ErrNoRootWords)
	}
	return list, nil
}

// FallbackSource tries Primary and, when it fails, Secondary.
type FallbackSource struct {
	Primary   game.WordListSource
	Secondary game.WordListSource
}

func (f FallbackSource) LoadRootWords() ([]string, error) {
	list, err := f.Primary.LoadRootWords()
	if err == nil {
		return list, nil
	}
	log.Warn().Err(err).Msg("root word source failed, using fallback")
	list, ferr := f.Secondary.LoadRootWords()
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	return list, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only words made of letters.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// normalizeList applies normalizeWord to every entry, dropping rejects.
func normalizeList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		if w, ok := normalizeWord(line); ok {
			out = append(out, w)
		}
	}
	return out
}

// normalizeWord trims and lowercases a line. Blank lines, "#" comments and
// entries containing non-letters are rejected.
func normalizeWord(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s consists only of letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
