// Package assets bundles the default word lists into the binary.
// Lines are returned raw; callers normalize them.
package assets

import (
	"embed"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

func lines(name string) ([]string, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(b), "\n"), nil
}

// RootWords returns the bundled list of root words a game can start from.
func RootWords() ([]string, error) {
	return lines("start.txt")
}

// DictionaryWords returns the bundled English word list.
func DictionaryWords() ([]string, error) {
	return lines("dictionary.txt")
}
