package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/wordscramble/internal/game"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestFileSourceNormalizes(t *testing.T) {
	path := writeList(t, "# roots\nSilkworm\n\n  mountain  \nbad-word\nx1y2\numbrella\n")
	got, err := FileSource{Path: path}.LoadRootWords()
	if err != nil {
		t.Fatalf("LoadRootWords: %v", err)
	}
	want := []string{"silkworm", "mountain", "umbrella"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFileSourceErrors(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}.LoadRootWords()
	if !errors.Is(err, ErrNoRootWords) {
		t.Fatalf("missing file: err = %v, want ErrNoRootWords", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err = %v, want os.ErrNotExist in chain", err)
	}

	_, err = FileSource{Path: writeList(t, "\n# nothing\n\n")}.LoadRootWords()
	if !errors.Is(err, ErrNoRootWords) {
		t.Fatalf("empty file: err = %v, want ErrNoRootWords", err)
	}
}

func TestStaticSource(t *testing.T) {
	got, err := StaticSource{" Alphabet", "", "kingdoms"}.LoadRootWords()
	if err != nil {
		t.Fatalf("LoadRootWords: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"alphabet", "kingdoms"}) {
		t.Fatalf("got %v", got)
	}
	if _, err := (StaticSource{}).LoadRootWords(); !errors.Is(err, ErrNoRootWords) {
		t.Fatalf("err = %v, want ErrNoRootWords", err)
	}
}

func TestFallbackSource(t *testing.T) {
	missing := FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}

	got, err := FallbackSource{Primary: missing, Secondary: StaticSource{"silkworm"}}.LoadRootWords()
	if err != nil {
		t.Fatalf("LoadRootWords: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"silkworm"}) {
		t.Fatalf("got %v", got)
	}

	got, err = FallbackSource{Primary: StaticSource{"mountain"}, Secondary: StaticSource{"silkworm"}}.LoadRootWords()
	if err != nil || !reflect.DeepEqual(got, []string{"mountain"}) {
		t.Fatalf("primary ignored: %v %v", got, err)
	}

	_, err = FallbackSource{Primary: missing, Secondary: StaticSource{}}.LoadRootWords()
	if !errors.Is(err, ErrNoRootWords) {
		t.Fatalf("err = %v, want ErrNoRootWords", err)
	}
}

func TestEmbeddedSource(t *testing.T) {
	roots, err := EmbeddedSource{}.LoadRootWords()
	if err != nil {
		t.Fatalf("LoadRootWords: %v", err)
	}
	if len(roots) == 0 {
		t.Fatal("embedded root list is empty")
	}
	for _, r := range roots {
		if len([]rune(r)) <= game.MinLength-1 {
			t.Fatalf("root %q is too short to play", r)
		}
	}
	roots[0] = "mutated"
	again, _ := EmbeddedSource{}.LoadRootWords()
	if again[0] == "mutated" {
		t.Fatal("EmbeddedSource returned shared slice")
	}
}

func TestDictionaryLookup(t *testing.T) {
	d, err := NewDictionary("en", []string{"Silk", "worm", "# comment", "naïve"})
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3", d.Len())
	}

	tests := []struct {
		word, lang string
		want       bool
	}{
		{"silk", "en", true},
		{"SILK", "en", true},
		{"worm", "en-GB", true},
		{"naïve", "en-US", true},
		{"silky", "en", false},
		{"silk", "fr", false},
		{"silk", "not a tag!", false},
	}
	for _, tt := range tests {
		if got := d.IsKnownWord(tt.word, tt.lang); got != tt.want {
			t.Fatalf("IsKnownWord(%q, %q) = %v, want %v", tt.word, tt.lang, got, tt.want)
		}
	}
}

func TestNewDictionaryRejectsBadTag(t *testing.T) {
	if _, err := NewDictionary("not a tag!", []string{"silk"}); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}

func TestLoadDictionary(t *testing.T) {
	d, err := LoadDictionary("en", "")
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	if !d.IsKnownWord("silk", "en") {
		t.Fatal("embedded dictionary should know silk")
	}
	if d.IsKnownWord("zzzz", "en") {
		t.Fatal("embedded dictionary should not know zzzz")
	}

	d, err = LoadDictionary("en", writeList(t, "kilo\nwork\n"))
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if !d.IsKnownWord("kilo", "en") || d.IsKnownWord("silk", "en") {
		t.Fatal("file dictionary should replace the embedded one")
	}

	if _, err := LoadDictionary("en", writeList(t, "\n")); err == nil {
		t.Fatal("expected error for empty dictionary")
	}
}

func TestEmbeddedDictionaryKnowsCommonWords(t *testing.T) {
	d, err := LoadDictionary("en", "")
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	v := game.NewValidator(d, "en")

	playable := map[string][]string{
		"silkworm": {"slim", "risk", "lower", "silk", "milk", "worm", "word", "world", "skim", "soil"},
		"painters": {"paint", "stain", "train", "spine", "print", "pastier", "repaint"},
		"mountain": {"mount", "amount", "nation", "unit", "into"},
		"triangle": {"angle", "alert", "grain", "tiger", "trail"},
		"shoulder": {"should", "hold", "older", "house", "shore"},
	}
	for root, list := range playable {
		for _, w := range list {
			if !d.IsKnownWord(w, "en") {
				t.Fatalf("dictionary does not know %q", w)
			}
			if game.IsPossible(w, root) {
				if res := v.Validate(w, root, nil); !res.Accepted {
					t.Fatalf("Validate(%q, %q) = %q", w, root, res.Reason)
				}
			}
		}
	}
	if d.Len() < 3000 {
		t.Fatalf("embedded dictionary has %d words, want a general vocabulary", d.Len())
	}
}

func TestTurkishDictionaryWithValidator(t *testing.T) {
	d, err := NewDictionary("tr", []string{"ılık", "inci"})
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	v := game.NewValidator(d, "tr")
	if res := v.Validate("ILIK", "ılıklar", nil); !res.Accepted {
		t.Fatalf("ILIK: %q as %q", res.Reason, res.Word)
	}
	if res := v.Validate("İNCİ", "incirli", nil); !res.Accepted {
		t.Fatalf("İNCİ: %q as %q", res.Reason, res.Word)
	}
}

// The bundled lists play the documented scenarios end to end.
func TestEmbeddedListsWithValidator(t *testing.T) {
	d, err := LoadDictionary("en", "")
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	s := game.NewSession(game.NewValidator(d, "en"))
	s.Start("silkworm")

	res, err := s.Submit("silk")
	if err != nil || !res.Accepted || s.Score() != 4 {
		t.Fatalf("silk: %+v err %v score %d", res, err, s.Score())
	}
	if res, _ := s.Submit("silky"); res.Reason != game.ReasonNotPossible {
		t.Fatalf("silky: %q", res.Reason)
	}
	if res, _ := s.Submit("silk"); res.Reason != game.ReasonAlreadyUsed {
		t.Fatalf("silk again: %q", res.Reason)
	}
	if res, _ := s.Submit("wilk"); res.Reason != game.ReasonNotReal {
		t.Fatalf("wilk: %q", res.Reason)
	}
}
