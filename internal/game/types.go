// internal/game/types.go
//
// Core type definitions for the word scramble game.
// Defines:
//   - Reason: why a candidate word was rejected.
//   - Rejection: the error value carrying a Reason plus alert text.
//   - Result: outcome of validating one candidate.
//   - State: coarse lifecycle of a Session.
//   - SpellChecker / WordListSource: collaborators supplied by the caller.

package game

import "fmt"

// Reason identifies the first validation check a candidate failed.
// Possible values:
//   - "too_short":    fewer than MinLength letters.
//   - "already_used": accepted earlier in the same session.
//   - "not_possible": cannot be spelled from the root word's letters.
//   - "not_real":     not recognised by the SpellChecker.
type Reason string

const (
	ReasonTooShort    Reason = "too_short"
	ReasonAlreadyUsed Reason = "already_used"
	ReasonNotPossible Reason = "not_possible"
	ReasonNotReal     Reason = "not_real"
)

// Rejection is the error returned for a refused candidate.
// Word and Root are filled in when known and only affect the message text;
// errors.Is compares Reasons, so the sentinels below match any Rejection
// with the same Reason.
type Rejection struct {
	Reason Reason
	Word   string
	Root   string
}

var (
	ErrTooShort    = &Rejection{Reason: ReasonTooShort}
	ErrAlreadyUsed = &Rejection{Reason: ReasonAlreadyUsed}
	ErrNotPossible = &Rejection{Reason: ReasonNotPossible}
	ErrNotReal     = &Rejection{Reason: ReasonNotReal}
)

func (r *Rejection) Error() string {
	if r.Word == "" {
		return "word rejected: " + string(r.Reason)
	}
	return fmt.Sprintf("word %q rejected: %s", r.Word, r.Reason)
}

// Is reports whether target is a Rejection with the same Reason.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Reason == r.Reason
}

// Title is the short heading shown to the player.
func (r *Rejection) Title() string {
	switch r.Reason {
	case ReasonTooShort:
		return "Word too short"
	case ReasonAlreadyUsed:
		return "Word used already"
	case ReasonNotPossible:
		return "Word not possible"
	case ReasonNotReal:
		return "Word not recognized"
	}
	return "Word rejected"
}

// Message is the body text shown under Title.
func (r *Rejection) Message() string {
	switch r.Reason {
	case ReasonTooShort:
		return fmt.Sprintf("Words need more than %d letters", MinLength-1)
	case ReasonAlreadyUsed:
		return "Be more original"
	case ReasonNotPossible:
		return fmt.Sprintf("You can't spell that word from '%s'!", r.Root)
	case ReasonNotReal:
		return "You can't just make them up, you know!"
	}
	return ""
}

// Result is the outcome of validating a single candidate.
type Result struct {
	Word     string // Candidate after normalization (lowercased, trimmed).
	Root     string // Root word the candidate was checked against.
	Accepted bool   // True if every check passed.
	Reason   Reason // Empty when Accepted.
}

// Err returns nil for an accepted result, otherwise a *Rejection.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	return &Rejection{Reason: r.Reason, Word: r.Word, Root: r.Root}
}

// State is the lifecycle of a Session. There is no terminal state.
type State string

const (
	StateNotStarted State = "not_started"
	StatePlaying    State = "playing"
)

// SpellChecker decides whether a normalized word is a real word in the
// given language (a BCP 47 tag such as "en").
type SpellChecker interface {
	IsKnownWord(word, language string) bool
}

// WordListSource supplies the candidate root words for a new game.
type WordListSource interface {
	LoadRootWords() ([]string, error)
}
