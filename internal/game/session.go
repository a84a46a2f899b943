// internal/game/session.go
//
// Session holds the state of one play-through: the root word, the words
// accepted so far (most recent first) and the running score.
//
// State transitions:
//   - not_started → playing on Start/NewGame.
//   - playing → playing on every Submit (state changes only on acceptance).
//   - playing → playing on NewGame (full reset).
//
// A Session is driven by a single player and is not safe for concurrent use.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"
)

// ErrNotStarted is returned by Submit before the first Start/NewGame.
var ErrNotStarted = errors.New("game: session not started")

// Session is the explicit, resettable game state.
type Session struct {
	id        string
	root      string
	used      []string
	score     int
	state     State
	validator *Validator
	pick      func(n int) int
}

// NewSession returns a session in the not_started state.
func NewSession(v *Validator) *Session {
	return &Session{
		validator: v,
		state:     StateNotStarted,
		pick:      randomIndex,
	}
}

// Start resets the session around root.
func (s *Session) Start(root string) {
	s.id = randomID()
	s.root = s.validator.Normalize(root)
	s.used = nil
	s.score = 0
	s.state = StatePlaying
}

// NewGame loads the root words from src and starts over with one chosen
// uniformly at random. On error the session is left untouched.
func (s *Session) NewGame(src WordListSource) error {
	roots, err := src.LoadRootWords()
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	if len(roots) == 0 {
		return errors.New("new game: root word list is empty")
	}
	s.Start(roots[s.pick(len(roots))])
	return nil
}

// Submit validates candidate against the current root word.
// Accepted words are prepended to the used list and add their length to the
// score; rejections leave the session as it was.
func (s *Session) Submit(candidate string) (Result, error) {
	if s.state != StatePlaying {
		return Result{}, ErrNotStarted
	}
	res := s.validator.Validate(candidate, s.root, s.used)
	if !res.Accepted {
		return res, nil
	}
	s.used = append([]string{res.Word}, s.used...)
	s.score += utf8.RuneCountInString(res.Word)
	return res, nil
}

// ID is a random identifier regenerated on every Start.
func (s *Session) ID() string { return s.id }

// Root is the current root word.
func (s *Session) Root() string { return s.root }

// Score is the sum of the lengths of the accepted words.
func (s *Session) Score() int { return s.score }

// State reports whether the session has been started.
func (s *Session) State() State { return s.state }

// UsedWords returns a copy of the accepted words, most recent first.
func (s *Session) UsedWords() []string {
	out := make([]string, len(s.used))
	copy(out, s.used)
	return out
}

// randomIndex returns a cryptographically random index in [0, n).
func randomIndex(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
