// internal/tui/controller.go
//
// Controller turns screen events (submit, new game) into session calls and
// produces what the screen should show. It has no tview dependency so the
// behaviour can be tested without a terminal.

package tui

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// Alert is a titled message shown in a modal.
type Alert struct {
	Title   string
	Message string
}

// Row is one accepted word in the score list.
type Row struct {
	Word   string
	Length int
}

// View is a snapshot of everything the screen renders.
type View struct {
	Root  string
	Score int
	Rows  []Row
}

// Controller drives a single session from UI events.
type Controller struct {
	session *game.Session
	source  game.WordListSource
}

// NewController wires a session to the source used for New Game.
func NewController(s *game.Session, src game.WordListSource) *Controller {
	return &Controller{session: s, source: src}
}

// NewGame picks a fresh root word and clears the score.
func (c *Controller) NewGame() error {
	if err := c.session.NewGame(c.source); err != nil {
		log.Error().Err(err).Msg("new game")
		return err
	}
	log.Info().Str("session", c.session.ID()).Str("root", c.session.Root()).Msg("new game")
	return nil
}

// Submit validates input. It reports whether the input field should be
// cleared and, for rejections the player should see, an alert.
//
// Too-short words are dropped without an alert; the input is still cleared.
func (c *Controller) Submit(input string) (clearInput bool, alert *Alert) {
	res, err := c.session.Submit(input)
	if err != nil {
		log.Warn().Err(err).Msg("submit")
		return false, &Alert{Title: "No game", Message: "Start a new game first"}
	}
	ev := log.Debug().Str("session", c.session.ID()).Str("word", res.Word)
	if res.Accepted {
		ev.Int("score", c.session.Score()).Msg("word accepted")
		return true, nil
	}
	ev.Str("reason", string(res.Reason)).Msg("word rejected")

	var rej *game.Rejection
	if !errors.As(res.Err(), &rej) || errors.Is(rej, game.ErrTooShort) {
		return true, nil
	}
	return true, &Alert{Title: rej.Title(), Message: rej.Message()}
}

// View returns the current screen state.
func (c *Controller) View() View {
	used := c.session.UsedWords()
	rows := make([]Row, len(used))
	for i, w := range used {
		rows[i] = Row{Word: w, Length: len([]rune(w))}
	}
	return View{Root: c.session.Root(), Score: c.session.Score(), Rows: rows}
}

// ScoreLabel is the heading above the word list.
func (v View) ScoreLabel() string {
	return fmt.Sprintf("Score: %d", v.Score)
}
