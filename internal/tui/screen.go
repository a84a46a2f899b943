// internal/tui/screen.go
//
// Terminal screen for the word scramble game.
// Layout (top to bottom):
//   - header: the root word.
//   - input: "Enter your word", submitted with Enter.
//   - New Game button (also Ctrl-N).
//   - score box: "Score: N" titled list of accepted words, most recent first.
//
// Rejections open a modal alert; Esc or Ctrl-C quits.

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	pageMain  = "main"
	pageAlert = "alert"
)

// Screen owns the tview application and its widgets.
type Screen struct {
	ctrl   *Controller
	app    *tview.Application
	pages  *tview.Pages
	header *tview.TextView
	input  *tview.InputField
	button *tview.Button
	words  *tview.TextView
	alert  *tview.Modal
}

// NewScreen builds the widgets around ctrl. Call Run to start.
func NewScreen(ctrl *Controller) *Screen {
	s := &Screen{ctrl: ctrl, app: tview.NewApplication()}

	s.header = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	s.input = tview.NewInputField().
		SetLabel("Enter your word: ").
		SetFieldWidth(0).
		SetDoneFunc(s.onInputDone)

	s.button = tview.NewButton("New Game").SetSelectedFunc(s.newGame)

	s.words = tview.NewTextView().SetDynamicColors(true)
	s.words.SetBorder(true)

	s.alert = tview.NewModal().
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			s.pages.HidePage(pageAlert)
			s.app.SetFocus(s.input)
		})

	controls := tview.NewFlex().
		AddItem(s.input, 0, 1, true).
		AddItem(s.button, 12, 0, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.header, 1, 0, false).
		AddItem(controls, 1, 0, true).
		AddItem(s.words, 0, 1, false)

	s.pages = tview.NewPages().
		AddPage(pageMain, layout, true, true).
		AddPage(pageAlert, s.alert, false, false)

	s.app.SetInputCapture(s.onKey)
	return s
}

// Run starts a game and blocks until the player quits.
func (s *Screen) Run() error {
	s.newGame()
	return s.app.SetRoot(s.pages, true).EnableMouse(true).Run()
}

// onKey handles application-wide shortcuts.
func (s *Screen) onKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyCtrlN:
		s.newGame()
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		if s.input.HasFocus() {
			s.app.SetFocus(s.button)
		} else {
			s.app.SetFocus(s.input)
		}
		return nil
	}
	return ev
}

// onInputDone submits on Enter and quits on Escape.
func (s *Screen) onInputDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		clearInput, alert := s.ctrl.Submit(s.input.GetText())
		if clearInput {
			s.input.SetText("")
		}
		s.render()
		if alert != nil {
			s.showAlert(*alert)
		}
	case tcell.KeyEscape:
		s.app.Stop()
	}
}

func (s *Screen) newGame() {
	s.pages.HidePage(pageAlert)
	if err := s.ctrl.NewGame(); err != nil {
		s.showAlert(Alert{Title: "Could not start a game", Message: err.Error()})
		return
	}
	s.input.SetText("")
	s.render()
	s.app.SetFocus(s.input)
}

func (s *Screen) showAlert(a Alert) {
	s.alert.SetText(a.Title + "\n\n" + a.Message)
	s.pages.ShowPage(pageAlert)
	s.app.SetFocus(s.alert)
}

// render copies the controller's view into the widgets.
func (s *Screen) render() {
	v := s.ctrl.View()
	s.header.SetText("[::b]" + strings.ToUpper(v.Root))
	s.words.SetTitle(" " + v.ScoreLabel() + " ")
	s.words.SetText(formatRows(v.Rows))
}

// formatRows renders one "(n) word" line per accepted word.
func formatRows(rows []Row) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "[yellow](%d)[-] %s\n", r.Length, r.Word)
	}
	return b.String()
}
