// internal/terminal/input.go
package terminal

import (
	"minesweeper/internal/app"

	"github.com/gdamore/tcell/v2"
)

// inputMapper переводит события tcell в app.Input.
// tcell присылает события мыши и на нажатие, и на движение с зажатой кнопкой,
// и на отпускание, поэтому нажатием считается только появление кнопки в маске.
type inputMapper struct {
	buttons tcell.ButtonMask
}

func (m *inputMapper) translate(ev tcell.Event) (app.Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return app.Quit(), true
		case tcell.KeyEnter:
			return app.Restart(), true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return app.Quit(), true
			}
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons &^ m.buttons
		m.buttons = buttons

		x, y := ev.Position()
		switch {
		case pressed&tcell.ButtonPrimary != 0:
			return app.Press(app.ButtonPrimary, x, y), true
		case pressed&tcell.ButtonSecondary != 0:
			return app.Press(app.ButtonSecondary, x, y), true
		}
	}

	return app.Input{}, false
}
