// internal/terminal/frontend.go
package terminal

import (
	"context"
	"fmt"

	"minesweeper/internal/app"
	"minesweeper/internal/board"
	"minesweeper/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	hiddenStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	flagStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	mineStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	emptyStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	statusStyle  = tcell.StyleDefault.Reverse(true)
	countPalette = []tcell.Color{
		tcell.ColorBlue, tcell.ColorGreen, tcell.ColorRed, tcell.ColorNavy,
		tcell.ColorMaroon, tcell.ColorTeal, tcell.ColorWhite, tcell.ColorGray,
	}
)

// Frontend — терминальный интерфейс игры поверх tcell.
type Frontend struct {
	screen tcell.Screen
	game   *app.Game
	input  inputMapper
	log    logrus.FieldLogger
}

// New создаёт интерфейс для уже инициализированного экрана.
func New(screen tcell.Screen, game *app.Game, log logrus.FieldLogger) *Frontend {
	return &Frontend{
		screen: screen,
		game:   game,
		log:    log,
	}
}

// HandleEvent обрабатывает одно событие терминала.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		f.screen.Sync()
		return
	}
	in, ok := f.input.translate(ev)
	if !ok {
		return
	}
	f.game.Handle(in)
}

// Run обрабатывает события, пока игрок не выйдет или не отменится ctx.
// Одна горутина только читает события tcell, вся игровая логика
// выполняется в цикле второй горутины.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, config.TerminalEventBuf)
	done := make(chan struct{})
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case <-done:
				return nil
			default:
			}
			select {
			case <-done:
				return nil
			case events <- ev:
			}
		}
	})

	g.Go(func() error {
		defer func() {
			close(done)
			// будим PollEvent, чтобы читатель увидел done
			_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()

		f.Draw()
		for {
			select {
			case <-gCtx.Done():
				f.log.Debug("terminal loop cancelled")
				return nil
			case ev := <-events:
				f.HandleEvent(ev)
				if !f.game.Running() {
					return nil
				}
				f.Draw()
			}
		}
	})

	return g.Wait()
}

// Draw перерисовывает строку статуса и поле.
func (f *Frontend) Draw() {
	f.screen.Clear()

	b := f.game.Board()
	f.drawStatus(b)

	layout := f.game.Layout()
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			c, _ := b.Cell(row, col)
			glyph, style := cellGlyph(c)
			x, y := layout.CellToScreen(row, col)
			for dy := 0; dy < layout.Scale; dy++ {
				for dx := 0; dx < layout.Scale; dx++ {
					r := ' '
					if dx == 0 && dy == 0 {
						r = glyph
					}
					f.screen.SetContent(x+dx, y+dy, r, nil, style)
				}
			}
		}
	}

	f.screen.Show()
}

func (f *Frontend) drawStatus(b *board.Board) {
	var phase string
	switch f.game.Session().Phase() {
	case app.PhaseWon:
		phase = "You won!"
	case app.PhaseLost:
		phase = "You lost!"
	default:
		phase = "playing"
	}
	status := fmt.Sprintf(" Mines: %d | %s | Enter: restart  q: quit ", b.Remaining(), phase)
	for i, r := range []rune(status) {
		f.screen.SetContent(i, 0, r, nil, statusStyle)
	}
}

func cellGlyph(c board.Cell) (rune, tcell.Style) {
	switch {
	case !c.Revealed && c.Flagged:
		return 'F', flagStyle
	case !c.Revealed:
		return '#', hiddenStyle
	case c.IsMine():
		return '*', mineStyle
	case c.Adjacent == 0:
		return '.', emptyStyle
	default:
		return rune('0' + c.Adjacent), tcell.StyleDefault.Foreground(countPalette[c.Adjacent-1]).Bold(true)
	}
}
