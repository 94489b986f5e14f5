// internal/app/game.go
package app

import (
	"fmt"

	"minesweeper/internal/board"
	"minesweeper/internal/event"
	"minesweeper/internal/utils"

	"github.com/sirupsen/logrus"
)

// Params — параметры поля, неизменные в течение всей сессии.
type Params struct {
	Rows  int
	Cols  int
	Mines int
}

// Game связывает поле, сессию и ввод. Все методы вызываются из одного игрового цикла.
type Game struct {
	layout          utils.Layout
	board           *board.Board
	session         Session
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
}

// NewGame создаёт игру и первое поле. Ошибка оборачивает board.ErrInvalidConfiguration.
func NewGame(params Params, layout utils.Layout, rng *utils.PRNGService, dispatcher *event.Dispatcher, log logrus.FieldLogger) (*Game, error) {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if layout.Scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be positive, got %d", board.ErrInvalidConfiguration, layout.Scale)
	}

	b, err := board.New(params.Rows, params.Cols, params.Mines, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		layout:          layout,
		board:           b,
		session:         NewSession(),
		Rng:             rng,
		EventDispatcher: dispatcher,
		log:             log,
	}
	g.log.WithFields(logrus.Fields{
		"rows":  params.Rows,
		"cols":  params.Cols,
		"mines": params.Mines,
		"seed":  rng.Seed(),
	}).Info("new game")
	return g, nil
}

// Доступ к состоянию игры для отрисовки.
func (g *Game) Board() *board.Board  { return g.board }
func (g *Game) Session() Session     { return g.session }
func (g *Game) Layout() utils.Layout { return g.layout }
func (g *Game) Running() bool        { return g.session.Running }

func (g *Game) geometry() Geometry {
	return Geometry{Rows: g.board.Rows(), Cols: g.board.Cols(), Layout: g.layout}
}

// Handle полностью обрабатывает одно входное событие.
func (g *Game) Handle(in Input) {
	next, cmd := Transition(g.session, in, g.geometry())

	switch cmd.Kind {
	case CommandNone:
		g.session = next

	case CommandQuit:
		g.session = next
		g.log.Info("quit requested")
		g.EventDispatcher.Dispatch(event.Event{Type: event.QuitRequested})

	case CommandRestart:
		b, err := g.board.Reset()
		if err != nil {
			g.log.WithError(err).Error("unable to restart")
			return
		}
		g.board = b
		g.session = next
		g.log.WithFields(logrus.Fields{
			"rows":  b.Rows(),
			"cols":  b.Cols(),
			"mines": b.Mines(),
		}).Debug("board reset")
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})

	case CommandReveal:
		outcome := g.board.Reveal(cmd.Row, cmd.Col)
		g.session = Settle(next, outcome)
		g.afterReveal(cmd, outcome)

	case CommandFlag:
		g.session = next
		if g.board.ToggleFlag(cmd.Row, cmd.Col) {
			c, _ := g.board.Cell(cmd.Row, cmd.Col)
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.FlagToggled,
				Data: event.CellData{Row: cmd.Row, Col: cmd.Col, Flagged: c.Flagged},
			})
		}
	}
}

func (g *Game) afterReveal(cmd Command, outcome board.Outcome) {
	if outcome == board.NoOp {
		return
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.CellRevealed,
		Data: event.CellData{Row: cmd.Row, Col: cmd.Col, Outcome: outcome.String()},
	})

	switch outcome {
	case board.HitMine:
		g.EventDispatcher.Dispatch(event.Event{Type: event.MineHit, Data: event.CellData{Row: cmd.Row, Col: cmd.Col}})
	case board.Won:
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon})
	}

	if g.session.Finished {
		g.log.Debugf("final board:\n%s", g.board)
	}
}
