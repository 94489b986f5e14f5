// cmd/minesweeper/main.go
package main

import (
	"os"

	"minesweeper/internal/app"
	"minesweeper/internal/config"
	"minesweeper/internal/event"
	"minesweeper/internal/logging"
	"minesweeper/internal/state"
	"minesweeper/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg, os.Stderr)
	if err != nil {
		logrus.Fatal(err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	layout := utils.Layout{Scale: cfg.Scale}
	dispatcher := event.NewDispatcher()
	game, err := app.NewGame(
		app.Params{Rows: cfg.Rows, Cols: cfg.Cols, Mines: cfg.Mines},
		layout,
		utils.NewPRNGService(cfg.Seed),
		dispatcher,
		log,
	)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}
	app.NewGameEventListener(game, log)

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(game, basicfont.Face7x13, log))

	width, height := layout.Size(cfg.Rows, cfg.Cols)
	appGame := &AppGame{
		stateMachine: sm,
		width:        width,
		height:       height,
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
	sm.SetState(nil)
	log.Info("bye")
}
