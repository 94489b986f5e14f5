// cmd/minesweeper-term/main.go
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"minesweeper/internal/app"
	"minesweeper/internal/config"
	"minesweeper/internal/event"
	"minesweeper/internal/logging"
	"minesweeper/internal/terminal"
	"minesweeper/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	// Терминал занят полем, поэтому лог пишется только в файл (-log-file).
	log, err := logging.New(cfg, io.Discard)
	if err != nil {
		logrus.Fatal(err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	game, err := app.NewGame(
		app.Params{Rows: cfg.Rows, Cols: cfg.Cols, Mines: cfg.Mines},
		utils.Layout{Scale: config.TerminalScale, OffsetY: config.TerminalOffsetY},
		utils.NewPRNGService(cfg.Seed),
		event.NewDispatcher(),
		log,
	)
	if err != nil {
		logrus.Fatal("unable to create game: ", err)
	}
	app.NewGameEventListener(game, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.Fatal("unable to open terminal: ", err)
	}
	if err := screen.Init(); err != nil {
		logrus.Fatal("unable to init terminal: ", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.New(screen, game, log).Run(ctx)
	screen.Fini()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Info("bye")
}
