// internal/app/listener.go
package app

import (
	"minesweeper/internal/event"

	"github.com/sirupsen/logrus"
)

// GameEventListener пишет игровые события в лог.
type GameEventListener struct {
	game *Game
	log  logrus.FieldLogger
}

// NewGameEventListener подписывает слушатель на все события игры.
func NewGameEventListener(game *Game, log logrus.FieldLogger) *GameEventListener {
	l := &GameEventListener{game: game, log: log}
	game.EventDispatcher.Subscribe(l, event.AllTypes...)
	return l
}

// OnEvent пишет событие в лог: изменения поля на уровне Debug, итоги раунда на Info.
func (l *GameEventListener) OnEvent(e event.Event) {
	entry := l.log.WithField("event", e.Type)
	if data, ok := e.Data.(event.CellData); ok {
		entry = entry.WithFields(logrus.Fields{"row": data.Row, "col": data.Col})
	}

	switch e.Type {
	case event.CellRevealed:
		outcome := ""
		if data, ok := e.Data.(event.CellData); ok {
			outcome = data.Outcome
		}
		entry.WithFields(logrus.Fields{
			"outcome":  outcome,
			"revealed": l.game.Board().RevealedCount(),
		}).Debug("board changed")
	case event.FlagToggled:
		flagged := false
		if data, ok := e.Data.(event.CellData); ok {
			flagged = data.Flagged
		}
		entry.WithFields(logrus.Fields{
			"flagged":   flagged,
			"remaining": l.game.Board().Remaining(),
		}).Debug("board changed")
	case event.MineHit:
		entry.Info("game lost")
	case event.GameWon:
		entry.Info("game won")
	case event.GameRestarted:
		entry.Info("game restarted")
	case event.QuitRequested:
		entry.Info("quitting")
	}
}
