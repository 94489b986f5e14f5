// internal/app/session.go
package app

import (
	"minesweeper/internal/board"
	"minesweeper/internal/utils"
)

// Phase — состояние раунда, выводимое из флагов Session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost
	PhaseWon
	PhaseQuit
)

// String возвращает имя фазы для логов.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Session — состояние сессии поверх поля.
// Won имеет смысл только при Finished; Running становится false один раз и навсегда.
type Session struct {
	Running  bool
	Finished bool
	Won      bool
}

// NewSession возвращает сессию нового раунда.
func NewSession() Session {
	return Session{Running: true}
}

// Phase выводит фазу раунда из флагов сессии.
func (s Session) Phase() Phase {
	switch {
	case !s.Running:
		return PhaseQuit
	case s.Finished && s.Won:
		return PhaseWon
	case s.Finished:
		return PhaseLost
	default:
		return PhasePlaying
	}
}

// CommandKind — операция над полем, которую нужно выполнить после перехода.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandReveal
	CommandFlag
	CommandRestart
	CommandQuit
)

// Command — результат Transition: что сделать с полем.
type Command struct {
	Kind     CommandKind
	Row, Col int
}

// Geometry — всё, что нужно для перевода пикселей в клетки.
type Geometry struct {
	Rows, Cols int
	Layout     utils.Layout
}

func (g Geometry) contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Transition — чистая функция (сессия, ввод) -> (новая сессия, команда).
func Transition(s Session, in Input, g Geometry) (Session, Command) {
	if !s.Running {
		return s, Command{}
	}

	switch in.Kind {
	case InputQuit:
		s.Running = false
		return s, Command{Kind: CommandQuit}

	case InputRestart:
		s.Finished, s.Won = false, false
		return s, Command{Kind: CommandRestart}

	case InputPress:
		if s.Finished {
			return s, Command{}
		}
		row, col := g.Layout.ScreenToCell(in.X, in.Y)
		if !g.contains(row, col) {
			return s, Command{}
		}
		switch in.Button {
		case ButtonPrimary:
			return s, Command{Kind: CommandReveal, Row: row, Col: col}
		case ButtonSecondary:
			return s, Command{Kind: CommandFlag, Row: row, Col: col}
		}
	}

	return s, Command{}
}

// Settle применяет результат открытия клетки к сессии.
func Settle(s Session, o board.Outcome) Session {
	switch o {
	case board.HitMine:
		s.Finished, s.Won = true, false
	case board.Won:
		s.Finished, s.Won = true, true
	}
	return s
}
