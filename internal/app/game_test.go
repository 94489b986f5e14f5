package app

import (
	"testing"

	"minesweeper/internal/board"
	"minesweeper/internal/event"
	"minesweeper/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scale = 16

type recorder struct {
	types []event.EventType
}

func (r *recorder) OnEvent(e event.Event) {
	r.types = append(r.types, e.Type)
}

// newTestGame создаёт игру и подменяет поле известной расстановкой мин.
func newTestGame(t *testing.T, rows, cols int, mines []board.Pos) (*Game, *recorder, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := NewGame(
		Params{Rows: rows, Cols: cols, Mines: len(mines)},
		utils.Layout{Scale: scale},
		utils.NewPRNGService(7),
		event.NewDispatcher(),
		logger,
	)
	require.NoError(t, err)

	b, err := board.NewWithMines(rows, cols, mines, g.Rng)
	require.NoError(t, err)
	g.board = b

	rec := &recorder{}
	g.EventDispatcher.Subscribe(rec, event.AllTypes...)
	return g, rec, hook
}

func click(g *Game, button Button, row, col int) {
	x, y := g.Layout().CellToScreen(row, col)
	g.Handle(Press(button, x+scale/2, y+scale/2))
}

func TestNewGameInvalidConfiguration(t *testing.T) {
	logger, _ := test.NewNullLogger()
	layout := utils.Layout{Scale: scale}

	_, err := NewGame(Params{Rows: 2, Cols: 2, Mines: 4}, layout, nil, nil, logger)
	assert.ErrorIs(t, err, board.ErrInvalidConfiguration)

	_, err = NewGame(Params{Rows: 0, Cols: 2, Mines: 0}, layout, nil, nil, logger)
	assert.ErrorIs(t, err, board.ErrInvalidConfiguration)

	_, err = NewGame(Params{Rows: 2, Cols: 2, Mines: 1}, utils.Layout{}, nil, nil, logger)
	assert.ErrorIs(t, err, board.ErrInvalidConfiguration)

	g, err := NewGame(Params{Rows: 2, Cols: 2, Mines: 1}, layout, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, g.Running())
	assert.NotNil(t, g.EventDispatcher)
}

func TestRevealMineLosesRound(t *testing.T) {
	g, rec, hook := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})

	click(g, ButtonPrimary, 1, 1)

	s := g.Session()
	assert.True(t, s.Finished)
	assert.False(t, s.Won)
	assert.Equal(t, PhaseLost, s.Phase())
	assert.Equal(t, []event.EventType{event.CellRevealed, event.MineHit}, rec.types)
	assert.Equal(t, 0, g.Board().RevealedCount())
	assert.NotNil(t, hook.LastEntry())

	// После окончания раунда клики игнорируются.
	click(g, ButtonPrimary, 0, 0)
	click(g, ButtonSecondary, 0, 1)
	assert.Equal(t, 0, g.Board().RevealedCount())
	assert.Equal(t, 0, g.Board().FlagCount())
	assert.Len(t, rec.types, 2)
}

func TestRevealAllWins(t *testing.T) {
	g, rec, _ := newTestGame(t, 4, 4, []board.Pos{{Row: 0, Col: 0}})

	click(g, ButtonPrimary, 3, 3)

	assert.Equal(t, PhaseWon, g.Session().Phase())
	assert.Equal(t, 15, g.Board().RevealedCount())
	assert.Equal(t, []event.EventType{event.CellRevealed, event.GameWon}, rec.types)

	click(g, ButtonPrimary, 0, 0)
	assert.Equal(t, PhaseWon, g.Session().Phase())
	c, _ := g.Board().Cell(0, 0)
	assert.False(t, c.Revealed)
}

func TestSingleCellGame(t *testing.T) {
	g, _, _ := newTestGame(t, 1, 1, nil)

	click(g, ButtonPrimary, 0, 0)
	assert.Equal(t, PhaseWon, g.Session().Phase())
}

func TestFlagToggle(t *testing.T) {
	g, rec, _ := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})

	click(g, ButtonSecondary, 1, 1)
	c, _ := g.Board().Cell(1, 1)
	assert.True(t, c.Flagged)

	click(g, ButtonSecondary, 1, 1)
	c, _ = g.Board().Cell(1, 1)
	assert.False(t, c.Flagged)

	click(g, ButtonPrimary, 0, 0)
	click(g, ButtonSecondary, 0, 0)
	c, _ = g.Board().Cell(0, 0)
	assert.False(t, c.Flagged)

	assert.Equal(t, []event.EventType{event.FlagToggled, event.FlagToggled, event.CellRevealed}, rec.types)
	assert.Equal(t, PhasePlaying, g.Session().Phase())
}

func TestRepeatedRevealIsSilent(t *testing.T) {
	g, rec, _ := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})

	click(g, ButtonPrimary, 0, 0)
	click(g, ButtonPrimary, 0, 0)
	assert.Equal(t, []event.EventType{event.CellRevealed}, rec.types)
}

func TestRestartAfterFinish(t *testing.T) {
	g, rec, hook := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})
	click(g, ButtonSecondary, 0, 0)
	click(g, ButtonPrimary, 1, 1)
	require.True(t, g.Session().Finished)
	old := g.Board()

	g.Handle(Restart())

	assert.Equal(t, NewSession(), g.Session())
	b := g.Board()
	assert.NotSame(t, old, b)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.Cols())
	assert.Equal(t, 1, b.Mines())
	for row := range 3 {
		for col := range 3 {
			c, _ := b.Cell(row, col)
			assert.False(t, c.Revealed)
			assert.False(t, c.Flagged)
		}
	}
	assert.Equal(t, event.GameRestarted, rec.types[len(rec.types)-1])

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "board reset", entry.Message)
	assert.Equal(t, 1, entry.Data["mines"])
}

func TestRestartUsesGameRandomSource(t *testing.T) {
	a, _, _ := newTestGame(t, 5, 5, []board.Pos{{Row: 2, Col: 2}})
	b, _, _ := newTestGame(t, 5, 5, []board.Pos{{Row: 0, Col: 0}})

	a.Handle(Restart())
	b.Handle(Restart())

	// обе игры созданы с одним сидом, поэтому новые поля совпадают
	assert.Equal(t, a.Board().String(), b.Board().String())
	assert.NotSame(t, a.Board(), b.Board())
}

func TestPressOutsideGridIsDiscarded(t *testing.T) {
	g, rec, _ := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})
	before := g.Board().String()

	g.Handle(Press(ButtonPrimary, 3*scale, 0))
	g.Handle(Press(ButtonPrimary, 0, 3*scale+1))
	g.Handle(Press(ButtonSecondary, -1, -1))
	g.Handle(Press(ButtonPrimary, 1000, 1000))

	assert.Equal(t, before, g.Board().String())
	assert.Empty(t, rec.types)
	assert.Equal(t, PhasePlaying, g.Session().Phase())
}

func TestQuitIsTerminal(t *testing.T) {
	g, rec, _ := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})

	g.Handle(Quit())
	assert.False(t, g.Running())

	g.Handle(Restart())
	click(g, ButtonPrimary, 0, 0)
	g.Handle(Quit())

	assert.False(t, g.Running())
	assert.Equal(t, 0, g.Board().RevealedCount())
	assert.Equal(t, []event.EventType{event.QuitRequested}, rec.types)
}

func TestGameEventListenerLogs(t *testing.T) {
	g, _, hook := newTestGame(t, 3, 3, []board.Pos{{Row: 1, Col: 1}})
	logger, listenerHook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	NewGameEventListener(g, logger)

	click(g, ButtonSecondary, 0, 0)
	require.NotNil(t, listenerHook.LastEntry())
	assert.Equal(t, "board changed", listenerHook.LastEntry().Message)
	assert.Equal(t, true, listenerHook.LastEntry().Data["flagged"])
	assert.Equal(t, 0, listenerHook.LastEntry().Data["remaining"])

	click(g, ButtonPrimary, 0, 1)
	assert.Equal(t, "revealed", listenerHook.LastEntry().Data["outcome"])

	click(g, ButtonPrimary, 1, 1)
	assert.Equal(t, "game lost", listenerHook.LastEntry().Message)
	assert.Equal(t, 1, listenerHook.LastEntry().Data["row"])

	g.Handle(Restart())
	assert.Equal(t, "game restarted", listenerHook.LastEntry().Message)

	hook.Reset()
	g.Handle(Quit())
	assert.Equal(t, "quitting", listenerHook.LastEntry().Message)
	assert.Equal(t, "quit requested", hook.LastEntry().Message)
}
