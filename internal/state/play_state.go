// internal/state/play_state.go
package state

import (
	"minesweeper/internal/app"
	"minesweeper/internal/config"
	"minesweeper/internal/ui"
	"minesweeper/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// PlayState — экран игры: собирает ввод ebiten и передаёт его в app.Game.
type PlayState struct {
	game     *app.Game
	renderer *render.BoardRenderer
	banner   *ui.Banner
	log      logrus.FieldLogger
}

// NewPlayState создаёт экран игры с палитрой из config.
func NewPlayState(game *app.Game, face font.Face, log logrus.FieldLogger) *PlayState {
	colors := render.BoardColors{
		Background:     config.BackgroundColor,
		Hidden:         config.HiddenColor,
		HiddenStroke:   config.HiddenStrokeColor,
		Flag:           config.FlagColor,
		Mine:           config.MineColor,
		Revealed:       config.RevealedColor,
		RevealedStroke: config.RevealedStroke,
		Text:           config.TextDarkColor,
		StrokeWidth:    config.TileStrokeWidth,
		Inset:          config.TileInset,
	}

	return &PlayState{
		game:     game,
		renderer: render.NewBoardRenderer(game.Layout(), colors, face),
		banner: ui.NewBanner(face, config.TextDarkColor, config.TextLightColor, config.BannerBackdropColor,
			config.BannerPaddingX, config.BannerPaddingY),
		log: log,
	}
}

func (p *PlayState) Enter() {
	p.log.Debug("entering play state")
}

// inputs собирает события текущего кадра в порядке обработки.
func (p *PlayState) inputs() []app.Input {
	var out []app.Input

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		out = append(out, app.Quit())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		out = append(out, app.Restart())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, app.Press(app.ButtonPrimary, x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		out = append(out, app.Press(app.ButtonSecondary, x, y))
	}

	return out
}

func (p *PlayState) Update() error {
	for _, in := range p.inputs() {
		p.game.Handle(in)
		if !p.game.Running() {
			return ebiten.Termination
		}
	}
	return nil
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	b := p.game.Board()
	p.renderer.Draw(screen, b)

	var message string
	switch p.game.Session().Phase() {
	case app.PhaseWon:
		message = "You won!"
	case app.PhaseLost:
		message = "You lost!"
	default:
		return
	}
	w, h := p.game.Layout().Size(b.Rows(), b.Cols())
	p.banner.Draw(screen, message, w, h)
}

func (p *PlayState) Exit() {
	p.log.Debug("leaving play state")
}
