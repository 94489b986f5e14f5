// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"strconv"

	"minesweeper/internal/board"
	"minesweeper/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BoardRenderer рисует поле. Пиксельная геометрия берётся из того же Layout,
// что и перевод кликов в клетки.
type BoardRenderer struct {
	layout    utils.Layout
	colors    BoardColors
	fontFace  font.Face
	gridImage *ebiten.Image // предрендеренная сетка закрытых клеток
	rows      int
	cols      int
}

// NewBoardRenderer создаёт рендерер; сетка строится при первой отрисовке.
func NewBoardRenderer(layout utils.Layout, colors BoardColors, face font.Face) *BoardRenderer {
	return &BoardRenderer{
		layout:   layout,
		colors:   colors,
		fontFace: face,
	}
}

// renderGridImage рисует сетку закрытых клеток один раз для заданного размера поля.
func (r *BoardRenderer) renderGridImage(rows, cols int) {
	if r.gridImage != nil && r.rows == rows && r.cols == cols {
		return
	}
	if r.gridImage != nil {
		r.gridImage.Deallocate()
	}

	w, h := r.layout.Size(rows, cols)
	r.gridImage = ebiten.NewImage(w, h)
	r.rows, r.cols = rows, cols

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := col*r.layout.Scale, row*r.layout.Scale
			r.drawTile(r.gridImage, float32(x), float32(y), r.colors.Hidden, r.colors.HiddenStroke)
		}
	}
}

func (r *BoardRenderer) drawTile(dst *ebiten.Image, x, y float32, fill, stroke color.Color) {
	inset := r.colors.Inset
	size := float32(r.layout.Scale) - 2*inset
	vector.DrawFilledRect(dst, x+inset, y+inset, size, size, fill, false)
	vector.StrokeRect(dst, x+inset, y+inset, size, size, r.colors.StrokeWidth, stroke, false)
}

// Draw рисует поле целиком.
func (r *BoardRenderer) Draw(screen *ebiten.Image, b *board.Board) {
	screen.Fill(r.colors.Background)

	r.renderGridImage(b.Rows(), b.Cols())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.layout.OffsetX), float64(r.layout.OffsetY))
	screen.DrawImage(r.gridImage, op)

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			c, _ := b.Cell(row, col)
			r.drawCell(screen, row, col, c)
		}
	}
}

func (r *BoardRenderer) drawCell(screen *ebiten.Image, row, col int, c board.Cell) {
	px, py := r.layout.CellToScreen(row, col)
	x, y := float32(px), float32(py)

	switch {
	case !c.Revealed && c.Flagged:
		r.drawTile(screen, x, y, r.colors.Flag, DarkenColor(r.colors.Flag))
	case !c.Revealed:
		// уже на сетке
	case c.IsMine():
		r.drawTile(screen, x, y, r.colors.Mine, DarkenColor(r.colors.Mine))
	default:
		r.drawTile(screen, x, y, r.colors.Revealed, r.colors.RevealedStroke)
		if c.Adjacent > 0 {
			half := r.layout.Scale / 2
			DrawCenteredText(screen, strconv.Itoa(int(c.Adjacent)), r.fontFace, px+half, py+half, r.colors.Text)
		}
	}
}

// DrawCenteredText рисует строку с центром в точке (cx, cy).
func DrawCenteredText(dst *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	m := face.Metrics()
	baseline := cy + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	text.Draw(dst, s, face, cx-width/2, baseline, clr)
}
