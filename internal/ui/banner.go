// internal/ui/banner.go
package ui

import (
	"image/color"

	"minesweeper/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Banner — сообщение поверх поля по окончании раунда.
type Banner struct {
	fontFace     font.Face
	textColor    color.Color
	outlineColor color.Color
	backdrop     color.Color
	paddingX     int
	paddingY     int
}

// NewBanner создаёт баннер с заданными цветами и отступами.
func NewBanner(face font.Face, textColor, outlineColor, backdrop color.Color, paddingX, paddingY int) *Banner {
	return &Banner{
		fontFace:     face,
		textColor:    textColor,
		outlineColor: outlineColor,
		backdrop:     backdrop,
		paddingX:     paddingX,
		paddingY:     paddingY,
	}
}

// Draw рисует сообщение по центру области width x height.
func (b *Banner) Draw(screen *ebiten.Image, message string, width, height int) {
	cx, cy := width/2, height/2

	textWidth := font.MeasureString(b.fontFace, message).Ceil()
	textHeight := b.fontFace.Metrics().Height.Ceil()
	w := float32(textWidth + 2*b.paddingX)
	h := float32(textHeight + 2*b.paddingY)
	vector.DrawFilledRect(screen, float32(cx)-w/2, float32(cy)-h/2, w, h, b.backdrop, false)

	// Обводка: тот же текст со сдвигом на пиксель в каждую сторону.
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		render.DrawCenteredText(screen, message, b.fontFace, cx+d[0], cy+d[1], b.outlineColor)
	}
	render.DrawCenteredText(screen, message, b.fontFace, cx, cy, b.textColor)
}
