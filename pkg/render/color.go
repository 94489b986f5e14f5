// pkg/render/color.go
package render

import "image/color"

// BoardColors holds the palette used to draw the board.
type BoardColors struct {
	Background     color.RGBA
	Hidden         color.RGBA
	HiddenStroke   color.RGBA
	Flag           color.RGBA
	Mine           color.RGBA
	Revealed       color.RGBA
	RevealedStroke color.RGBA
	Text           color.RGBA
	StrokeWidth    float32
	Inset          float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
