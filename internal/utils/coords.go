// internal/utils/coords.go
package utils

// Layout описывает, как поле отображается на экран: Scale пикселей на клетку
// и смещение левого верхнего угла поля. Один и тот же Layout используется
// и для отрисовки, и для перевода кликов в клетки.
type Layout struct {
	Scale   int
	OffsetX int
	OffsetY int
}

// CellToScreen возвращает пиксельные координаты левого верхнего угла клетки.
func (l Layout) CellToScreen(row, col int) (x, y int) {
	return l.OffsetX + col*l.Scale, l.OffsetY + row*l.Scale
}

// ScreenToCell переводит пиксель в клетку делением с округлением вниз,
// так что пиксели левее или выше поля дают отрицательные координаты.
func (l Layout) ScreenToCell(x, y int) (row, col int) {
	if l.Scale <= 0 {
		return -1, -1
	}
	return floorDiv(y-l.OffsetY, l.Scale), floorDiv(x-l.OffsetX, l.Scale)
}

// Size возвращает размер поля в пикселях без учёта смещения.
func (l Layout) Size(rows, cols int) (width, height int) {
	return cols * l.Scale, rows * l.Scale
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
