// internal/board/reveal.go
package board

// Reveal открывает клетку (row, col).
// Уже открытая клетка или координаты вне поля дают NoOp.
func (b *Board) Reveal(row, col int) Outcome {
	if !b.InBounds(row, col) {
		return NoOp
	}
	start := b.index(row, col)
	if b.cells[start].Revealed {
		return NoOp
	}

	b.open(start)
	cell := b.cells[start]

	if cell.Kind == Mine {
		return HitMine
	}
	if cell.Adjacent == 0 {
		b.floodFill(start)
	}

	if b.Cleared() {
		return Won
	}
	return Revealed
}

// open помечает клетку открытой и снимает с неё флаг.
func (b *Board) open(i int) {
	c := &b.cells[i]
	if c.Revealed {
		return
	}
	c.Revealed = true
	if c.Flagged {
		c.Flagged = false
		b.flags--
	}
	if c.Kind != Mine {
		b.revealed++
	}
}

// floodFill обходит в ширину связную область нулевых клеток, начиная со start,
// и открывает её вместе с граничными клетками. Расширение идёт только из нулевых клеток.
func (b *Board) floodFill(start int) {
	visited := make([]bool, len(b.cells))
	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		b.open(i)
		if b.cells[i].Kind == Mine || b.cells[i].Adjacent != 0 {
			continue
		}

		b.around(i/b.cols, i%b.cols, func(r, c int) {
			j := b.index(r, c)
			if visited[j] {
				return
			}
			visited[j] = true
			queue = append(queue, j)
		})
	}
}

// ToggleFlag переключает флаг на закрытой клетке.
// Возвращает false, если клетка открыта или вне поля.
func (b *Board) ToggleFlag(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	c := &b.cells[b.index(row, col)]
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return true
}
