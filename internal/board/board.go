// internal/board/board.go
package board

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfiguration возвращается, если по параметрам нельзя построить играбельное поле.
var ErrInvalidConfiguration = errors.New("invalid board configuration")

// Shuffler — источник случайности для расстановки мин.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Board — игровое поле. Клетки хранятся плоским массивом, индекс row*cols+col.
type Board struct {
	rows     int
	cols     int
	mines    int
	cells    []Cell
	revealed int
	flags    int
	rng      Shuffler
}

func validate(rows, cols, mines int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	// rows*cols не должно переполнять int
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%w: dimensions %dx%d are too large", ErrInvalidConfiguration, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return fmt.Errorf("%w: %d mines on %dx%d board", ErrInvalidConfiguration, mines, rows, cols)
	}
	return nil
}

// New создаёт поле rows x cols и расставляет mines мин равномерно, без повторов.
func New(rows, cols, mines int, rng Shuffler) (*Board, error) {
	if err := validate(rows, cols, mines); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}

	b := newEmpty(rows, cols, mines)
	b.rng = rng

	// Перемешиваем список всех индексов и берём первые mines.
	candidates := make([]int, rows*cols)
	for i := range candidates {
		candidates[i] = i
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, i := range candidates[:mines] {
		b.cells[i].Kind = Mine
	}

	b.calculateNeighbors()
	return b, nil
}

// NewWithMines строит поле с заранее известными позициями мин.
// rng нужен только для Reset и может быть nil.
func NewWithMines(rows, cols int, mines []Pos, rng Shuffler) (*Board, error) {
	if err := validate(rows, cols, len(mines)); err != nil {
		return nil, err
	}

	b := newEmpty(rows, cols, len(mines))
	b.rng = rng
	for _, p := range mines {
		if !b.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: mine at %d:%d is out of bounds", ErrInvalidConfiguration, p.Row, p.Col)
		}
		c := &b.cells[b.index(p.Row, p.Col)]
		if c.Kind == Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %d:%d", ErrInvalidConfiguration, p.Row, p.Col)
		}
		c.Kind = Mine
	}

	b.calculateNeighbors()
	return b, nil
}

func newEmpty(rows, cols, mines int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		mines: mines,
		cells: make([]Cell, rows*cols),
	}
}

// Reset возвращает новое поле тех же размеров с новой расстановкой мин.
// Старое поле не изменяется.
func (b *Board) Reset() (*Board, error) {
	if b.rng == nil {
		return nil, fmt.Errorf("%w: board has no random source", ErrInvalidConfiguration)
	}
	return New(b.rows, b.cols, b.mines, b.rng)
}

// calculateNeighbors заполняет счётчики соседних мин для всех пустых клеток.
func (b *Board) calculateNeighbors() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			i := b.index(row, col)
			if b.cells[i].Kind == Mine {
				continue
			}
			var count uint8
			b.around(row, col, func(r, c int) {
				if b.cells[b.index(r, c)].Kind == Mine {
					count++
				}
			})
			b.cells[i].Adjacent = count
		}
	}
}

// around вызывает fn для каждого из (до) восьми соседей клетки внутри поля.
func (b *Board) around(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// InBounds сообщает, лежит ли клетка внутри поля.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Размеры поля и число мин.
func (b *Board) Rows() int  { return b.rows }
func (b *Board) Cols() int  { return b.cols }
func (b *Board) Mines() int { return b.mines }

// Cell возвращает копию клетки; ok == false, если координаты вне поля.
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

// Neighbors возвращает координаты соседей клетки внутри поля.
func (b *Board) Neighbors(row, col int) []Pos {
	var out []Pos
	b.around(row, col, func(r, c int) {
		out = append(out, Pos{Row: r, Col: c})
	})
	return out
}

// Число открытых клеток без мин и число поставленных флагов.
func (b *Board) RevealedCount() int { return b.revealed }
func (b *Board) FlagCount() int     { return b.flags }

// Remaining — сколько мин ещё не помечено флагами. Может быть отрицательным.
func (b *Board) Remaining() int {
	return b.mines - b.flags
}

// Cleared сообщает, открыты ли все клетки без мин.
func (b *Board) Cleared() bool {
	return b.revealed == b.rows*b.cols-b.mines
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[b.index(row, col)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
