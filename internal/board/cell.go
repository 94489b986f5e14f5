// internal/board/cell.go
package board

import "strconv"

// Kind — содержимое клетки: мина или пустая клетка со счётчиком.
type Kind uint8

const (
	Clear Kind = iota
	Mine
)

// Cell хранит содержимое клетки вместе с её состоянием.
// Для Clear поле Adjacent содержит число мин среди соседей (0..8).
type Cell struct {
	Kind     Kind
	Adjacent uint8
	Revealed bool
	Flagged  bool
}

// IsMine сообщает, заминирована ли клетка.
func (c Cell) IsMine() bool {
	return c.Kind == Mine
}

// String возвращает символ клетки для отладочного вывода.
func (c Cell) String() string {
	switch {
	case !c.Revealed && c.Flagged:
		return "F"
	case !c.Revealed:
		return "-"
	case c.Kind == Mine:
		return "*"
	case c.Adjacent == 0:
		return "."
	default:
		return strconv.Itoa(int(c.Adjacent))
	}
}

// Pos — координаты клетки на поле.
type Pos struct {
	Row, Col int
}

// Outcome — результат открытия клетки.
type Outcome int

const (
	NoOp Outcome = iota
	Revealed
	HitMine
	Won
)

// String возвращает имя результата для логов и событий.
func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Revealed:
		return "revealed"
	case HitMine:
		return "hit_mine"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
