// internal/app/input.go
package app

// InputKind — класс входного события, значимого для игры.
type InputKind int

const (
	InputQuit InputKind = iota
	InputRestart
	InputPress
)

// Button — кнопка указателя.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Input — дискретное входное событие. X и Y заданы в пикселях
// и имеют смысл только для InputPress.
type Input struct {
	Kind   InputKind
	Button Button
	X, Y   int
}

// Quit — запрос на завершение игры.
func Quit() Input { return Input{Kind: InputQuit} }

// Restart — запрос на новый раунд.
func Restart() Input { return Input{Kind: InputRestart} }

// Press — нажатие кнопки в пикселе (x, y).
func Press(button Button, x, y int) Input {
	return Input{Kind: InputPress, Button: button, X: x, Y: y}
}
