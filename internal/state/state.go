// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех экранных состояний
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние. Ошибка (в том числе ebiten.Termination)
// передаётся наверх в игровой цикл.
func (sm *StateMachine) Update() error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update()
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
