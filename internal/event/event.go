// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать обычную функцию как Listener.
// Функции несравнимы, поэтому ListenerFunc нельзя передавать в Unsubscribe.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер: события доставляются подписчикам
// в порядке подписки, в той же горутине, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на события перечисленных типов.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe отписывает listener от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			break
		}
	}
}

// Dispatch отправляет событие всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
