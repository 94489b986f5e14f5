// internal/event/types.go
package event

const (
	CellRevealed  EventType = "CellRevealed"  // Клетка открыта (данные: CellData)
	FlagToggled   EventType = "FlagToggled"   // Флаг поставлен или снят (данные: CellData)
	MineHit       EventType = "MineHit"       // Игрок открыл мину
	GameWon       EventType = "GameWon"       // Все безопасные клетки открыты
	GameRestarted EventType = "GameRestarted" // Новое поле с теми же параметрами
	QuitRequested EventType = "QuitRequested"
)

// AllTypes перечисляет все игровые события.
var AllTypes = []EventType{CellRevealed, FlagToggled, MineHit, GameWon, GameRestarted, QuitRequested}

// CellData — данные событий, привязанных к клетке.
type CellData struct {
	Row, Col int
	Outcome  string
	Flagged  bool
}
