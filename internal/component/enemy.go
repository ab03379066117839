package component

import (
	"go-dice-defense/internal/types"
	"go-dice-defense/pkg/gridmap"
)

// Enemy представляет вражескую сущность на пути.
type Enemy struct {
	ID         types.EntityID
	Wave       int
	Progress   float64       // Пройденное расстояние по пути (px)
	Pos        gridmap.Point // Позиция на экране, пересчитывается при движении
	Health     float64
	MaxHealth  float64
	Speed      float64 // px/сек
	Reward     int     // Награда за убийство
	BaseDamage int     // Урон базе при достижении конца пути
	IsBoss     bool

	Slow SlowEffect

	AbilityTimer float64 // Только для босса: время с последнего применения способности
	Dead         bool
	Reached      bool
}

// Alive сообщает, участвует ли враг ещё в симуляции.
func (e *Enemy) Alive() bool {
	return !e.Dead && !e.Reached
}
