// internal/entity/world.go
package entity

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/types"
)

// World — всё изменяемое состояние одной игровой сессии.
type World struct {
	GameTime   float64
	NextID     types.EntityID
	Board      *Board
	Enemies    []*component.Enemy // В порядке появления
	Shots      []*component.Shot
	Telegraphs []*component.Telegraph
	Wave       *component.Wave
	Economy    *component.Economy
	Health     int
	MaxHealth  int
	Phase      component.Phase
	TargetMode component.TargetMode
	Selected   int // Выбранная ячейка, -1 если ничего не выбрано
}

func NewWorld(cols, rows int) *World {
	return &World{
		NextID:   1,
		Board:    NewBoard(cols, rows),
		Wave:     &component.Wave{Number: 1, Phase: component.WaveIdle},
		Economy:  &component.Economy{Upgrades: component.NewUpgrades()},
		Phase:    component.Playing,
		Selected: -1,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy appends e, keeping spawn order.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// LiveEnemies returns enemies that are neither dead nor at the base, in spawn order.
func (w *World) LiveEnemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// LiveEnemyCount returns the number of enemies still on the path.
func (w *World) LiveEnemyCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Sweep removes dead and reached enemies and returns them.
func (w *World) Sweep() (killed, reached []*component.Enemy) {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		switch {
		case e.Dead:
			killed = append(killed, e)
		case e.Reached:
			reached = append(reached, e)
		default:
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return killed, reached
}
