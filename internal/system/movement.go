// internal/system/movement.go
package system

import (
	"go-dice-defense/internal/entity"
	"go-dice-defense/pkg/gridmap"
)

// MovementSystem двигает врагов вдоль пути уровня.
type MovementSystem struct {
	world *entity.World
	path  *gridmap.Path
}

func NewMovementSystem(world *entity.World, path *gridmap.Path) *MovementSystem {
	return &MovementSystem{world: world, path: path}
}

func (s *MovementSystem) Update(deltaTime float64) {
	length := s.path.Length()
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		speed := e.Speed * e.Slow.Multiplier() * ZoneEnemySpeedFactor(s.world.Telegraphs, e.Pos)
		e.Progress += speed * deltaTime
		if e.Progress >= length {
			e.Progress = length
			e.Reached = true
		}
		e.Pos = s.path.PointAt(e.Progress)
	}
}
