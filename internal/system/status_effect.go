// internal/system/status_effect.go
package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/entity"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies {
		if !e.Slow.Active() {
			continue
		}
		e.Slow.Timer -= deltaTime
		if e.Slow.Timer <= 0 {
			e.Slow = component.SlowEffect{}
		}
	}
}
