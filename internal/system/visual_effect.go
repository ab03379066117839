// internal/system/visual_effect.go
package system

import (
	"go-dice-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами (следы выстрелов).
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	kept := s.world.Shots[:0]
	for _, shot := range s.world.Shots {
		shot.Timer += deltaTime
		if shot.Timer < shot.Duration {
			kept = append(kept, shot)
		}
	}
	for i := len(kept); i < len(s.world.Shots); i++ {
		s.world.Shots[i] = nil
	}
	s.world.Shots = kept
}
