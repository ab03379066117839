// internal/system/utils.go
package system

import (
	"go-dice-defense/internal/component"
)

// RandomSource — инжектируемый источник случайности (utils.PRNGService в игре,
// детерминированный генератор в тестах).
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// ApplyDamage наносит урон врагу. Возвращает true, если удар оказался смертельным.
func ApplyDamage(e *component.Enemy, damage float64) bool {
	if !e.Alive() || damage <= 0 {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Health = 0
		e.Dead = true
		return true
	}
	return false
}

// ApplySlow накладывает замедление: действует самый сильный эффект,
// длительность не сокращается.
func ApplySlow(e *component.Enemy, factor, duration float64) {
	if factor <= 0 || duration <= 0 {
		return
	}
	if !e.Slow.Active() || factor < e.Slow.SlowFactor {
		e.Slow.SlowFactor = factor
	}
	if duration > e.Slow.Timer {
		e.Slow.Timer = duration
	}
}
