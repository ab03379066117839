// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
// A zero value means "not slowed".
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.65 for 35% slow).
}

// Active reports whether the slow is still ticking.
func (s SlowEffect) Active() bool {
	return s.Timer > 0
}

// Multiplier returns the speed multiplier, 1 when inactive.
func (s SlowEffect) Multiplier() float64 {
	if !s.Active() || s.SlowFactor <= 0 {
		return 1
	}
	return s.SlowFactor
}
