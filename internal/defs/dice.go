// internal/defs/dice.go
package defs

import (
	"math"

	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
)

// DieDefinition holds the balance coefficients for one die type.
//
// damage(L) = (BaseDamage + DamagePerLevel*(L-1)) * DamageGrowth^max(0, L-1-GrowthOffset)
// period(L) = max(MinPeriod, BasePeriod - PeriodStep*(L-1))
type DieDefinition struct {
	ID             string  `json:"id"`
	BaseDamage     float64 `json:"base_damage"`
	DamagePerLevel float64 `json:"damage_per_level"`
	DamageGrowth   float64 `json:"damage_growth"` // 0 or 1 disables geometric growth
	GrowthOffset   int     `json:"growth_offset"`
	BasePeriod     float64 `json:"base_period"` // seconds between shots at level 1
	PeriodStep     float64 `json:"period_step"`
	MinPeriod      float64 `json:"min_period"`
	ChainPerLevel  int     `json:"chain_per_level"` // extra chained targets per level above 1
	SlowFactor     float64 `json:"slow_factor"`     // 0 = no slow
	SlowDuration   float64 `json:"slow_duration"`
	SlowPerLevel   float64 `json:"slow_per_level"`
}

// Stats are the effective combat stats of a die after level and upgrades.
type Stats struct {
	Damage       float64
	Period       float64 // seconds between shots
	FireRate     float64 // shots per second
	Range        float64 // pixels
	ChainJumps   int
	ChainRange   float64
	SlowFactor   float64
	SlowDuration float64
}

// DiceLibrary maps each die type to its definition.
type DiceLibrary map[component.DieType]DieDefinition

// DefaultDice returns the built-in balance table.
func DefaultDice() DiceLibrary {
	return DiceLibrary{
		component.DieSingle: {
			ID:             "single",
			BaseDamage:     20,
			DamagePerLevel: 3,
			BasePeriod:     0.41,
			PeriodStep:     0.007,
			MinPeriod:      0.2,
		},
		component.DieMulti: {
			ID:            "multi",
			BaseDamage:    5,
			DamageGrowth:  2,
			BasePeriod:    50.0 / 60,
			PeriodStep:    4.0 / 60,
			MinPeriod:     12.0 / 60,
			ChainPerLevel: 1,
		},
		component.DieFreeze: {
			ID:           "freeze",
			BaseDamage:   3,
			DamageGrowth: 2,
			GrowthOffset: 1,
			BasePeriod:   50.0 / 60,
			PeriodStep:   4.0 / 60,
			MinPeriod:    12.0 / 60,
			SlowFactor:   0.65,
			SlowDuration: 2.0,
			SlowPerLevel: 0.2,
		},
	}
}

// StatsFor is a pure mapping (type, level, upgrades) -> stats.
func (lib DiceLibrary) StatsFor(t component.DieType, level int, up component.Upgrades, baseRange float64) Stats {
	def, ok := lib[t]
	if !ok {
		return Stats{}
	}
	if level < 1 {
		level = 1
	}
	steps := float64(level - 1)

	damage := def.BaseDamage + def.DamagePerLevel*steps
	if def.DamageGrowth > 1 {
		exp := level - 1 - def.GrowthOffset
		if exp > 0 {
			damage *= math.Pow(def.DamageGrowth, float64(exp))
		}
	}
	damage *= DamageMultiplier(up.Damage)

	period := math.Max(def.MinPeriod, def.BasePeriod-def.PeriodStep*steps)
	period /= FireRateMultiplier(up.FireRate)

	s := Stats{
		Damage:     damage,
		Period:     period,
		FireRate:   1 / period,
		Range:      baseRange * RangeMultiplier(up.Range),
		ChainJumps: def.ChainPerLevel * (level - 1),
	}
	if s.ChainJumps > 0 {
		s.ChainRange = config.ChainMaxDistance
	}
	if def.SlowFactor > 0 {
		s.SlowFactor = def.SlowFactor
		s.SlowDuration = def.SlowDuration + def.SlowPerLevel*steps
	}
	return s
}
