// internal/system/combat.go
package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/pkg/gridmap"
)

// CombatSystem управляет стрельбой кубиков. Урон мгновенный, снаряд лишь визуальный след.
type CombatSystem struct {
	world           *entity.World
	grid            *gridmap.Grid
	dice            defs.DiceLibrary
	baseRange       float64
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, grid *gridmap.Grid, dice defs.DiceLibrary, baseRange float64, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		grid:            grid,
		dice:            dice,
		baseRange:       baseRange,
		eventDispatcher: eventDispatcher,
	}
}

// StatsOf returns the effective stats of d under the current upgrades.
func (s *CombatSystem) StatsOf(d *component.Die) defs.Stats {
	return s.dice.StatsFor(d.Type, d.Level, s.world.Economy.Upgrades, s.baseRange)
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, d := range s.world.Board.Dice() {
		if d.Cooldown > 0 {
			d.Cooldown -= deltaTime / ZoneDicePeriodFactor(s.world.Telegraphs, d.Slot)
			if d.Cooldown > 0 {
				continue
			}
		}

		stats := s.StatsOf(d)
		origin := s.grid.CenterOf(d.Slot)
		target, ok := ResolveTarget(origin, stats.Range, s.world.Enemies, s.world.TargetMode)
		if !ok {
			d.Cooldown = 0 // готов к выстрелу, ждёт цель
			continue
		}

		hits := s.fire(d, stats, origin, target)
		d.Cooldown += stats.Period
		if d.Cooldown <= 0 {
			d.Cooldown = stats.Period
		}

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.DieFired,
			Data: event.ShotData{Die: *d, Targets: hits},
		})
	}
}

// fire наносит урон цели и, для цепных кубиков, следующим врагам по цепи.
func (s *CombatSystem) fire(d *component.Die, stats defs.Stats, origin gridmap.Point, target *component.Enemy) int {
	hit := map[*component.Enemy]bool{target: true}
	s.hit(d, stats, origin, target)

	from := target.Pos
	for i := 0; i < stats.ChainJumps; i++ {
		next := nextChainTarget(from, stats.ChainRange, s.world.Enemies, hit)
		if next == nil {
			break
		}
		hit[next] = true
		s.hit(d, stats, from, next)
		from = next.Pos
	}
	return len(hit)
}

func (s *CombatSystem) hit(d *component.Die, stats defs.Stats, from gridmap.Point, e *component.Enemy) {
	s.world.Shots = append(s.world.Shots, &component.Shot{
		From:     from,
		To:       e.Pos,
		Type:     d.Type,
		Duration: config.ShotDuration,
	})
	if stats.SlowFactor > 0 {
		ApplySlow(e, stats.SlowFactor, stats.SlowDuration)
	}
	ApplyDamage(e, stats.Damage)
}
