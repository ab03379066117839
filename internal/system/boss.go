package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/pkg/gridmap"

	"github.com/rs/zerolog"
)

// BossSystem — способность босса: зона над полем, которая сначала
// предупреждает, затем замедляет кубики и врагов внутри.
type BossSystem struct {
	world           *entity.World
	grid            *gridmap.Grid
	rng             RandomSource
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewBossSystem(world *entity.World, grid *gridmap.Grid, rng RandomSource, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *BossSystem {
	return &BossSystem{
		world:           world,
		grid:            grid,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *BossSystem) Update(deltaTime float64) {
	s.tickTelegraphs(deltaTime)

	for _, e := range s.world.Enemies {
		if !e.IsBoss || !e.Alive() {
			continue
		}
		e.AbilityTimer += deltaTime
		if e.AbilityTimer >= config.BossAbilityPeriod {
			e.AbilityTimer -= config.BossAbilityPeriod
			s.cast(e)
		}
	}
}

func (s *BossSystem) tickTelegraphs(deltaTime float64) {
	kept := s.world.Telegraphs[:0]
	for _, t := range s.world.Telegraphs {
		rest := deltaTime
		if t.Warn > 0 {
			t.Warn -= rest
			rest = 0
			if t.Warn < 0 {
				rest = -t.Warn
				t.Warn = 0
			}
		}
		if t.Warn <= 0 {
			t.Effect -= rest
		}
		if !t.Done() {
			kept = append(kept, t)
		}
	}
	s.world.Telegraphs = kept
}

func (s *BossSystem) cast(boss *component.Enemy) {
	centerSlot, ok := s.grid.Slot(s.grid.Cols/2, s.grid.Rows/2)
	if !ok {
		return
	}
	candidates := s.grid.Around(centerSlot, 1)
	slot := candidates[s.rng.Intn(len(candidates))]

	t := &component.Telegraph{
		Center:     s.grid.CenterOf(slot),
		Slot:       slot,
		Slots:      s.grid.Around(slot, config.BossZoneCellRadius),
		Radius:     s.grid.CellSize * (float64(config.BossZoneCellRadius) + 0.5),
		Warn:       config.BossTelegraphWarn,
		Effect:     config.BossTelegraphEffect,
		EnemySpeed: config.BossZoneEnemySpeed,
		DicePeriod: config.BossZoneDicePeriod,
	}
	s.world.Telegraphs = append(s.world.Telegraphs, t)

	s.logger.Debug().Uint64("boss", uint64(boss.ID)).Int("slot", slot).Msg("boss ability cast")
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossAbilityCast, Data: *t})
}

// ZoneEnemySpeedFactor returns the strongest enemy speed multiplier of active zones covering p.
func ZoneEnemySpeedFactor(zones []*component.Telegraph, p gridmap.Point) float64 {
	factor := 1.0
	for _, t := range zones {
		if t.InEffect() && t.Center.Dist(p) <= t.Radius && t.EnemySpeed < factor {
			factor = t.EnemySpeed
		}
	}
	return factor
}

// ZoneDicePeriodFactor returns the strongest fire period multiplier of active zones covering slot.
func ZoneDicePeriodFactor(zones []*component.Telegraph, slot int) float64 {
	factor := 1.0
	for _, t := range zones {
		if !t.InEffect() || t.DicePeriod <= factor {
			continue
		}
		for _, s := range t.Slots {
			if s == slot {
				factor = t.DicePeriod
				break
			}
		}
	}
	return factor
}
