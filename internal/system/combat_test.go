package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/event"
)

func newCombat(f *fixture) *CombatSystem {
	return NewCombatSystem(f.world, f.grid, defs.DefaultDice(), 420, f.dispatcher)
}

func TestSingleDieFiresOnCooldown(t *testing.T) {
	f := newFixture(t)
	f.record(event.DieFired)
	d := f.place(t, 0, component.DieSingle, 1)
	e := f.enemyAt(400, 300, 30)
	s := newCombat(f)

	s.Update(0.016)
	assert.InDelta(t, 10.0, e.Health, 1e-9)
	assert.InDelta(t, 0.41, d.Cooldown, 1e-9)
	assert.Len(t, f.world.Shots, 1)

	s.Update(0.1)
	assert.InDelta(t, 10.0, e.Health, 1e-9, "still cooling down")

	s.Update(0.4)
	assert.True(t, e.Dead)
	assert.Len(t, f.eventsOf(event.DieFired), 2)
}

func TestDieWithoutTargetStaysReady(t *testing.T) {
	f := newFixture(t)
	d := f.place(t, 0, component.DieSingle, 1)
	f.enemyAt(5000, 5000, 30)
	s := newCombat(f)

	s.Update(0.5)
	assert.Zero(t, d.Cooldown)
	assert.Empty(t, f.world.Shots)
}

func TestMultiDieChains(t *testing.T) {
	f := newFixture(t)
	f.place(t, 0, component.DieMulti, 3) // 20 урона, 2 прыжка
	a := f.enemyAt(400, 300, 100)
	b := f.enemyAt(500, 300, 100)
	c := f.enemyAt(650, 300, 100)
	far := f.enemyAt(1000, 300, 100)
	s := newCombat(f)

	s.Update(0.016)
	assert.InDelta(t, 80.0, a.Health, 1e-9)
	assert.InDelta(t, 80.0, b.Health, 1e-9)
	assert.InDelta(t, 80.0, c.Health, 1e-9)
	assert.InDelta(t, 100.0, far.Health, 1e-9)
	assert.Len(t, f.world.Shots, 3)
}

func TestFreezeDieSlows(t *testing.T) {
	f := newFixture(t)
	f.place(t, 0, component.DieFreeze, 1)
	e := f.enemyAt(400, 300, 100)
	s := newCombat(f)

	s.Update(0.016)
	assert.InDelta(t, 97.0, e.Health, 1e-9)
	assert.True(t, e.Slow.Active())
	assert.InDelta(t, 0.65, e.Slow.Multiplier(), 1e-9)
}

func TestTargetModeAppliesToDice(t *testing.T) {
	f := newFixture(t)
	f.place(t, 0, component.DieSingle, 1)
	weak := f.enemyAt(600, 300, 25)
	strong := f.enemyAt(410, 300, 300)
	f.world.TargetMode = component.TargetStrong
	s := newCombat(f)

	s.Update(0.016)
	assert.InDelta(t, 280.0, strong.Health, 1e-9)
	assert.InDelta(t, 25.0, weak.Health, 1e-9)
}

func TestZoneSlowsFireRate(t *testing.T) {
	f := newFixture(t)
	d := f.place(t, 0, component.DieSingle, 1)
	d.Cooldown = 1.2
	f.world.Telegraphs = append(f.world.Telegraphs, &component.Telegraph{
		Slots:      []int{0, 1},
		Effect:     3,
		DicePeriod: config.BossZoneDicePeriod,
	})
	s := newCombat(f)

	s.Update(1.2)
	assert.InDelta(t, 0.2, d.Cooldown, 1e-9)
}

func TestMovementReachesBase(t *testing.T) {
	f := newFixture(t)
	e := f.enemyAt(0, 0, 10)
	e.Speed = 400
	s := NewMovementSystem(f.world, f.path)

	s.Update(1)
	assert.InDelta(t, 400.0, e.Progress, 1e-9)
	assert.InDelta(t, 400.0, e.Pos.X, 1e-9)
	assert.False(t, e.Reached)

	s.Update(2)
	assert.True(t, e.Reached)
	assert.InDelta(t, f.path.Length(), e.Progress, 1e-9)
}

func TestMovementAppliesSlow(t *testing.T) {
	f := newFixture(t)
	e := f.enemyAt(0, 0, 10)
	e.Speed = 100
	ApplySlow(e, 0.5, 2)
	s := NewMovementSystem(f.world, f.path)

	s.Update(1)
	assert.InDelta(t, 50.0, e.Progress, 1e-9)

	st := NewStatusEffectSystem(f.world)
	st.Update(2.5)
	assert.False(t, e.Slow.Active())
	s.Update(1)
	assert.InDelta(t, 150.0, e.Progress, 1e-9)
}

func TestApplySlowKeepsStrongest(t *testing.T) {
	e := &component.Enemy{Health: 10}
	ApplySlow(e, 0.5, 1)
	ApplySlow(e, 0.8, 3)
	assert.InDelta(t, 0.5, e.Slow.SlowFactor, 1e-9)
	assert.InDelta(t, 3.0, e.Slow.Timer, 1e-9)
}

func TestVisualEffectsExpire(t *testing.T) {
	f := newFixture(t)
	f.world.Shots = []*component.Shot{{Duration: 0.1}, {Duration: 0.5}}
	s := NewVisualEffectSystem(f.world)

	s.Update(0.2)
	require.Len(t, f.world.Shots, 1)
	assert.InDelta(t, 0.5, f.world.Shots[0].Duration, 1e-9)
}

func TestBossCastsTelegraph(t *testing.T) {
	f := newFixture(t)
	f.record(event.BossAbilityCast)
	boss := f.enemyAt(0, 0, 100)
	boss.IsBoss = true
	s := NewBossSystem(f.world, f.grid, &fixedRand{ints: []int{4}}, f.dispatcher, zerolog.Nop())

	s.Update(config.BossAbilityPeriod - 0.5)
	assert.Empty(t, f.world.Telegraphs)
	s.Update(0.5)
	require.Len(t, f.world.Telegraphs, 1)
	zone := f.world.Telegraphs[0]
	assert.Equal(t, 7, zone.Slot) // центр 5x3
	assert.Len(t, zone.Slots, 9)
	assert.False(t, zone.InEffect())
	assert.Equal(t, 1.0, ZoneDicePeriodFactor(f.world.Telegraphs, 7))

	s.Update(1.5)
	assert.True(t, zone.InEffect())
	assert.InDelta(t, config.BossZoneDicePeriod, ZoneDicePeriodFactor(f.world.Telegraphs, 7), 1e-9)
	assert.InDelta(t, config.BossZoneEnemySpeed, ZoneEnemySpeedFactor(f.world.Telegraphs, zone.Center), 1e-9)
	assert.Equal(t, 1.0, ZoneDicePeriodFactor(f.world.Telegraphs, 0))

	s.Update(3)
	assert.Empty(t, f.world.Telegraphs)
	assert.Len(t, f.eventsOf(event.BossAbilityCast), 1)
}

func TestStateSystemGameOver(t *testing.T) {
	f := newFixture(t)
	f.record(event.GameOver)
	f.world.Health = 3
	f.world.Wave.Number = 4
	s := NewStateSystem(f.world, f.dispatcher, zerolog.Nop(), "meadow")

	f.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyData{Damage: 1}})
	s.Update(0)
	assert.Equal(t, component.Playing, f.world.Phase)

	f.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyData{Damage: 3}})
	s.Update(0)
	s.Update(0)
	assert.Equal(t, component.GameOver, f.world.Phase)
	assert.Zero(t, f.world.Health)

	over := f.eventsOf(event.GameOver)
	require.Len(t, over, 1)
	data := over[0].Data.(event.GameOverData)
	assert.Equal(t, 3, data.WavesSurvived)
	assert.Equal(t, "meadow", data.Level)
}
