package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dice-defense/internal/component"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/event"
)

func newWaves(f *fixture, autoStart bool) *WaveSystem {
	return NewWaveSystem(f.world, f.path, &fixedRand{f: 0.5}, f.dispatcher, zerolog.Nop(), WaveConfig{
		Scaling:       defs.WaveScaling{BaseCount: 3, Growth: 1},
		Difficulty:    1,
		SpawnInterval: 0.5,
		Delay:         5,
		AutoStart:     autoStart,
	})
}

func killAll(f *fixture) {
	for _, e := range f.world.Enemies {
		e.Dead = true
	}
	f.world.Sweep()
}

func TestWaveLifecycle(t *testing.T) {
	f := newFixture(t)
	f.record(event.WaveStarted, event.EnemySpawned, event.WaveCleared)
	s := newWaves(f, false)

	require.Equal(t, component.WaveIdle, f.world.Wave.Phase)
	s.Update(100)
	assert.Equal(t, component.WaveIdle, f.world.Wave.Phase, "no auto start")

	require.NoError(t, s.ForceNextWave())
	assert.Equal(t, component.WaveSpawning, f.world.Wave.Phase)
	assert.ErrorIs(t, s.ForceNextWave(), ErrWaveInProgress)

	s.Update(0.01)
	assert.Len(t, f.world.Enemies, 1, "first enemy spawns immediately")
	s.Update(0.5)
	s.Update(0.5)
	assert.Len(t, f.world.Enemies, 3)
	assert.Equal(t, component.WaveActive, f.world.Wave.Phase)

	s.Update(0.1)
	assert.Equal(t, component.WaveActive, f.world.Wave.Phase, "enemies still alive")

	killAll(f)
	s.Update(0.1)
	assert.Equal(t, component.WaveCleared, f.world.Wave.Phase)
	s.Update(0.1)
	assert.Equal(t, component.WaveIdle, f.world.Wave.Phase)
	assert.Equal(t, 2, f.world.Wave.Number)
	assert.Equal(t, 4, f.world.Wave.Count)

	assert.Len(t, f.eventsOf(event.WaveStarted), 1)
	assert.Len(t, f.eventsOf(event.EnemySpawned), 3)
	assert.Len(t, f.eventsOf(event.WaveCleared), 1)
}

func TestWaveAutoStartAfterDelay(t *testing.T) {
	f := newFixture(t)
	s := newWaves(f, true)

	s.Update(4.9)
	assert.Equal(t, component.WaveIdle, f.world.Wave.Phase)
	assert.InDelta(t, 0.1, s.Countdown(), 1e-9)
	s.Update(0.2)
	assert.Equal(t, component.WaveSpawning, f.world.Wave.Phase)
	assert.Zero(t, s.Countdown())
}

func TestWaveEnemyStats(t *testing.T) {
	f := newFixture(t)
	s := newWaves(f, false)
	require.NoError(t, s.ForceNextWave())
	s.Update(0.01)

	require.Len(t, f.world.Enemies, 1)
	e := f.world.Enemies[0]
	assert.InDelta(t, 30.0, e.Health, 1e-9)
	assert.InDelta(t, 36.0, e.Speed, 1e-9) // jitter 0.5 -> x1.0
	assert.Equal(t, 11, e.Reward)
	assert.Equal(t, f.path.PointAt(0), e.Pos)
	assert.False(t, e.IsBoss)
}

func TestBossWaveEndsWithBoss(t *testing.T) {
	f := newFixture(t)
	f.record(event.BossSpawned)
	f.world.Wave.Number = 5
	s := newWaves(f, false)
	require.True(t, f.world.Wave.IsBoss)

	require.NoError(t, s.ForceNextWave())
	for i := 0; i < 20 && f.world.Wave.Phase == component.WaveSpawning; i++ {
		s.Update(0.5)
	}

	// 3 + 4*1 обычных + босс
	require.Len(t, f.world.Enemies, 8)
	for _, e := range f.world.Enemies[:7] {
		assert.False(t, e.IsBoss)
	}
	boss := f.world.Enemies[7]
	assert.True(t, boss.IsBoss)
	assert.InDelta(t, f.world.Enemies[0].MaxHealth*defs.BossHealthMult, boss.MaxHealth, 1e-6)
	assert.Equal(t, defs.BossReward+5, boss.Reward)
	assert.Len(t, f.eventsOf(event.BossSpawned), 1)
}

func TestWaveNumbersIncrease(t *testing.T) {
	f := newFixture(t)
	s := newWaves(f, true)
	prev := f.world.Wave.Number
	for round := 0; round < 4; round++ {
		for i := 0; i < 200 && f.world.Wave.Phase != component.WaveActive; i++ {
			s.Update(0.5)
		}
		killAll(f)
		s.Update(0.1)
		s.Update(0.1)
		assert.Equal(t, prev+1, f.world.Wave.Number)
		prev = f.world.Wave.Number
	}
}
