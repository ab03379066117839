// internal/system/wave.go
package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/pkg/gridmap"

	"github.com/rs/zerolog"
)

// WaveConfig — параметры директора волн.
type WaveConfig struct {
	Scaling       defs.WaveScaling
	Difficulty    float64
	SpawnInterval float64 // сек между появлениями врагов
	Delay         float64 // пауза в Idle перед автозапуском
	AutoStart     bool
}

// WaveSystem — директор волн: Idle → Spawning → Active → Cleared → Idle.
type WaveSystem struct {
	world           *entity.World
	path            *gridmap.Path
	rng             RandomSource
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	cfg             WaveConfig
}

func NewWaveSystem(world *entity.World, path *gridmap.Path, rng RandomSource, eventDispatcher *event.Dispatcher, logger zerolog.Logger, cfg WaveConfig) *WaveSystem {
	s := &WaveSystem{
		world:           world,
		path:            path,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		cfg:             cfg,
	}
	s.prepare(world.Wave, max(world.Wave.Number, 1))
	return s
}

// prepare fills wave with the definition of wave n and puts it into Idle.
func (s *WaveSystem) prepare(wave *component.Wave, n int) {
	def := defs.WaveFor(n, s.cfg.Difficulty, s.cfg.Scaling)
	*wave = component.Wave{
		Number:        n,
		Phase:         component.WaveIdle,
		SpawnInterval: s.cfg.SpawnInterval,
		Count:         def.Count,
		Health:        def.Health,
		Speed:         def.Speed,
		Reward:        def.Reward,
		IsBoss:        def.IsBoss,
	}
}

// Definition returns the scaling of the current (or upcoming) wave.
func (s *WaveSystem) Definition() defs.WaveDefinition {
	w := s.world.Wave
	return defs.WaveDefinition{
		Number: w.Number,
		Count:  w.Count,
		Health: w.Health,
		Speed:  w.Speed,
		Reward: w.Reward,
		IsBoss: w.IsBoss,
	}
}

// Countdown returns the seconds left before the next wave auto-starts.
func (s *WaveSystem) Countdown() float64 {
	w := s.world.Wave
	if w.Phase != component.WaveIdle || !s.cfg.AutoStart {
		return 0
	}
	return max(0, s.cfg.Delay-w.IdleTimer)
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.world.Wave
	switch wave.Phase {
	case component.WaveIdle:
		wave.IdleTimer += deltaTime
		if s.cfg.AutoStart && wave.IdleTimer >= s.cfg.Delay {
			s.start(wave)
		}
	case component.WaveSpawning:
		wave.SpawnTimer += deltaTime
		for wave.EnemiesToSpawn > 0 && wave.SpawnTimer >= wave.SpawnInterval {
			wave.SpawnTimer -= wave.SpawnInterval
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
		}
		if wave.EnemiesToSpawn == 0 {
			wave.Phase = component.WaveActive
		}
	case component.WaveActive:
		if s.world.LiveEnemyCount() == 0 {
			wave.Phase = component.WaveCleared
			s.logger.Info().Int("wave", wave.Number).Msg("wave cleared")
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.WaveCleared,
				Data: event.WaveData{Number: wave.Number, IsBoss: wave.IsBoss},
			})
		}
	case component.WaveCleared:
		s.prepare(wave, wave.Number+1)
	}
}

// ForceNextWave starts the upcoming wave now. Allowed only in Idle with an empty path.
func (s *WaveSystem) ForceNextWave() error {
	wave := s.world.Wave
	if wave.Phase != component.WaveIdle || s.world.LiveEnemyCount() > 0 {
		return ErrWaveInProgress
	}
	s.start(wave)
	return nil
}

func (s *WaveSystem) start(wave *component.Wave) {
	wave.Phase = component.WaveSpawning
	wave.EnemiesToSpawn = wave.Count
	wave.BossQueued = wave.IsBoss
	if wave.IsBoss {
		wave.EnemiesToSpawn++
	}
	wave.SpawnTimer = wave.SpawnInterval // первый враг появляется сразу
	wave.IdleTimer = 0

	s.logger.Info().Int("wave", wave.Number).Int("count", wave.EnemiesToSpawn).Bool("boss", wave.IsBoss).Msg("wave started")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: wave.Number, IsBoss: wave.IsBoss},
	})
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def := defs.WaveDefinition{
		Number: wave.Number,
		Count:  wave.Count,
		Health: wave.Health,
		Speed:  wave.Speed,
		Reward: wave.Reward,
		IsBoss: wave.IsBoss,
	}

	stats := defs.RegularEnemy(def)
	if wave.BossQueued && wave.EnemiesToSpawn == 1 {
		stats = defs.BossEnemy(def)
		wave.BossQueued = false
	}

	jitter := 1 - defs.EnemySpeedJitter + 2*defs.EnemySpeedJitter*s.rng.Float64()
	e := &component.Enemy{
		ID:         s.world.NewEntity(),
		Wave:       wave.Number,
		Pos:        s.path.PointAt(0),
		Health:     stats.Health,
		MaxHealth:  stats.Health,
		Speed:      stats.Speed * jitter,
		Reward:     stats.Reward,
		BaseDamage: stats.BaseDamage,
		IsBoss:     stats.IsBoss,
	}
	s.world.AddEnemy(e)

	evType := event.EnemySpawned
	if e.IsBoss {
		evType = event.BossSpawned
		s.logger.Info().Int("wave", wave.Number).Float64("health", e.Health).Msg("boss spawned")
	}
	s.eventDispatcher.Dispatch(event.Event{Type: evType, Data: event.EnemyData{Enemy: *e}})
}
