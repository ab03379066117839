// internal/app/game.go
package app

import (
	"fmt"

	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/system"
	"go-dice-defense/internal/utils"
	"go-dice-defense/pkg/gridmap"

	"github.com/rs/zerolog"
)

// Options — всё, что нужно для создания сессии.
type Options struct {
	Settings *config.Settings
	Level    defs.LevelDefinition
	Dice     defs.DiceLibrary // nil: встроенная таблица
	Rng      *utils.PRNGService
	Logger   zerolog.Logger
	// Dispatcher переживает рестарты: внешние подписчики (звук, таблица рекордов,
	// наблюдатели) подписываются один раз.
	Dispatcher *event.Dispatcher
}

// Game holds one play session and the systems that drive it.
type Game struct {
	World           *entity.World
	Grid            *gridmap.Grid
	Path            *gridmap.Path
	Level           defs.LevelDefinition
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	SpeedMultiplier int

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	StatusEffectSystem *system.StatusEffectSystem
	BossSystem         *system.BossSystem
	VisualEffectSystem *system.VisualEffectSystem
	EconomySystem      *system.EconomySystem
	MergeSystem        *system.MergeSystem
	StateSystem        *system.StateSystem

	settings *config.Settings
	dice     defs.DiceLibrary
	logger   zerolog.Logger
}

// NewGame initializes a new game session on the given level.
func NewGame(opts Options) (*Game, error) {
	if opts.Settings == nil {
		opts.Settings = config.Default()
	}
	if opts.Dice == nil {
		opts.Dice = defs.DefaultDice()
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(opts.Settings.Seed)
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	if opts.Level.ID == "" {
		opts.Level = defs.LevelByIndex(opts.Settings.Level)
	}

	path, err := gridmap.NewPath(opts.Level.Path)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", opts.Level.ID, err)
	}

	cols, rows := opts.Settings.Board.Cols, opts.Settings.Board.Rows
	g := &Game{
		Grid: gridmap.NewGrid(cols, rows, config.CellSize,
			(config.ScreenWidth-float64(cols)*config.CellSize)/2,
			(config.ScreenHeight-float64(rows)*config.CellSize)/2),
		Path:            path,
		Level:           opts.Level,
		EventDispatcher: opts.Dispatcher,
		Rng:             opts.Rng,
		SpeedMultiplier: config.MinSpeedMultiplier,
		settings:        opts.Settings,
		dice:            opts.Dice,
		logger:          opts.Logger.With().Str("component", "game").Logger(),
	}
	g.reset()

	g.logger.Info().
		Str("level", g.Level.ID).
		Int64("seed", g.Rng.Seed()).
		Msg("game session created")
	return g, nil
}

// Close detaches the session's systems from the dispatcher. The dispatcher
// outlives the session, so a game that is being abandoned must be closed.
func (g *Game) Close() {
	if g.World == nil {
		return
	}
	g.EventDispatcher.Unsubscribe(event.EnemyKilled, g.EconomySystem)
	g.EventDispatcher.Unsubscribe(event.EnemyReachedBase, g.StateSystem)
}

// reset builds a fresh world and the systems over it.
func (g *Game) reset() {
	g.Close()

	s := g.settings
	world := entity.NewWorld(s.Board.Cols, s.Board.Rows)
	world.Health = s.Game.BaseHealth
	world.MaxHealth = s.Game.BaseHealth
	world.Economy.Currency = s.Game.StartMoney
	world.Economy.SpawnCost = s.Economy.SpawnCost
	g.World = world

	waveCfg := system.WaveConfig{
		Scaling:       defs.WaveScaling{BaseCount: s.Wave.BaseCount, Growth: s.Wave.Growth},
		Difficulty:    g.Level.Difficulty,
		SpawnInterval: s.Wave.SpawnInterval,
		Delay:         s.Wave.Delay,
		AutoStart:     s.Wave.AutoStart,
	}
	sysLog := func(name string) zerolog.Logger {
		return g.logger.With().Str("system", name).Logger()
	}

	g.WaveSystem = system.NewWaveSystem(world, g.Path, g.Rng, g.EventDispatcher, sysLog("wave"), waveCfg)
	g.MovementSystem = system.NewMovementSystem(world, g.Path)
	g.CombatSystem = system.NewCombatSystem(world, g.Grid, g.dice, s.Game.BaseRange, g.EventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(world)
	g.BossSystem = system.NewBossSystem(world, g.Grid, g.Rng, g.EventDispatcher, sysLog("boss"))
	g.VisualEffectSystem = system.NewVisualEffectSystem(world)
	g.EconomySystem = system.NewEconomySystem(world, g.Rng, g.EventDispatcher, sysLog("economy"), s.Economy.SpawnCostIncrement)
	g.MergeSystem = system.NewMergeSystem(world, g.Rng, g.EventDispatcher, sysLog("merge"), s.Game.MaxDieLevel, s.Economy.MergeRefund)
	g.StateSystem = system.NewStateSystem(world, g.EventDispatcher, sysLog("state"), g.Level.ID)
}

// Update advances the simulation by deltaTime of wall-clock seconds.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime <= 0 {
		return
	}
	dt := deltaTime * float64(g.SpeedMultiplier)

	if g.World.Phase == component.GameOver {
		g.VisualEffectSystem.Update(dt)
		return
	}
	g.World.GameTime += dt

	g.WaveSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.BossSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.cleanupDestroyedEntities()
	g.StateSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

func (g *Game) cleanupDestroyedEntities() {
	killed, reached := g.World.Sweep()
	for _, e := range killed {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyData{Enemy: *e, Reward: e.Reward},
		})
	}
	for _, e := range reached {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedBase,
			Data: event.EnemyData{Enemy: *e, Damage: e.BaseDamage},
		})
	}
}

// IsOver reports whether the session has ended.
func (g *Game) IsOver() bool {
	return g.World.Phase == component.GameOver
}

// WavesSurvived returns the number of fully cleared waves.
func (g *Game) WavesSurvived() int {
	return g.StateSystem.WavesSurvived()
}

// Restart discards the session and starts over on the same level.
func (g *Game) Restart() {
	g.reset()
	g.SpeedMultiplier = config.MinSpeedMultiplier
	g.logger.Info().Str("level", g.Level.ID).Msg("game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}
