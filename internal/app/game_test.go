package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/system"
	"go-dice-defense/internal/utils"
)

func newTestGame(t *testing.T, mutate func(s *config.Settings)) *Game {
	t.Helper()
	s := config.Default()
	s.Wave.AutoStart = false
	if mutate != nil {
		mutate(s)
	}
	g, err := NewGame(Options{
		Settings: s,
		Level:    defs.Levels[0],
		Rng:      utils.NewPRNGService(42),
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()

	assert.Equal(t, 100, snap.Currency)
	assert.Equal(t, 10, snap.Health)
	assert.Equal(t, 10, snap.SpawnCost)
	assert.Equal(t, component.Playing, snap.Phase)
	assert.Equal(t, 1, snap.Wave.Number)
	assert.Equal(t, component.WaveIdle, snap.Wave.Phase)
	assert.Equal(t, 1, snap.Speed)
	assert.Equal(t, -1, snap.Selected)
	assert.Empty(t, snap.Dice)
	assert.Len(t, snap.Upgrades, 3)
	assert.Equal(t, 15, g.Grid.Size())
}

func TestSpawnCostExample(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.Economy.SpawnCostIncrement = 2 })

	d, err := g.SpawnRandom()
	require.NoError(t, err)
	assert.Equal(t, 1, d.Level)
	assert.Equal(t, 90, g.World.Economy.Currency)
	assert.Equal(t, 12, g.World.Economy.SpawnCost)
}

func TestHandleSlotClickFlow(t *testing.T) {
	g := newTestGame(t, nil)

	require.NoError(t, g.HandleSlotClick(0))
	require.NoError(t, g.HandleSlotClick(1))
	require.Equal(t, 2, g.World.Board.Occupied())

	// выбор и снятие выбора
	require.NoError(t, g.HandleSlotClick(0))
	assert.Equal(t, 0, g.World.Selected)
	require.NoError(t, g.HandleSlotClick(0))
	assert.Equal(t, -1, g.World.Selected)

	a, _ := g.World.Board.Get(0)
	b, _ := g.World.Board.Get(1)
	require.NoError(t, g.HandleSlotClick(0))
	err := g.HandleSlotClick(1)
	if a.Type == b.Type {
		require.NoError(t, err)
		merged, ok := g.World.Board.Get(1)
		require.True(t, ok)
		assert.Equal(t, 2, merged.Level)
		_, ok = g.World.Board.Get(0)
		assert.False(t, ok)
		assert.Equal(t, -1, g.World.Selected)
	} else {
		assert.ErrorIs(t, err, system.ErrInvalidMergePair)
		assert.Equal(t, 2, g.World.Board.Occupied())
		assert.Equal(t, 0, g.World.Selected, "rejected merge keeps the selection")
	}

	// несовместимая пара: выбор сохраняется
	require.NoError(t, g.World.Board.Place(5, &component.Die{ID: 200, Type: component.DieSingle, Level: 1}))
	require.NoError(t, g.World.Board.Place(6, &component.Die{ID: 201, Type: component.DieSingle, Level: 2}))
	g.World.Selected = 5
	assert.ErrorIs(t, g.HandleSlotClick(6), system.ErrInvalidMergePair)
	assert.Equal(t, 5, g.World.Selected)
	_, ok := g.World.Board.Get(5)
	assert.True(t, ok)

	g.World.Selected = 1
	g.CancelSelection()
	assert.Equal(t, -1, g.World.Selected)
}

func TestMergeSameDice(t *testing.T) {
	g := newTestGame(t, nil)
	require.NoError(t, g.World.Board.Place(3, &component.Die{ID: 100, Type: component.DieSingle, Level: 2}))
	require.NoError(t, g.World.Board.Place(4, &component.Die{ID: 101, Type: component.DieSingle, Level: 2}))

	snap := func() Snapshot { g.World.Selected = 3; return g.Snapshot() }()
	for _, d := range snap.Dice {
		assert.Equal(t, d.Slot == 4, d.Mergeable, "slot %d", d.Slot)
	}

	merged, err := g.Merge(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Level)
	assert.True(t, merged.Type.Valid())
	assert.Equal(t, 103, g.World.Economy.Currency)
	assert.Equal(t, -1, g.World.Selected)
}

func TestTrashSelected(t *testing.T) {
	g := newTestGame(t, nil)
	_, err := g.SpawnAt(5)
	require.NoError(t, err)

	assert.ErrorIs(t, g.TrashSelected(), system.ErrEmptySlot)
	require.NoError(t, g.HandleSlotClick(5))
	require.NoError(t, g.TrashSelected())
	assert.Zero(t, g.World.Board.Occupied())
	assert.Equal(t, -1, g.World.Selected)
}

func TestSpeedAndTargetMode(t *testing.T) {
	g := newTestGame(t, nil)

	assert.Equal(t, 5, g.SetSpeed(9))
	assert.Equal(t, 1, g.SetSpeed(0))
	assert.Equal(t, 3, g.SetSpeed(3))
	assert.Equal(t, 4, g.CycleSpeed())
	assert.Equal(t, 5, g.CycleSpeed())
	assert.Equal(t, 1, g.CycleSpeed())

	modes := []component.TargetMode{}
	for i := 0; i < 5; i++ {
		modes = append(modes, g.CycleTargetMode())
	}
	assert.Equal(t, []component.TargetMode{
		component.TargetFront, component.TargetWeak, component.TargetStrong,
		component.TargetNearest, component.TargetFront,
	}, modes)
}

func TestUpdateClampsAndScalesDelta(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update(1.0)
	assert.InDelta(t, config.MaxDeltaTime, g.World.GameTime, 1e-9)

	g.SetSpeed(3)
	g.Update(0.01)
	assert.InDelta(t, config.MaxDeltaTime+0.03, g.World.GameTime, 1e-9)

	g.Update(0)
	g.Update(-1)
	assert.InDelta(t, config.MaxDeltaTime+0.03, g.World.GameTime, 1e-9)
}

func TestForceNextWave(t *testing.T) {
	g := newTestGame(t, nil)
	require.NoError(t, g.ForceNextWave())
	assert.ErrorIs(t, g.ForceNextWave(), system.ErrWaveInProgress)

	g.Update(0.016)
	assert.Equal(t, 1, g.World.LiveEnemyCount())
}

// pushToBase moves every live enemy to the end of the path.
func pushToBase(g *Game) {
	for _, e := range g.World.Enemies {
		e.Progress = g.Path.Length() - 0.001
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.Game.BaseHealth = 1 })
	var over []event.GameOverData
	g.EventDispatcher.SubscribeFunc(event.GameOver, func(e event.Event) {
		over = append(over, e.Data.(event.GameOverData))
	})

	_, err := g.SpawnAt(0)
	require.NoError(t, err)
	require.NoError(t, g.ForceNextWave())
	g.Update(0.016)
	require.Equal(t, 1, g.World.LiveEnemyCount())
	pushToBase(g)
	g.Update(0.016)

	require.True(t, g.IsOver())
	assert.Zero(t, g.World.Health)
	require.Len(t, over, 1)
	assert.Equal(t, 0, over[0].WavesSurvived)

	_, err = g.SpawnRandom()
	assert.ErrorIs(t, err, system.ErrGameOver)
	assert.ErrorIs(t, g.HandleSlotClick(3), system.ErrGameOver)
	_, err = g.Upgrade(component.UpgradeRange)
	assert.ErrorIs(t, err, system.ErrGameOver)
	assert.ErrorIs(t, g.ForceNextWave(), system.ErrGameOver)

	before := g.World.GameTime
	g.Update(0.05)
	assert.Equal(t, before, g.World.GameTime, "simulation is frozen after game over")
	assert.Len(t, over, 1)

	g.Restart()
	assert.False(t, g.IsOver())
	assert.Equal(t, 1, g.World.Health)
	assert.Zero(t, g.World.Board.Occupied())
	assert.Equal(t, 1, g.World.Wave.Number)
	assert.Equal(t, 100, g.World.Economy.Currency)
}

func TestRestartDoesNotDuplicateListeners(t *testing.T) {
	g := newTestGame(t, nil)
	g.Restart()
	g.Restart()

	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Reward: 7}})
	assert.Equal(t, 107, g.World.Economy.Currency)

	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyData{Damage: 2}})
	assert.Equal(t, 8, g.World.Health)
}

func TestKillsAwardCurrency(t *testing.T) {
	g := newTestGame(t, nil)
	require.NoError(t, g.ForceNextWave())
	g.Update(0.016)
	require.Equal(t, 1, g.World.LiveEnemyCount())

	e := g.World.Enemies[0]
	e.Health = 0
	e.Dead = true
	g.Update(0.016)
	assert.Equal(t, 100+e.Reward, g.World.Economy.Currency)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := newTestGame(t, nil)
	_, err := g.SpawnAt(2)
	require.NoError(t, err)
	require.NoError(t, g.ForceNextWave())
	g.Update(0.016)

	snap := g.Snapshot()
	require.Len(t, snap.Dice, 1)
	require.Len(t, snap.Enemies, 1)
	snap.Dice[0].Level = 99
	snap.Enemies[0].Health = -5
	snap.Path[0].X = -1

	d, _ := g.World.Board.Get(2)
	assert.Equal(t, 1, d.Level)
	assert.NotEqual(t, -5.0, g.World.Enemies[0].Health)
	assert.NotEqual(t, -1.0, g.Path.Points[0].X)
}

func TestSimulationInvariants(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.Wave.AutoStart = true })
	g.SetSpeed(5)

	prevHealth := g.World.Health
	prevCost := g.World.Economy.SpawnCost
	for tick := 0; tick < 20_000 && !g.IsOver(); tick++ {
		if tick%30 == 0 {
			Autoplay(g)
		}
		g.Update(1.0 / 60)

		w := g.World
		require.GreaterOrEqual(t, w.Economy.Currency, 0)
		require.LessOrEqual(t, w.Health, prevHealth)
		require.GreaterOrEqual(t, w.Economy.SpawnCost, prevCost)
		require.LessOrEqual(t, w.Board.Occupied(), w.Board.Size())
		for _, d := range w.Board.Dice() {
			require.True(t, d.Type.Valid())
			require.GreaterOrEqual(t, d.Level, 1)
			require.LessOrEqual(t, d.Level, 7)
		}
		prevHealth = w.Health
		prevCost = w.Economy.SpawnCost
	}
	assert.Greater(t, g.World.Wave.Number, 1)
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, func(s *config.Settings) { s.Wave.AutoStart = true })
		for tick := 0; tick < 3000; tick++ {
			if tick%45 == 0 {
				Autoplay(g)
			}
			g.Update(1.0 / 60)
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestSimulateRunsUntilGameOverOrBudget(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.Wave.AutoStart = true })
	res := Simulate(g, 600)
	assert.LessOrEqual(t, res.Ticks, 600)
	assert.Equal(t, config.MaxSpeedMultiplier, g.SpeedMultiplier)
	assert.Equal(t, g.World.Board.Occupied(), res.Dice)
	assert.Equal(t, res.Over, g.IsOver())
	assert.Greater(t, res.GameTime, 0.0)
	assert.Positive(t, res.Dice)
}

func TestAutoplayBuysUpgradeOnFullBoard(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) {
		s.Game.StartMoney = 10_000
		s.Economy.SpawnCostIncrement = 0
		s.Game.MaxDieLevel = 1
	})
	// первый ход заполняет поле, слить кубики первого уровня нельзя
	Autoplay(g)
	require.True(t, g.World.Board.IsFull())
	before := g.World.Economy.Upgrades
	assert.Equal(t, 1, Autoplay(g))
	assert.NotEqual(t, before, g.World.Economy.Upgrades)
}

func TestCloseDetachesAbandonedSession(t *testing.T) {
	d := event.NewDispatcher()
	mk := func() *Game {
		g, err := NewGame(Options{
			Settings:   config.Default(),
			Level:      defs.Levels[0],
			Rng:        utils.NewPRNGService(7),
			Logger:     zerolog.Nop(),
			Dispatcher: d,
		})
		require.NoError(t, err)
		return g
	}

	old := mk()
	old.Close()
	cur := mk()

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Reward: 25}})
	d.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyData{Damage: 4}})

	assert.Equal(t, 100, old.World.Economy.Currency)
	assert.Equal(t, 10, old.World.Health)
	assert.Equal(t, 125, cur.World.Economy.Currency)
	assert.Equal(t, 6, cur.World.Health)

	// повторный Close безопасен, рестарт снова подписывает новую сессию
	cur.Close()
	cur.Close()
	cur.Restart()
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Reward: 5}})
	assert.Equal(t, 105, cur.World.Economy.Currency)
}
