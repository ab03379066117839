package app

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
)

const (
	simulationStep = 1.0 / 60
	autoplayEvery  = 30 // тиков между решениями автоигрока
)

// Autoplay делает один ход простого бота: докупает кубики, пока хватает денег,
// затем сливает первую подходящую пару. Если поле заполнено и слить нечего,
// покупает самое дешёвое улучшение. Возвращает число выполненных действий.
func Autoplay(g *Game) int {
	actions := 0
	for {
		if _, err := g.SpawnRandom(); err != nil {
			break
		}
		actions++
	}
	dice := g.World.Board.Dice()
	for i, a := range dice {
		for _, b := range dice[i+1:] {
			if g.MergeSystem.CanMerge(a.Slot, b.Slot) {
				if _, err := g.Merge(a.Slot, b.Slot); err == nil {
					actions++
				}
				return actions
			}
		}
	}
	if g.World.Board.IsFull() {
		if kind, ok := g.cheapestUpgrade(); ok {
			if _, err := g.Upgrade(kind); err == nil {
				actions++
			}
		}
	}
	return actions
}

// SimulationResult — итог безголового прогона.
type SimulationResult struct {
	Ticks         int     `json:"ticks"`
	Over          bool    `json:"over"`
	WavesSurvived int     `json:"wavesSurvived"`
	Wave          int     `json:"wave"`
	GameTime      float64 `json:"gameTime"`
	Health        int     `json:"health"`
	Currency      int     `json:"currency"`
	Dice          int     `json:"dice"`
}

// Simulate прогоняет игру с автоигроком на максимальной скорости,
// пока не кончатся тики или не наступит конец игры.
func Simulate(g *Game, ticks int) SimulationResult {
	g.SetSpeed(config.MaxSpeedMultiplier)
	n := 0
	for ; n < ticks && !g.IsOver(); n++ {
		if n%autoplayEvery == 0 {
			Autoplay(g)
		}
		g.Update(simulationStep)
	}
	w := g.World
	return SimulationResult{
		Ticks:         n,
		Over:          g.IsOver(),
		WavesSurvived: g.WavesSurvived(),
		Wave:          w.Wave.Number,
		GameTime:      w.GameTime,
		Health:        w.Health,
		Currency:      w.Economy.Currency,
		Dice:          w.Board.Occupied(),
	}
}

// cheapestUpgrade picks the lowest-priced upgrade the player can afford.
func (g *Game) cheapestUpgrade() (component.UpgradeKind, bool) {
	best, bestCost := component.UpgradeKind(0), -1
	for _, k := range component.AllUpgradeKinds {
		cost, ok := defs.UpgradeCost(g.World.Economy.Upgrades.Level(k))
		if !ok || cost > g.World.Economy.Currency {
			continue
		}
		if bestCost < 0 || cost < bestCost {
			best, bestCost = k, cost
		}
	}
	return best, bestCost >= 0
}
