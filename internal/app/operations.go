package app

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/system"
	"go-dice-defense/internal/utils"
)

// Операции игрока. Ошибка означает, что состояние не изменилось.

func (g *Game) guard() error {
	if g.IsOver() {
		return system.ErrGameOver
	}
	return nil
}

func (g *Game) SpawnRandom() (*component.Die, error) {
	if err := g.guard(); err != nil {
		return nil, err
	}
	return g.EconomySystem.SpawnRandom()
}

func (g *Game) SpawnAt(slot int) (*component.Die, error) {
	if err := g.guard(); err != nil {
		return nil, err
	}
	return g.EconomySystem.SpawnAt(slot)
}

func (g *Game) Merge(src, dst int) (*component.Die, error) {
	if err := g.guard(); err != nil {
		return nil, err
	}
	d, err := g.MergeSystem.Merge(src, dst)
	if err == nil && g.World.Selected == src {
		g.World.Selected = -1
	}
	return d, err
}

// HandleSlotClick implements the board click flow: empty slot spawns, a die is
// selected, a second die merges the selected one into it.
func (g *Game) HandleSlotClick(slot int) error {
	if err := g.guard(); err != nil {
		return err
	}
	_, occupied := g.World.Board.Get(slot)

	sel := g.World.Selected
	switch {
	case sel < 0 && !occupied:
		_, err := g.EconomySystem.SpawnAt(slot)
		return err
	case sel < 0:
		g.World.Selected = slot
		return nil
	case sel == slot || !occupied:
		g.World.Selected = -1
		return nil
	default:
		if _, err := g.MergeSystem.Merge(sel, slot); err != nil {
			return err
		}
		g.World.Selected = -1
		return nil
	}
}

// CancelSelection clears the selected die.
func (g *Game) CancelSelection() {
	g.World.Selected = -1
}

// Trash removes the die at slot without refund.
func (g *Game) Trash(slot int) error {
	if err := g.guard(); err != nil {
		return err
	}
	if err := g.EconomySystem.Trash(slot); err != nil {
		return err
	}
	if g.World.Selected == slot {
		g.World.Selected = -1
	}
	return nil
}

// TrashSelected removes the currently selected die.
func (g *Game) TrashSelected() error {
	if g.World.Selected < 0 {
		return system.ErrEmptySlot
	}
	return g.Trash(g.World.Selected)
}

func (g *Game) Upgrade(kind component.UpgradeKind) (int, error) {
	if err := g.guard(); err != nil {
		return 0, err
	}
	return g.EconomySystem.Upgrade(kind)
}

func (g *Game) ForceNextWave() error {
	if err := g.guard(); err != nil {
		return err
	}
	return g.WaveSystem.ForceNextWave()
}

// CycleTargetMode switches every die to the next targeting mode. Never fails.
func (g *Game) CycleTargetMode() component.TargetMode {
	g.World.TargetMode = g.World.TargetMode.Next()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TargetModeChanged, Data: g.World.TargetMode})
	return g.World.TargetMode
}

// SetSpeed sets the simulation speed multiplier, clamped to 1..5.
func (g *Game) SetSpeed(multiplier int) int {
	multiplier = utils.ClampInt(multiplier, config.MinSpeedMultiplier, config.MaxSpeedMultiplier)
	if multiplier != g.SpeedMultiplier {
		g.SpeedMultiplier = multiplier
		g.EventDispatcher.Dispatch(event.Event{Type: event.SpeedChanged, Data: multiplier})
	}
	return g.SpeedMultiplier
}

// CycleSpeed steps 1x → 2x → … → 5x → 1x.
func (g *Game) CycleSpeed() int {
	next := g.SpeedMultiplier + 1
	if next > config.MaxSpeedMultiplier {
		next = config.MinSpeedMultiplier
	}
	return g.SetSpeed(next)
}
