package ui

import (
	"testing"

	"go-dice-defense/internal/app"
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipLayout(t *testing.T) {
	for lvl := 1; lvl <= 6; lvl++ {
		assert.Len(t, PipLayout(lvl), lvl)
	}
	assert.Nil(t, PipLayout(0))
	assert.Nil(t, PipLayout(7))
}

func TestCellColor(t *testing.T) {
	// полное здоровье: верхняя половина синяя, нижняя красная
	assert.Equal(t, healthFullColor, CellColor(0, 10, 10))
	assert.Equal(t, healthLowColor, CellColor(7, 10, 10))
	// половина и меньше: всё красное
	assert.Equal(t, healthLowColor, CellColor(0, 5, 10))
	assert.Equal(t, healthLostColor, CellColor(5, 5, 10))
}

func TestUpgradeActionRoundTrip(t *testing.T) {
	for _, k := range component.AllUpgradeKinds {
		got, ok := UpgradeAction(k).UpgradeKind()
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ActionSpawn.UpgradeKind()
	assert.False(t, ok)
}

func testSnapshot() *app.Snapshot {
	return &app.Snapshot{
		Level:     "Meadow",
		Health:    10,
		MaxHealth: 10,
		Currency:  40,
		SpawnCost: 10,
		Speed:     3,
		Selected:  -1,
		Grid:      *gridmap.NewGrid(5, 3, config.CellSize, 340, 204),
		Upgrades: []app.UpgradeView{
			{Kind: component.UpgradeDamage, Level: 1, Cost: 50},
			{Kind: component.UpgradeFireRate, Level: 1, Cost: 50},
			{Kind: component.UpgradeRange, Level: 5, Cost: 0},
		},
	}
}

func TestHUDHitTest(t *testing.T) {
	h := NewHUD(nil, nil)
	r := bottomButtonRect(0)
	assert.Equal(t, ActionSpawn, h.HitTest(r.Min.X+5, r.Min.Y+5))
	assert.Equal(t, ActionSpeed, h.HitTest(config.SpeedButtonX, config.SpeedButtonY))
	assert.Equal(t, ActionPause, h.HitTest(config.PauseButtonX, config.SpeedButtonY))
	assert.Equal(t, ActionForceWave, h.HitTest(config.IndicatorX, config.SpeedButtonY))
	assert.Equal(t, ActionNone, h.HitTest(640, 384))
}

func TestHUDSyncDisablesButtons(t *testing.T) {
	h := NewHUD(nil, nil)
	snap := testSnapshot()
	h.Sync(snap, false)

	byAction := map[Action]*Button{}
	for _, b := range h.buttons {
		byAction[b.action] = b.Button
	}
	assert.False(t, byAction[ActionSpawn].Disabled)
	assert.True(t, byAction[ActionUpgradeDamage].Disabled)
	assert.True(t, byAction[ActionUpgradeRange].Disabled)
	assert.Equal(t, "max", byAction[ActionUpgradeRange].Caption)
	assert.True(t, byAction[ActionTrash].Disabled)
	assert.Equal(t, 2, h.speed.CurrentState)

	// отключённая кнопка не кликается, но клик всё равно считается попаданием в HUD
	r := byAction[ActionTrash].Rect
	assert.Equal(t, ActionNone, h.HitTest(r.Min.X+1, r.Min.Y+1))
	assert.True(t, h.Contains(r.Min.X+1, r.Min.Y+1))
}

func TestInfoPanelFollowsSelection(t *testing.T) {
	p := NewInfoPanel()
	snap := testSnapshot()
	snap.Dice = []app.DieView{{Slot: 4, Type: component.DieMulti, Level: 3, Damage: 20, Period: 0.7, Range: 420, Chain: 2}}

	p.Update(snap)
	assert.False(t, p.Visible())

	snap.Selected = 4
	for i := 0; i < 30; i++ {
		p.Update(snap)
	}
	require.True(t, p.Visible())
	assert.Equal(t, float64(config.ScreenWidth-config.InfoPanelWidth-panelMargin), p.currentX)
	lines := p.Lines(p.die)
	assert.Contains(t, lines, "Chain: +2")
	assert.Len(t, lines, 5)

	snap.Selected = -1
	for i := 0; i < 30; i++ {
		p.Update(snap)
	}
	assert.False(t, p.Visible())
}

func TestWaveStatus(t *testing.T) {
	assert.Equal(t, "press N to start", waveStatus(&app.WaveView{Phase: component.WaveIdle}))
	assert.Equal(t, "next wave in 3s  [N]", waveStatus(&app.WaveView{Phase: component.WaveIdle, Countdown: 3}))
	assert.Equal(t, "alive 4", waveStatus(&app.WaveView{Phase: component.WaveActive, Alive: 4}))
}
