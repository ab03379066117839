package ui

import (
	"fmt"
	"image"

	"go-dice-defense/internal/app"
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Action — команда, которую пользователь выбрал кликом по элементу HUD.
type Action int

const (
	ActionNone Action = iota
	ActionSpawn
	ActionUpgradeDamage
	ActionUpgradeFireRate
	ActionUpgradeRange
	ActionTargetMode
	ActionTrash
	ActionSpeed
	ActionPause
	ActionForceWave
)

// UpgradeAction maps an upgrade kind to its button action.
func UpgradeAction(k component.UpgradeKind) Action {
	return ActionUpgradeDamage + Action(k)
}

// UpgradeKind is the inverse of UpgradeAction.
func (a Action) UpgradeKind() (component.UpgradeKind, bool) {
	if a < ActionUpgradeDamage || a > ActionUpgradeRange {
		return 0, false
	}
	return component.UpgradeKind(a - ActionUpgradeDamage), true
}

type hudButton struct {
	*Button
	action Action
}

// HUD — всё, что рисуется поверх поля.
type HUD struct {
	fonts   *Fonts
	painter *render.Painter

	buttons   []hudButton
	speed     *SpeedButton
	pause     *PauseButton
	indicator *StateIndicator
	wave      *WaveIndicator
	health    *PlayerHealthIndicator
	info      *InfoPanel
}

func bottomButtonRect(i int) image.Rectangle {
	const count = 6
	total := count*config.UpgradeButtonW + (count-1)*config.UpgradeButtonGap
	x := (config.ScreenWidth-total)/2 + i*(config.UpgradeButtonW+config.UpgradeButtonGap)
	return image.Rect(x, config.UpgradeButtonY, x+config.UpgradeButtonW, config.UpgradeButtonY+config.UpgradeButtonH)
}

// NewHUD раскладывает элементы интерфейса. fonts и painter могут быть nil,
// если нужна только проверка попаданий.
func NewHUD(fonts *Fonts, painter *render.Painter) *HUD {
	h := &HUD{
		fonts:     fonts,
		painter:   painter,
		speed:     NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pause:     NewPauseButton(config.PauseButtonX, config.SpeedButtonY, config.PauseButtonSize, config.WavePhaseColors[0], config.WavePhaseColors[3]),
		indicator: NewStateIndicator(config.IndicatorX, config.SpeedButtonY, config.IndicatorRadius),
		wave:      NewWaveIndicator(config.ScreenWidth/2, 56),
		health:    NewPlayerHealthIndicator(config.HUDX, config.HUDY+5*config.HUDLineHeight),
		info:      NewInfoPanel(),
	}
	actions := []Action{ActionSpawn, ActionUpgradeDamage, ActionUpgradeFireRate, ActionUpgradeRange, ActionTargetMode, ActionTrash}
	for i, a := range actions {
		h.buttons = append(h.buttons, hudButton{Button: NewButton(bottomButtonRect(i), ""), action: a})
	}
	return h
}

// Sync переносит состояние снимка в виджеты.
func (h *HUD) Sync(snap *app.Snapshot, paused bool) {
	h.speed.SetMultiplier(snap.Speed)
	h.pause.SetPaused(paused)
	h.info.Update(snap)

	over := snap.Phase == component.GameOver
	for _, b := range h.buttons {
		b.Disabled = over
		switch b.action {
		case ActionSpawn:
			b.Text = "Spawn [Space]"
			b.Caption = fmt.Sprintf("cost %d", snap.SpawnCost)
			b.Disabled = over || snap.Currency < snap.SpawnCost || len(snap.Dice) >= snap.Grid.Size()
		case ActionTargetMode:
			b.Text = "Target [Tab]"
			b.Caption = snap.TargetMode.String()
		case ActionTrash:
			b.Text = "Trash [T]"
			b.Caption = "selected die"
			b.Disabled = over || snap.Selected < 0
		default:
			k, _ := b.action.UpgradeKind()
			u := snap.Upgrades[k]
			b.Text = fmt.Sprintf("%s [%s] %d", u.Kind, upgradeKeys[k], u.Level)
			if u.Cost == 0 {
				b.Caption = "max"
				b.Disabled = true
			} else {
				b.Caption = fmt.Sprintf("cost %d", u.Cost)
				b.Disabled = over || snap.Currency < u.Cost
			}
		}
	}
}

var upgradeKeys = []string{"Q", "W", "E"}

// HitTest возвращает действие под курсором. Поле игры сюда не входит.
func (h *HUD) HitTest(x, y int) Action {
	for _, b := range h.buttons {
		if b.IsClicked(x, y) {
			return b.action
		}
	}
	switch {
	case h.speed.IsClicked(x, y):
		return ActionSpeed
	case h.pause.IsClicked(x, y):
		return ActionPause
	case h.indicator.IsClicked(x, y):
		h.indicator.HandleClick()
		return ActionForceWave
	}
	return ActionNone
}

// Contains reports whether (x, y) hits any HUD widget, disabled ones included.
func (h *HUD) Contains(x, y int) bool {
	for _, b := range h.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return h.speed.IsClicked(x, y) || h.pause.IsClicked(x, y) || h.indicator.IsClicked(x, y)
}

func (h *HUD) Draw(dst *ebiten.Image, snap *app.Snapshot, mouseX, mouseY int) {
	f := h.fonts
	x, y := config.HUDX, config.HUDY+14
	text.Draw(dst, snap.Level, f.Title, x, y+6, config.TextLightColor)
	y += config.HUDLineHeight + 10
	text.Draw(dst, fmt.Sprintf("Money: %d", snap.Currency), f.Regular, x, y, config.TextLightColor)
	y += config.HUDLineHeight
	text.Draw(dst, fmt.Sprintf("Next die: %d", snap.SpawnCost), f.Regular, x, y, config.TextDimColor)
	y += config.HUDLineHeight
	text.Draw(dst, fmt.Sprintf("Target: %s", snap.TargetMode), f.Regular, x, y, config.TextDimColor)

	h.health.Draw(dst, f, snap.Health, snap.MaxHealth)

	h.wave.Draw(dst, f, snap.Wave.Number, snap.Wave.IsBoss)
	DrawCentered(dst, waveStatus(&snap.Wave), f.Small, config.ScreenWidth/2, 80, config.TextDimColor)

	h.indicator.Draw(dst, config.WavePhaseColors[snap.Wave.Phase])
	h.pause.Draw(dst, h.painter)
	h.speed.Draw(dst, h.painter, f)

	for _, b := range h.buttons {
		b.Draw(dst, f, mouseX, mouseY)
	}
	h.info.Draw(dst, f)
}

func waveStatus(w *app.WaveView) string {
	switch w.Phase {
	case component.WaveIdle:
		if w.Countdown <= 0 {
			return "press N to start"
		}
		return fmt.Sprintf("next wave in %.0fs  [N]", w.Countdown)
	case component.WaveSpawning:
		return fmt.Sprintf("incoming %d  alive %d", w.Pending, w.Alive)
	case component.WaveActive:
		return fmt.Sprintf("alive %d", w.Alive)
	default:
		return "cleared"
	}
}
