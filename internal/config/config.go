// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1280
	ScreenHeight  = 768
	MaxDeltaTime  = 0.06
	ClickCooldown = 150 // мс

	CellSize = 120.0

	EnemyRadius = 14.0
	BossRadius  = 30.0

	ShotDuration = 0.12 // Время жизни следа выстрела (сек)

	// Чейн Multi-кубика: максимальная дистанция до следующей цели
	ChainMaxDistance = 220.0

	// Способность босса
	BossAbilityPeriod   = 9.0
	BossTelegraphWarn   = 1.0
	BossTelegraphEffect = 3.0
	BossZoneCellRadius  = 1
	BossZoneEnemySpeed  = 0.6
	BossZoneDicePeriod  = 1.2

	MinSpeedMultiplier = 1
	MaxSpeedMultiplier = 5

	IndicatorRadius  = 10.0
	SpeedButtonX     = 1220
	SpeedButtonY     = 40
	SpeedButtonSize  = 16.0
	PauseButtonX     = 1160
	PauseButtonSize  = 10.0
	IndicatorX       = 1110
	InfoPanelWidth   = 230
	HUDX             = 24
	HUDY             = 24
	HUDLineHeight    = 22
	UpgradeButtonW   = 150
	UpgradeButtonH   = 44
	UpgradeButtonGap = 12
	UpgradeButtonY   = 680
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{40, 45, 60, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	SelectionColor  = color.RGBA{255, 255, 255, 255}
	HoverColor      = color.RGBA{80, 140, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 165, 255}
	WarnTextColor   = color.RGBA{255, 100, 100, 255}
	EnemyColor      = color.RGBA{255, 150, 40, 255}
	SlowedColor     = color.RGBA{100, 100, 255, 255}
	BossColor       = color.RGBA{200, 40, 60, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	TelegraphWarn   = color.RGBA{255, 200, 0, 90}
	TelegraphActive = color.RGBA{255, 60, 60, 110}
	OverlayColor    = color.RGBA{0, 0, 0, 160}

	// Цвета кубиков по типу: single, multi, freeze
	DieColors = []color.RGBA{
		{220, 70, 70, 255},
		{230, 190, 40, 255},
		{80, 170, 255, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},
		color.RGBA{90, 170, 90, 220},
		color.RGBA{194, 178, 128, 255},
		color.RGBA{220, 120, 60, 220},
		color.RGBA{220, 60, 60, 220},
	}
	WavePhaseColors = []color.RGBA{
		{70, 130, 180, 220}, // idle
		{220, 160, 60, 220}, // spawning
		{220, 60, 60, 220},  // active
		{90, 200, 90, 220},  // cleared
	}
)
