// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-dice-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
)

var (
	healthFullColor = color.RGBA{70, 130, 220, 255}
	healthLowColor  = color.RGBA{220, 60, 60, 255}
	healthLostColor = color.RGBA{10, 10, 15, 255}
)

// PlayerHealthIndicator отображает здоровье базы сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// CellColor — цвет j-го кружка: потерянные тёмные, при здоровье не выше половины все красные.
func CellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthLostColor
	}
	half := maxHealth / 2
	if health <= half {
		return healthLowColor
	}
	if j < health-half {
		return healthFullColor
	}
	return healthLowColor
}

func (i *PlayerHealthIndicator) Draw(dst *ebiten.Image, fonts *Fonts, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(dst, cx, cy, HealthCircleRadius, CellColor(j, health, maxHealth), true)
		vector.StrokeCircle(dst, cx, cy, HealthCircleRadius, 1, config.TextLightColor, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	width := float32(HealthCols) * step
	DrawCentered(dst, label, fonts.Small, int(i.X+width/2), int(i.Y)-12, config.TextLightColor)
}

// Height returns the grid height for maxHealth cells.
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * float32(HealthCircleRadius*2+HealthCircleSpacing)
}
