package ui

import (
	"image/color"

	"go-dice-defense/internal/config"
	"go-dice-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WavePhaseColors[0],
		BossColor:        config.BossColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 2,
	}
}

// Draw отрисовывает номер волны, босс-волны красным.
func (i *WaveIndicator) Draw(dst *ebiten.Image, fonts *Fonts, waveNumber int, isBoss bool) {
	if waveNumber <= 0 {
		return
	}
	label := utils.ToRoman(waveNumber)
	clr := i.Color
	if isBoss {
		clr = i.BossColor
	}
	b := text.BoundString(fonts.Title, label)
	x := i.X - (b.Min.X+b.Max.X)/2
	DrawOutlined(dst, label, fonts.Title, x, i.Y, i.OutlineThickness, clr, i.OutlineColor)
}
