// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-dice-defense/internal/config"
	"go-dice-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(dst *ebiten.Image, p *render.Painter) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// play
		tri := [][2]float32{
			{b.X - size, b.Y - size*1.2},
			{b.X + size, b.Y},
			{b.X - size, b.Y + size*1.2},
		}
		p.FillPolygon(dst, tri, b.PlayColor)
		p.StrokePolygon(dst, tri, 1.5, config.TextLightColor)
		return
	}

	// pause
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(dst, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(dst, x, b.Y-height/2, width, height, 1.5, config.TextLightColor, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.3)
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
