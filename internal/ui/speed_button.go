// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-dice-defense/internal/config"
	"go-dice-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — двойная стрелка, цвет которой отражает множитель скорости.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int // множитель - 1
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetMultiplier синхронизирует кнопку с текущим множителем игры.
func (b *SpeedButton) SetMultiplier(m int) {
	if len(b.StateColors) == 0 {
		return
	}
	state := m - 1
	if state < 0 {
		state = 0
	}
	if state >= len(b.StateColors) {
		state = len(b.StateColors) - 1
	}
	if state != b.CurrentState {
		b.LastClickTime = time.Now()
	}
	b.CurrentState = state
}

func (b *SpeedButton) Draw(dst *ebiten.Image, p *render.Painter, fonts *Fonts) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := color.RGBAModel.Convert(b.StateColors[b.CurrentState]).(color.RGBA)

	height := size * 1.2
	width := size
	offset := width * 0.8

	left := render.Triangle(b.X, b.Y, width, height)
	right := render.Triangle(b.X+offset, b.Y, width, height)
	for _, tri := range [][][2]float32{left, right} {
		p.FillPolygon(dst, tri, clr)
		p.StrokePolygon(dst, tri, 1.5, config.TextLightColor)
	}

	label := fmt.Sprintf("x%d", b.CurrentState+1)
	DrawCentered(dst, label, fonts.Small, int(b.X), int(b.Y+b.Size*1.6), config.TextLightColor)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
