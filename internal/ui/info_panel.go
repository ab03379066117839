// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-dice-defense/internal/app"
	"go-dice-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelTop       = 110
	panelHeight    = 190
	panelMargin    = 12
	animationSpeed = 18.0
	lineHeight     = 22
)

// InfoPanel выезжает справа и показывает характеристики выбранного кубика.
type InfoPanel struct {
	currentX float64
	targetX  float64
	die      *app.DieView
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentX: config.ScreenWidth,
		targetX:  config.ScreenWidth,
	}
}

// Visible reports whether any part of the panel is on screen.
func (p *InfoPanel) Visible() bool {
	return p.currentX < config.ScreenWidth
}

// Update двигает панель к цели; без выбранного кубика панель уезжает.
func (p *InfoPanel) Update(snap *app.Snapshot) {
	p.die = nil
	for i := range snap.Dice {
		if snap.Dice[i].Slot == snap.Selected {
			d := snap.Dice[i]
			p.die = &d
			break
		}
	}
	if p.die != nil {
		p.targetX = config.ScreenWidth - config.InfoPanelWidth - panelMargin
	} else {
		p.targetX = config.ScreenWidth
	}

	diff := p.targetX - p.currentX
	if math.Abs(diff) < animationSpeed {
		p.currentX = p.targetX
	} else if diff > 0 {
		p.currentX += animationSpeed
	} else {
		p.currentX -= animationSpeed
	}
}

func (p *InfoPanel) Lines(d *app.DieView) []string {
	lines := []string{
		fmt.Sprintf("%s  lvl %d", d.Type, d.Level),
		fmt.Sprintf("Damage: %.0f", d.Damage),
		fmt.Sprintf("Period: %.2fs", d.Period),
		fmt.Sprintf("Range: %.0f", d.Range),
	}
	if d.Chain > 0 {
		lines = append(lines, fmt.Sprintf("Chain: +%d", d.Chain))
	}
	if d.Slow > 0 {
		lines = append(lines, fmt.Sprintf("Slow: x%.2f", d.Slow))
	}
	return lines
}

func (p *InfoPanel) Draw(dst *ebiten.Image, fonts *Fonts) {
	if !p.Visible() || p.die == nil {
		return
	}
	x := float32(p.currentX)
	bg := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(dst, x, panelTop, config.InfoPanelWidth, panelHeight, bg, true)
	vector.StrokeRect(dst, x, panelTop, config.InfoPanelWidth, panelHeight, 2, DieColor(p.die.Type), true)

	y := panelTop + 30
	for i, line := range p.Lines(p.die) {
		face := fonts.Regular
		clr := config.TextLightColor
		if i == 0 {
			face = fonts.Title
			clr = DieColor(p.die.Type)
		}
		text.Draw(dst, line, face, int(x)+15, y, clr)
		y += lineHeight
		if i == 0 {
			y += 8
		}
	}
}
