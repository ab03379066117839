package ui

import (
	"image/color"

	"go-dice-defense/internal/app"
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/utils"
	"go-dice-defense/pkg/gridmap"
	"go-dice-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	pathWidth   = 26
	diePadding  = 14
	pipRadius   = 6
	healthBarH  = 5
	shotWidth   = 3
	chainWidth  = 2
	rangeStroke = 1.5
)

// pipOffsets — позиции точек на грани кубика в долях полуразмера.
var pipOffsets = [][][2]float32{
	{{0, 0}},
	{{-0.5, -0.5}, {0.5, 0.5}},
	{{-0.5, -0.5}, {0, 0}, {0.5, 0.5}},
	{{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}},
	{{-0.5, -0.5}, {0.5, -0.5}, {0, 0}, {-0.5, 0.5}, {0.5, 0.5}},
	{{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0}, {0.5, 0}, {-0.5, 0.5}, {0.5, 0.5}},
}

// PipLayout возвращает раскладку точек для уровня кубика.
// Уровни выше шести рисуются римской цифрой, для них раскладка пустая.
func PipLayout(level int) [][2]float32 {
	if level < 1 || level > len(pipOffsets) {
		return nil
	}
	return pipOffsets[level-1]
}

// DieColor returns the fill colour for a die type.
func DieColor(t component.DieType) color.RGBA {
	if int(t) < 0 || int(t) >= len(config.DieColors) {
		return config.TextDimColor
	}
	return config.DieColors[t]
}

// BoardRenderer рисует поле по снимку состояния игры.
type BoardRenderer struct {
	painter *render.Painter
	fonts   *Fonts
}

func NewBoardRenderer(painter *render.Painter, fonts *Fonts) *BoardRenderer {
	return &BoardRenderer{painter: painter, fonts: fonts}
}

// Draw рисует путь, сетку, зоны босса, кубики, врагов и выстрелы.
// hover is the slot under the cursor or -1.
func (r *BoardRenderer) Draw(dst *ebiten.Image, snap *app.Snapshot, hover int) {
	dst.Fill(config.BackgroundColor)
	r.drawPath(dst, snap.Path)
	r.drawZones(dst, snap)
	r.drawCells(dst, snap, hover)
	r.drawRanges(dst, snap, hover)
	for i := range snap.Dice {
		r.drawDie(dst, &snap.Grid, &snap.Dice[i])
	}
	for i := range snap.Enemies {
		r.drawEnemy(dst, &snap.Enemies[i])
	}
	for i := range snap.Shots {
		r.drawShot(dst, &snap.Shots[i])
	}
}

func (r *BoardRenderer) drawPath(dst *ebiten.Image, pts []gridmap.Point) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), pathWidth, config.PathColor, true)
	}
	// скругляем стыки
	for _, p := range pts {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), pathWidth/2, config.PathColor, true)
	}
}

func (r *BoardRenderer) drawZones(dst *ebiten.Image, snap *app.Snapshot) {
	for _, z := range snap.Zones {
		clr := config.TelegraphActive
		if z.Warning {
			clr = config.TelegraphWarn
		}
		vector.DrawFilledCircle(dst, float32(z.Center.X), float32(z.Center.Y), float32(z.Radius), clr, true)
		vector.StrokeCircle(dst, float32(z.Center.X), float32(z.Center.Y), float32(z.Radius), 2, render.LightenColor(clr, 0.5), true)
	}
}

func (r *BoardRenderer) drawCells(dst *ebiten.Image, snap *app.Snapshot, hover int) {
	g := &snap.Grid
	mergeable := make(map[int]bool, len(snap.Dice))
	for _, d := range snap.Dice {
		if d.Mergeable {
			mergeable[d.Slot] = true
		}
	}
	size := float32(g.CellSize)
	for slot := 0; slot < g.Size(); slot++ {
		c := g.CenterOf(slot)
		x, y := float32(c.X)-size/2, float32(c.Y)-size/2
		vector.DrawFilledRect(dst, x+2, y+2, size-4, size-4, render.DarkenColor(config.GridLineColor), true)

		stroke, width := config.GridLineColor, float32(2)
		switch {
		case slot == snap.Selected:
			stroke, width = config.SelectionColor, 3
		case mergeable[slot]:
			stroke, width = config.HoverColor, 3
		case slot == hover:
			stroke = render.LightenColor(config.GridLineColor, 0.3)
		}
		vector.StrokeRect(dst, x+2, y+2, size-4, size-4, width, stroke, true)
	}
}

func (r *BoardRenderer) drawRanges(dst *ebiten.Image, snap *app.Snapshot, hover int) {
	for _, d := range snap.Dice {
		if d.Slot != snap.Selected && d.Slot != hover {
			continue
		}
		clr := render.WithAlpha(DieColor(d.Type), 0.5)
		vector.StrokeCircle(dst, float32(d.Center.X), float32(d.Center.Y), float32(d.Range), rangeStroke, clr, true)
	}
}

func (r *BoardRenderer) drawDie(dst *ebiten.Image, g *gridmap.Grid, d *app.DieView) {
	half := float32(g.CellSize)/2 - diePadding
	cx, cy := float32(d.Center.X), float32(d.Center.Y)
	base := DieColor(d.Type)

	face := [][2]float32{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
	}
	r.painter.FillPolygon(dst, face, base)
	r.painter.StrokePolygon(dst, face, 2, render.DarkenColor(base))

	pipColor := render.ContrastText(base, config.BackgroundColor, config.TextLightColor)
	layout := PipLayout(d.Level)
	if layout == nil {
		DrawCentered(dst, utils.ToRoman(d.Level), r.fonts.Title, int(cx), int(cy), pipColor)
	}
	for _, off := range layout {
		vector.DrawFilledCircle(dst, cx+off[0]*half*1.1, cy+off[1]*half*1.1, pipRadius, pipColor, true)
	}

	// полоска перезарядки
	if d.Period > 0 && d.Cooldown > 0 {
		k := float32(utils.Clamp(d.Cooldown/d.Period, 0, 1))
		vector.DrawFilledRect(dst, cx-half, cy+half+4, 2*half*(1-k), 3, render.WithAlpha(config.TextLightColor, 0.6), true)
	}
}

func (r *BoardRenderer) drawEnemy(dst *ebiten.Image, e *app.EnemyView) {
	radius := float32(config.EnemyRadius)
	clr := config.EnemyColor
	if e.IsBoss {
		radius = config.BossRadius
		clr = config.BossColor
	}
	if e.Slowed {
		clr = config.SlowedColor
	}
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	vector.DrawFilledCircle(dst, x, y, radius, clr, true)
	vector.StrokeCircle(dst, x, y, radius, 1.5, render.DarkenColor(clr), true)

	if e.MaxHealth <= 0 || e.Health >= e.MaxHealth {
		return
	}
	frac := float32(utils.Clamp(e.Health/e.MaxHealth, 0, 1))
	barW := radius * 2
	barY := y - radius - healthBarH - 4
	vector.DrawFilledRect(dst, x-radius, barY, barW, healthBarH, render.DarkenColor(config.GridLineColor), true)
	vector.DrawFilledRect(dst, x-radius, barY, barW*frac, healthBarH, config.HealthBarColor, true)
}

func (r *BoardRenderer) drawShot(dst *ebiten.Image, s *app.ShotView) {
	clr := render.WithAlpha(DieColor(s.Type), s.Fade)
	width := float32(shotWidth)
	if s.Type == component.DieMulti {
		width = chainWidth
	}
	vector.StrokeLine(dst, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), width, clr, true)
}
