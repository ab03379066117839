// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-dice-defense/internal/config"
	"go-dice-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Caption    string // вторая строка мелким шрифтом
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    color.RGBA{45, 55, 75, 255},
		HoverColor: color.RGBA{70, 90, 120, 255},
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(dst *ebiten.Image, fonts *Fonts, mouseX, mouseY int) {
	bg := b.BgColor
	if b.Disabled {
		bg = render.DarkenColor(bg)
	} else if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, bg, true)
	vector.StrokeRect(dst, x, y, w, h, 2, config.GridLineColor, true)

	clr := b.TextColor
	if b.Disabled {
		clr = config.TextDimColor
	}
	cx := b.Rect.Min.X + b.Rect.Dx()/2
	cy := b.Rect.Min.Y + b.Rect.Dy()/2
	if b.Caption == "" {
		DrawCentered(dst, b.Text, fonts.Regular, cx, cy, clr)
		return
	}
	DrawCentered(dst, b.Text, fonts.Regular, cx, cy-9, clr)
	DrawCentered(dst, b.Caption, fonts.Small, cx, cy+11, config.TextDimColor)
}
