// internal/ui/fonts.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор начертаний для HUD, панелей и заголовков.
type Fonts struct {
	Small   font.Face
	Regular font.Face
	Title   font.Face
	Huge    font.Face
}

func newFace(data []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// LoadFonts собирает шрифты из встроенного семейства Go.
func LoadFonts() (*Fonts, error) {
	small, err := newFace(goregular.TTF, 14)
	if err != nil {
		return nil, err
	}
	regular, err := newFace(goregular.TTF, 18)
	if err != nil {
		return nil, err
	}
	title, err := newFace(gobold.TTF, 26)
	if err != nil {
		return nil, err
	}
	huge, err := newFace(gobold.TTF, 56)
	if err != nil {
		return nil, err
	}
	return &Fonts{Small: small, Regular: regular, Title: title, Huge: huge}, nil
}

// DrawCentered рисует строку с центром в (x, y).
func DrawCentered(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, x-(b.Min.X+b.Max.X)/2, y-(b.Min.Y+b.Max.Y)/2, clr)
}

// DrawOutlined рисует текст с обводкой толщиной thickness пикселей.
func DrawOutlined(dst *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for oy := -thickness; oy <= thickness; oy++ {
		for ox := -thickness; ox <= thickness; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			text.Draw(dst, s, face, x+ox, y+oy, outline)
		}
	}
	text.Draw(dst, s, face, x, y, clr)
}
