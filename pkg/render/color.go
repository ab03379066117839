// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor умножает RGB-каналы на k, альфа не меняется.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: channel(float64(c.R) * k),
		G: channel(float64(c.G) * k),
		B: channel(float64(c.B) * k),
		A: c.A,
	}
}

// LightenColor сдвигает цвет к белому на долю t.
func LightenColor(c color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: channel(float64(c.R) + (255-float64(c.R))*t),
		G: channel(float64(c.G) + (255-float64(c.G))*t),
		B: channel(float64(c.B) + (255-float64(c.B))*t),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha multiplied by k (0..1).
// Цвета ebiten премультиплицированы, поэтому каналы масштабируются вместе с альфой.
func WithAlpha(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: channel(float64(c.R) * k),
		G: channel(float64(c.G) * k),
		B: channel(float64(c.B) * k),
		A: channel(float64(c.A) * k),
	}
}

// ContrastText выбирает тёмный или светлый текст под фон.
func ContrastText(bg color.RGBA, dark, light color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return dark
	}
	return light
}

func channel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
