package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter рисует залитые и обведённые многоугольники через vector.Path.
// Буферы вершин переиспользуются между вызовами.
type Painter struct {
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func NewPainter() *Painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Painter{whiteImg: img}
}

func polygonPath(points [][2]float32) vector.Path {
	path := vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(p[0], p[1])
		} else {
			path.LineTo(p[0], p[1])
		}
	}
	path.Close()
	return path
}

// FillPolygon заливает замкнутый многоугольник.
func (p *Painter) FillPolygon(dst *ebiten.Image, points [][2]float32, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := polygonPath(points)
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.draw(dst, clr)
}

// StrokePolygon обводит замкнутый многоугольник линией ширины width.
func (p *Painter) StrokePolygon(dst *ebiten.Image, points [][2]float32, width float32, clr color.RGBA) {
	if len(points) < 2 {
		return
	}
	path := polygonPath(points)
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	p.draw(dst, clr)
}

func (p *Painter) draw(dst *ebiten.Image, clr color.RGBA) {
	for i := range p.vs {
		p.vs[i].SrcX = 1
		p.vs[i].SrcY = 1
		p.vs[i].ColorR = float32(clr.R) / 255
		p.vs[i].ColorG = float32(clr.G) / 255
		p.vs[i].ColorB = float32(clr.B) / 255
		p.vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(p.vs, p.is, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Triangle возвращает вершины треугольника-стрелки, смотрящего вправо.
func Triangle(cx, cy, width, height float32) [][2]float32 {
	return [][2]float32{
		{cx - width, cy - height/2},
		{cx, cy},
		{cx - width, cy + height/2},
	}
}
