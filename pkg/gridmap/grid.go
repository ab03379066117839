package gridmap

import "math"

// Point is a position in screen space (pixels).
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Grid describes a fixed rectangular set of placement cells.
// Slots are numbered row by row: slot = row*Cols + col.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	OriginX    float64
	OriginY    float64
}

// NewGrid creates a grid whose top-left corner is at (originX, originY).
func NewGrid(cols, rows int, cellSize, originX, originY float64) *Grid {
	return &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		OriginX:  originX,
		OriginY:  originY,
	}
}

// Size returns the number of slots in the grid.
func (g *Grid) Size() int {
	return g.Cols * g.Rows
}

// Contains reports whether slot is a valid slot index.
func (g *Grid) Contains(slot int) bool {
	return slot >= 0 && slot < g.Size()
}

// Cell converts a slot index to its column and row.
func (g *Grid) Cell(slot int) (col, row int) {
	return slot % g.Cols, slot / g.Cols
}

// Slot converts a column and row to a slot index.
func (g *Grid) Slot(col, row int) (int, bool) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return -1, false
	}
	return row*g.Cols + col, true
}

// CenterOf returns the pixel center of the slot's cell.
func (g *Grid) CenterOf(slot int) Point {
	col, row := g.Cell(slot)
	return Point{
		X: g.OriginX + (float64(col)+0.5)*g.CellSize,
		Y: g.OriginY + (float64(row)+0.5)*g.CellSize,
	}
}

// Bounds returns the top-left corner and size of the whole grid in pixels.
func (g *Grid) Bounds() (x, y, w, h float64) {
	return g.OriginX, g.OriginY, float64(g.Cols) * g.CellSize, float64(g.Rows) * g.CellSize
}

// SlotAt returns the slot under the pixel (x, y), if any.
func (g *Grid) SlotAt(x, y float64) (int, bool) {
	if x < g.OriginX || y < g.OriginY {
		return -1, false
	}
	col := int((x - g.OriginX) / g.CellSize)
	row := int((y - g.OriginY) / g.CellSize)
	return g.Slot(col, row)
}

// Around returns the slots within the given Chebyshev radius of slot,
// including slot itself. Radius 1 yields up to a 3x3 block.
func (g *Grid) Around(slot, radius int) []int {
	if !g.Contains(slot) {
		return nil
	}
	col, row := g.Cell(slot)
	var out []int
	for r := row - radius; r <= row+radius; r++ {
		for c := col - radius; c <= col+radius; c++ {
			if s, ok := g.Slot(c, r); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
