package gridmap

import "errors"

// ErrShortPath is returned when a path has fewer than two points.
var ErrShortPath = errors.New("gridmap: path needs at least two points")

// Path is a polyline walked by enemies. Progress along it is measured
// in pixels from the first point.
type Path struct {
	Points []Point
	// cumulative[i]: длина пути от начала до Points[i]
	cumulative []float64
}

// NewPath builds a path from a list of waypoints.
func NewPath(points []Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrShortPath
	}
	p := &Path{
		Points:     append([]Point(nil), points...),
		cumulative: make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		p.cumulative[i] = p.cumulative[i-1] + points[i-1].Dist(points[i])
	}
	return p, nil
}

// Length returns the total length of the path in pixels.
func (p *Path) Length() float64 {
	return p.cumulative[len(p.cumulative)-1]
}

// PointAt returns the position at the given progress. Progress is clamped
// to [0, Length].
func (p *Path) PointAt(progress float64) Point {
	if progress <= 0 {
		return p.Points[0]
	}
	if progress >= p.Length() {
		return p.Points[len(p.Points)-1]
	}
	for i := 1; i < len(p.Points); i++ {
		if progress > p.cumulative[i] {
			continue
		}
		segLen := p.cumulative[i] - p.cumulative[i-1]
		if segLen == 0 {
			return p.Points[i]
		}
		t := (progress - p.cumulative[i-1]) / segLen
		a, b := p.Points[i-1], p.Points[i]
		return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
	}
	return p.Points[len(p.Points)-1]
}
