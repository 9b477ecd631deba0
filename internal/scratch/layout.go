package scratch

import "math"

// Layout describes how cells are placed on the card: a padded grid of
// bordered cells separated by a fixed gap.
type Layout struct {
	Cols    int
	Surface Surface
	Gap     float64
	Padding float64
	Border  float64
}

func NewLayout(cols int, surface Surface) Layout {
	return Layout{
		Cols:    cols,
		Surface: surface,
		Gap:     10,
		Padding: 10,
		Border:  2,
	}
}

func (l Layout) pitchX() float64 {
	return float64(l.Surface.Width) + 2*l.Border + l.Gap
}

func (l Layout) pitchY() float64 {
	return float64(l.Surface.Height) + 2*l.Border + l.Gap
}

// Origin is the grid-space position of the top left corner of a cell's surface.
func (l Layout) Origin(index int) Point {
	row, col := index/l.Cols, index%l.Cols
	return Point{
		X: l.Padding + float64(col)*l.pitchX() + l.Border,
		Y: l.Padding + float64(row)*l.pitchY() + l.Border,
	}
}

// Locate maps a grid-space point to the cell under it and the point in that
// cell's local coordinates. ok is false for points over padding, borders or
// gaps, and for cells past total.
func (l Layout) Locate(p Point, total int) (index int, local Point, ok bool) {
	if l.Cols < 1 || total < 1 {
		return 0, Point{}, false
	}
	rows := (total + l.Cols - 1) / l.Cols
	x, y := p.X-l.Padding, p.Y-l.Padding
	// negated comparisons also reject NaN
	if !(x >= 0 && x < float64(l.Cols)*l.pitchX()) || !(y >= 0 && y < float64(rows)*l.pitchY()) {
		return 0, Point{}, false
	}
	col := int(math.Floor(x / l.pitchX()))
	row := int(math.Floor(y / l.pitchY()))
	index = row*l.Cols + col
	if index >= total {
		return 0, Point{}, false
	}
	origin := l.Origin(index)
	local = Point{X: p.X - origin.X, Y: p.Y - origin.Y}
	if !l.Surface.Contains(local) {
		return 0, Point{}, false
	}
	return index, local, true
}
