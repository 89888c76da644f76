package outline

// Sheet lays icons out in a grid of square cells with a label row under each.
type Sheet struct {
	Columns     int
	CellSize    float64
	Padding     float64
	LabelHeight float64
}

// Cell is where an icon lands on the sheet.
type Cell struct {
	X, Y  float64
	scale float64
	shift Point
	pad   float64
}

// Size returns the sheet dimensions needed for n icons.
func (s Sheet) Size(n int) (w, h int) {
	rows := (n + s.columns() - 1) / s.columns()
	return int(float64(s.columns()) * s.CellSize), int(float64(max(rows, 1)) * (s.CellSize + s.LabelHeight))
}

// Cells places icons on the sheet; each icon is scaled to fill its cell minus padding.
func (s Sheet) Cells(icons []*Outline) []Cell {
	result := make([]Cell, len(icons))
	for i, icon := range icons {
		c := Cell{
			X:     float64(i%s.columns()) * s.CellSize,
			Y:     float64(i/s.columns()) * (s.CellSize + s.LabelHeight),
			scale: 1,
			pad:   s.Padding,
		}

		minP, maxP := icon.Bounds()
		if side := max(maxP.X-minP.X, maxP.Y-minP.Y); side > 0 {
			c.scale = (s.CellSize - 2*s.Padding) / side
		}

		c.shift = minP.Mul(-1)
		result[i] = c
	}

	return result
}

func (s Sheet) columns() int {
	return max(s.Columns, 1)
}

// Project maps an icon point into sheet coordinates.
func (c Cell) Project(p Point) (x, y float32) {
	p = p.Add(c.shift).Mul(c.scale)
	return float32(c.X + c.pad + p.X), float32(c.Y + c.pad + p.Y)
}
